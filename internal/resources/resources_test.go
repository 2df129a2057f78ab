package resources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunchdesk/lunchdesk/pkg/api/v1/client"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/routes"
	"github.com/lunchdesk/lunchdesk/pkg/query"
	"github.com/lunchdesk/lunchdesk/pkg/store"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "primary name", input: "orders", expected: "orders"},
		{name: "alias", input: "users", expected: "employers"},
		{name: "case and space", input: "  Companies ", expected: "companies"},
		{name: "unknown", input: "invoices", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Lookup(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownResource)
				assert.Contains(t, err.Error(), "orders")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r.Name)
		})
	}
}

func TestRegistryIsComplete(t *testing.T) {
	for _, r := range All() {
		assert.NotEmpty(t, routes.GetRoute(r.Route), r.Name)
		assert.NotEmpty(t, r.ResultsKey, r.Name)
		assert.NotEmpty(t, r.Tag, r.Name)
		assert.NotEmpty(t, r.Columns, r.Name)
	}
	assert.Equal(t, []string{"companies", "company-orders", "employers", "menus", "orders", "payments", "reports"}, Names())
}

func TestParseFilters(t *testing.T) {
	orders, err := Lookup("orders")
	require.NoError(t, err)

	tests := []struct {
		name     string
		args     []string
		expected query.Filters
		wantErr  bool
	}{
		{name: "none", args: nil, expected: query.Filters{}},
		{name: "status", args: []string{"status=pending"}, expected: query.Filters{"status": "pending"}},
		{
			name:     "status and long date",
			args:     []string{"status=complete", "date=March 5, 2024"},
			expected: query.Filters{"status": "complete", "date": "March 5, 2024"},
		},
		{name: "iso date", args: []string{"date=2024-03-05"}, expected: query.Filters{"date": "2024-03-05"}},
		{name: "empty value is kept", args: []string{"status="}, expected: query.Filters{"status": ""}},
		{name: "not key value", args: []string{"status"}, wantErr: true},
		{name: "unsupported key", args: []string{"colour=red"}, wantErr: true},
		{name: "invalid choice", args: []string{"status=shipped"}, wantErr: true},
		{name: "invalid date", args: []string{"date=tomorrow"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := orders.ParseFilters(tt.args)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFilter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPaymentMonthFilter(t *testing.T) {
	payments, err := Lookup("payments")
	require.NoError(t, err)

	_, err = payments.ParseFilters([]string{"month=2024-03"})
	assert.NoError(t, err)
	_, err = payments.ParseFilters([]string{"month=March"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestCycleFilter(t *testing.T) {
	reports, err := Lookup("reports")
	require.NoError(t, err)
	_, ok := reports.CycleFilter()
	assert.False(t, ok)

	menus, err := Lookup("menus")
	require.NoError(t, err)
	f, ok := menus.CycleFilter()
	require.True(t, ok)
	assert.Equal(t, "available", f.Key)
}

func TestOptions(t *testing.T) {
	payments, err := Lookup("payments")
	require.NoError(t, err)

	opts := payments.Options(query.Options{Limit: 25})
	assert.Equal(t, 25, opts.Limit)
	assert.Equal(t, "company", opts.ResultsKey)
	assert.Equal(t, query.DefaultSearchKey, opts.SearchKey)
}

func TestRow(t *testing.T) {
	orders, err := Lookup("orders")
	require.NoError(t, err)

	row := orders.Row(query.Record{
		"id":           float64(12),
		"orderNumber":  "ORD-0012",
		"employeeName": "Jamie",
		"companyName":  "Acme 01",
		"menuName":     "Fish Curry",
		"quantity":     float64(2),
		"amount":       float64(300.5),
		"status":       "pending",
		"orderDate":    "2024-03-12T12:00:00Z",
	})
	assert.Equal(t, []string{"12", "ORD-0012", "Jamie", "Acme 01", "Fish Curry", "2", "300.5", "pending", "Mar 12, 2024"}, row)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "yes", FormatValue(true))
	assert.Equal(t, "no", FormatValue(false))
	assert.Equal(t, "150", FormatValue(float64(150)))
	assert.Equal(t, "plain", FormatValue("plain"))
	assert.Equal(t, "[a b]", FormatValue([]any{"a", "b"}))
}

func TestNestedResource(t *testing.T) {
	companyOrders, err := Lookup("company-orders")
	require.NoError(t, err)
	assert.True(t, companyOrders.Nested())

	_, err = companyOrders.In(0)
	assert.ErrorIs(t, err, ErrParentRequired)

	bound, err := companyOrders.In(7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), bound.ParentID)
	assert.Equal(t, "Company orders #7", bound.Title)
	assert.Zero(t, companyOrders.ParentID, "the registered resource is not modified")

	orders, err := Lookup("orders")
	require.NoError(t, err)
	assert.False(t, orders.Nested())
	_, err = orders.In(7)
	assert.Error(t, err)
}

func TestNestedFetcher(t *testing.T) {
	var (
		mu   sync.Mutex
		urls []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		urls = append(urls, r.URL.Path)
		mu.Unlock()
		_, _ = w.Write([]byte(`{"success":true,"data":{"orders":[],"pagination":{"page":1,"limit":10,"total":0,"totalPage":1}}}`))
	}))
	defer server.Close()

	c, err := client.NewClient(&client.Options{BaseURL: server.URL})
	require.NoError(t, err)
	s := store.New(store.Options{})

	companyOrders, err := Lookup("company-orders")
	require.NoError(t, err)
	first, err := companyOrders.In(1)
	require.NoError(t, err)
	second, err := companyOrders.In(2)
	require.NoError(t, err)

	ctx := context.Background()
	params := query.Params{Page: 1, Limit: 10, Filters: query.Filters{}}
	for _, r := range []*Resource{first, second, first} {
		_, err := r.Fetcher(c, s)(ctx, params)
		require.NoError(t, err)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/api/v1/companies/1/orders", "/api/v1/companies/2/orders"}, urls, "parents are cached apart")
}
