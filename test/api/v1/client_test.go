package api_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunchdesk/lunchdesk/internal/db"
	"github.com/lunchdesk/lunchdesk/internal/resources"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/client"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/handlers"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/routes"
	"github.com/lunchdesk/lunchdesk/pkg/models"
	"github.com/lunchdesk/lunchdesk/pkg/query"
	"github.com/lunchdesk/lunchdesk/pkg/store"
	"github.com/lunchdesk/lunchdesk/test"
)

// This file contains the end-to-end tests of the API client, the query store
// and list coordinators against the fixture server.

func listPage(t *testing.T, suite *test.Suite, route, resultsKey string, p query.Params) query.Result[query.Record] {
	t.Helper()
	env, err := suite.APIClient.List(suite.Context(), route, p)
	require.NoError(t, err)
	assert.True(t, env.Success)
	return query.Normalize[query.Record](env, resultsKey)
}

func TestClientList(t *testing.T) {
	suite := test.NewSuite(t, test.WithSeed())
	defer suite.Cleanup()

	t.Run("first page of orders", func(t *testing.T) {
		res := listPage(t, suite, routes.GetOrders, handlers.OrderResultsKey, query.Params{Page: 1, Limit: 10})
		assert.Len(t, res.Items, 10)
		assert.Equal(t, 1, res.Page)
		assert.Equal(t, 5, res.TotalPages)
		// newest first
		assert.Equal(t, "ORD-0045", res.Items[0]["orderNumber"])
	})

	t.Run("last page is partial", func(t *testing.T) {
		res := listPage(t, suite, routes.GetOrders, handlers.OrderResultsKey, query.Params{Page: 5, Limit: 10})
		assert.Len(t, res.Items, 5)
		assert.Equal(t, 5, res.Page)
	})

	t.Run("page past the end is clamped by the server", func(t *testing.T) {
		res := listPage(t, suite, routes.GetOrders, handlers.OrderResultsKey, query.Params{Page: 99, Limit: 10})
		assert.Equal(t, 5, res.Page)
		assert.Len(t, res.Items, 5)
	})

	t.Run("search term", func(t *testing.T) {
		res := listPage(t, suite, routes.GetCompanies, handlers.CompanyResultsKey, query.Params{
			Page: 1, Limit: 10, Search: "acme",
		})
		assert.Len(t, res.Items, 5)
		assert.Equal(t, 1, res.TotalPages)
		for _, item := range res.Items {
			assert.Contains(t, item["name"], "Acme")
		}
	})

	t.Run("filters", func(t *testing.T) {
		res := listPage(t, suite, routes.GetCompanies, handlers.CompanyResultsKey, query.Params{
			Page: 1, Limit: 10, Filters: query.Filters{"status": "inactive"},
		})
		assert.Len(t, res.Items, 5)
		for _, item := range res.Items {
			assert.Equal(t, "inactive", item["status"])
		}

		res = listPage(t, suite, routes.GetOrders, handlers.OrderResultsKey, query.Params{
			Page: 1, Limit: 10, Filters: query.Filters{"date": "2024-03-01"},
		})
		require.Len(t, res.Items, 1)
		assert.Equal(t, "ORD-0001", res.Items[0]["orderNumber"])
	})

	t.Run("falsy filters are not sent", func(t *testing.T) {
		res := listPage(t, suite, routes.GetCompanies, handlers.CompanyResultsKey, query.Params{
			Page: 1, Limit: 10, Filters: query.Filters{"status": ""},
		})
		assert.Equal(t, 3, res.TotalPages)
	})

	t.Run("search and filter with no match", func(t *testing.T) {
		res := listPage(t, suite, routes.GetCompanies, handlers.CompanyResultsKey, query.Params{
			Page: 1, Limit: 10, Search: "acme", Filters: query.Filters{"status": "inactive"},
		})
		assert.Empty(t, res.Items)
		assert.Equal(t, 1, res.TotalPages)
	})

	t.Run("payments use the company results key", func(t *testing.T) {
		res := listPage(t, suite, routes.GetPayments, handlers.PaymentResultsKey, query.Params{Page: 1, Limit: 10})
		assert.Len(t, res.Items, 10)
		assert.Equal(t, 2, res.TotalPages)
	})

	t.Run("invalid filter is a bad request", func(t *testing.T) {
		_, err := suite.APIClient.List(suite.Context(), routes.GetOrders, query.Params{
			Page: 1, Limit: 10, Filters: query.Filters{"status": "lost"},
		})
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, http.StatusBadRequest, fe.Code)
	})
}

func TestClientMutations(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()
	ctx := suite.Context()

	company, err := suite.APIClient.CreateCompany(ctx, handlers.CreateCompanyParams{Name: "Acme", Email: "hi@acme.test"})
	require.NoError(t, err)
	assert.NotZero(t, company.ID)
	assert.Equal(t, models.CompanyStatusActive, company.Status)

	company, err = suite.APIClient.UpdateCompany(ctx, company.ID, handlers.UpdateCompanyParams{Status: "inactive"})
	require.NoError(t, err)
	assert.Equal(t, models.CompanyStatusInactive, company.Status)
	assert.Equal(t, "Acme", company.Name)

	require.NoError(t, suite.APIClient.DeleteCompany(ctx, company.ID))

	err = suite.APIClient.DeleteCompany(ctx, company.ID)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusNotFound, fe.Code)

	employer := &models.Employer{Name: "Rahim", Email: "rahim@acme.test", CompanyName: "Acme"}
	require.NoError(t, suite.EmployerRepo.Create(ctx, employer))
	blocked, err := suite.APIClient.BlockEmployer(ctx, employer.ID, true)
	require.NoError(t, err)
	assert.True(t, blocked.Blocked)

	order := &models.Order{OrderNumber: "ORD-1", Status: models.OrderStatusPending, OrderDate: db.SeedEpoch}
	require.NoError(t, suite.OrderRepo.Create(ctx, order))
	updated, err := suite.APIClient.UpdateOrderStatus(ctx, order.ID, "complete")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusComplete, updated.Status)

	_, err = suite.APIClient.UpdateOrderStatus(ctx, order.ID, "lost")
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusBadRequest, fe.Code)

	doc, err := suite.APIClient.UpdateLegal(ctx, "terms", "<p>new terms</p>")
	require.NoError(t, err)
	assert.Equal(t, "<p>new terms</p>", doc.Content)
	doc, err = suite.APIClient.GetLegal(ctx, "terms")
	require.NoError(t, err)
	assert.Equal(t, "<p>new terms</p>", doc.Content)

	stats, err := suite.APIClient.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.TotalEmployers)
	assert.Equal(t, int64(0), stats.TotalCompanies)
}

func TestClientAuth(t *testing.T) {
	suite := test.NewSuite(t, test.WithToken("secret"))
	defer suite.Cleanup()

	anonymous, err := client.NewClient(&client.Options{BaseURL: suite.Server.URL})
	require.NoError(t, err)

	_, err = anonymous.HealthCheck(suite.Context())
	assert.NoError(t, err, "health is public")

	_, err = anonymous.List(suite.Context(), routes.GetCompanies, query.Params{Page: 1, Limit: 10})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusUnauthorized, fe.Code)

	_, err = suite.APIClient.List(suite.Context(), routes.GetCompanies, query.Params{Page: 1, Limit: 10})
	assert.NoError(t, err)
}

func waitSettled(t *testing.T, c *query.Coordinator[query.Record]) query.Snapshot[query.Record] {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.Wait(ctx))
	return c.Snapshot()
}

func TestCoordinatorAgainstServer(t *testing.T) {
	suite := test.NewSuite(t, test.WithSeed())
	defer suite.Cleanup()

	res, err := resources.Lookup("orders")
	require.NoError(t, err)

	c := query.New[query.Record](res.Fetcher(suite.APIClient, suite.Store), res.Options(query.Options{Debounce: -1}))
	defer c.Close()

	snap := waitSettled(t, c)
	assert.Len(t, snap.Items, 10)
	assert.Equal(t, 5, snap.TotalPages)

	c.SetCurrentPage(3)
	snap = waitSettled(t, c)
	assert.Equal(t, 3, snap.Page)
	assert.Equal(t, "ORD-0025", snap.Items[0]["orderNumber"])

	// a filter change goes back to page 1
	c.SetFilters(query.Filters{"status": "pending"})
	snap = waitSettled(t, c)
	assert.Equal(t, 1, snap.CurrentPage)
	assert.Equal(t, 2, snap.TotalPages)
	for _, item := range snap.Items {
		assert.Equal(t, "pending", item["status"])
	}

	// the server clamps an out of range page and the snapshot shows what it returned
	c.SetCurrentPage(7)
	snap = waitSettled(t, c)
	assert.Equal(t, 7, snap.CurrentPage)
	assert.Equal(t, 2, snap.Page)
	assert.False(t, snap.IsError)

	c.SetSearchTerm("ORD-0001")
	snap = waitSettled(t, c)
	assert.Equal(t, 1, snap.CurrentPage)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "ORD-0001", snap.Items[0]["orderNumber"])
}

func TestStoreInvalidation(t *testing.T) {
	suite := test.NewSuite(t, test.WithSeed())
	defer suite.Cleanup()

	res, err := resources.Lookup("companies")
	require.NoError(t, err)

	var calls atomic.Int32
	counted := func(ctx context.Context, p query.Params) (query.Envelope, error) {
		calls.Add(1)
		return suite.APIClient.List(ctx, res.Route, p)
	}
	s := store.New(store.Options{})
	fetch := s.Query(res.Route, []string{res.Tag}, counted)

	c := query.New[query.Record](fetch, res.Options(query.Options{Debounce: -1}))
	defer c.Close()
	unsubscribe := s.Subscribe(res.Tag, c.Refetch)
	defer unsubscribe()

	snap := waitSettled(t, c)
	assert.Equal(t, 3, snap.TotalPages)
	assert.Equal(t, int32(1), calls.Load())

	// served from the cache
	c.Refetch()
	waitSettled(t, c)
	assert.Equal(t, int32(1), calls.Load())

	_, err = suite.APIClient.CreateCompany(suite.Context(), handlers.CreateCompanyParams{Name: "Newco"})
	require.NoError(t, err)
	s.Invalidate(res.Tag)

	snap = waitSettled(t, c)
	assert.Equal(t, int32(2), calls.Load())
	require.NotEmpty(t, snap.Items)
	assert.Equal(t, "Newco", snap.Items[0]["name"])
}
