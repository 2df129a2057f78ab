package routes

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{name: "health", got: HealthCheckURL(), expected: "/api/v1/health"},
		{name: "list without query", got: ListURL(GetOrders, nil), expected: "/api/v1/orders"},
		{
			name:     "list with query",
			got:      ListURL(GetOrders, url.Values{"page": {"2"}, "status": {"pending"}}),
			expected: "/api/v1/orders?page=2&status=pending",
		},
		{name: "update company", got: UpdateCompanyURL(7), expected: "/api/v1/companies/7"},
		{name: "company details", got: GetCompanyURL(7), expected: "/api/v1/companies/7"},
		{
			name:     "company orders",
			got:      ScopedListURL(GetCompanyOrders, map[string]string{"id": "7"}, url.Values{"page": {"1"}}),
			expected: "/api/v1/companies/7/orders?page=1",
		},
		{name: "activate employer", got: ActivateEmployerURL(3), expected: "/api/v1/employers/3/activate"},
		{name: "update menu", got: UpdateMenuURL(4), expected: "/api/v1/menus/4"},
		{name: "user overview", got: UserOverviewURL(2024), expected: "/api/v1/stats/users?year=2024"},
		{name: "earning overview this year", got: EarningOverviewURL(0), expected: "/api/v1/stats/earnings"},
		{name: "block employer", got: BlockEmployerURL(3), expected: "/api/v1/employers/3/block"},
		{name: "order status", got: UpdateOrderStatusURL(12), expected: "/api/v1/orders/12/status"},
		{name: "delete menu", got: DeleteMenuURL(4), expected: "/api/v1/menus/4"},
		{name: "update payment", got: UpdatePaymentURL(9), expected: "/api/v1/payments/9"},
		{name: "delete report", got: DeleteReportURL(1), expected: "/api/v1/reports/1"},
		{name: "stats", got: StatsURL(), expected: "/api/v1/stats"},
		{name: "legal", got: LegalURL("terms"), expected: "/api/v1/legal/terms"},
		{name: "unknown route", got: BuildURL("Nope", nil, nil), expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestEveryRouteIsNamed(t *testing.T) {
	for _, name := range []string{
		HealthCheck, GetCompanies, GetCompanyOrders, GetCompany, CreateCompany, UpdateCompany, DeleteCompany,
		GetEmployers, BlockEmployer, ActivateEmployer, GetOrders, UpdateOrderStatus,
		GetMenus, CreateMenu, UpdateMenu, DeleteMenu, GetPayments, UpdatePayment,
		GetReports, DeleteReport, GetStats, GetUserOverview, GetEarningOverview, GetLegal, UpdateLegal,
	} {
		assert.NotEmpty(t, GetRoute(name), name)
	}
}
