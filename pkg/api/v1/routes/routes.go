// Package routes defines the API routes and URL structure
package routes

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/lunchdesk/lunchdesk/pkg/api/v1/handlers"
)

/*

To keep this file organized, routes should be organized in the following way:

1. Group routes by resource, in the order the dashboard lists them
2. Order routes in GET, POST, PUT, PATCH, DELETE order.
	a. Within this ordering, param urls (ie /:id) should go last, otherwise fiber will interpret the route slug as that param.
3. For clarity, naming should match the action (i.e. GetOrders, UpdateOrderStatus)

*/

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "8080"
	// APIv1Prefix is the prefix for all API endpoints
	APIv1Prefix = "/api/v1"
)

// DefaultBaseURL is the default base URL for the API
var DefaultBaseURL = fmt.Sprintf("http://localhost:%s", DefaultPort)

// Route names for lookup
const (
	// Health check
	HealthCheck = "HealthCheck"

	// Company routes
	GetCompanies     = "GetCompanies"
	GetCompanyOrders = "GetCompanyOrders"
	GetCompany       = "GetCompany"
	CreateCompany    = "CreateCompany"
	UpdateCompany    = "UpdateCompany"
	DeleteCompany    = "DeleteCompany"

	// Employer routes
	GetEmployers     = "GetEmployers"
	BlockEmployer    = "BlockEmployer"
	ActivateEmployer = "ActivateEmployer"

	// Order routes
	GetOrders         = "GetOrders"
	UpdateOrderStatus = "UpdateOrderStatus"

	// Menu routes
	GetMenus   = "GetMenus"
	CreateMenu = "CreateMenu"
	UpdateMenu = "UpdateMenu"
	DeleteMenu = "DeleteMenu"

	// Payment routes
	GetPayments   = "GetPayments"
	UpdatePayment = "UpdatePayment"

	// Report routes
	GetReports   = "GetReports"
	DeleteReport = "DeleteReport"

	// Dashboard routes
	GetStats           = "GetStats"
	GetUserOverview    = "GetUserOverview"
	GetEarningOverview = "GetEarningOverview"
	GetLegal           = "GetLegal"
	UpdateLegal        = "UpdateLegal"
)

// Handlers groups the handlers served under APIv1Prefix
type Handlers struct {
	Company  *handlers.CompanyHandler
	Employer *handlers.EmployerHandler
	Order    *handlers.OrderHandler
	Menu     *handlers.MenuHandler
	Payment  *handlers.PaymentHandler
	Report   *handlers.ReportHandler
	Legal    *handlers.LegalHandler
	Stats    *handlers.StatsHandler
}

// NewHandlers creates every resource handler around a shared API handler
func NewHandlers(api *handlers.APIHandler) *Handlers {
	return &Handlers{
		Company:  handlers.NewCompanyHandler(api),
		Employer: handlers.NewEmployerHandler(api),
		Order:    handlers.NewOrderHandler(api),
		Menu:     handlers.NewMenuHandler(api),
		Payment:  handlers.NewPaymentHandler(api),
		Report:   handlers.NewReportHandler(api),
		Legal:    handlers.NewLegalHandler(api),
		Stats:    handlers.NewStatsHandler(api),
	}
}

// routeCache stores extracted routes for use prior to compilation
var (
	routeCache     map[string]string
	routeCacheInit sync.Once
)

// RegisterRoutes configures all the v1 routes
//
// NOTE: route ordering is important because routes will try and match in the order they are registered.
func RegisterRoutes(app *fiber.App, h *Handlers) {
	v1 := app.Group(APIv1Prefix)

	// Health check
	v1.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	}).Name(HealthCheck)

	companies := v1.Group("/companies")
	companies.Get("/", h.Company.ListCompanies).Name(GetCompanies)
	companies.Get("/:id/orders", h.Company.ListCompanyOrders).Name(GetCompanyOrders)
	companies.Get("/:id", h.Company.GetCompany).Name(GetCompany)
	companies.Post("/", h.Company.CreateCompany).Name(CreateCompany)
	companies.Patch("/:id", h.Company.UpdateCompany).Name(UpdateCompany)
	companies.Delete("/:id", h.Company.DeleteCompany).Name(DeleteCompany)

	employers := v1.Group("/employers")
	employers.Get("/", h.Employer.ListEmployers).Name(GetEmployers)
	employers.Patch("/:id/block", h.Employer.BlockEmployer).Name(BlockEmployer)
	employers.Patch("/:id/activate", h.Employer.ActivateEmployer).Name(ActivateEmployer)

	orders := v1.Group("/orders")
	orders.Get("/", h.Order.ListOrders).Name(GetOrders)
	orders.Patch("/:id/status", h.Order.UpdateOrderStatus).Name(UpdateOrderStatus)

	menus := v1.Group("/menus")
	menus.Get("/", h.Menu.ListMenus).Name(GetMenus)
	menus.Post("/", h.Menu.CreateMenu).Name(CreateMenu)
	menus.Patch("/:id", h.Menu.UpdateMenu).Name(UpdateMenu)
	menus.Delete("/:id", h.Menu.DeleteMenu).Name(DeleteMenu)

	payments := v1.Group("/payments")
	payments.Get("/", h.Payment.ListPayments).Name(GetPayments)
	payments.Patch("/:id", h.Payment.UpdatePayment).Name(UpdatePayment)

	reports := v1.Group("/reports")
	reports.Get("/", h.Report.ListReports).Name(GetReports)
	reports.Delete("/:id", h.Report.DeleteReport).Name(DeleteReport)

	stats := v1.Group("/stats")
	stats.Get("/", h.Stats.GetStats).Name(GetStats)
	stats.Get("/users", h.Stats.GetUserOverview).Name(GetUserOverview)
	stats.Get("/earnings", h.Stats.GetEarningOverview).Name(GetEarningOverview)

	legal := v1.Group("/legal")
	legal.Get("/:kind", h.Legal.GetLegal).Name(GetLegal)
	legal.Put("/:kind", h.Legal.UpdateLegal).Name(UpdateLegal)
}

// initRouteCache initializes the route cache by creating a mock app and extracting routes
func initRouteCache() {
	routeCacheInit.Do(func() {
		routeCache = make(map[string]string)

		app := fiber.New()
		RegisterRoutes(app, NewHandlers(&handlers.APIHandler{}))

		for _, route := range app.GetRoutes() {
			if route.Name != "" {
				routeCache[route.Name] = route.Path
			}
		}
	})
}

// GetRoute returns the route pattern for the given route name
func GetRoute(name string) string {
	initRouteCache()
	return routeCache[name]
}

// BuildURL builds a URL for the given route name and parameters
func BuildURL(routeName string, params map[string]string, queryParams url.Values) string {
	route := GetRoute(routeName)
	if route == "" {
		return ""
	}

	// Replace parameters in the route
	for param, value := range params {
		route = strings.ReplaceAll(route, ":"+param, url.PathEscape(value))
	}

	// Remove trailing slash if it's a base endpoint with no parameters
	if strings.HasSuffix(route, "/") && !strings.Contains(route, ":") {
		route = strings.TrimSuffix(route, "/")
	}

	// Add query parameters if any
	if len(queryParams) > 0 {
		route = fmt.Sprintf("%s?%s", route, queryParams.Encode())
	}

	return route
}

func idParam(id uint) map[string]string {
	return map[string]string{"id": fmt.Sprint(id)}
}

// HealthCheckURL returns the URL for the health check endpoint
func HealthCheckURL() string {
	return BuildURL(HealthCheck, nil, nil)
}

// ListURL returns the URL of a list route with the given query
func ListURL(routeName string, queryParams url.Values) string {
	return BuildURL(routeName, nil, queryParams)
}

// ScopedListURL returns the URL of a list route nested under a parent, such as
// the orders of one company
func ScopedListURL(routeName string, pathParams map[string]string, queryParams url.Values) string {
	return BuildURL(routeName, pathParams, queryParams)
}

// Company route helpers

// GetCompanyURL returns the URL of a company's details
func GetCompanyURL(id uint) string {
	return BuildURL(GetCompany, idParam(id), nil)
}

// CreateCompanyURL returns the URL for creating a company
func CreateCompanyURL() string {
	return BuildURL(CreateCompany, nil, nil)
}

// UpdateCompanyURL returns the URL for updating a company
func UpdateCompanyURL(id uint) string {
	return BuildURL(UpdateCompany, idParam(id), nil)
}

// DeleteCompanyURL returns the URL for deleting a company
func DeleteCompanyURL(id uint) string {
	return BuildURL(DeleteCompany, idParam(id), nil)
}

// BlockEmployerURL returns the URL for blocking or unblocking an employer
func BlockEmployerURL(id uint) string {
	return BuildURL(BlockEmployer, idParam(id), nil)
}

// ActivateEmployerURL returns the URL for approving an employer
func ActivateEmployerURL(id uint) string {
	return BuildURL(ActivateEmployer, idParam(id), nil)
}

// UpdateOrderStatusURL returns the URL for changing an order's status
func UpdateOrderStatusURL(id uint) string {
	return BuildURL(UpdateOrderStatus, idParam(id), nil)
}

// Menu route helpers

// CreateMenuURL returns the URL for creating a menu
func CreateMenuURL() string {
	return BuildURL(CreateMenu, nil, nil)
}

// UpdateMenuURL returns the URL for updating a menu
func UpdateMenuURL(id uint) string {
	return BuildURL(UpdateMenu, idParam(id), nil)
}

// DeleteMenuURL returns the URL for deleting a menu
func DeleteMenuURL(id uint) string {
	return BuildURL(DeleteMenu, idParam(id), nil)
}

// UpdatePaymentURL returns the URL for updating a payment
func UpdatePaymentURL(id uint) string {
	return BuildURL(UpdatePayment, idParam(id), nil)
}

// DeleteReportURL returns the URL for deleting a report
func DeleteReportURL(id uint) string {
	return BuildURL(DeleteReport, idParam(id), nil)
}

// StatsURL returns the URL for the dashboard counters
func StatsURL() string {
	return BuildURL(GetStats, nil, nil)
}

func yearQuery(year int) url.Values {
	if year <= 0 {
		return nil
	}
	return url.Values{handlers.YearQueryKey: {fmt.Sprint(year)}}
}

// UserOverviewURL returns the URL of the sign-up chart, for the current year when year is 0
func UserOverviewURL(year int) string {
	return BuildURL(GetUserOverview, nil, yearQuery(year))
}

// EarningOverviewURL returns the URL of the income chart, for the current year when year is 0
func EarningOverviewURL(year int) string {
	return BuildURL(GetEarningOverview, nil, yearQuery(year))
}

// LegalURL returns the URL of a legal document, used for both GET and PUT
func LegalURL(kind string) string {
	return BuildURL(GetLegal, map[string]string{"kind": kind}, nil)
}
