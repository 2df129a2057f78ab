// Package resources describes the list views of the dashboard: where each
// list is fetched from, how its rows are rendered and which filters it accepts.
package resources

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/lunchdesk/lunchdesk/internal/db/repos"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/client"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/handlers"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/routes"
	"github.com/lunchdesk/lunchdesk/pkg/query"
	"github.com/lunchdesk/lunchdesk/pkg/store"
)

// ErrUnknownResource is returned by Lookup for a name that is not registered
var ErrUnknownResource = errors.New("unknown resource")

// ErrInvalidFilter is returned by ParseFilters for malformed or unsupported filters
var ErrInvalidFilter = errors.New("invalid filter")

// ErrParentRequired is returned by In when a nested list is opened without a parent id
var ErrParentRequired = errors.New("parent id required")

// Cache tags provided by the list views and invalidated by mutations
const (
	TagCompany  = "Company"
	TagEmployer = "Employer"
	TagOrder    = "Order"
	TagMenu     = "Menu"
	TagPayment  = "Payment"
	TagReport   = "Report"
)

// Filter is a query constraint a resource accepts
type Filter struct {
	Key   string
	Label string
	// Choices lists the accepted values; empty means free text
	Choices  []string
	validate func(string) error
}

// Validate checks value against the filter's choices or format
func (f Filter) Validate(value string) error {
	if value == "" {
		return nil
	}
	if len(f.Choices) > 0 {
		for _, c := range f.Choices {
			if c == value {
				return nil
			}
		}
		return fmt.Errorf("%w: %s must be one of %s", ErrInvalidFilter, f.Key, strings.Join(f.Choices, ", "))
	}
	if f.validate != nil {
		if err := f.validate(value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFilter, f.Key, err)
		}
	}
	return nil
}

// Resource is one list view
type Resource struct {
	Name       string
	Aliases    []string
	Title      string
	Route      string
	ResultsKey string
	Tag        string
	Filters    []Filter
	Columns    []Column

	// Parent names the resource a nested list lives under, empty for top-level lists
	Parent string
	// ParentID is the parent row a nested list is bound to by In
	ParentID uint
}

var (
	dateFilter = func(key, label string) Filter {
		return Filter{Key: key, Label: label, validate: func(v string) error {
			_, err := repos.ParseDay(v)
			return err
		}}
	}
	boolChoices = []string{"true", "false"}
	monthRe     = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

var registry = []*Resource{
	{
		Name:       "companies",
		Aliases:    []string{"company"},
		Title:      "Companies",
		Route:      routes.GetCompanies,
		ResultsKey: handlers.CompanyResultsKey,
		Tag:        TagCompany,
		Filters: []Filter{
			{Key: "status", Label: "Status", Choices: []string{"active", "inactive"}},
		},
		Columns: []Column{
			{Title: "ID", Field: "id", Width: 5},
			{Title: "Name", Field: "name", Width: 24},
			{Title: "Email", Field: "email", Width: 26},
			{Title: "Phone", Field: "phone", Width: 16},
			{Title: "Status", Field: "status", Width: 10},
		},
	},
	{
		Name:       "employers",
		Aliases:    []string{"users", "employer"},
		Title:      "Employers",
		Route:      routes.GetEmployers,
		ResultsKey: handlers.EmployerResultsKey,
		Tag:        TagEmployer,
		Filters: []Filter{
			{Key: "status", Label: "Status", Choices: []string{"pending", "active"}},
			{Key: "isBlocked", Label: "Blocked", Choices: boolChoices},
			{Key: "company", Label: "Company"},
		},
		Columns: []Column{
			{Title: "ID", Field: "id", Width: 5},
			{Title: "Name", Field: "name", Width: 20},
			{Title: "Email", Field: "email", Width: 26},
			{Title: "Company", Field: "companyName", Width: 20},
			{Title: "Status", Field: "status", Width: 10},
			{Title: "Blocked", Field: "isBlocked", Width: 8},
		},
	},
	{
		Name:       "orders",
		Aliases:    []string{"order"},
		Title:      "Orders",
		Route:      routes.GetOrders,
		ResultsKey: handlers.OrderResultsKey,
		Tag:        TagOrder,
		Filters: []Filter{
			{Key: "status", Label: "Status", Choices: []string{"pending", "complete", "cancel"}},
			dateFilter("date", "Order date"),
			{Key: "company", Label: "Company"},
		},
		Columns: []Column{
			{Title: "ID", Field: "id", Width: 5},
			{Title: "Order", Field: "orderNumber", Width: 10},
			{Title: "Employee", Field: "employeeName", Width: 16},
			{Title: "Company", Field: "companyName", Width: 16},
			{Title: "Menu", Field: "menuName", Width: 18},
			{Title: "Qty", Field: "quantity", Width: 4},
			{Title: "Amount", Field: "amount", Width: 8},
			{Title: "Status", Field: "status", Width: 9},
			{Title: "Date", Field: "orderDate", Width: 13},
		},
	},
	{
		Name:       "company-orders",
		Aliases:    []string{"company-order"},
		Title:      "Company orders",
		Route:      routes.GetCompanyOrders,
		ResultsKey: handlers.CompanyOrderResultsKey,
		Tag:        TagOrder,
		Parent:     "companies",
		Filters: []Filter{
			{Key: "status", Label: "Status", Choices: []string{"pending", "complete", "cancel"}},
			dateFilter("date", "Order date"),
		},
		Columns: []Column{
			{Title: "ID", Field: "id", Width: 5},
			{Title: "Order", Field: "orderNumber", Width: 10},
			{Title: "Employee", Field: "employeeName", Width: 16},
			{Title: "Menu", Field: "menuName", Width: 18},
			{Title: "Qty", Field: "quantity", Width: 4},
			{Title: "Amount", Field: "amount", Width: 8},
			{Title: "Status", Field: "status", Width: 9},
			{Title: "Date", Field: "orderDate", Width: 13},
		},
	},
	{
		Name:       "menus",
		Aliases:    []string{"menu"},
		Title:      "Menus",
		Route:      routes.GetMenus,
		ResultsKey: handlers.MenuResultsKey,
		Tag:        TagMenu,
		Filters: []Filter{
			{Key: "available", Label: "Available", Choices: boolChoices},
			{Key: "category", Label: "Category"},
		},
		Columns: []Column{
			{Title: "ID", Field: "id", Width: 5},
			{Title: "Name", Field: "name", Width: 22},
			{Title: "Category", Field: "category", Width: 12},
			{Title: "Price", Field: "price", Width: 8},
			{Title: "Available", Field: "available", Width: 9},
		},
	},
	{
		Name:       "payments",
		Aliases:    []string{"payment"},
		Title:      "Payments",
		Route:      routes.GetPayments,
		ResultsKey: handlers.PaymentResultsKey,
		Tag:        TagPayment,
		Filters: []Filter{
			{Key: "status", Label: "Status", Choices: []string{"paid", "unpaid"}},
			{Key: "month", Label: "Month", validate: func(v string) error {
				if !monthRe.MatchString(v) {
					return fmt.Errorf("month must look like 2006-01")
				}
				return nil
			}},
		},
		Columns: []Column{
			{Title: "ID", Field: "id", Width: 5},
			{Title: "Company", Field: "companyName", Width: 20},
			{Title: "Month", Field: "month", Width: 8},
			{Title: "Orders", Field: "totalOrders", Width: 7},
			{Title: "Amount", Field: "amount", Width: 9},
			{Title: "Status", Field: "status", Width: 7},
		},
	},
	{
		Name:       "reports",
		Aliases:    []string{"report"},
		Title:      "Reports",
		Route:      routes.GetReports,
		ResultsKey: handlers.ReportResultsKey,
		Tag:        TagReport,
		Filters: []Filter{
			dateFilter("date", "Reported on"),
		},
		Columns: []Column{
			{Title: "ID", Field: "id", Width: 5},
			{Title: "Reporter", Field: "reporterName", Width: 16},
			{Title: "Subject", Field: "subject", Width: 28},
			{Title: "Date", Field: "createdAt", Width: 13},
		},
	},
}

// All returns every registered resource
func All() []*Resource {
	out := make([]*Resource, len(registry))
	copy(out, registry)
	return out
}

// Names returns the primary names of every resource, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, r := range registry {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a resource by name or alias, case-insensitively
func Lookup(name string) (*Resource, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, r := range registry {
		if r.Name == name {
			return r, nil
		}
		for _, a := range r.Aliases {
			if a == name {
				return r, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownResource, name, strings.Join(Names(), ", "))
}

// Filter returns the filter with the given key
func (r *Resource) Filter(key string) (Filter, bool) {
	for _, f := range r.Filters {
		if f.Key == key {
			return f, true
		}
	}
	return Filter{}, false
}

// CycleFilter returns the first filter that has a fixed set of choices
func (r *Resource) CycleFilter() (Filter, bool) {
	for _, f := range r.Filters {
		if len(f.Choices) > 0 {
			return f, true
		}
	}
	return Filter{}, false
}

// ParseFilters parses "key=value" arguments into filters validated against the resource
func (r *Resource) ParseFilters(args []string) (query.Filters, error) {
	filters := query.Filters{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q is not key=value", ErrInvalidFilter, arg)
		}
		f, known := r.Filter(key)
		if !known {
			return nil, fmt.Errorf("%w: %s does not support %q", ErrInvalidFilter, r.Name, key)
		}
		value = strings.TrimSpace(value)
		if err := f.Validate(value); err != nil {
			return nil, err
		}
		filters[key] = value
	}
	return filters, nil
}

// Options returns base with the resource's results key set
func (r *Resource) Options(base query.Options) query.Options {
	base.ResultsKey = r.ResultsKey
	base.SearchKey = query.DefaultSearchKey
	return base
}

// Nested reports whether the list lives under a parent row
func (r *Resource) Nested() bool {
	return r.Parent != ""
}

// In returns a copy of a nested resource bound to the parent row with the given id
func (r *Resource) In(parentID uint) (*Resource, error) {
	if !r.Nested() {
		return nil, fmt.Errorf("%s is not nested under another resource", r.Name)
	}
	if parentID == 0 {
		return nil, fmt.Errorf("%w: %s lists rows of one of %s", ErrParentRequired, r.Name, r.Parent)
	}
	bound := *r
	bound.ParentID = parentID
	bound.Title = fmt.Sprintf("%s #%d", r.Title, parentID)
	return &bound, nil
}

// Fetcher returns the resource's fetch function, cached by s under the resource tag when s is not nil
func (r *Resource) Fetcher(c client.Client, s *store.Store) query.FetchFunc {
	endpoint := r.Route
	fetch := client.Fetcher(c, r.Route)
	if r.Nested() {
		id := strconv.FormatUint(uint64(r.ParentID), 10)
		endpoint += "/" + id
		fetch = client.ScopedFetcher(c, r.Route, map[string]string{"id": id})
	}
	if s == nil {
		return fetch
	}
	return s.Query(endpoint, []string{r.Tag}, fetch)
}
