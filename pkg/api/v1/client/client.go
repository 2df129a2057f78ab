// Package client provides the API client for the lunchdesk dashboard API
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lunchdesk/lunchdesk/pkg/api/v1/handlers"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/routes"
	"github.com/lunchdesk/lunchdesk/pkg/models"
	"github.com/lunchdesk/lunchdesk/pkg/query"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client is the interface for API client
type Client interface {
	// Health Check
	HealthCheck(ctx context.Context) (map[string]string, error)

	// List fetches one page of a list route. It is the source of query.FetchFunc.
	List(ctx context.Context, routeName string, params query.Params) (query.Envelope, error)
	// ListScoped fetches one page of a list route nested under a parent
	ListScoped(ctx context.Context, routeName string, pathParams map[string]string, params query.Params) (query.Envelope, error)

	// Company Endpoints
	GetCompany(ctx context.Context, id uint) (models.CompanyDetails, error)
	CreateCompany(ctx context.Context, params handlers.CreateCompanyParams) (models.Company, error)
	UpdateCompany(ctx context.Context, id uint, params handlers.UpdateCompanyParams) (models.Company, error)
	DeleteCompany(ctx context.Context, id uint) error

	// Employer Endpoints
	BlockEmployer(ctx context.Context, id uint, blocked bool) (models.Employer, error)
	ActivateEmployer(ctx context.Context, id uint) (models.Employer, error)

	// Order Endpoints
	UpdateOrderStatus(ctx context.Context, id uint, status string) (models.Order, error)

	// Menu Endpoints
	CreateMenu(ctx context.Context, params handlers.CreateMenuParams) (models.Menu, error)
	UpdateMenu(ctx context.Context, id uint, params handlers.UpdateMenuParams) (models.Menu, error)
	DeleteMenu(ctx context.Context, id uint) error

	// Payment Endpoints
	UpdatePayment(ctx context.Context, id uint, status string) (models.Payment, error)

	// Report Endpoints
	DeleteReport(ctx context.Context, id uint) error

	// Dashboard Endpoints
	GetStats(ctx context.Context) (models.Stats, error)
	GetUserOverview(ctx context.Context, year int) (models.UserOverview, error)
	GetEarningOverview(ctx context.Context, year int) (models.EarningOverview, error)
	GetLegal(ctx context.Context, kind string) (models.LegalDocument, error)
	UpdateLegal(ctx context.Context, kind, content string) (models.LegalDocument, error)
}

var _ Client = &APIClient{}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration

	// AuthToken is sent as a bearer token when not empty
	AuthToken string
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL   string
	timeout   time.Duration
	authToken string
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	// Validate the base URL
	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", opts.BaseURL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &APIClient{
		baseURL:   opts.BaseURL,
		timeout:   timeout,
		authToken: opts.AuthToken,
	}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	case http.MethodDelete:
		agent = fiber.Delete(fullURL)
	case http.MethodPatch:
		agent = fiber.Patch(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	// Set common headers
	agent.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	agent.Set("X-Request-ID", uuid.NewString())
	if c.authToken != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+c.authToken)
	}

	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// doRequest sends the HTTP request and processes the response
func (c *APIClient) doRequest(agent *fiber.Agent, v interface{}) error {
	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request: %w", errs[0])
	}

	if statusCode < 200 || statusCode >= 300 {
		return &fiber.Error{
			Code:    statusCode,
			Message: errorMessage(body),
		}
	}

	if v != nil && len(body) > 0 {
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}

	return nil
}

// errorMessage extracts the message of an error envelope, falling back to the raw body
func errorMessage(body []byte) string {
	var resp handlers.Response
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" {
		if resp.Error != "" {
			return resp.Message + ": " + resp.Error
		}
		return resp.Message
	}
	return string(body)
}

// executeRequest creates an agent, sends the request, and processes the response.
// It returns early with ctx.Err() when ctx is cancelled before the response arrives.
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, response interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- c.doRequest(agent, response)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// dataResponse decodes the data field of a success envelope
type dataResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

func executeData[T any](ctx context.Context, c *APIClient, method, endpoint string, body interface{}) (T, error) {
	var response dataResponse[T]
	if err := c.executeRequest(ctx, method, endpoint, body, &response); err != nil {
		var zero T
		return zero, err
	}
	return response.Data, nil
}

// HealthCheck checks the health of the API
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	var response map[string]string
	if err := c.executeRequest(ctx, http.MethodGet, routes.HealthCheckURL(), nil, &response); err != nil {
		return map[string]string{}, err
	}
	return response, nil
}

// List fetches one page of the list route with the given name
func (c *APIClient) List(ctx context.Context, routeName string, params query.Params) (query.Envelope, error) {
	return c.ListScoped(ctx, routeName, nil, params)
}

// ListScoped fetches one page of a list route whose path carries parameters
func (c *APIClient) ListScoped(ctx context.Context, routeName string, pathParams map[string]string, params query.Params) (query.Envelope, error) {
	endpoint := routes.ScopedListURL(routeName, pathParams, params.Values())
	if endpoint == "" {
		return query.Envelope{}, fmt.Errorf("unknown list route: %s", routeName)
	}
	if strings.Contains(endpoint, "/:") {
		return query.Envelope{}, fmt.Errorf("missing path parameter for list route %s", routeName)
	}

	var env query.Envelope
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &env); err != nil {
		return query.Envelope{}, err
	}
	return env, nil
}

// Fetcher adapts List to a query.FetchFunc bound to one route
func Fetcher(c Client, routeName string) query.FetchFunc {
	return func(ctx context.Context, p query.Params) (query.Envelope, error) {
		return c.List(ctx, routeName, p)
	}
}

// ScopedFetcher adapts ListScoped to a query.FetchFunc bound to one route and parent
func ScopedFetcher(c Client, routeName string, pathParams map[string]string) query.FetchFunc {
	return func(ctx context.Context, p query.Params) (query.Envelope, error) {
		return c.ListScoped(ctx, routeName, pathParams, p)
	}
}

// GetCompany returns a company with its order and employer counts
func (c *APIClient) GetCompany(ctx context.Context, id uint) (models.CompanyDetails, error) {
	return executeData[models.CompanyDetails](ctx, c, http.MethodGet, routes.GetCompanyURL(id), nil)
}

// CreateCompany creates a company
func (c *APIClient) CreateCompany(ctx context.Context, params handlers.CreateCompanyParams) (models.Company, error) {
	return executeData[models.Company](ctx, c, http.MethodPost, routes.CreateCompanyURL(), params)
}

// UpdateCompany updates the provided fields of a company
func (c *APIClient) UpdateCompany(ctx context.Context, id uint, params handlers.UpdateCompanyParams) (models.Company, error) {
	return executeData[models.Company](ctx, c, http.MethodPatch, routes.UpdateCompanyURL(id), params)
}

// DeleteCompany deletes a company
func (c *APIClient) DeleteCompany(ctx context.Context, id uint) error {
	return c.executeRequest(ctx, http.MethodDelete, routes.DeleteCompanyURL(id), nil, nil)
}

// BlockEmployer blocks or unblocks an employer
func (c *APIClient) BlockEmployer(ctx context.Context, id uint, blocked bool) (models.Employer, error) {
	body := handlers.BlockEmployerParams{Blocked: blocked}
	return executeData[models.Employer](ctx, c, http.MethodPatch, routes.BlockEmployerURL(id), body)
}

// ActivateEmployer approves a pending employer
func (c *APIClient) ActivateEmployer(ctx context.Context, id uint) (models.Employer, error) {
	return executeData[models.Employer](ctx, c, http.MethodPatch, routes.ActivateEmployerURL(id), nil)
}

// UpdateOrderStatus changes the status of an order
func (c *APIClient) UpdateOrderStatus(ctx context.Context, id uint, status string) (models.Order, error) {
	body := handlers.OrderStatusParams{Status: status}
	return executeData[models.Order](ctx, c, http.MethodPatch, routes.UpdateOrderStatusURL(id), body)
}

// CreateMenu creates a menu
func (c *APIClient) CreateMenu(ctx context.Context, params handlers.CreateMenuParams) (models.Menu, error) {
	return executeData[models.Menu](ctx, c, http.MethodPost, routes.CreateMenuURL(), params)
}

// UpdateMenu updates the provided fields of a menu
func (c *APIClient) UpdateMenu(ctx context.Context, id uint, params handlers.UpdateMenuParams) (models.Menu, error) {
	return executeData[models.Menu](ctx, c, http.MethodPatch, routes.UpdateMenuURL(id), params)
}

// DeleteMenu deletes a menu
func (c *APIClient) DeleteMenu(ctx context.Context, id uint) error {
	return c.executeRequest(ctx, http.MethodDelete, routes.DeleteMenuURL(id), nil, nil)
}

// UpdatePayment marks a payment paid or unpaid
func (c *APIClient) UpdatePayment(ctx context.Context, id uint, status string) (models.Payment, error) {
	body := handlers.UpdatePaymentParams{Status: status}
	return executeData[models.Payment](ctx, c, http.MethodPatch, routes.UpdatePaymentURL(id), body)
}

// DeleteReport deletes a report
func (c *APIClient) DeleteReport(ctx context.Context, id uint) error {
	return c.executeRequest(ctx, http.MethodDelete, routes.DeleteReportURL(id), nil, nil)
}

// GetStats returns the dashboard counters
func (c *APIClient) GetStats(ctx context.Context) (models.Stats, error) {
	return executeData[models.Stats](ctx, c, http.MethodGet, routes.StatsURL(), nil)
}

// GetUserOverview returns the monthly sign-ups of year, the current year when year is 0
func (c *APIClient) GetUserOverview(ctx context.Context, year int) (models.UserOverview, error) {
	return executeData[models.UserOverview](ctx, c, http.MethodGet, routes.UserOverviewURL(year), nil)
}

// GetEarningOverview returns the monthly income of year, the current year when year is 0
func (c *APIClient) GetEarningOverview(ctx context.Context, year int) (models.EarningOverview, error) {
	return executeData[models.EarningOverview](ctx, c, http.MethodGet, routes.EarningOverviewURL(year), nil)
}

// GetLegal returns a legal document
func (c *APIClient) GetLegal(ctx context.Context, kind string) (models.LegalDocument, error) {
	return executeData[models.LegalDocument](ctx, c, http.MethodGet, routes.LegalURL(kind), nil)
}

// UpdateLegal replaces the content of a legal document
func (c *APIClient) UpdateLegal(ctx context.Context, kind, content string) (models.LegalDocument, error) {
	body := handlers.UpdateLegalParams{Content: content}
	return executeData[models.LegalDocument](ctx, c, http.MethodPut, routes.LegalURL(kind), body)
}
