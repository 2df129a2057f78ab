package test

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lunchdesk/lunchdesk/internal/db"
	"github.com/lunchdesk/lunchdesk/internal/db/repos"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/client"
	"github.com/lunchdesk/lunchdesk/pkg/store"
)

// Suite encapsulates all components needed for integration testing.
// It provides a complete test setup with:
//   - File-based sqlite database
//   - Real API server
//   - Real API client and query store
type Suite struct {
	t *testing.T // The testing.T instance for this suite

	// Server components
	App    *fiber.App
	Server *httptest.Server
	Token  string

	// Client components
	APIClient client.Client
	Store     *store.Store

	// Database components
	DB           *gorm.DB
	CompanyRepo  *repos.CompanyRepository
	EmployerRepo *repos.EmployerRepository
	OrderRepo    *repos.OrderRepository
	MenuRepo     *repos.MenuRepository
	PaymentRepo  *repos.PaymentRepository
	ReportRepo   *repos.ReportRepository
	LegalRepo    *repos.LegalRepository

	seed bool

	// Context management
	ctx        context.Context
	cancelFunc context.CancelFunc

	// Cleanup function
	cleanup     func()
	cleanupOnce sync.Once
}

// NewSuite creates a new test suite with the given options.
// The suite must be cleaned up after use by calling Cleanup.
func NewSuite(t *testing.T, opts ...Option) *Suite {
	t.Helper()

	// Create suite with default timeout
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTestTimeout)

	suite := &Suite{
		t:          t,
		ctx:        ctx,
		cancelFunc: cancel,
	}

	// Initialize cleanup function
	suite.cleanup = func() {
		if suite.cancelFunc != nil {
			suite.cancelFunc()
		}
	}

	for _, opt := range opts {
		opt(suite)
	}

	// Setup database by default
	SetupTestDB(suite, nil)

	if suite.seed {
		suite.Require().NoError(db.Seed(suite.ctx, suite.DB), "Failed to seed database")
	}

	// Setup server by default
	SetupServer(suite)

	return suite
}

// T returns the testing.T instance for this suite
func (s *Suite) T() *testing.T {
	return s.t
}

// Cleanup tears down the test suite, releasing all resources.
// This should be deferred immediately after creating the suite.
func (s *Suite) Cleanup() {
	s.cleanupOnce.Do(func() {
		if s.cleanup != nil {
			s.cleanup()
		}
	})
}

// Context returns the suite's context, which is automatically
// canceled when the suite is cleaned up.
func (s *Suite) Context() context.Context {
	return s.ctx
}

// Require returns a require.Assertions instance for this suite.
// This is a convenience method to avoid passing t around.
func (s *Suite) Require() *require.Assertions {
	return require.New(s.t)
}
