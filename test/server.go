package test

import (
	"net/http/httptest"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/lunchdesk/lunchdesk/internal/app"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/client"
	"github.com/lunchdesk/lunchdesk/pkg/store"
)

// testClientTimeout is the timeout for test API client requests
const testClientTimeout = 5 * time.Second

// SetupServer configures the test suite with a real API server
func SetupServer(suite *Suite) {
	suite.App = app.New(suite.DB, app.Options{Token: suite.Token})

	// Create test server using adaptor to convert Fiber app to http.Handler
	suite.Server = httptest.NewServer(adaptor.FiberApp(suite.App))

	// Create API client with test configuration
	c, err := client.NewClient(&client.Options{
		BaseURL:   suite.Server.URL,
		Timeout:   testClientTimeout,
		AuthToken: suite.Token,
	})
	suite.Require().NoError(err, "Failed to create API client")
	suite.APIClient = c
	suite.Store = store.New(store.Options{})

	// Update cleanup to close server
	originalCleanup := suite.cleanup
	suite.cleanup = func() {
		if suite.Server != nil {
			suite.Server.Close()
		}
		if originalCleanup != nil {
			originalCleanup()
		}
	}
}
