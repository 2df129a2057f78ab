// Package app assembles the fixture API server
package app

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/lunchdesk/lunchdesk/internal/api/v1/middleware"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/handlers"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/routes"
)

// Options configures the fixture server
type Options struct {
	// Token, when set, is required as a bearer token on every route but health
	Token string
}

// New creates the fiber app serving the dashboard API over db
func New(db *gorm.DB, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.BearerAuth(opts.Token, routes.APIv1Prefix+"/health"))

	routes.RegisterRoutes(app, routes.NewHandlers(handlers.NewAPIHandler(db)))

	return app
}

// errorHandler renders errors that escape the handlers, such as unknown routes, as envelopes
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(handlers.Response{
		Success: false,
		Message: err.Error(),
	})
}
