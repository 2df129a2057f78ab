// Package middleware provides the fiber middleware of the fixture server
package middleware

import (
	"time"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	log "github.com/lunchdesk/lunchdesk/internal/logger"
)

// RequestIDHeader carries the request identifier set by the client, or generated here
const RequestIDHeader = "X-Request-ID"

// Logger returns a middleware that logs HTTP requests
func Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDHeader, requestID)

		err := c.Next()

		fields := map[string]interface{}{
			"request_id": requestID,
			"status":     c.Response().StatusCode(),
			"latency":    time.Since(start).String(),
			"ip":         c.IP(),
			"method":     c.Method(),
			"path":       c.Path(),
			"handler":    c.Route().Name,
		}
		if q := string(c.Request().URI().QueryString()); q != "" {
			fields["query"] = q
		}
		if err != nil {
			fields["error"] = err.Error()
			log.WarnWithFields("Request failed", fields)
			return err
		}
		log.InfoWithFields("Request", fields)
		return nil
	}
}
