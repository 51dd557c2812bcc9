package mw

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"furniquote/internal/metrics"
)

// RequestMetrics records request latency by method, route pattern and status.
func RequestMetrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			// render the error now so the recorded status is the final one
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		route := c.Route().Path
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(c.Method(), route, strconv.Itoa(status), time.Since(start))
		return nil
	}
}
