package httpx

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"furniquote/internal/httpx/kit"
)

// HealthHandler reports liveness.
//
//	@Summary		Health check
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"healthy"
//	@Router			/health [get]
func HealthHandler(c *fiber.Ctx) error {
	return kit.OK(c, fiber.Map{"status": "ok"})
}

// ReadyHandler checks the database. It answers 503 while ping fails.
//
//	@Summary		Readiness check
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		503	{object}	map[string]interface{}
//	@Router			/ready [get]
func ReadyHandler(ping func(context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ping == nil {
			return kit.OK(c, fiber.Map{"status": "ok"})
		}
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := ping(ctx); err != nil {
			return kit.NewAPIError(fiber.StatusServiceUnavailable, "E_NOT_READY", "database unavailable", err.Error())
		}
		return kit.OK(c, fiber.Map{"status": "ok"})
	}
}
