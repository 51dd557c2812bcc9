package testutil

import (
	"github.com/gofiber/fiber/v2"

	"furniquote/internal/httpx/kit"
	"furniquote/internal/httpx/mw"
)

// NewApp creates a Fiber app with the standard error handler and applies
// the given mount functions to register selective routes. Useful for tests.
func NewApp(mounts ...func(*fiber.App)) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	for _, m := range mounts {
		if m != nil {
			m(app)
		}
	}
	return app
}

// AsUser attaches an authenticated user context to every request.
func AsUser(userID string, roles ...string) func(*fiber.App) {
	return func(app *fiber.App) {
		app.Use(func(c *fiber.Ctx) error {
			mw.SetIdentity(c, mw.Identity{UserID: userID, Roles: roles})
			return c.Next()
		})
	}
}
