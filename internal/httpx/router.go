// Package httpx wires the HTTP API: middleware, public routes, user routes
// and admin routes.
package httpx

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"furniquote/internal/catalog"
	"furniquote/internal/config"
	"furniquote/internal/httpx/admin"
	"furniquote/internal/httpx/auth"
	"furniquote/internal/httpx/catalogs"
	"furniquote/internal/httpx/kit"
	"furniquote/internal/httpx/mw"
	"furniquote/internal/httpx/projects"
	"furniquote/internal/httpx/showcase"
	"furniquote/internal/quoting"
	"furniquote/internal/realtime"
	"furniquote/internal/redisx"
)

type Providers struct {
	Config  func() *config.Config
	Quoting *quoting.Service
	Catalog *catalog.Service
	Hub     *realtime.Hub
	RDB     *redisx.Client // nil falls back to in-memory rate limiting
	Ping    func(context.Context) error

	// Heartbeat is the SSE keep-alive interval.
	Heartbeat time.Duration
}

// NewApp builds a fiber app with the unified error handler. Request values are
// immutable: params and form fields end up in realtime messages that outlive
// the handler.
func NewApp(bodyLimit int) *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: kit.ErrorHandler(),
		BodyLimit:    bodyLimit,
		AppName:      "furniquote",
		Immutable:    true,
	})
}

func Register(app *fiber.App, p *Providers) {
	cfg := p.Config()

	app.Get("/health", HealthHandler)
	app.Get("/ready", ReadyHandler(p.Ping))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := app.Group("/api/v1",
		mw.Authenticate(auth.Parser(p.Config)),
		mw.RateLimit(p.RDB, time.Duration(cfg.RateLimit.WindowSec)*time.Second, cfg.RateLimit.Limit),
	)

	api.Get("/collections", showcase.ListCollectionsHandler())
	api.Get("/collections/:slug", showcase.GetCollectionHandler())
	api.Get("/catalog/types", catalogs.ListTypesHandler(p.Catalog))
	if cfg.AppEnv == "dev" {
		api.Post("/auth/dev-token", auth.DevTokenHandler(p.Config))
	}

	admin.Mount(api.Group("/admin", mw.RequireRoles("admin")), p.Catalog)
	projects.Mount(api.Group("/projects", mw.RequireUser()), p.Quoting, p.Hub, p.Heartbeat)
}
