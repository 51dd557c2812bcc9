package httpx

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"furniquote/internal/httpx/kit"
	"furniquote/internal/httpx/mw"
	"furniquote/internal/logx"
)

var httpxLogger = logx.GetScope("httpx")

// health checks and scrapes are left out of the access log.
var quietPaths = map[string]bool{"/health": true, "/ready": true, "/metrics": true}

// RegisterCommonMiddlewares installs the middleware shared by every route.
func RegisterCommonMiddlewares(app *fiber.App, corsOrigins string) {
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  corsOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders: "Content-Disposition, X-Request-ID, Retry-After",
	}))
	app.Use(accessLog)
	// innermost so errors are rendered before the access log reads the status
	app.Use(mw.RequestMetrics())
}

func accessLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	if quietPaths[c.Path()] {
		return err
	}
	status := c.Response().StatusCode()
	fields := []zap.Field{
		zap.String("method", c.Method()),
		zap.String("path", c.OriginalURL()),
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)),
		zap.String("ip", c.IP()),
		zap.String("request_id", kit.RequestID(c)),
	}
	if uid := mw.UserID(c); uid != "" {
		fields = append(fields, zap.String("user_id", uid))
	}
	// SSE connections stay open; their latency is the session length
	if strings.HasSuffix(c.Path(), "/stream") {
		fields = append(fields, zap.Bool("stream", true))
	}
	if status >= fiber.StatusInternalServerError {
		httpxLogger.Warn("access", fields...)
		return err
	}
	httpxLogger.Info("access", fields...)
	return err
}
