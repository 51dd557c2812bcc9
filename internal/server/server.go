// Package server runs the fiber app on a listener and stops it on signal.
package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"furniquote/internal/logx"
)

var serverLogger = logx.GetScope("server")

// Run serves app on addr until SIGINT/SIGTERM or ctx ends, then shuts down
// with the given grace period.
func Run(ctx context.Context, app *fiber.App, addr string, grace time.Duration) error {
	ln, err := GetListener(addr)
	if err != nil {
		return err
	}
	errCh := make(chan error, 1)
	go func() { errCh <- app.Listener(ln) }()
	serverLogger.Info("server started", zap.String("addr", ln.Addr().String()))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	serverLogger.Info("shutting down", zap.Duration("grace", grace))
	return app.ShutdownWithTimeout(grace)
}
