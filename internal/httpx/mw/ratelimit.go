package mw

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"

	"furniquote/internal/logx"
	"furniquote/internal/redisx"
)

var rlLogger = logx.GetScope("ratelimit")

// rateKey buckets signed-in callers by user and everyone else by address.
func rateKey(c *fiber.Ctx) string {
	if uid := UserID(c); uid != "" {
		return "user:" + uid
	}
	return "ip:" + c.IP()
}

func tooMany(c *fiber.Ctx, retry time.Duration) error {
	c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(retry.Seconds()))))
	return fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded")
}

// RateLimit allows limit requests per window for each caller. With Redis the
// window is shared by every instance; without it fiber's in-memory limiter
// counts per process. A Redis failure lets the request through.
func RateLimit(rdb *redisx.Client, window time.Duration, limit int) fiber.Handler {
	if rdb == nil {
		return limiter.New(limiter.Config{
			Max:          limit,
			Expiration:   window,
			KeyGenerator: rateKey,
			LimitReached: func(c *fiber.Ctx) error { return tooMany(c, window) },
		})
	}
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 200*time.Millisecond)
		defer cancel()
		n, left, err := redisx.CountWindow(ctx, rdb, "rl:"+rateKey(c), window)
		if err != nil {
			rlLogger.Debug("rate limit skipped", zap.Error(err))
			return c.Next()
		}
		c.Set("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(max(int64(limit)-n, 0), 10))
		if n > int64(limit) {
			return tooMany(c, left)
		}
		return c.Next()
	}
}
