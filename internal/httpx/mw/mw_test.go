package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestJWTMiddlewareAndGuards(t *testing.T) {
	parse := func(tok string) (Identity, error) {
		switch tok {
		case "admin":
			return Identity{UserID: "a1", Roles: []string{"admin", "staff"}}, nil
		case "user":
			return Identity{UserID: "u1"}, nil
		case "blank":
			return Identity{}, nil
		}
		return Identity{}, fiber.ErrUnauthorized
	}
	app := fiber.New()
	app.Use(Authenticate(parse))
	app.Get("/me", RequireUser(), func(c *fiber.Ctx) error { return c.SendString(UserID(c)) })
	app.Get("/admin", RequireRoles("admin"), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })

	cases := []struct {
		path, token string
		status      int
	}{
		{"/me", "", http.StatusUnauthorized},
		{"/me", "garbage", http.StatusUnauthorized},
		{"/me", "blank", http.StatusUnauthorized},
		{"/me", "user", http.StatusOK},
		{"/admin", "user", http.StatusForbidden},
		{"/admin", "admin", http.StatusNoContent},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		if tc.token != "" {
			req.Header.Set("Authorization", "Bearer "+tc.token)
		}
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if res.StatusCode != tc.status {
			t.Fatalf("%s with %q: status=%d want %d", tc.path, tc.token, res.StatusCode, tc.status)
		}
	}
}

func TestRateLimitWithoutRedis(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimit(nil, time.Minute, 2))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	for i, want := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if res.StatusCode != want {
			t.Fatalf("request %d: status=%d want %d", i, res.StatusCode, want)
		}
		if want == http.StatusTooManyRequests && res.Header.Get(fiber.HeaderRetryAfter) != "60" {
			t.Fatalf("retry-after=%q", res.Header.Get(fiber.HeaderRetryAfter))
		}
	}
}

func TestRequestMetricsRendersErrors(t *testing.T) {
	app := fiber.New()
	app.Use(RequestMetrics())
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
