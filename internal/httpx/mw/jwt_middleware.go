// Package mw holds the fiber middleware shared by every route group:
// bearer authentication, role guards, rate limiting and request metrics.
package mw

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

const identityKey = "identity"

// Identity is the verified caller of a request.
type Identity struct {
	UserID  string
	Roles   []string
	TokenID string
}

// TokenParser verifies a bearer token.
type TokenParser func(token string) (Identity, error)

// Authenticate attaches the Identity of a valid bearer token. Requests without
// a token, or with one that fails verification, continue anonymously and are
// turned away by the guards below.
func Authenticate(parse TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme, token, ok := strings.Cut(c.Get(fiber.HeaderAuthorization), " ")
		if !ok || !strings.EqualFold(scheme, "bearer") {
			return c.Next()
		}
		if id, err := parse(strings.TrimSpace(token)); err == nil && id.UserID != "" {
			SetIdentity(c, id)
		}
		return c.Next()
	}
}

func SetIdentity(c *fiber.Ctx, id Identity) { c.Locals(identityKey, &id) }

// IdentityOf returns nil for anonymous requests.
func IdentityOf(c *fiber.Ctx) *Identity {
	id, _ := c.Locals(identityKey).(*Identity)
	return id
}

// UserID returns the caller's user id, "" when anonymous. Projects are owned by it.
func UserID(c *fiber.Ctx) string {
	if id := IdentityOf(c); id != nil {
		return id.UserID
	}
	return ""
}

func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserID(c) == "" {
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}

// RequireRoles lets through callers holding at least one of roles.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := IdentityOf(c)
		if id == nil {
			return fiber.ErrUnauthorized
		}
		if len(roles) > 0 && !lo.Some(id.Roles, roles) {
			return fiber.ErrForbidden
		}
		return c.Next()
	}
}
