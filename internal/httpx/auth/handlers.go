// Package auth verifies bearer tokens and, outside production, mints them for
// local testing.
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"furniquote/internal/config"
	"furniquote/internal/httpx/kit"
)

// DevTokenRequest asks for a token for an arbitrary user id.
// swagger:model DevTokenRequest
type DevTokenRequest struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles,omitempty"`
}

// DevTokenHandler issues an access token without credentials. Only mounted
// when APP_ENV is dev.
//
//	@Summary      Issue a development token
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body  auth.DevTokenRequest  true  "subject"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/auth/dev-token [post]
func DevTokenHandler(cfg func() *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req DevTokenRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.UserID) == "" {
			return kit.BadRequest("user_id required", nil)
		}
		roles := lo.Uniq(lo.Filter(req.Roles, func(r string, _ int) bool { return r != "" }))
		tok, jti, err := SignAccess(cfg(), strings.TrimSpace(req.UserID), roles)
		if err != nil {
			return kit.InternalError("sign token failed", err.Error())
		}
		return kit.Created(c, fiber.Map{"access_token": tok, "token_type": "Bearer", "jti": jti})
	}
}
