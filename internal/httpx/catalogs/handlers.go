// Package catalogs serves the public project type and material catalog.
package catalogs

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"furniquote/internal/catalog"
	"furniquote/internal/httpx/kit"
)

// ListTypesHandler returns every project type with its materials.
//
//	@Summary      List project types
//	@Description  Project types and their materials with rate per square foot
//	@Tags         catalog
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Failure      503  {object}  map[string]interface{}
//	@Router       /api/v1/catalog/types [get]
func ListTypesHandler(svc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		types, err := svc.Types(ctx)
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderCacheControl, "public, max-age=60")
		return kit.OK(c, types)
	}
}
