// Package showcase serves the read-only furniture collections.
package showcase

import (
	"github.com/gofiber/fiber/v2"

	"furniquote/internal/collections"
	"furniquote/internal/httpx/kit"
)

// ListCollectionsHandler lists showcase collections.
//
//	@Summary      List collections
//	@Tags         collections
//	@Produce      json
//	@Param        popular  query  bool  false  "only popular collections"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/collections [get]
func ListCollectionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := collections.List(c.QueryBool("popular", false))
		if err != nil {
			return kit.InternalError("load collections failed", err.Error())
		}
		return kit.OK(c, items)
	}
}

// GetCollectionHandler returns one collection by slug.
//
//	@Summary      Get collection
//	@Tags         collections
//	@Produce      json
//	@Param        slug  path  string  true  "collection slug"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/collections/{slug} [get]
func GetCollectionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		col, ok, err := collections.BySlug(c.Params("slug"))
		if err != nil {
			return kit.InternalError("load collections failed", err.Error())
		}
		if !ok {
			return kit.NotFound("collection not found")
		}
		return kit.OK(c, col)
	}
}
