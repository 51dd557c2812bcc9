// Package admin holds the catalog maintenance routes. Every route requires
// the admin role.
package admin

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"furniquote/internal/catalog"
	"furniquote/internal/httpx/kit"
)

// CreateTypeHandler adds a project type.
//
//	@Summary      Create project type
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body      catalog.TypeInput  true  "type"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Router       /api/v1/admin/types [post]
func CreateTypeHandler(svc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in catalog.TypeInput
		if err := c.BodyParser(&in); err != nil {
			return kit.BadRequest("invalid body", err.Error())
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		t, err := svc.CreateType(ctx, in)
		if err != nil {
			return err
		}
		return kit.Created(c, t)
	}
}

// UpdateTypeHandler renames a project type or changes its icon and description.
//
//	@Summary      Update project type
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path      string             true  "type id"
//	@Param        body  body      catalog.TypeInput  true  "type"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/admin/types/{id} [put]
func UpdateTypeHandler(svc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in catalog.TypeInput
		if err := c.BodyParser(&in); err != nil {
			return kit.BadRequest("invalid body", err.Error())
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		t, err := svc.UpdateType(ctx, c.Params("id"), in)
		if err != nil {
			return err
		}
		return kit.OK(c, t)
	}
}

// DeleteTypeHandler removes a type and its materials.
//
//	@Summary      Delete project type
//	@Tags         admin
//	@Security     BearerAuth
//	@Param        id  path  string  true  "type id"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/admin/types/{id} [delete]
func DeleteTypeHandler(svc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		if err := svc.DeleteType(ctx, c.Params("id")); err != nil {
			return err
		}
		return kit.OK(c, fiber.Map{"status": "deleted"})
	}
}

// CreateMaterialHandler adds a material under a type.
//
//	@Summary      Create material
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path      string                 true  "type id"
//	@Param        body  body      catalog.MaterialInput  true  "material"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/admin/types/{id}/materials [post]
func CreateMaterialHandler(svc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in catalog.MaterialInput
		if err := c.BodyParser(&in); err != nil {
			return kit.BadRequest("invalid body", err.Error())
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		m, err := svc.CreateMaterial(ctx, c.Params("id"), in)
		if err != nil {
			return err
		}
		return kit.Created(c, m)
	}
}

// UpdateMaterialHandler changes a material's name and rate. Existing project
// items keep their stored amounts.
//
//	@Summary      Update material
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path      string                 true  "material id"
//	@Param        body  body      catalog.MaterialInput  true  "material"
//	@Success      200   {object}  map[string]interface{}
//	@Router       /api/v1/admin/materials/{id} [put]
func UpdateMaterialHandler(svc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in catalog.MaterialInput
		if err := c.BodyParser(&in); err != nil {
			return kit.BadRequest("invalid body", err.Error())
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		m, err := svc.UpdateMaterial(ctx, c.Params("id"), in)
		if err != nil {
			return err
		}
		return kit.OK(c, m)
	}
}

// DeleteMaterialHandler removes a material. Items that reference it fail to
// export until they are edited.
//
//	@Summary      Delete material
//	@Tags         admin
//	@Security     BearerAuth
//	@Param        id  path  string  true  "material id"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/admin/materials/{id} [delete]
func DeleteMaterialHandler(svc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		if err := svc.DeleteMaterial(ctx, c.Params("id")); err != nil {
			return err
		}
		return kit.OK(c, fiber.Map{"status": "deleted"})
	}
}

// Mount registers the admin routes on r. r must already enforce the role.
func Mount(r fiber.Router, svc *catalog.Service) {
	r.Post("/types", CreateTypeHandler(svc))
	r.Put("/types/:id", UpdateTypeHandler(svc))
	r.Delete("/types/:id", DeleteTypeHandler(svc))
	r.Post("/types/:id/materials", CreateMaterialHandler(svc))
	r.Put("/materials/:id", UpdateMaterialHandler(svc))
	r.Delete("/materials/:id", DeleteMaterialHandler(svc))
}
