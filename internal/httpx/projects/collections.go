package projects

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"furniquote/internal/httpx/kit"
	"furniquote/internal/quote"
	"furniquote/internal/quoting"
)

// entityResult is returned by add and update routes: the touched entity plus
// the refreshed project so clients can redraw totals without a second call.
type entityResult[T any] struct {
	Entity  T              `json:"entity"`
	Project *quote.Project `json:"project"`
}

type addFn[D, E any] func(ctx context.Context, ownerID, id string, draft D) (E, *quote.Project, error)
type updateFn[P, E any] func(ctx context.Context, ownerID, id, entityID string, patch P) (E, *quote.Project, error)
type removeFn func(ctx context.Context, ownerID, id, entityID string) (*quote.Project, error)

func addHandler[D, E any](add addFn[D, E]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := owner(c)
		if err != nil {
			return err
		}
		draft, err := parse[D](c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), writeTimeout)
		defer cancel()
		e, p, err := add(ctx, uid, c.Params("id"), draft)
		if err != nil {
			return err
		}
		return kit.Created(c, entityResult[E]{Entity: e, Project: p})
	}
}

func updateHandler[P, E any](update updateFn[P, E]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := owner(c)
		if err != nil {
			return err
		}
		patch, err := parse[P](c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), writeTimeout)
		defer cancel()
		e, p, err := update(ctx, uid, c.Params("id"), c.Params("entityId"), patch)
		if err != nil {
			return err
		}
		return kit.OK(c, entityResult[E]{Entity: e, Project: p})
	}
}

// removeHandler succeeds when the entity is already gone. With confirm set the
// caller must pass confirm=true, as for project deletes.
func removeHandler(remove removeFn, confirm bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := owner(c)
		if err != nil {
			return err
		}
		if confirm && !c.QueryBool("confirm", false) {
			return kit.ConfirmationRequired("this delete cannot be undone; repeat with confirm=true")
		}
		ctx, cancel := context.WithTimeout(c.Context(), writeTimeout)
		defer cancel()
		p, err := remove(ctx, uid, c.Params("id"), c.Params("entityId"))
		if err != nil {
			return err
		}
		return kit.OK(c, p)
	}
}

// AddItemHandler prices and appends a line item.
//
//	@Summary      Add item
//	@Tags         items
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string          true  "project id"
//	@Param        body  body  quote.ItemDraft  true  "item"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}  "unknown material"
//	@Router       /api/v1/projects/{id}/items [post]
func AddItemHandler(svc *quoting.Service) fiber.Handler {
	return addHandler(svc.AddItem)
}

// UpdateItemHandler merges a patch into an item and reprices it.
//
//	@Summary      Update item
//	@Tags         items
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id        path  string          true  "project id"
//	@Param        entityId  path  string          true  "item id"
//	@Param        body      body  quote.ItemPatch  true  "fields to change"
//	@Success      200       {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id}/items/{entityId} [put]
func UpdateItemHandler(svc *quoting.Service) fiber.Handler {
	return updateHandler(svc.UpdateItem)
}

// @Summary      Remove item
// @Tags         items
// @Security     BearerAuth
// @Param        confirm  query  bool  true  "must be true"
// @Router       /api/v1/projects/{id}/items/{entityId} [delete]
func RemoveItemHandler(svc *quoting.Service) fiber.Handler {
	return removeHandler(svc.RemoveItem, true)
}

// @Summary      Add extra cost
// @Description  Signed adjustment; negative amounts are discounts
// @Tags         extra-costs
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  quote.ExtraCostDraft  true  "extra cost"
// @Router       /api/v1/projects/{id}/extra-costs [post]
func AddExtraCostHandler(svc *quoting.Service) fiber.Handler {
	return addHandler(svc.AddExtraCost)
}

// @Summary      Update extra cost
// @Tags         extra-costs
// @Security     BearerAuth
// @Router       /api/v1/projects/{id}/extra-costs/{entityId} [put]
func UpdateExtraCostHandler(svc *quoting.Service) fiber.Handler {
	return updateHandler(svc.UpdateExtraCost)
}

// @Summary      Remove extra cost
// @Tags         extra-costs
// @Security     BearerAuth
// @Router       /api/v1/projects/{id}/extra-costs/{entityId} [delete]
func RemoveExtraCostHandler(svc *quoting.Service) fiber.Handler {
	return removeHandler(svc.RemoveExtraCost, false)
}

// @Summary      Add milestone
// @Tags         milestones
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  quote.MilestoneDraft  true  "milestone"
// @Router       /api/v1/projects/{id}/milestones [post]
func AddMilestoneHandler(svc *quoting.Service) fiber.Handler {
	return addHandler(svc.AddMilestone)
}

// UpdateMilestoneHandler changes a milestone. Moving to completed stamps the
// completion date when none is set.
//
//	@Summary      Update milestone
//	@Tags         milestones
//	@Security     BearerAuth
//	@Param        body  body  quote.MilestonePatch  true  "fields to change"
//	@Router       /api/v1/projects/{id}/milestones/{entityId} [put]
func UpdateMilestoneHandler(svc *quoting.Service) fiber.Handler {
	return updateHandler(svc.UpdateMilestone)
}

// @Summary      Remove milestone
// @Tags         milestones
// @Security     BearerAuth
// @Param        confirm  query  bool  true  "must be true"
// @Router       /api/v1/projects/{id}/milestones/{entityId} [delete]
func RemoveMilestoneHandler(svc *quoting.Service) fiber.Handler {
	return removeHandler(svc.RemoveMilestone, true)
}
