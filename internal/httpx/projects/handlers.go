// Package projects provides HTTP handlers for furniture projects and their
// items, extra costs, milestones and photos.
package projects

import (
	"bufio"
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"furniquote/internal/httpx/kit"
	"furniquote/internal/httpx/mw"
	"furniquote/internal/quote"
	"furniquote/internal/quoting"
	"furniquote/internal/realtime"
)

const (
	readTimeout   = 3 * time.Second
	writeTimeout  = 5 * time.Second
	exportTimeout = 8 * time.Second
)

func owner(c *fiber.Ctx) (string, error) {
	uid := mw.UserID(c)
	if uid == "" {
		return "", fiber.ErrUnauthorized
	}
	return uid, nil
}

func parse[T any](c *fiber.Ctx) (T, error) {
	var v T
	if err := c.BodyParser(&v); err != nil {
		return v, kit.BadRequest("invalid body", err.Error())
	}
	return v, nil
}

// ListProjectsHandler lists projects owned by the current user.
//
//	@Summary      List my projects
//	@Description  Returns projects owned by the current user, most recently updated first
//	@Tags         projects
//	@Produce      json
//	@Security     BearerAuth
//	@Param        limit       query   int     false  "page size"      default(20)
//	@Param        offset      query   int     false  "offset"         default(0)
//	@Success      200  {object}  map[string]interface{}
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /api/v1/projects [get]
func ListProjectsHandler(svc *quoting.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := owner(c)
		if err != nil {
			return err
		}
		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), readTimeout)
		defer cancel()
		items, total, err := svc.List(ctx, uid, pg.Limit, pg.Offset)
		if err != nil {
			return err
		}
		return kit.List(c, items, kit.OffsetMeta(pg, len(items), total))
	}
}

// CreateProjectHandler creates a new project owned by the current user.
//
//	@Summary      Create project
//	@Tags         projects
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  quote.ProjectDraft  true  "project payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}  "unknown project type"
//	@Router       /api/v1/projects [post]
func CreateProjectHandler(svc *quoting.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := owner(c)
		if err != nil {
			return err
		}
		draft, err := parse[quote.ProjectDraft](c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), writeTimeout)
		defer cancel()
		p, err := svc.Create(ctx, uid, draft)
		if err != nil {
			return err
		}
		return kit.Created(c, p)
	}
}

// GetProjectHandler returns one project with all its collections.
//
//	@Summary      Get project
//	@Tags         projects
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "project id"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      403  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id} [get]
func GetProjectHandler(svc *quoting.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := owner(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), readTimeout)
		defer cancel()
		p, err := svc.Get(ctx, uid, c.Params("id"))
		if err != nil {
			return err
		}
		return kit.OK(c, p)
	}
}

// UpdateProjectHandler patches name, type and customer fields. An empty
// string clears an optional customer field.
//
//	@Summary      Update project
//	@Tags         projects
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string             true  "project id"
//	@Param        body  body  quote.DetailsPatch  true  "fields to change"
//	@Success      200   {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id} [put]
func UpdateProjectHandler(svc *quoting.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := owner(c)
		if err != nil {
			return err
		}
		patch, err := parse[quote.DetailsPatch](c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), writeTimeout)
		defer cancel()
		p, err := svc.UpdateDetails(ctx, uid, c.Params("id"), patch)
		if err != nil {
			return err
		}
		return kit.OK(c, p)
	}
}

// DeleteProjectHandler deletes a project and its stored photos. The caller
// must pass confirm=true.
//
//	@Summary      Delete project
//	@Tags         projects
//	@Security     BearerAuth
//	@Param        id       path   string  true  "project id"
//	@Param        confirm  query  bool    true  "must be true"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}  "E_CONFIRMATION_REQUIRED"
//	@Router       /api/v1/projects/{id} [delete]
func DeleteProjectHandler(svc *quoting.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := owner(c)
		if err != nil {
			return err
		}
		if !c.QueryBool("confirm", false) {
			return kit.ConfirmationRequired("deleting a project removes all its data; repeat with confirm=true")
		}
		ctx, cancel := context.WithTimeout(c.Context(), exportTimeout)
		defer cancel()
		if err := svc.Delete(ctx, uid, c.Params("id")); err != nil {
			return err
		}
		return kit.OK(c, fiber.Map{"status": "deleted"})
	}
}

// SummaryHandler returns the three project totals.
//
//	@Summary      Project totals
//	@Tags         projects
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "project id"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id}/summary [get]
func SummaryHandler(svc *quoting.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := owner(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), readTimeout)
		defer cancel()
		s, err := svc.Summary(ctx, uid, c.Params("id"))
		if err != nil {
			return err
		}
		return kit.OK(c, s)
	}
}

// RepriceHandler recomputes every item against the current catalog rates.
//
//	@Summary      Reprice items
//	@Description  Applies catalog rate changes to the project's stored items
//	@Tags         projects
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "project id"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id}/reprice [post]
func RepriceHandler(svc *quoting.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := owner(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), writeTimeout)
		defer cancel()
		p, err := svc.Reprice(ctx, uid, c.Params("id"))
		if err != nil {
			return err
		}
		return kit.OK(c, p)
	}
}

// SearchHandler runs a full-text query over the caller's projects.
//
//	@Summary      Search my projects
//	@Tags         projects
//	@Produce      json
//	@Security     BearerAuth
//	@Param        q       query  string  false  "text query"
//	@Param        limit   query  int     false  "page size"  default(20)
//	@Param        offset  query  int     false  "offset"     default(0)
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/projects/search [get]
func SearchHandler(svc *quoting.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := owner(c)
		if err != nil {
			return err
		}
		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), writeTimeout)
		defer cancel()
		res, err := svc.Search(ctx, uid, strings.TrimSpace(c.Query("q")), pg.Offset, pg.Limit)
		if err != nil {
			return err
		}
		return kit.List(c, res.Hits, kit.OffsetMeta(pg, len(res.Hits), int(res.Total)))
	}
}

// QuotationHandler renders the quotation. json returns the structured
// document; text and png are sent as attachments.
//
//	@Summary      Export quotation
//	@Tags         projects
//	@Produce      json,plain,png
//	@Security     BearerAuth
//	@Param        id      path   string  true   "project id"
//	@Param        format  query  string  false  "json | text | png"  default(json)
//	@Success      200  {object}  map[string]interface{}
//	@Failure      409  {object}  map[string]interface{}  "item references a missing material"
//	@Router       /api/v1/projects/{id}/quotation [get]
func QuotationHandler(svc *quoting.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := owner(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), exportTimeout)
		defer cancel()
		a, err := svc.Quotation(ctx, uid, c.Params("id"), quoting.Format(strings.ToLower(c.Query("format", "json"))))
		if err != nil {
			return err
		}
		if a.Body == nil {
			return kit.OK(c, a.Quotation)
		}
		c.Attachment(a.FileName)
		c.Set(fiber.HeaderContentType, a.ContentType)
		return c.Send(a.Body)
	}
}

// BookingHandler returns the prefilled booking message and chat deep link.
//
//	@Summary      Booking link
//	@Tags         projects
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "project id"
//	@Success      200  {object}  quoting.Booking
//	@Router       /api/v1/projects/{id}/booking [post]
func BookingHandler(svc *quoting.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := owner(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), writeTimeout)
		defer cancel()
		b, err := svc.Booking(ctx, uid, c.Params("id"))
		if err != nil {
			return err
		}
		return kit.OK(c, b)
	}
}

// StreamHandler pushes change notifications for the caller's projects as
// server-sent events.
//
//	@Summary      Project change stream
//	@Tags         projects
//	@Produce      text/event-stream
//	@Security     BearerAuth
//	@Router       /api/v1/projects/stream [get]
func StreamHandler(hub *realtime.Hub, heartbeat time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := owner(c)
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, "text/event-stream")
		c.Set(fiber.HeaderCacheControl, "no-cache")
		c.Set(fiber.HeaderConnection, "keep-alive")
		c.Set("X-Accel-Buffering", "no")

		client := hub.Subscribe(realtime.UserChannel(uid))
		// the request context is recycled once the handler returns
		c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
			hub.Stream(context.Background(), w, client, heartbeat)
		})
		return nil
	}
}
