package projects

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"furniquote/internal/quoting"
	"furniquote/internal/realtime"
)

// Mount registers the project routes on r. r must already require a user.
func Mount(r fiber.Router, svc *quoting.Service, hub *realtime.Hub, heartbeat time.Duration) {
	// static segments before /:id
	r.Get("/search", SearchHandler(svc))
	r.Get("/stream", StreamHandler(hub, heartbeat))

	r.Get("/", ListProjectsHandler(svc))
	r.Post("/", CreateProjectHandler(svc))
	r.Get("/:id", GetProjectHandler(svc))
	r.Put("/:id", UpdateProjectHandler(svc))
	r.Delete("/:id", DeleteProjectHandler(svc))
	r.Get("/:id/summary", SummaryHandler(svc))
	r.Get("/:id/quotation", QuotationHandler(svc))
	r.Post("/:id/booking", BookingHandler(svc))
	r.Post("/:id/reprice", RepriceHandler(svc))

	r.Post("/:id/items", AddItemHandler(svc))
	r.Put("/:id/items/:entityId", UpdateItemHandler(svc))
	r.Delete("/:id/items/:entityId", RemoveItemHandler(svc))

	r.Post("/:id/extra-costs", AddExtraCostHandler(svc))
	r.Put("/:id/extra-costs/:entityId", UpdateExtraCostHandler(svc))
	r.Delete("/:id/extra-costs/:entityId", RemoveExtraCostHandler(svc))

	r.Post("/:id/milestones", AddMilestoneHandler(svc))
	r.Put("/:id/milestones/:entityId", UpdateMilestoneHandler(svc))
	r.Delete("/:id/milestones/:entityId", RemoveMilestoneHandler(svc))

	r.Post("/:id/photos", AddPhotoHandler(svc))
	r.Post("/:id/photos/upload", UploadPhotoHandler(svc))
	r.Put("/:id/photos/:entityId", UpdatePhotoHandler(svc))
	r.Delete("/:id/photos/:entityId", RemovePhotoHandler(svc))
}
