package projects

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"furniquote/internal/httpx/kit"
	"furniquote/internal/quote"
	"furniquote/internal/quoting"
)

// AddPhotoHandler records a photo that is hosted elsewhere.
//
//	@Summary      Add photo by URL
//	@Tags         photos
//	@Accept       json
//	@Security     BearerAuth
//	@Param        body  body  quote.PhotoDraft  true  "photo"
//	@Router       /api/v1/projects/{id}/photos [post]
func AddPhotoHandler(svc *quoting.Service) fiber.Handler {
	return addHandler(svc.AddPhoto)
}

// UploadPhotoHandler stores a multipart file and records it.
//
//	@Summary      Upload photo
//	@Tags         photos
//	@Accept       multipart/form-data
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id        path      string  true   "project id"
//	@Param        file      formData  file    true   "image"
//	@Param        category  formData  string  true   "before | progress | after | material"
//	@Param        caption   formData  string  false  "caption"
//	@Success      201  {object}  map[string]interface{}
//	@Failure      503  {object}  map[string]interface{}  "storage unavailable"
//	@Router       /api/v1/projects/{id}/photos/upload [post]
func UploadPhotoHandler(svc *quoting.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := owner(c)
		if err != nil {
			return err
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return kit.BadRequest("file required", nil)
		}
		f, err := fh.Open()
		if err != nil {
			return kit.BadRequest("unreadable file", err.Error())
		}
		defer f.Close()

		caption := strings.TrimSpace(c.FormValue("caption"))
		in := quoting.UploadInput{
			FileName: fh.Filename,
			Category: quote.PhotoCategory(c.FormValue("category")),
			Caption:  lo.Ternary(caption != "", &caption, nil),
			Body:     f,
		}
		ctx, cancel := context.WithTimeout(c.Context(), exportTimeout)
		defer cancel()
		ph, p, err := svc.UploadPhoto(ctx, uid, c.Params("id"), in)
		if err != nil {
			return err
		}
		return kit.Created(c, entityResult[quote.ProjectPhoto]{Entity: ph, Project: p})
	}
}

// @Summary      Update photo caption or category
// @Tags         photos
// @Security     BearerAuth
// @Param        body  body  quote.PhotoPatch  true  "fields to change"
// @Router       /api/v1/projects/{id}/photos/{entityId} [put]
func UpdatePhotoHandler(svc *quoting.Service) fiber.Handler {
	return updateHandler(svc.UpdatePhoto)
}

// RemovePhotoHandler drops the photo and deletes its stored object, if any.
//
//	@Summary      Remove photo
//	@Tags         photos
//	@Security     BearerAuth
//	@Param        confirm  query  bool  true  "must be true"
//	@Router       /api/v1/projects/{id}/photos/{entityId} [delete]
func RemovePhotoHandler(svc *quoting.Service) fiber.Handler {
	return removeHandler(svc.RemovePhoto, true)
}
