package quoting

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"furniquote/internal/quote"
	"furniquote/internal/storagex"
)

func photoPrefix(projectID string) string { return "projects/" + projectID + "/" }

// AddPhoto records a photo that is already hosted elsewhere.
func (s *Service) AddPhoto(ctx context.Context, ownerID, id string, draft quote.PhotoDraft) (quote.ProjectPhoto, *quote.Project, error) {
	draft.StorageKey = ""
	var out quote.ProjectPhoto
	p, err := s.mutate(ctx, ownerID, id, quote.CollectionPhotos, "add photo", func(p *quote.Project) (bool, error) {
		ph, err := p.AddPhoto(s.env(), draft)
		out = ph
		return err == nil, err
	})
	return out, p, err
}

// UploadInput is one photo upload.
type UploadInput struct {
	FileName string
	Category quote.PhotoCategory
	Caption  *string
	Body     io.Reader
}

// UploadPhoto stores the object at projects/{id}/{uuid}-{file} and records
// it. If recording fails the object is deleted again.
func (s *Service) UploadPhoto(ctx context.Context, ownerID, id string, in UploadInput) (quote.ProjectPhoto, *quote.Project, error) {
	in.FileName = strings.TrimSpace(in.FileName)
	if !quote.ValidPhotoFileName(in.FileName) {
		return quote.ProjectPhoto{}, nil, &quote.ValidationError{Field: "file_name", Message: "must be a plain file name"}
	}
	if !in.Category.Valid() {
		return quote.ProjectPhoto{}, nil, &quote.ValidationError{Field: "category", Message: "must be one of before, progress, after, material"}
	}
	if s.Blobs == nil {
		return quote.ProjectPhoto{}, nil, quote.Persistence("upload photo", storagex.ErrDisabled)
	}
	if _, err := s.load(ctx, ownerID, id); err != nil {
		return quote.ProjectPhoto{}, nil, err
	}

	key := fmt.Sprintf("%s%s-%s", photoPrefix(id), s.env().NewID(), in.FileName)
	if err := s.Blobs.Upload(ctx, key, in.Body); err != nil {
		return quote.ProjectPhoto{}, nil, quote.Persistence("upload photo", err)
	}

	draft := quote.PhotoDraft{
		URL:        s.Blobs.PublicURL(key),
		StorageKey: key,
		FileName:   in.FileName,
		Caption:    in.Caption,
		Category:   in.Category,
	}
	var out quote.ProjectPhoto
	p, err := s.mutate(ctx, ownerID, id, quote.CollectionPhotos, "add photo", func(p *quote.Project) (bool, error) {
		ph, err := p.AddPhoto(s.env(), draft)
		out = ph
		return err == nil, err
	})
	if err != nil {
		s.sideEffect(ctx, "delete orphaned photo", func(ctx context.Context) error {
			return s.Blobs.Delete(ctx, key)
		})
		return quote.ProjectPhoto{}, nil, err
	}
	return out, p, nil
}

func (s *Service) UpdatePhoto(ctx context.Context, ownerID, id, photoID string, patch quote.PhotoPatch) (quote.ProjectPhoto, *quote.Project, error) {
	var out quote.ProjectPhoto
	p, err := s.mutate(ctx, ownerID, id, quote.CollectionPhotos, "update photo", func(p *quote.Project) (bool, error) {
		ph, err := p.UpdatePhoto(s.env(), photoID, patch)
		out = ph
		return err == nil, err
	})
	return out, p, err
}

// RemovePhoto drops the entry and then deletes its stored object.
func (s *Service) RemovePhoto(ctx context.Context, ownerID, id, photoID string) (*quote.Project, error) {
	var removed quote.ProjectPhoto
	p, err := s.mutate(ctx, ownerID, id, quote.CollectionPhotos, "remove photo", func(p *quote.Project) (bool, error) {
		ph, ok := p.RemovePhoto(s.env(), photoID)
		removed = ph
		return ok, nil
	})
	if err != nil {
		return nil, err
	}
	if removed.StorageKey != "" && s.Blobs != nil {
		if derr := s.Blobs.Delete(ctx, removed.StorageKey); derr != nil {
			svcLogger.Warn("delete photo object failed", zap.String("key", removed.StorageKey), zap.Error(derr))
		}
	}
	return p, nil
}
