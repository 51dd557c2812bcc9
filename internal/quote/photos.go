package quote

import (
	"path"
	"strings"

	"github.com/samber/lo"
)

// PhotoDraft describes a stored photo. StorageKey is set when the object
// lives in this service's bucket.
type PhotoDraft struct {
	URL        string        `json:"url"`
	StorageKey string        `json:"storage_key,omitempty"`
	FileName   string        `json:"file_name"`
	Caption    *string       `json:"caption,omitempty"`
	Category   PhotoCategory `json:"category"`
}

// PhotoPatch can only touch presentation fields; the stored object and
// upload time never change.
type PhotoPatch struct {
	Caption  *string        `json:"caption,omitempty"`
	Category *PhotoCategory `json:"category,omitempty"`
}

// AddPhoto records an already stored photo. UploadedAt is set here, once.
func (p *Project) AddPhoto(env Env, draft PhotoDraft) (ProjectPhoto, error) {
	ph := ProjectPhoto{
		URL:        strings.TrimSpace(draft.URL),
		StorageKey: draft.StorageKey,
		FileName:   strings.TrimSpace(draft.FileName),
		Caption:    optional(draft.Caption),
		Category:   draft.Category,
	}
	if err := validatePhoto(ph); err != nil {
		return ProjectPhoto{}, err
	}
	ph.ID = env.newID()
	ph.UploadedAt = env.now()
	p.Photos = append(p.Photos, ph)
	p.touch(env)
	return ph, nil
}

func (p *Project) UpdatePhoto(env Env, id string, patch PhotoPatch) (ProjectPhoto, error) {
	_, idx, ok := lo.FindIndexOf(p.Photos, func(ph ProjectPhoto) bool { return ph.ID == id })
	if !ok {
		return ProjectPhoto{}, notFound("photo", id)
	}
	ph := p.Photos[idx]
	if patch.Caption != nil {
		ph.Caption = optional(patch.Caption)
	}
	if patch.Category != nil {
		ph.Category = *patch.Category
	}
	if err := validatePhoto(ph); err != nil {
		return ProjectPhoto{}, err
	}
	p.Photos[idx] = ph
	p.touch(env)
	return ph, nil
}

// RemovePhoto drops the photo and returns it so the caller can delete the
// stored object. Absent ids are a no-op.
func (p *Project) RemovePhoto(env Env, id string) (ProjectPhoto, bool) {
	ph, idx, ok := lo.FindIndexOf(p.Photos, func(ph ProjectPhoto) bool { return ph.ID == id })
	if !ok {
		return ProjectPhoto{}, false
	}
	p.Photos = append(p.Photos[:idx:idx], p.Photos[idx+1:]...)
	p.touch(env)
	return ph, true
}

// ValidPhotoFileName rejects empty names and anything that is not a plain file name.
func ValidPhotoFileName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." {
		return false
	}
	return path.Base(name) == name && !strings.ContainsAny(name, `\/`)
}

func validatePhoto(ph ProjectPhoto) error {
	switch {
	case ph.URL == "":
		return invalid("url", "is required")
	case !ValidPhotoFileName(ph.FileName):
		return invalid("file_name", "must be a plain file name")
	case !ph.Category.Valid():
		return invalid("category", "must be one of before, progress, after, material")
	}
	return nil
}
