// Package quote holds the project aggregate and the operations that mutate it.
//
// Operations validate first and only then touch the project, so a returned
// error always leaves the aggregate unchanged. Time and identifiers come from
// an injected Env.
package quote

import (
	"time"

	"github.com/google/uuid"
)

type MilestoneStatus string

const (
	MilestonePending    MilestoneStatus = "pending"
	MilestoneInProgress MilestoneStatus = "in-progress"
	MilestoneCompleted  MilestoneStatus = "completed"
)

func (s MilestoneStatus) Valid() bool {
	switch s {
	case MilestonePending, MilestoneInProgress, MilestoneCompleted:
		return true
	}
	return false
}

type PhotoCategory string

const (
	PhotoBefore   PhotoCategory = "before"
	PhotoProgress PhotoCategory = "progress"
	PhotoAfter    PhotoCategory = "after"
	PhotoMaterial PhotoCategory = "material"
)

func (c PhotoCategory) Valid() bool {
	switch c {
	case PhotoBefore, PhotoProgress, PhotoAfter, PhotoMaterial:
		return true
	}
	return false
}

// Collection names a nested array of a project document. Each one is
// persisted as a whole.
type Collection string

const (
	CollectionItems      Collection = "items"
	CollectionExtraCosts Collection = "extra_costs"
	CollectionMilestones Collection = "milestones"
	CollectionPhotos     Collection = "photos"
)

// ProjectItem is one priced line.
type ProjectItem struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Length     float64  `json:"length"`
	Width      float64  `json:"width"`
	Depth      float64  `json:"depth"`
	MaterialID string   `json:"material_id"`
	Quantity   int      `json:"quantity"`
	Note       *string  `json:"note,omitempty"`
	CustomRate *float64 `json:"custom_rate,omitempty"`
	Sqft       float64  `json:"sqft"`
	Amount     float64  `json:"amount"`
}

// ExtraCost is a signed adjustment: positive surcharge, negative discount.
type ExtraCost struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Note   *string `json:"note,omitempty"`
}

type Milestone struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
	CompletedDate *time.Time      `json:"completed_date,omitempty"`
	Status        MilestoneStatus `json:"status"`
	Order         int             `json:"order"`
}

type ProjectPhoto struct {
	ID         string        `json:"id"`
	URL        string        `json:"url"`
	StorageKey string        `json:"storage_key,omitempty"`
	FileName   string        `json:"file_name"`
	Caption    *string       `json:"caption,omitempty"`
	Category   PhotoCategory `json:"category"`
	UploadedAt time.Time     `json:"uploaded_at"`
}

// Project is a customer's furniture job.
type Project struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	TypeID          string         `json:"type_id"`
	CustomerName    *string        `json:"customer_name,omitempty"`
	CustomerMobile  *string        `json:"customer_mobile,omitempty"`
	CustomerAddress *string        `json:"customer_address,omitempty"`
	Items           []ProjectItem  `json:"items"`
	ExtraCosts      []ExtraCost    `json:"extra_costs"`
	Milestones      []Milestone    `json:"milestones"`
	Photos          []ProjectPhoto `json:"photos"`
	OwnerID         string         `json:"owner_id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Env supplies the clock and id generator used by mutations.
type Env struct {
	Now   func() time.Time
	NewID func() string
}

// DefaultEnv uses wall-clock UTC time and random UUIDs.
func DefaultEnv() Env {
	return Env{
		Now:   func() time.Time { return time.Now().UTC() },
		NewID: uuid.NewString,
	}
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now().UTC()
	}
	return e.Now()
}

func (e Env) newID() string {
	if e.NewID == nil {
		return uuid.NewString()
	}
	return e.NewID()
}

// Clone copies the project and its nested slices.
func (p *Project) Clone() *Project {
	out := *p
	out.Items = cloneSlice(p.Items)
	out.ExtraCosts = cloneSlice(p.ExtraCosts)
	out.Milestones = cloneSlice(p.Milestones)
	out.Photos = cloneSlice(p.Photos)
	return &out
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// OwnedBy reports whether ownerID owns p.
func (p *Project) OwnedBy(ownerID string) bool {
	return p.OwnerID != "" && p.OwnerID == ownerID
}

func (p *Project) touch(env Env) {
	p.UpdatedAt = env.now()
}
