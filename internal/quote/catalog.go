package quote

import (
	"time"

	"furniquote/internal/pricing"
)

type Material struct {
	ID            string    `json:"id" yaml:"id"`
	Name          string    `json:"name" yaml:"name"`
	RatePerSqft   float64   `json:"rate_per_sqft" yaml:"rate_per_sqft"`
	ProjectTypeID string    `json:"project_type_id" yaml:"-"`
	CreatedAt     time.Time `json:"created_at" yaml:"-"`
	UpdatedAt     time.Time `json:"updated_at" yaml:"-"`
}

type ProjectType struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Icon        string     `json:"icon" yaml:"icon"`
	Description string     `json:"description" yaml:"description"`
	Materials   []Material `json:"materials" yaml:"materials"`
	CreatedAt   time.Time  `json:"created_at" yaml:"-"`
	UpdatedAt   time.Time  `json:"updated_at" yaml:"-"`
}

// Catalog is a read-only snapshot of project types and their materials.
// Pricing reads rates from it instead of global state.
type Catalog struct {
	types     []ProjectType
	typeIdx   map[string]int
	materials map[string]Material
}

func NewCatalog(types []ProjectType) *Catalog {
	c := &Catalog{
		types:     types,
		typeIdx:   make(map[string]int, len(types)),
		materials: map[string]Material{},
	}
	for i, t := range types {
		c.typeIdx[t.ID] = i
		for _, m := range t.Materials {
			c.materials[m.ID] = m
		}
	}
	return c
}

// Types returns project types in catalog order.
func (c *Catalog) Types() []ProjectType {
	if c == nil {
		return nil
	}
	return c.types
}

func (c *Catalog) Type(id string) (ProjectType, bool) {
	if c == nil {
		return ProjectType{}, false
	}
	i, ok := c.typeIdx[id]
	if !ok {
		return ProjectType{}, false
	}
	return c.types[i], true
}

func (c *Catalog) Material(id string) (Material, bool) {
	if c == nil {
		return Material{}, false
	}
	m, ok := c.materials[id]
	return m, ok
}

// ResolveRate returns the effective rate for item. A missing material is a
// DataIntegrityError unless the item carries its own rate.
func (c *Catalog) ResolveRate(item ProjectItem) (float64, error) {
	if item.CustomRate != nil && *item.CustomRate >= 0 {
		return *item.CustomRate, nil
	}
	m, ok := c.Material(item.MaterialID)
	if !ok {
		return 0, &DataIntegrityError{ItemID: item.ID, MaterialID: item.MaterialID}
	}
	return pricing.EffectiveRate(item.CustomRate, m.RatePerSqft), nil
}
