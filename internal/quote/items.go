package quote

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"furniquote/internal/pricing"
)

// ItemDraft is the input for a new line item.
type ItemDraft struct {
	Name       string   `json:"name"`
	Length     float64  `json:"length"`
	Width      float64  `json:"width"`
	Depth      float64  `json:"depth"`
	MaterialID string   `json:"material_id"`
	Quantity   int      `json:"quantity"`
	Note       *string  `json:"note,omitempty"`
	CustomRate *float64 `json:"custom_rate,omitempty"`
}

// ItemPatch holds the fields to change on an item. ClearCustomRate drops the
// override so the catalog rate applies again.
type ItemPatch struct {
	Name            *string  `json:"name,omitempty"`
	Length          *float64 `json:"length,omitempty"`
	Width           *float64 `json:"width,omitempty"`
	Depth           *float64 `json:"depth,omitempty"`
	MaterialID      *string  `json:"material_id,omitempty"`
	Quantity        *int     `json:"quantity,omitempty"`
	Note            *string  `json:"note,omitempty"`
	CustomRate      *float64 `json:"custom_rate,omitempty"`
	ClearCustomRate bool     `json:"clear_custom_rate,omitempty"`
}

// AddItem prices draft against cat and appends it.
func (p *Project) AddItem(env Env, draft ItemDraft, cat *Catalog) (ProjectItem, error) {
	item := ProjectItem{
		Name:       strings.TrimSpace(draft.Name),
		Length:     draft.Length,
		Width:      draft.Width,
		Depth:      draft.Depth,
		MaterialID: strings.TrimSpace(draft.MaterialID),
		Quantity:   draft.Quantity,
		Note:       optional(draft.Note),
		CustomRate: draft.CustomRate,
	}
	if err := priceItem(&item, cat); err != nil {
		return ProjectItem{}, err
	}
	item.ID = env.newID()
	p.Items = append(p.Items, item)
	p.touch(env)
	return item, nil
}

// UpdateItem merges patch into the item and reprices it.
func (p *Project) UpdateItem(env Env, id string, patch ItemPatch, cat *Catalog) (ProjectItem, error) {
	_, idx, ok := lo.FindIndexOf(p.Items, func(it ProjectItem) bool { return it.ID == id })
	if !ok {
		return ProjectItem{}, notFound("item", id)
	}
	item := p.Items[idx]
	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Length != nil {
		item.Length = *patch.Length
	}
	if patch.Width != nil {
		item.Width = *patch.Width
	}
	if patch.Depth != nil {
		item.Depth = *patch.Depth
	}
	if patch.MaterialID != nil {
		item.MaterialID = strings.TrimSpace(*patch.MaterialID)
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Note != nil {
		item.Note = optional(patch.Note)
	}
	if patch.ClearCustomRate {
		item.CustomRate = nil
	}
	if patch.CustomRate != nil {
		item.CustomRate = lo.ToPtr(*patch.CustomRate)
	}
	if err := priceItem(&item, cat); err != nil {
		return ProjectItem{}, err
	}
	p.Items[idx] = item
	p.touch(env)
	return item, nil
}

// RemoveItem deletes the item with id. Removing an absent id is a no-op and
// reports false.
func (p *Project) RemoveItem(env Env, id string) bool {
	n := len(p.Items)
	p.Items = lo.Reject(p.Items, func(it ProjectItem, _ int) bool { return it.ID == id })
	if len(p.Items) == n {
		return false
	}
	p.touch(env)
	return true
}

// Reprice recomputes every item against cat with the same rules as
// UpdateItem and reports whether any sqft or amount changed. On error p is
// left as it was.
func (p *Project) Reprice(env Env, cat *Catalog) (bool, error) {
	items := cloneSlice(p.Items)
	changed := false
	for i := range items {
		before := items[i]
		if err := priceItem(&items[i], cat); err != nil {
			return false, err
		}
		changed = changed || items[i].Sqft != before.Sqft || items[i].Amount != before.Amount
	}
	if !changed {
		return false, nil
	}
	p.Items = items
	p.touch(env)
	return true, nil
}

func validateItem(it ProjectItem) error {
	switch {
	case it.Name == "":
		return invalid("name", "is required")
	case !positive(it.Length):
		return invalid("length", "must be greater than 0")
	case !positive(it.Width):
		return invalid("width", "must be greater than 0")
	case math.IsNaN(it.Depth) || math.IsInf(it.Depth, 0) || it.Depth < 0:
		return invalid("depth", "must not be negative")
	case it.Quantity < 1:
		return invalid("quantity", "must be at least 1")
	case it.MaterialID == "":
		return invalid("material_id", "is required")
	case it.CustomRate != nil && (math.IsNaN(*it.CustomRate) || math.IsInf(*it.CustomRate, 0) || *it.CustomRate < 0):
		return invalid("custom_rate", "must not be negative")
	}
	return nil
}

// priceItem validates it, checks the material and fills sqft and amount.
func priceItem(it *ProjectItem, cat *Catalog) error {
	if err := validateItem(*it); err != nil {
		return err
	}
	m, ok := cat.Material(it.MaterialID)
	if !ok {
		return notFound("material", it.MaterialID)
	}
	it.applyMetrics(pricing.EffectiveRate(it.CustomRate, m.RatePerSqft))
	return nil
}

func (it *ProjectItem) applyMetrics(rate float64) {
	m := pricing.ComputeItemMetrics(it.Length, it.Width, it.Quantity, rate)
	it.Sqft = m.Sqft
	it.Amount = m.Amount
}

func positive(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x > 0
}
