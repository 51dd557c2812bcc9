package quote

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"furniquote/internal/pricing"
)

// ProjectDraft is the input for creating a project.
type ProjectDraft struct {
	Name            string  `json:"name"`
	TypeID          string  `json:"type_id"`
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerMobile  *string `json:"customer_mobile,omitempty"`
	CustomerAddress *string `json:"customer_address,omitempty"`
}

// DetailsPatch changes top-level project fields. A pointer to an empty string
// clears an optional customer field.
type DetailsPatch struct {
	Name            *string `json:"name,omitempty"`
	TypeID          *string `json:"type_id,omitempty"`
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerMobile  *string `json:"customer_mobile,omitempty"`
	CustomerAddress *string `json:"customer_address,omitempty"`
}

// NewProject creates an empty project owned by ownerID. When cat is non-nil
// the type must exist in it.
func NewProject(env Env, draft ProjectDraft, ownerID string, cat *Catalog) (*Project, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return nil, invalid("name", "is required")
	}
	if strings.TrimSpace(draft.TypeID) == "" {
		return nil, invalid("type_id", "is required")
	}
	if ownerID == "" {
		return nil, invalid("owner_id", "is required")
	}
	if cat != nil {
		if _, ok := cat.Type(draft.TypeID); !ok {
			return nil, notFound("project type", draft.TypeID)
		}
	}
	now := env.now()
	return &Project{
		ID:              env.newID(),
		Name:            name,
		TypeID:          draft.TypeID,
		CustomerName:    optional(draft.CustomerName),
		CustomerMobile:  optional(draft.CustomerMobile),
		CustomerAddress: optional(draft.CustomerAddress),
		Items:           []ProjectItem{},
		ExtraCosts:      []ExtraCost{},
		Milestones:      []Milestone{},
		Photos:          []ProjectPhoto{},
		OwnerID:         ownerID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// ApplyDetails merges patch into the project's top-level fields.
func (p *Project) ApplyDetails(env Env, patch DetailsPatch, cat *Catalog) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return invalid("name", "must not be empty")
	}
	if patch.TypeID != nil {
		if strings.TrimSpace(*patch.TypeID) == "" {
			return invalid("type_id", "must not be empty")
		}
		if cat != nil {
			if _, ok := cat.Type(*patch.TypeID); !ok {
				return notFound("project type", *patch.TypeID)
			}
		}
	}
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.TypeID != nil {
		p.TypeID = *patch.TypeID
	}
	if patch.CustomerName != nil {
		p.CustomerName = optional(patch.CustomerName)
	}
	if patch.CustomerMobile != nil {
		p.CustomerMobile = optional(patch.CustomerMobile)
	}
	if patch.CustomerAddress != nil {
		p.CustomerAddress = optional(patch.CustomerAddress)
	}
	p.touch(env)
	return nil
}

// Summary computes totals from stored item amounts and extra costs, in insertion order.
func (p *Project) Summary() pricing.Summary {
	return pricing.Summarize(
		lo.Map(p.Items, func(it ProjectItem, _ int) float64 { return it.Amount }),
		lo.Map(p.ExtraCosts, func(ec ExtraCost, _ int) float64 { return ec.Amount }),
	)
}

// SortedMilestones returns milestones by display order. Ties keep insertion order.
func (p *Project) SortedMilestones() []Milestone {
	out := cloneSlice(p.Milestones)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// optional trims s and maps blank input to nil.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
