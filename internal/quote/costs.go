package quote

import (
	"math"
	"strings"

	"github.com/samber/lo"
)

type ExtraCostDraft struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Note   *string `json:"note,omitempty"`
}

type ExtraCostPatch struct {
	Name   *string  `json:"name,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
	Note   *string  `json:"note,omitempty"`
}

// AddExtraCost appends a signed adjustment. The amount is stored as given.
func (p *Project) AddExtraCost(env Env, draft ExtraCostDraft) (ExtraCost, error) {
	ec := ExtraCost{
		Name:   strings.TrimSpace(draft.Name),
		Amount: draft.Amount,
		Note:   optional(draft.Note),
	}
	if err := validateExtraCost(ec); err != nil {
		return ExtraCost{}, err
	}
	ec.ID = env.newID()
	p.ExtraCosts = append(p.ExtraCosts, ec)
	p.touch(env)
	return ec, nil
}

func (p *Project) UpdateExtraCost(env Env, id string, patch ExtraCostPatch) (ExtraCost, error) {
	_, idx, ok := lo.FindIndexOf(p.ExtraCosts, func(ec ExtraCost) bool { return ec.ID == id })
	if !ok {
		return ExtraCost{}, notFound("extra cost", id)
	}
	ec := p.ExtraCosts[idx]
	if patch.Name != nil {
		ec.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Amount != nil {
		ec.Amount = *patch.Amount
	}
	if patch.Note != nil {
		ec.Note = optional(patch.Note)
	}
	if err := validateExtraCost(ec); err != nil {
		return ExtraCost{}, err
	}
	p.ExtraCosts[idx] = ec
	p.touch(env)
	return ec, nil
}

// RemoveExtraCost is idempotent; it reports whether anything was removed.
func (p *Project) RemoveExtraCost(env Env, id string) bool {
	n := len(p.ExtraCosts)
	p.ExtraCosts = lo.Reject(p.ExtraCosts, func(ec ExtraCost, _ int) bool { return ec.ID == id })
	if len(p.ExtraCosts) == n {
		return false
	}
	p.touch(env)
	return true
}

func validateExtraCost(ec ExtraCost) error {
	switch {
	case ec.Name == "":
		return invalid("name", "is required")
	case math.IsNaN(ec.Amount) || math.IsInf(ec.Amount, 0):
		return invalid("amount", "must be a finite number")
	case ec.Amount == 0:
		return invalid("amount", "must not be zero")
	}
	return nil
}
