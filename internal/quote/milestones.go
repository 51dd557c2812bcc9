package quote

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

type MilestoneDraft struct {
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
	CompletedDate *time.Time      `json:"completed_date,omitempty"`
	Status        MilestoneStatus `json:"status,omitempty"`
	Order         *int            `json:"order,omitempty"`
}

// MilestonePatch changes a milestone. The Clear flags drop the optional
// dates; they are applied before the new values.
type MilestonePatch struct {
	Name               *string          `json:"name,omitempty"`
	Description        *string          `json:"description,omitempty"`
	DueDate            *time.Time       `json:"due_date,omitempty"`
	ClearDueDate       bool             `json:"clear_due_date,omitempty"`
	CompletedDate      *time.Time       `json:"completed_date,omitempty"`
	ClearCompletedDate bool             `json:"clear_completed_date,omitempty"`
	Status             *MilestoneStatus `json:"status,omitempty"`
	Order              *int             `json:"order,omitempty"`
}

// AddMilestone appends a milestone. Status defaults to pending and order to
// the current number of milestones.
func (p *Project) AddMilestone(env Env, draft MilestoneDraft) (Milestone, error) {
	m := Milestone{
		Name:          strings.TrimSpace(draft.Name),
		Description:   optional(draft.Description),
		DueDate:       draft.DueDate,
		CompletedDate: draft.CompletedDate,
		Status:        lo.Ternary(draft.Status == "", MilestonePending, draft.Status),
		Order:         lo.FromPtrOr(draft.Order, len(p.Milestones)),
	}
	if err := completionDateAllowed(m.Status, draft.CompletedDate); err != nil {
		return Milestone{}, err
	}
	if err := validateMilestone(m); err != nil {
		return Milestone{}, err
	}
	m.stampCompletion(env)
	m.ID = env.newID()
	p.Milestones = append(p.Milestones, m)
	p.touch(env)
	return m, nil
}

// UpdateMilestone merges patch. Moving to completed stamps CompletedDate when
// it is unset. Moving away from completed keeps the recorded date, but a new
// date is only accepted together with the completed status.
func (p *Project) UpdateMilestone(env Env, id string, patch MilestonePatch) (Milestone, error) {
	_, idx, ok := lo.FindIndexOf(p.Milestones, func(m Milestone) bool { return m.ID == id })
	if !ok {
		return Milestone{}, notFound("milestone", id)
	}
	m := p.Milestones[idx]
	if patch.Name != nil {
		m.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		m.Description = optional(patch.Description)
	}
	if patch.ClearDueDate {
		m.DueDate = nil
	}
	if patch.DueDate != nil {
		m.DueDate = lo.ToPtr(*patch.DueDate)
	}
	if patch.ClearCompletedDate {
		m.CompletedDate = nil
	}
	if patch.CompletedDate != nil {
		m.CompletedDate = lo.ToPtr(*patch.CompletedDate)
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.Order != nil {
		m.Order = *patch.Order
	}
	if err := completionDateAllowed(m.Status, patch.CompletedDate); err != nil {
		return Milestone{}, err
	}
	if err := validateMilestone(m); err != nil {
		return Milestone{}, err
	}
	m.stampCompletion(env)
	p.Milestones[idx] = m
	p.touch(env)
	return m, nil
}

// RemoveMilestone is idempotent; it reports whether anything was removed.
func (p *Project) RemoveMilestone(env Env, id string) bool {
	n := len(p.Milestones)
	p.Milestones = lo.Reject(p.Milestones, func(m Milestone, _ int) bool { return m.ID == id })
	if len(p.Milestones) == n {
		return false
	}
	p.touch(env)
	return true
}

func (m *Milestone) stampCompletion(env Env) {
	if m.Status == MilestoneCompleted && m.CompletedDate == nil {
		m.CompletedDate = lo.ToPtr(env.now())
	}
}

// completionDateAllowed rejects a caller-supplied completion date on a
// milestone that does not end up completed.
func completionDateAllowed(status MilestoneStatus, date *time.Time) error {
	if date != nil && status != MilestoneCompleted {
		return invalid("completed_date", "can only be set on a completed milestone")
	}
	return nil
}

func validateMilestone(m Milestone) error {
	switch {
	case m.Name == "":
		return invalid("name", "is required")
	case !m.Status.Valid():
		return invalid("status", "must be one of pending, in-progress, completed")
	case m.Order < 0:
		return invalid("order", "must not be negative")
	}
	return nil
}
