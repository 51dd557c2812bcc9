package quoting

import (
	"context"

	"furniquote/internal/quote"
)

// Item operations need the catalog for pricing; it is loaded per call so
// rate edits by an admin apply to the next edit.

func (s *Service) AddItem(ctx context.Context, ownerID, id string, draft quote.ItemDraft) (quote.ProjectItem, *quote.Project, error) {
	cat, err := s.snapshot(ctx)
	if err != nil {
		return quote.ProjectItem{}, nil, err
	}
	var out quote.ProjectItem
	p, err := s.mutate(ctx, ownerID, id, quote.CollectionItems, "add item", func(p *quote.Project) (bool, error) {
		it, err := p.AddItem(s.env(), draft, cat)
		out = it
		return err == nil, err
	})
	return out, p, err
}

func (s *Service) UpdateItem(ctx context.Context, ownerID, id, itemID string, patch quote.ItemPatch) (quote.ProjectItem, *quote.Project, error) {
	cat, err := s.snapshot(ctx)
	if err != nil {
		return quote.ProjectItem{}, nil, err
	}
	var out quote.ProjectItem
	p, err := s.mutate(ctx, ownerID, id, quote.CollectionItems, "update item", func(p *quote.Project) (bool, error) {
		it, err := p.UpdateItem(s.env(), itemID, patch, cat)
		out = it
		return err == nil, err
	})
	return out, p, err
}

// RemoveItem is idempotent: removing an absent item succeeds without a write.
func (s *Service) RemoveItem(ctx context.Context, ownerID, id, itemID string) (*quote.Project, error) {
	return s.mutate(ctx, ownerID, id, quote.CollectionItems, "remove item", func(p *quote.Project) (bool, error) {
		return p.RemoveItem(s.env(), itemID), nil
	})
}

// Reprice brings every item in line with the current catalog rates. Nothing
// is written when no amount moves.
func (s *Service) Reprice(ctx context.Context, ownerID, id string) (*quote.Project, error) {
	cat, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, ownerID, id, quote.CollectionItems, "reprice items", func(p *quote.Project) (bool, error) {
		return p.Reprice(s.env(), cat)
	})
}

func (s *Service) AddExtraCost(ctx context.Context, ownerID, id string, draft quote.ExtraCostDraft) (quote.ExtraCost, *quote.Project, error) {
	var out quote.ExtraCost
	p, err := s.mutate(ctx, ownerID, id, quote.CollectionExtraCosts, "add extra cost", func(p *quote.Project) (bool, error) {
		ec, err := p.AddExtraCost(s.env(), draft)
		out = ec
		return err == nil, err
	})
	return out, p, err
}

func (s *Service) UpdateExtraCost(ctx context.Context, ownerID, id, costID string, patch quote.ExtraCostPatch) (quote.ExtraCost, *quote.Project, error) {
	var out quote.ExtraCost
	p, err := s.mutate(ctx, ownerID, id, quote.CollectionExtraCosts, "update extra cost", func(p *quote.Project) (bool, error) {
		ec, err := p.UpdateExtraCost(s.env(), costID, patch)
		out = ec
		return err == nil, err
	})
	return out, p, err
}

func (s *Service) RemoveExtraCost(ctx context.Context, ownerID, id, costID string) (*quote.Project, error) {
	return s.mutate(ctx, ownerID, id, quote.CollectionExtraCosts, "remove extra cost", func(p *quote.Project) (bool, error) {
		return p.RemoveExtraCost(s.env(), costID), nil
	})
}

func (s *Service) AddMilestone(ctx context.Context, ownerID, id string, draft quote.MilestoneDraft) (quote.Milestone, *quote.Project, error) {
	var out quote.Milestone
	p, err := s.mutate(ctx, ownerID, id, quote.CollectionMilestones, "add milestone", func(p *quote.Project) (bool, error) {
		m, err := p.AddMilestone(s.env(), draft)
		out = m
		return err == nil, err
	})
	return out, p, err
}

func (s *Service) UpdateMilestone(ctx context.Context, ownerID, id, milestoneID string, patch quote.MilestonePatch) (quote.Milestone, *quote.Project, error) {
	var out quote.Milestone
	p, err := s.mutate(ctx, ownerID, id, quote.CollectionMilestones, "update milestone", func(p *quote.Project) (bool, error) {
		m, err := p.UpdateMilestone(s.env(), milestoneID, patch)
		out = m
		return err == nil, err
	})
	return out, p, err
}

func (s *Service) RemoveMilestone(ctx context.Context, ownerID, id, milestoneID string) (*quote.Project, error) {
	return s.mutate(ctx, ownerID, id, quote.CollectionMilestones, "remove milestone", func(p *quote.Project) (bool, error) {
		return p.RemoveMilestone(s.env(), milestoneID), nil
	})
}
