package quoting

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"furniquote/internal/esx"
	"furniquote/internal/metrics"
	"furniquote/internal/mqx"
	"furniquote/internal/pricing"
	"furniquote/internal/quote"
	"furniquote/internal/realtime"
)

// List returns one page of the owner's projects and the total count.
func (s *Service) List(ctx context.Context, ownerID string, limit, offset int) ([]*quote.Project, int, error) {
	items, err := s.Projects.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, 0, quote.Persistence("list projects", err)
	}
	total, err := s.Projects.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, quote.Persistence("count projects", err)
	}
	return items, total, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (*quote.Project, error) {
	return s.load(ctx, ownerID, id)
}

func (s *Service) Create(ctx context.Context, ownerID string, draft quote.ProjectDraft) (*quote.Project, error) {
	cat, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	p, err := quote.NewProject(s.env(), draft, ownerID, cat)
	if err != nil {
		return nil, err
	}
	if err := s.Projects.Create(ctx, p); err != nil {
		metrics.IncrementPersistenceFailure("create project")
		return nil, quote.Persistence("create project", err)
	}
	metrics.IncrementMutation("project", "create")
	s.afterWrite(ctx, p, mqx.ProjectCreated, nil)
	return p, nil
}

func (s *Service) UpdateDetails(ctx context.Context, ownerID, id string, patch quote.DetailsPatch) (*quote.Project, error) {
	cur, err := s.load(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	var cat *quote.Catalog
	if patch.TypeID != nil {
		if cat, err = s.snapshot(ctx); err != nil {
			return nil, err
		}
	}
	next := cur.Clone()
	if err := next.ApplyDetails(s.env(), patch, cat); err != nil {
		return nil, err
	}
	if err := s.Projects.UpdateDetails(ctx, next); err != nil {
		metrics.IncrementPersistenceFailure("update project")
		return nil, quote.Persistence("update project", err)
	}
	metrics.IncrementMutation("project", "update")
	s.afterWrite(ctx, next, mqx.ProjectUpdated, map[string]any{"op": "update details"})
	return next, nil
}

// Delete removes the project's photo objects and then the project. Blob
// failures are logged and do not stop the delete.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	p, err := s.load(ctx, ownerID, id)
	if err != nil {
		return err
	}
	s.deleteBlobs(ctx, p)
	if err := s.Projects.Delete(ctx, id); err != nil {
		metrics.IncrementPersistenceFailure("delete project")
		return quote.Persistence("delete project", err)
	}
	metrics.IncrementMutation("project", "delete")
	s.sideEffect(ctx, "unindex", func(ctx context.Context) error {
		if s.Index == nil {
			return nil
		}
		return s.Index.Delete(ctx, id)
	})
	s.emit(ctx, p, mqx.ProjectDeleted, nil)
	s.broadcast(ctx, ownerID, realtime.EventProjectDeleted, map[string]string{"project_id": id})
	return nil
}

func (s *Service) deleteBlobs(ctx context.Context, p *quote.Project) {
	if s.Blobs == nil {
		return
	}
	keys, err := s.Blobs.ListKeys(ctx, photoPrefix(p.ID))
	if err != nil {
		svcLogger.Warn("list photo objects failed", zap.String("project", p.ID), zap.Error(err))
		keys = nil
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		seen[k] = true
	}
	for _, ph := range p.Photos {
		if ph.StorageKey != "" && !seen[ph.StorageKey] {
			keys = append(keys, ph.StorageKey)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, k := range keys {
		g.Go(func() error {
			if err := s.Blobs.Delete(gctx, k); err != nil {
				svcLogger.Warn("delete photo object failed", zap.String("key", k), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (s *Service) Summary(ctx context.Context, ownerID, id string) (pricing.Summary, error) {
	p, err := s.load(ctx, ownerID, id)
	if err != nil {
		return pricing.Summary{}, err
	}
	return p.Summary(), nil
}

// Search queries the owner's projects in the search index.
func (s *Service) Search(ctx context.Context, ownerID, q string, from, size int) (esx.SearchResult, error) {
	if s.Index == nil {
		return esx.SearchResult{Hits: []esx.ProjectDoc{}}, nil
	}
	res, err := s.Index.Search(ctx, ownerID, q, from, size)
	if err != nil {
		return res, quote.Persistence("search projects", fmt.Errorf("search: %w", err))
	}
	return res, nil
}
