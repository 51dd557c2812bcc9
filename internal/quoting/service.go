// Package quoting orchestrates project edits: it loads the aggregate, applies
// one operation, persists the touched collection and then fans the change out
// to search, events and connected clients.
package quoting

import (
	"context"
	"time"

	"go.uber.org/zap"

	"furniquote/internal/catalog"
	"furniquote/internal/config"
	"furniquote/internal/esx"
	"furniquote/internal/logx"
	"furniquote/internal/metrics"
	"furniquote/internal/mqx"
	"furniquote/internal/quote"
	"furniquote/internal/realtime"
	"furniquote/internal/storagex"
)

var svcLogger = logx.GetScope("quoting")

// ProjectStore is implemented by db.ProjectRepo.
type ProjectStore interface {
	Create(ctx context.Context, p *quote.Project) error
	Get(ctx context.Context, id string) (*quote.Project, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*quote.Project, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	UpdateDetails(ctx context.Context, p *quote.Project) error
	SaveCollection(ctx context.Context, p *quote.Project, c quote.Collection) error
	Delete(ctx context.Context, id string) error
}

// Indexer is implemented by esx.ProjectIndex.
type Indexer interface {
	Index(ctx context.Context, doc esx.ProjectDoc) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, ownerID, query string, from, size int) (esx.SearchResult, error)
}

type Service struct {
	Projects ProjectStore
	Catalog  catalog.Reader
	Blobs    storagex.ObjectStore // nil disables uploads
	Events   mqx.Publisher
	Index    Indexer
	Bus      realtime.Publisher
	Business func() config.Business
	Env      quote.Env

	// SideEffectTimeout bounds each best-effort call after a successful write.
	SideEffectTimeout time.Duration
}

func (s *Service) env() quote.Env {
	if s.Env.Now == nil || s.Env.NewID == nil {
		return quote.DefaultEnv()
	}
	return s.Env
}

func (s *Service) business() config.Business {
	if s.Business == nil {
		return config.Business{QuoteValidDays: 30}
	}
	return s.Business()
}

// load fetches a project and enforces ownership.
func (s *Service) load(ctx context.Context, ownerID, id string) (*quote.Project, error) {
	p, err := s.Projects.Get(ctx, id)
	if err != nil {
		return nil, quote.Persistence("load project", err)
	}
	if !p.OwnedBy(ownerID) {
		return nil, quote.ErrForbidden
	}
	return p, nil
}

func (s *Service) snapshot(ctx context.Context) (*quote.Catalog, error) {
	cat, err := s.Catalog.Snapshot(ctx)
	if err != nil {
		return nil, quote.Persistence("load catalog", err)
	}
	return cat, nil
}

// mutation edits a clone of the project. It reports whether anything changed;
// unchanged projects are not written.
type mutation func(p *quote.Project) (bool, error)

// mutate runs fn against a copy of the stored project and persists collection
// c. The stored project is only replaced by the copy after the write succeeds.
func (s *Service) mutate(ctx context.Context, ownerID, id string, c quote.Collection, op string, fn mutation) (*quote.Project, error) {
	cur, err := s.load(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	next := cur.Clone()
	changed, err := fn(next)
	if err != nil {
		return nil, err
	}
	if !changed {
		return cur, nil
	}
	if err := s.Projects.SaveCollection(ctx, next, c); err != nil {
		metrics.IncrementPersistenceFailure(op)
		svcLogger.Error("save collection failed", zap.String("project", id), zap.String("collection", string(c)), zap.Error(err))
		return nil, quote.Persistence(op, err)
	}
	metrics.IncrementMutation(string(c), op)
	s.afterWrite(ctx, next, mqx.ProjectUpdated, map[string]any{"collection": c, "op": op})
	return next, nil
}

// afterWrite indexes the project, emits the event and notifies the owner's
// clients. Failures are logged only.
func (s *Service) afterWrite(ctx context.Context, p *quote.Project, kind string, data any) {
	s.sideEffect(ctx, "index", func(ctx context.Context) error {
		if s.Index == nil {
			return nil
		}
		return s.Index.Index(ctx, searchDoc(p))
	})
	s.emit(ctx, p, kind, data)
	s.broadcast(ctx, p.OwnerID, realtime.EventProjectChanged, p)
}

func (s *Service) emit(ctx context.Context, p *quote.Project, kind string, data any) {
	s.sideEffect(ctx, "event "+kind, func(ctx context.Context) error {
		return mqx.Emit(ctx, s.Events, mqx.NewEvent(kind, p.ID, p.OwnerID, s.env().Now(), data))
	})
}

func (s *Service) broadcast(ctx context.Context, ownerID string, kind realtime.EventKind, data any) {
	s.sideEffect(ctx, "broadcast", func(ctx context.Context) error {
		if s.Bus == nil {
			return nil
		}
		return s.Bus.Publish(ctx, realtime.Message{Channel: realtime.UserChannel(ownerID), Event: kind, Data: data})
	})
}

func (s *Service) sideEffect(ctx context.Context, what string, fn func(context.Context) error) {
	timeout := s.SideEffectTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		svcLogger.Warn("side effect failed", zap.String("what", what), zap.Error(err))
	}
}

func searchDoc(p *quote.Project) esx.ProjectDoc {
	doc := esx.ProjectDoc{
		ID:         p.ID,
		OwnerID:    p.OwnerID,
		Name:       p.Name,
		TypeID:     p.TypeID,
		FinalTotal: p.Summary().FinalTotal,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.CustomerName != nil {
		doc.CustomerName = *p.CustomerName
	}
	return doc
}
