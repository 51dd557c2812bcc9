package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"go.uber.org/zap"

	"furniquote/internal/quote"
)

const projectsTable = "projects"

var projectColumns = []string{
	"id", "owner_id", "name", "type_id",
	"customer_name", "customer_mobile", "customer_address",
	"items", "extra_costs", "milestones", "photos",
	"created_at", "updated_at",
}

// ProjectRepo stores projects as one row per project with the nested
// collections in JSON columns.
type ProjectRepo struct {
	db *DB
}

func NewProjectRepo(db *DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

func (r *ProjectRepo) Create(ctx context.Context, p *quote.Project) error {
	cols, err := encodeCollections(p)
	if err != nil {
		return err
	}
	q, args := r.db.builder().Insert(projectsTable).
		Columns(projectColumns...).
		Values(
			p.ID, p.OwnerID, p.Name, p.TypeID,
			nullable(p.CustomerName), nullable(p.CustomerMobile), nullable(p.CustomerAddress),
			cols[quote.CollectionItems], cols[quote.CollectionExtraCosts],
			cols[quote.CollectionMilestones], cols[quote.CollectionPhotos],
			p.CreatedAt.UTC(), p.UpdatedAt.UTC(),
		).Query()
	if _, err := r.db.SQL.ExecContext(ctx, q, args...); err != nil {
		dbLogger.Error("insert project failed", zap.String("id", p.ID), zap.Error(err))
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// Get loads a project or returns a *quote.NotFoundError.
func (r *ProjectRepo) Get(ctx context.Context, id string) (*quote.Project, error) {
	q, args := r.db.builder().Select(projectColumns...).
		From(entsql.Table(projectsTable)).
		Where(entsql.EQ("id", id)).
		Query()
	row := r.db.SQL.QueryRowContext(ctx, q, args...)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &quote.NotFoundError{Kind: "project", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// ListByOwner returns the owner's projects, most recently updated first.
func (r *ProjectRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*quote.Project, error) {
	sel := r.db.builder().Select(projectColumns...).
		From(entsql.Table(projectsTable)).
		Where(entsql.EQ("owner_id", ownerID)).
		OrderBy(entsql.Desc("updated_at"), entsql.Asc("id"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	if offset > 0 {
		sel = sel.Offset(offset)
	}
	q, args := sel.Query()
	rows, err := r.db.SQL.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	out := []*quote.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProjectRepo) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	q, args := r.db.builder().Select(entsql.Count("*")).
		From(entsql.Table(projectsTable)).
		Where(entsql.EQ("owner_id", ownerID)).
		Query()
	var n int
	if err := r.db.SQL.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

// UpdateDetails writes the top-level fields only.
func (r *ProjectRepo) UpdateDetails(ctx context.Context, p *quote.Project) error {
	q, args := r.db.builder().Update(projectsTable).
		Set("name", p.Name).
		Set("type_id", p.TypeID).
		Set("customer_name", nullable(p.CustomerName)).
		Set("customer_mobile", nullable(p.CustomerMobile)).
		Set("customer_address", nullable(p.CustomerAddress)).
		Set("updated_at", p.UpdatedAt.UTC()).
		Where(entsql.EQ("id", p.ID)).
		Query()
	return r.exec(ctx, p.ID, q, args)
}

// SaveCollection overwrites one nested collection and updated_at. Concurrent
// writers to the same collection are last-writer-wins.
func (r *ProjectRepo) SaveCollection(ctx context.Context, p *quote.Project, c quote.Collection) error {
	cols, err := encodeCollections(p)
	if err != nil {
		return err
	}
	raw, ok := cols[c]
	if !ok {
		return fmt.Errorf("unknown collection %q", c)
	}
	q, args := r.db.builder().Update(projectsTable).
		Set(string(c), raw).
		Set("updated_at", p.UpdatedAt.UTC()).
		Where(entsql.EQ("id", p.ID)).
		Query()
	return r.exec(ctx, p.ID, q, args)
}

func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	q, args := r.db.builder().Delete(projectsTable).Where(entsql.EQ("id", id)).Query()
	return r.exec(ctx, id, q, args)
}

func (r *ProjectRepo) exec(ctx context.Context, id, q string, args []any) error {
	res, err := r.db.SQL.ExecContext(ctx, q, args...)
	if err != nil {
		dbLogger.Error("project write failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("write project: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &quote.NotFoundError{Kind: "project", ID: id}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(s rowScanner) (*quote.Project, error) {
	var (
		p                             quote.Project
		name, mobile, address         sql.NullString
		items, costs, mstones, photos []byte
		createdAt, updatedAt          time.Time
	)
	if err := s.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.TypeID,
		&name, &mobile, &address,
		&items, &costs, &mstones, &photos,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	p.CustomerName = fromNull(name)
	p.CustomerMobile = fromNull(mobile)
	p.CustomerAddress = fromNull(address)
	p.CreatedAt = createdAt.UTC()
	p.UpdatedAt = updatedAt.UTC()
	p.Items = []quote.ProjectItem{}
	p.ExtraCosts = []quote.ExtraCost{}
	p.Milestones = []quote.Milestone{}
	p.Photos = []quote.ProjectPhoto{}
	for _, f := range []struct {
		raw []byte
		dst any
	}{
		{items, &p.Items}, {costs, &p.ExtraCosts}, {mstones, &p.Milestones}, {photos, &p.Photos},
	} {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return nil, fmt.Errorf("decode project %s: %w", p.ID, err)
		}
	}
	return &p, nil
}

func encodeCollections(p *quote.Project) (map[quote.Collection]string, error) {
	out := make(map[quote.Collection]string, 4)
	for c, v := range map[quote.Collection]any{
		quote.CollectionItems:      nonNil(p.Items),
		quote.CollectionExtraCosts: nonNil(p.ExtraCosts),
		quote.CollectionMilestones: nonNil(p.Milestones),
		quote.CollectionPhotos:     nonNil(p.Photos),
	} {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", c, err)
		}
		out[c] = string(b)
	}
	return out, nil
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func fromNull(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
