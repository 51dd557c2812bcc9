package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"furniquote/internal/quote"
)

const (
	typesTable     = "project_types"
	materialsTable = "materials"
)

// CatalogRepo stores the shared project type and material catalog.
type CatalogRepo struct {
	db *DB
}

func NewCatalogRepo(db *DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// ListTypes returns all types with their materials, both in creation order.
func (r *CatalogRepo) ListTypes(ctx context.Context) ([]quote.ProjectType, error) {
	q, args := r.db.builder().Select("id", "name", "icon", "description", "created_at", "updated_at").
		From(entsql.Table(typesTable)).
		OrderBy(entsql.Asc("created_at"), entsql.Asc("id")).
		Query()
	rows, err := r.db.SQL.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list project types: %w", err)
	}
	defer rows.Close()
	types := []quote.ProjectType{}
	idx := map[string]int{}
	for rows.Next() {
		var t quote.ProjectType
		if err := rows.Scan(&t.ID, &t.Name, &t.Icon, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project type: %w", err)
		}
		t.CreatedAt, t.UpdatedAt = t.CreatedAt.UTC(), t.UpdatedAt.UTC()
		t.Materials = []quote.Material{}
		idx[t.ID] = len(types)
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	materials, err := r.listMaterials(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range materials {
		if i, ok := idx[m.ProjectTypeID]; ok {
			types[i].Materials = append(types[i].Materials, m)
		}
	}
	return types, nil
}

func (r *CatalogRepo) listMaterials(ctx context.Context) ([]quote.Material, error) {
	q, args := r.db.builder().Select(materialColumns...).
		From(entsql.Table(materialsTable)).
		OrderBy(entsql.Asc("created_at"), entsql.Asc("id")).
		Query()
	rows, err := r.db.SQL.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	out := []quote.Material{}
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

var materialColumns = []string{"id", "project_type_id", "name", "rate_per_sqft", "created_at", "updated_at"}

func scanMaterial(s rowScanner) (quote.Material, error) {
	var m quote.Material
	if err := s.Scan(&m.ID, &m.ProjectTypeID, &m.Name, &m.RatePerSqft, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return m, err
	}
	m.CreatedAt, m.UpdatedAt = m.CreatedAt.UTC(), m.UpdatedAt.UTC()
	return m, nil
}

func (r *CatalogRepo) CountTypes(ctx context.Context) (int, error) {
	q, args := r.db.builder().Select(entsql.Count("*")).From(entsql.Table(typesTable)).Query()
	var n int
	if err := r.db.SQL.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count project types: %w", err)
	}
	return n, nil
}

// CreateType inserts a type and any materials it carries in one transaction.
func (r *CatalogRepo) CreateType(ctx context.Context, t quote.ProjectType) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		return r.insertType(ctx, tx, t)
	})
}

// Seed inserts all types in one transaction.
func (r *CatalogRepo) Seed(ctx context.Context, types []quote.ProjectType) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		for _, t := range types {
			if err := r.insertType(ctx, tx, t); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CatalogRepo) insertType(ctx context.Context, tx *sql.Tx, t quote.ProjectType) error {
	q, args := r.db.builder().Insert(typesTable).
		Columns("id", "name", "icon", "description", "created_at", "updated_at").
		Values(t.ID, t.Name, t.Icon, t.Description, t.CreatedAt.UTC(), t.UpdatedAt.UTC()).
		Query()
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("insert project type %s: %w", t.ID, err)
	}
	for _, m := range t.Materials {
		m.ProjectTypeID = t.ID
		if err := r.insertMaterial(ctx, tx, m); err != nil {
			return err
		}
	}
	return nil
}

func (r *CatalogRepo) UpdateType(ctx context.Context, t quote.ProjectType) error {
	q, args := r.db.builder().Update(typesTable).
		Set("name", t.Name).
		Set("icon", t.Icon).
		Set("description", t.Description).
		Set("updated_at", t.UpdatedAt.UTC()).
		Where(entsql.EQ("id", t.ID)).
		Query()
	return r.execOne(ctx, r.db.SQL, "project type", t.ID, q, args)
}

// DeleteType removes a type and its materials.
func (r *CatalogRepo) DeleteType(ctx context.Context, id string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		q, args := r.db.builder().Delete(materialsTable).Where(entsql.EQ("project_type_id", id)).Query()
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("delete materials of %s: %w", id, err)
		}
		q, args = r.db.builder().Delete(typesTable).Where(entsql.EQ("id", id)).Query()
		return r.execOne(ctx, tx, "project type", id, q, args)
	})
}

func (r *CatalogRepo) GetMaterial(ctx context.Context, id string) (quote.Material, error) {
	q, args := r.db.builder().Select(materialColumns...).
		From(entsql.Table(materialsTable)).
		Where(entsql.EQ("id", id)).
		Query()
	m, err := scanMaterial(r.db.SQL.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return m, &quote.NotFoundError{Kind: "material", ID: id}
	}
	if err != nil {
		return m, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

func (r *CatalogRepo) CreateMaterial(ctx context.Context, m quote.Material) error {
	return r.insertMaterial(ctx, r.db.SQL, m)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *CatalogRepo) insertMaterial(ctx context.Context, ex execer, m quote.Material) error {
	q, args := r.db.builder().Insert(materialsTable).
		Columns(materialColumns...).
		Values(m.ID, m.ProjectTypeID, m.Name, m.RatePerSqft, m.CreatedAt.UTC(), m.UpdatedAt.UTC()).
		Query()
	if _, err := ex.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("insert material %s: %w", m.ID, err)
	}
	return nil
}

func (r *CatalogRepo) UpdateMaterial(ctx context.Context, m quote.Material) error {
	q, args := r.db.builder().Update(materialsTable).
		Set("name", m.Name).
		Set("rate_per_sqft", m.RatePerSqft).
		Set("updated_at", m.UpdatedAt.UTC()).
		Where(entsql.EQ("id", m.ID)).
		Query()
	return r.execOne(ctx, r.db.SQL, "material", m.ID, q, args)
}

func (r *CatalogRepo) DeleteMaterial(ctx context.Context, id string) error {
	q, args := r.db.builder().Delete(materialsTable).Where(entsql.EQ("id", id)).Query()
	return r.execOne(ctx, r.db.SQL, "material", id, q, args)
}

func (r *CatalogRepo) execOne(ctx context.Context, ex execer, kind, id, q string, args []any) error {
	res, err := ex.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("write %s: %w", kind, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &quote.NotFoundError{Kind: kind, ID: id}
	}
	return nil
}

func (r *CatalogRepo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.SQL.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
