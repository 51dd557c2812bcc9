// Package catalog serves the shared project type and material catalog.
//
// Reads go through a Redis snapshot cache; every admin write invalidates it.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"furniquote/internal/logx"
	"furniquote/internal/metrics"
	"furniquote/internal/quote"
	"furniquote/internal/redisx"
)

const cacheKey = "catalog:v1"

var catalogLogger = logx.GetScope("catalog")

//go:embed seed.yaml
var seedYAML []byte

// Store is the persistent catalog, implemented by db.CatalogRepo.
type Store interface {
	ListTypes(ctx context.Context) ([]quote.ProjectType, error)
	CountTypes(ctx context.Context) (int, error)
	Seed(ctx context.Context, types []quote.ProjectType) error
	CreateType(ctx context.Context, t quote.ProjectType) error
	UpdateType(ctx context.Context, t quote.ProjectType) error
	DeleteType(ctx context.Context, id string) error
	GetMaterial(ctx context.Context, id string) (quote.Material, error)
	CreateMaterial(ctx context.Context, m quote.Material) error
	UpdateMaterial(ctx context.Context, m quote.Material) error
	DeleteMaterial(ctx context.Context, id string) error
}

// Reader yields a consistent catalog snapshot for pricing.
type Reader interface {
	Snapshot(ctx context.Context) (*quote.Catalog, error)
}

type Service struct {
	store Store
	rdb   *redisx.Client
	ttl   time.Duration
	now   func() time.Time
}

func NewService(store Store, rdb *redisx.Client, ttl time.Duration) *Service {
	return &Service{store: store, rdb: rdb, ttl: ttl, now: func() time.Time { return time.Now().UTC() }}
}

// Snapshot returns the cached catalog, falling back to the store on a miss
// or a cache error.
func (s *Service) Snapshot(ctx context.Context) (*quote.Catalog, error) {
	types, err := s.Types(ctx)
	if err != nil {
		return nil, err
	}
	return quote.NewCatalog(types), nil
}

// Types lists project types with their materials.
func (s *Service) Types(ctx context.Context) ([]quote.ProjectType, error) {
	var cached []quote.ProjectType
	hit, err := redisx.GetJSON(ctx, s.rdb, cacheKey, &cached)
	switch {
	case err != nil:
		metrics.IncrementCatalogCache("error")
		catalogLogger.Warn("catalog cache read failed", zap.Error(err))
	case hit:
		metrics.IncrementCatalogCache("hit")
		return cached, nil
	case s.rdb != nil:
		metrics.IncrementCatalogCache("miss")
	}

	types, err := s.store.ListTypes(ctx)
	if err != nil {
		return nil, quote.Persistence("load catalog", err)
	}
	if err := redisx.SetJSON(ctx, s.rdb, cacheKey, types, s.ttl); err != nil {
		catalogLogger.Warn("catalog cache write failed", zap.Error(err))
	}
	return types, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := redisx.Del(ctx, s.rdb, cacheKey); err != nil {
		catalogLogger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}

// SeedIfEmpty loads the embedded default catalog into an empty store.
func (s *Service) SeedIfEmpty(ctx context.Context) (bool, error) {
	n, err := s.store.CountTypes(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	types, err := DefaultTypes(s.now())
	if err != nil {
		return false, err
	}
	if err := s.store.Seed(ctx, types); err != nil {
		return false, err
	}
	s.invalidate(ctx)
	catalogLogger.Info("seeded default catalog", zap.Int("types", len(types)))
	return true, nil
}

// DefaultTypes parses the embedded seed. Timestamps step by a millisecond so
// that creation order survives the round trip through the store.
func DefaultTypes(base time.Time) ([]quote.ProjectType, error) {
	var doc struct {
		Types []quote.ProjectType `yaml:"types"`
	}
	if err := yaml.Unmarshal(seedYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}
	step := 0
	next := func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Millisecond)
	}
	for i := range doc.Types {
		t := &doc.Types[i]
		t.CreatedAt = next()
		t.UpdatedAt = t.CreatedAt
		for j := range t.Materials {
			m := &t.Materials[j]
			m.ProjectTypeID = t.ID
			m.CreatedAt = next()
			m.UpdatedAt = m.CreatedAt
		}
	}
	return doc.Types, nil
}

type TypeInput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type MaterialInput struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	RatePerSqft float64 `json:"rate_per_sqft"`
}

func (s *Service) CreateType(ctx context.Context, in TypeInput) (quote.ProjectType, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return quote.ProjectType{}, &quote.ValidationError{Field: "name", Message: "is required"}
	}
	now := s.now()
	t := quote.ProjectType{
		ID:          slugOr(in.ID),
		Name:        name,
		Icon:        strings.TrimSpace(in.Icon),
		Description: strings.TrimSpace(in.Description),
		Materials:   []quote.Material{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateType(ctx, t); err != nil {
		return quote.ProjectType{}, quote.Persistence("create project type", err)
	}
	s.invalidate(ctx)
	return t, nil
}

func (s *Service) UpdateType(ctx context.Context, id string, in TypeInput) (quote.ProjectType, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return quote.ProjectType{}, &quote.ValidationError{Field: "name", Message: "is required"}
	}
	types, err := s.Types(ctx)
	if err != nil {
		return quote.ProjectType{}, err
	}
	t, ok := quote.NewCatalog(types).Type(id)
	if !ok {
		return quote.ProjectType{}, &quote.NotFoundError{Kind: "project type", ID: id}
	}
	t.Name = name
	t.Icon = strings.TrimSpace(in.Icon)
	t.Description = strings.TrimSpace(in.Description)
	t.UpdatedAt = s.now()
	if err := s.store.UpdateType(ctx, t); err != nil {
		return quote.ProjectType{}, quote.Persistence("update project type", err)
	}
	s.invalidate(ctx)
	return t, nil
}

func (s *Service) DeleteType(ctx context.Context, id string) error {
	if err := s.store.DeleteType(ctx, id); err != nil {
		return quote.Persistence("delete project type", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) CreateMaterial(ctx context.Context, typeID string, in MaterialInput) (quote.Material, error) {
	if err := validateMaterial(in); err != nil {
		return quote.Material{}, err
	}
	types, err := s.Types(ctx)
	if err != nil {
		return quote.Material{}, err
	}
	if _, ok := quote.NewCatalog(types).Type(typeID); !ok {
		return quote.Material{}, &quote.NotFoundError{Kind: "project type", ID: typeID}
	}
	now := s.now()
	m := quote.Material{
		ID:            slugOr(in.ID),
		Name:          strings.TrimSpace(in.Name),
		RatePerSqft:   in.RatePerSqft,
		ProjectTypeID: typeID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.CreateMaterial(ctx, m); err != nil {
		return quote.Material{}, quote.Persistence("create material", err)
	}
	s.invalidate(ctx)
	return m, nil
}

// UpdateMaterial changes a material's name and rate. Stored item amounts are
// not repriced; they pick the new rate up on their next edit.
func (s *Service) UpdateMaterial(ctx context.Context, id string, in MaterialInput) (quote.Material, error) {
	if err := validateMaterial(in); err != nil {
		return quote.Material{}, err
	}
	m, err := s.store.GetMaterial(ctx, id)
	if err != nil {
		return quote.Material{}, quote.Persistence("get material", err)
	}
	m.Name = strings.TrimSpace(in.Name)
	m.RatePerSqft = in.RatePerSqft
	m.UpdatedAt = s.now()
	if err := s.store.UpdateMaterial(ctx, m); err != nil {
		return quote.Material{}, quote.Persistence("update material", err)
	}
	s.invalidate(ctx)
	return m, nil
}

func (s *Service) DeleteMaterial(ctx context.Context, id string) error {
	if err := s.store.DeleteMaterial(ctx, id); err != nil {
		return quote.Persistence("delete material", err)
	}
	s.invalidate(ctx)
	return nil
}

func validateMaterial(in MaterialInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return &quote.ValidationError{Field: "name", Message: "is required"}
	}
	if math.IsNaN(in.RatePerSqft) || math.IsInf(in.RatePerSqft, 0) || in.RatePerSqft < 0 {
		return &quote.ValidationError{Field: "rate_per_sqft", Message: "must be a non-negative number"}
	}
	return nil
}

func slugOr(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return uuid.NewString()
	}
	return strings.Join(strings.Fields(id), "-")
}
