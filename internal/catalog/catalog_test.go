package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"furniquote/internal/config"
	"furniquote/internal/db"
	"furniquote/internal/quote"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.Config{}
	cfg.DB.Driver = "sqlite"
	cfg.DB.SQLitePath = fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	d, closeFn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(closeFn)
	if err := db.Migrate(d); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	s := NewService(db.NewCatalogRepo(d), nil, time.Minute)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { base = base.Add(time.Second); return base }
	return s
}

func TestDefaultTypes(t *testing.T) {
	types, err := DefaultTypes(time.Now())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cat := quote.NewCatalog(types)
	want := map[string]float64{
		"oak-wood": 950, "maple-wood": 1140, "laminate": 608,
		"leather": 1900, "fabric": 1368, "pine-wood": 760, "mdf": 494,
	}
	for id, rate := range want {
		m, ok := cat.Material(id)
		if !ok || m.RatePerSqft != rate {
			t.Fatalf("material %s = %+v, want rate %v", id, m, rate)
		}
	}
	if len(types) != 3 || types[0].ID != "kitchen" || types[1].Icon != "Armchair" {
		t.Fatalf("unexpected types: %+v", types)
	}
	if types[2].Materials[1].ProjectTypeID != "bedroom" {
		t.Fatalf("seed materials must carry their type")
	}
}

func TestSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	seeded, err := s.SeedIfEmpty(ctx)
	if err != nil || !seeded {
		t.Fatalf("first seed: %v %v", seeded, err)
	}
	seeded, err = s.SeedIfEmpty(ctx)
	if err != nil || seeded {
		t.Fatalf("second seed must be skipped: %v %v", seeded, err)
	}

	cat, err := s.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	types := cat.Types()
	if len(types) != 3 || types[0].ID != "kitchen" || types[0].Materials[2].ID != "laminate" {
		t.Fatalf("seed order lost: %+v", types)
	}
}

func TestAdminWrites(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	if _, err := s.CreateType(ctx, TypeInput{Name: "  "}); !quote.IsValidation(err) {
		t.Fatalf("blank name must be rejected, got %v", err)
	}
	typ, err := s.CreateType(ctx, TypeInput{ID: "Office Desk", Name: "Office", Icon: "Briefcase"})
	if err != nil {
		t.Fatalf("create type: %v", err)
	}
	if typ.ID != "office-desk" {
		t.Fatalf("id = %q", typ.ID)
	}

	if _, err := s.CreateMaterial(ctx, "office-desk", MaterialInput{Name: "Teak", RatePerSqft: -1}); !quote.IsValidation(err) {
		t.Fatalf("negative rate must be rejected, got %v", err)
	}
	if _, err := s.CreateMaterial(ctx, "missing", MaterialInput{Name: "Teak", RatePerSqft: 1}); !quote.IsNotFound(err) {
		t.Fatalf("unknown type must be not found, got %v", err)
	}
	m, err := s.CreateMaterial(ctx, "office-desk", MaterialInput{ID: "teak", Name: "Teak", RatePerSqft: 0})
	if err != nil {
		t.Fatalf("zero rate is allowed: %v", err)
	}

	m, err = s.UpdateMaterial(ctx, m.ID, MaterialInput{Name: "Teak Premium", RatePerSqft: 1500})
	if err != nil {
		t.Fatalf("update material: %v", err)
	}
	cat, _ := s.Snapshot(ctx)
	if got, _ := cat.Material("teak"); got.RatePerSqft != 1500 || got.Name != "Teak Premium" {
		t.Fatalf("snapshot not refreshed: %+v", got)
	}

	if _, err := s.UpdateType(ctx, "office-desk", TypeInput{Name: "Workspace"}); err != nil {
		t.Fatalf("update type: %v", err)
	}
	if _, err := s.UpdateType(ctx, "missing", TypeInput{Name: "x"}); !quote.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
	if err := s.DeleteMaterial(ctx, "nope"); !quote.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
	if err := s.DeleteType(ctx, "office-desk"); err != nil {
		t.Fatalf("delete type: %v", err)
	}
	cat, _ = s.Snapshot(ctx)
	if _, ok := cat.Material("teak"); ok {
		t.Fatalf("material survived its type")
	}
}
