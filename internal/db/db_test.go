package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"furniquote/internal/config"
	"furniquote/internal/quote"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	cfg := &config.Config{}
	cfg.DB.Driver = "sqlite"
	cfg.DB.SQLitePath = fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	d, closeFn, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(closeFn)
	if err := Migrate(d); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return d
}

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func strp(s string) *string { return &s }

func testProject(id, owner string, updated time.Time) *quote.Project {
	return &quote.Project{
		ID: id, OwnerID: owner, Name: "Kitchen " + id, TypeID: "kitchen",
		CustomerName: strp("Asha"),
		Items:        []quote.ProjectItem{},
		ExtraCosts:   []quote.ExtraCost{},
		Milestones:   []quote.Milestone{},
		Photos:       []quote.ProjectPhoto{},
		CreatedAt:    t0, UpdatedAt: updated,
	}
}

func TestProjectRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepo(openTestDB(t))

	p := testProject("p1", "u1", t0)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != p.Name || got.OwnerID != "u1" || got.CustomerName == nil || *got.CustomerName != "Asha" {
		t.Fatalf("unexpected project: %+v", got)
	}
	if got.CustomerMobile != nil {
		t.Fatalf("absent mobile must stay nil")
	}
	if got.Items == nil || len(got.Items) != 0 || got.Photos == nil {
		t.Fatalf("collections must decode to empty slices")
	}
	if !got.CreatedAt.Equal(t0) {
		t.Fatalf("created_at = %v", got.CreatedAt)
	}

	if _, err := repo.Get(ctx, "missing"); !quote.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestProjectRepo_SaveCollectionAndDetails(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepo(openTestDB(t))

	p := testProject("p1", "u1", t0)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	p.Items = append(p.Items, quote.ProjectItem{
		ID: "i1", Name: "Base cabinet", Length: 600, Width: 400, MaterialID: "oak-wood",
		Quantity: 2, Sqft: 2.58, Amount: 4902,
	})
	p.Name = "Renamed but not saved"
	p.UpdatedAt = t0.Add(5 * time.Minute)
	if err := repo.SaveCollection(ctx, p, quote.CollectionItems); err != nil {
		t.Fatalf("save items: %v", err)
	}

	got, _ := repo.Get(ctx, "p1")
	if len(got.Items) != 1 || got.Items[0].Amount != 4902 {
		t.Fatalf("items not saved: %+v", got.Items)
	}
	if got.Name != "Kitchen p1" {
		t.Fatalf("SaveCollection must not write details, got %q", got.Name)
	}
	if !got.UpdatedAt.Equal(p.UpdatedAt) {
		t.Fatalf("updated_at = %v", got.UpdatedAt)
	}

	if err := repo.UpdateDetails(ctx, p); err != nil {
		t.Fatalf("update details: %v", err)
	}
	got, _ = repo.Get(ctx, "p1")
	if got.Name != "Renamed but not saved" {
		t.Fatalf("details not saved: %q", got.Name)
	}

	if err := repo.SaveCollection(ctx, p, quote.Collection("bogus")); err == nil {
		t.Fatalf("unknown collection must fail")
	}
	ghost := testProject("ghost", "u1", t0)
	if err := repo.SaveCollection(ctx, ghost, quote.CollectionPhotos); !quote.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestProjectRepo_ListCountDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepo(openTestDB(t))

	for i, id := range []string{"a", "b", "c"} {
		if err := repo.Create(ctx, testProject(id, "u1", t0.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	if err := repo.Create(ctx, testProject("other", "u2", t0)); err != nil {
		t.Fatalf("create other: %v", err)
	}

	list, err := repo.ListByOwner(ctx, "u1", 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 || list[0].ID != "c" || list[2].ID != "a" {
		t.Fatalf("want newest first, got %v", ids(list))
	}
	page, _ := repo.ListByOwner(ctx, "u1", 1, 1)
	if len(page) != 1 || page[0].ID != "b" {
		t.Fatalf("paging broken: %v", ids(page))
	}
	if n, _ := repo.CountByOwner(ctx, "u1"); n != 3 {
		t.Fatalf("count = %d", n)
	}

	if err := repo.Delete(ctx, "b"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "b"); !quote.IsNotFound(err) {
		t.Fatalf("second delete must be not found, got %v", err)
	}
	if n, _ := repo.CountByOwner(ctx, "u1"); n != 2 {
		t.Fatalf("count after delete = %d", n)
	}
}

func ids(ps []*quote.Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestCatalogRepo_SeedAndCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepo(openTestDB(t))

	types := []quote.ProjectType{
		{ID: "kitchen", Name: "Kitchen", Icon: "ChefHat", CreatedAt: t0, UpdatedAt: t0, Materials: []quote.Material{
			{ID: "oak-wood", Name: "Oak Wood", RatePerSqft: 950, CreatedAt: t0, UpdatedAt: t0},
			{ID: "laminate", Name: "Laminate", RatePerSqft: 608, CreatedAt: t0.Add(time.Minute), UpdatedAt: t0},
		}},
		{ID: "sofa", Name: "Sofa", Icon: "Armchair", CreatedAt: t0.Add(time.Minute), UpdatedAt: t0, Materials: []quote.Material{
			{ID: "leather", Name: "Leather", RatePerSqft: 1900, CreatedAt: t0.Add(2 * time.Minute), UpdatedAt: t0},
		}},
	}
	if err := repo.Seed(ctx, types); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n, _ := repo.CountTypes(ctx); n != 2 {
		t.Fatalf("count types = %d", n)
	}

	got, err := repo.ListTypes(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "kitchen" || len(got[0].Materials) != 2 || got[0].Materials[0].ID != "oak-wood" {
		t.Fatalf("unexpected catalog: %+v", got)
	}
	if got[1].Materials[0].ProjectTypeID != "sofa" {
		t.Fatalf("material must carry its type")
	}

	m, err := repo.GetMaterial(ctx, "laminate")
	if err != nil || m.RatePerSqft != 608 {
		t.Fatalf("get material: %+v %v", m, err)
	}
	m.RatePerSqft = 650
	m.UpdatedAt = t0.Add(time.Hour)
	if err := repo.UpdateMaterial(ctx, m); err != nil {
		t.Fatalf("update material: %v", err)
	}
	m, _ = repo.GetMaterial(ctx, "laminate")
	if m.RatePerSqft != 650 {
		t.Fatalf("rate not updated: %v", m.RatePerSqft)
	}

	if err := repo.CreateMaterial(ctx, quote.Material{ID: "pine", Name: "Pine", RatePerSqft: 760, ProjectTypeID: "sofa", CreatedAt: t0, UpdatedAt: t0}); err != nil {
		t.Fatalf("create material: %v", err)
	}
	if err := repo.DeleteMaterial(ctx, "pine"); err != nil {
		t.Fatalf("delete material: %v", err)
	}
	if err := repo.DeleteMaterial(ctx, "pine"); !quote.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}

	if err := repo.UpdateType(ctx, quote.ProjectType{ID: "nope", Name: "x", UpdatedAt: t0}); !quote.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
	if err := repo.DeleteType(ctx, "sofa"); err != nil {
		t.Fatalf("delete type: %v", err)
	}
	if _, err := repo.GetMaterial(ctx, "leather"); !quote.IsNotFound(err) {
		t.Fatalf("materials must go with their type, got %v", err)
	}
}
