package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"furniquote/internal/catalog"
	"furniquote/internal/config"
	"furniquote/internal/db"
	"furniquote/internal/quoting"
	"furniquote/internal/realtime"
)

type memBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (b *memBlobs) Upload(_ context.Context, key string, r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[key] = raw
	return nil
}

func (b *memBlobs) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, key)
	return nil
}

func (b *memBlobs) ListKeys(_ context.Context, prefix string) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []string
	for k := range b.objects {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return out, nil
}

func (b *memBlobs) PublicURL(key string) string { return "https://cdn.test/" + key }

type testServer struct {
	app   *fiber.App
	blobs *memBlobs
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{AppEnv: "dev"}
	cfg.DB.Driver = "sqlite"
	cfg.DB.SQLitePath = fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "test-secret"
	cfg.JWT.Issuer = "furniquote"
	cfg.JWT.Audience = "furniquote-api"
	cfg.JWT.AccessMin = 5
	cfg.RateLimit.WindowSec = 60
	cfg.RateLimit.Limit = 1000
	cfg.Business = config.Business{Name: "Test Interiors", WhatsApp: "+91 96364 77399", QuoteValidDays: 30}

	d, closeFn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(closeFn)
	if err := db.Migrate(d); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cat := catalog.NewService(db.NewCatalogRepo(d), nil, time.Minute)
	if _, err := cat.SeedIfEmpty(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	hub := realtime.NewHub()
	blobs := &memBlobs{objects: map[string][]byte{}}
	svc := &quoting.Service{
		Projects: db.NewProjectRepo(d),
		Catalog:  cat,
		Blobs:    blobs,
		Bus:      realtime.LocalBus{Hub: hub},
		Business: func() config.Business { return cfg.Business },
	}

	app := NewApp(4 << 20)
	RegisterCommonMiddlewares(app, "*")
	Register(app, &Providers{
		Config:  func() *config.Config { return cfg },
		Quoting: svc,
		Catalog: cat,
		Hub:     hub,
		Ping:    d.SQL.PingContext,
	})
	return &testServer{app: app, blobs: blobs}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return s.send(t, req, token)
}

func (s *testServer) send(t *testing.T, req *http.Request, token string) (*http.Response, map[string]any) {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := s.app.Test(req, 5000)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	raw, _ := io.ReadAll(res.Body)
	var out map[string]any
	if strings.HasPrefix(res.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode %s: %v", raw, err)
		}
	} else {
		out = map[string]any{"raw": string(raw)}
	}
	return res, out
}

func (s *testServer) token(t *testing.T, userID string, roles ...string) string {
	t.Helper()
	res, body := s.do(t, http.MethodPost, "/api/v1/auth/dev-token", "", map[string]any{"user_id": userID, "roles": roles})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("dev token: status=%d body=%v", res.StatusCode, body)
	}
	return body["data"].(map[string]any)["access_token"].(string)
}

func data(body map[string]any) map[string]any {
	d, _ := body["data"].(map[string]any)
	return d
}

func TestNewAppKeepsRequestValues(t *testing.T) {
	app := NewApp(1 << 20)
	if !app.Config().Immutable {
		t.Fatalf("app must copy request values")
	}
	var seen []string
	app.Get("/p/:id", func(c *fiber.Ctx) error {
		seen = append(seen, c.Params("id"))
		return c.SendStatus(http.StatusNoContent)
	})
	for _, id := range []string{"first-project", "second-project", "third-project"} {
		if _, err := app.Test(httptest.NewRequest(http.MethodGet, "/p/"+id, nil)); err != nil {
			t.Fatalf("request: %v", err)
		}
	}
	if strings.Join(seen, ",") != "first-project,second-project,third-project" {
		t.Fatalf("params changed after their request: %v", seen)
	}
}

func TestHealthAndPublicRoutes(t *testing.T) {
	s := newTestServer(t)

	res, body := s.do(t, http.MethodGet, "/health", "", nil)
	if res.StatusCode != http.StatusOK || data(body)["status"] != "ok" {
		t.Fatalf("health: %d %v", res.StatusCode, body)
	}
	if res, _ := s.do(t, http.MethodGet, "/ready", "", nil); res.StatusCode != http.StatusOK {
		t.Fatalf("ready: %d", res.StatusCode)
	}
	if res, _ := s.do(t, http.MethodGet, "/metrics", "", nil); res.StatusCode != http.StatusOK {
		t.Fatalf("metrics: %d", res.StatusCode)
	}

	res, body = s.do(t, http.MethodGet, "/api/v1/catalog/types", "", nil)
	if res.StatusCode != http.StatusOK || len(body["data"].([]any)) != 3 {
		t.Fatalf("catalog: %d %v", res.StatusCode, body)
	}
	res, body = s.do(t, http.MethodGet, "/api/v1/collections?popular=true", "", nil)
	if res.StatusCode != http.StatusOK || len(body["data"].([]any)) != 2 {
		t.Fatalf("collections: %d %v", res.StatusCode, body)
	}
	res, body = s.do(t, http.MethodGet, "/api/v1/collections/nope", "", nil)
	if res.StatusCode != http.StatusNotFound || body["code"] != "E_NOT_FOUND" {
		t.Fatalf("unknown collection: %d %v", res.StatusCode, body)
	}
	res, body = s.do(t, http.MethodGet, "/nope", "", nil)
	if res.StatusCode != http.StatusNotFound || body["code"] != "E_NOT_FOUND" {
		t.Fatalf("unknown route: %d %v", res.StatusCode, body)
	}
}

func TestProjectLifecycle(t *testing.T) {
	s := newTestServer(t)
	alice := s.token(t, "alice")
	bob := s.token(t, "bob")

	if res, _ := s.do(t, http.MethodGet, "/api/v1/projects", "", nil); res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous list: %d", res.StatusCode)
	}

	res, body := s.do(t, http.MethodPost, "/api/v1/projects", alice, map[string]any{"name": "Main Kitchen", "type_id": "kitchen", "customer_name": "Asha"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create: %d %v", res.StatusCode, body)
	}
	id := data(body)["id"].(string)
	base := "/api/v1/projects/" + id

	res, body = s.do(t, http.MethodPost, "/api/v1/projects", alice, map[string]any{"name": "X", "type_id": "garage"})
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown type: %d %v", res.StatusCode, body)
	}

	res, body = s.do(t, http.MethodPost, base+"/items", alice, map[string]any{"name": "Base", "length": 600, "width": 400, "material_id": "oak-wood", "quantity": 2})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("add item: %d %v", res.StatusCode, body)
	}
	item := data(body)["entity"].(map[string]any)
	if item["amount"].(float64) != 4902 {
		t.Fatalf("amount = %v", item["amount"])
	}

	res, body = s.do(t, http.MethodPost, base+"/items", alice, map[string]any{"name": "Bad", "length": -1, "width": 400, "material_id": "oak-wood", "quantity": 1})
	if res.StatusCode != http.StatusBadRequest || body["code"] != "E_INVALID_PARAM" {
		t.Fatalf("invalid item: %d %v", res.StatusCode, body)
	}

	res, _ = s.do(t, http.MethodPost, base+"/extra-costs", alice, map[string]any{"name": "Discount", "amount": -402})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("add extra cost: %d", res.StatusCode)
	}
	res, body = s.do(t, http.MethodGet, base+"/summary", alice, nil)
	if res.StatusCode != http.StatusOK || data(body)["final_total"].(float64) != 4500 {
		t.Fatalf("summary: %d %v", res.StatusCode, body)
	}

	if res, body := s.do(t, http.MethodGet, base, bob, nil); res.StatusCode != http.StatusForbidden || body["code"] != "E_FORBIDDEN" {
		t.Fatalf("foreign get: %d %v", res.StatusCode, body)
	}

	res, body = s.do(t, http.MethodGet, base+"/quotation?format=text", alice, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("quotation: %d %v", res.StatusCode, body)
	}
	if cd := res.Header.Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment") || !strings.Contains(cd, "_quotation.txt") {
		t.Fatalf("content disposition = %q", cd)
	}
	if !strings.Contains(body["raw"].(string), "GRAND TOTAL: Rs 4500.00") {
		t.Fatalf("unexpected text: %s", body["raw"])
	}
	if res, _ := s.do(t, http.MethodGet, base+"/quotation?format=doc", alice, nil); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown format: %d", res.StatusCode)
	}

	res, body = s.do(t, http.MethodPost, base+"/booking", alice, nil)
	if res.StatusCode != http.StatusOK || !strings.HasPrefix(data(body)["link"].(string), "https://wa.me/919636477399?text=") {
		t.Fatalf("booking: %d %v", res.StatusCode, body)
	}

	res, body = s.do(t, http.MethodPost, base+"/milestones", alice, map[string]any{"name": "Measure"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("add milestone: %d %v", res.StatusCode, body)
	}
	milestone := base + "/milestones/" + data(body)["entity"].(map[string]any)["id"].(string)
	for _, path := range []string{base + "/items/" + item["id"].(string), milestone} {
		res, body = s.do(t, http.MethodDelete, path, alice, nil)
		if res.StatusCode != http.StatusBadRequest || body["code"] != "E_CONFIRMATION_REQUIRED" {
			t.Fatalf("unconfirmed delete of %s: %d %v", path, res.StatusCode, body)
		}
	}
	res, body = s.do(t, http.MethodGet, base+"/summary", alice, nil)
	if data(body)["final_total"].(float64) != 4500 {
		t.Fatalf("unconfirmed delete changed totals: %v", body)
	}
	res, body = s.do(t, http.MethodDelete, milestone+"?confirm=true", alice, nil)
	if ms, _ := data(body)["milestones"].([]any); res.StatusCode != http.StatusOK || len(ms) != 0 {
		t.Fatalf("confirmed milestone delete: %d %v", res.StatusCode, body)
	}

	res, body = s.do(t, http.MethodGet, "/api/v1/projects?limit=10", alice, nil)
	if res.StatusCode != http.StatusOK || len(body["data"].([]any)) != 1 {
		t.Fatalf("list: %d %v", res.StatusCode, body)
	}

	res, body = s.do(t, http.MethodDelete, base, alice, nil)
	if res.StatusCode != http.StatusBadRequest || body["code"] != "E_CONFIRMATION_REQUIRED" {
		t.Fatalf("unconfirmed delete: %d %v", res.StatusCode, body)
	}
	if res, _ := s.do(t, http.MethodDelete, base+"?confirm=true", alice, nil); res.StatusCode != http.StatusOK {
		t.Fatalf("delete: %d", res.StatusCode)
	}
	if res, _ := s.do(t, http.MethodGet, base, alice, nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete: %d", res.StatusCode)
	}
}

func TestPhotoUpload(t *testing.T) {
	s := newTestServer(t)
	alice := s.token(t, "alice")
	_, body := s.do(t, http.MethodPost, "/api/v1/projects", alice, map[string]any{"name": "Sofa", "type_id": "sofa"})
	id := data(body)["id"].(string)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("category", "before")
	_ = w.WriteField("caption", "old sofa")
	fw, _ := w.CreateFormFile("file", "sofa.jpg")
	_, _ = fw.Write([]byte("jpeg bytes"))
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+id+"/photos/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	res, body := s.send(t, req, alice)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("upload: %d %v", res.StatusCode, body)
	}
	photo := data(body)["entity"].(map[string]any)
	key := photo["storage_key"].(string)
	if photo["caption"] != "old sofa" || string(s.blobs.objects[key]) != "jpeg bytes" {
		t.Fatalf("unexpected photo: %v", photo)
	}

	photoURL := "/api/v1/projects/" + id + "/photos/" + photo["id"].(string)
	res, body = s.do(t, http.MethodDelete, photoURL, alice, nil)
	if res.StatusCode != http.StatusBadRequest || body["code"] != "E_CONFIRMATION_REQUIRED" || len(s.blobs.objects) != 1 {
		t.Fatalf("unconfirmed photo delete: %d %v", res.StatusCode, body)
	}
	res, _ = s.do(t, http.MethodDelete, photoURL+"?confirm=true", alice, nil)
	if res.StatusCode != http.StatusOK || len(s.blobs.objects) != 0 {
		t.Fatalf("remove photo: %d objects=%d", res.StatusCode, len(s.blobs.objects))
	}
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t)
	user := s.token(t, "u1")
	admin := s.token(t, "ops", "admin")

	payload := map[string]any{"name": "Pine", "rate_per_sqft": 700}
	if res, _ := s.do(t, http.MethodPost, "/api/v1/admin/types/kitchen/materials", user, payload); res.StatusCode != http.StatusForbidden {
		t.Fatalf("non-admin: %d", res.StatusCode)
	}
	res, body := s.do(t, http.MethodPost, "/api/v1/admin/types/kitchen/materials", admin, payload)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create material: %d %v", res.StatusCode, body)
	}
	pine := data(body)["id"].(string)
	res, body = s.do(t, http.MethodPost, "/api/v1/admin/types/kitchen/materials", admin, map[string]any{"name": "Bad", "rate_per_sqft": -1})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("negative rate: %d %v", res.StatusCode, body)
	}
	_, body = s.do(t, http.MethodGet, "/api/v1/catalog/types", "", nil)
	kitchen := body["data"].([]any)[0].(map[string]any)
	if n := len(kitchen["materials"].([]any)); n != 4 {
		t.Fatalf("kitchen materials = %d", n)
	}

	_, body = s.do(t, http.MethodPost, "/api/v1/projects", user, map[string]any{"name": "Pantry", "type_id": "kitchen"})
	base := "/api/v1/projects/" + data(body)["id"].(string)
	res, body = s.do(t, http.MethodPost, base+"/items", user, map[string]any{"name": "Door", "length": 600, "width": 400, "material_id": pine, "quantity": 1})
	if res.StatusCode != http.StatusCreated || data(body)["entity"].(map[string]any)["amount"].(float64) != 1806 {
		t.Fatalf("add pine item: %d %v", res.StatusCode, body)
	}
	if res, body := s.do(t, http.MethodPut, "/api/v1/admin/materials/"+pine, admin, map[string]any{"name": "Pine", "rate_per_sqft": 800}); res.StatusCode != http.StatusOK {
		t.Fatalf("update rate: %d %v", res.StatusCode, body)
	}
	res, body = s.do(t, http.MethodGet, base+"/summary", user, nil)
	if data(body)["final_total"].(float64) != 1806 {
		t.Fatalf("rate edit must not reprice stored items: %v", body)
	}
	res, body = s.do(t, http.MethodPost, base+"/reprice", user, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("reprice: %d %v", res.StatusCode, body)
	}
	items := data(body)["items"].([]any)
	if items[0].(map[string]any)["amount"].(float64) != 2064 {
		t.Fatalf("repriced item: %v", items[0])
	}
}
