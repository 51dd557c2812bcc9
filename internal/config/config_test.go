package config

import (
	"errors"
	"os"
	"testing"
)

func TestGetIntBool(t *testing.T) {
	os.Setenv("X_INT", "42")
	t.Cleanup(func() { os.Unsetenv("X_INT") })
	if v := getInt("X_INT", 1); v != 42 {
		t.Fatalf("want 42, got %d", v)
	}

	os.Setenv("X_BOOL_T", "true")
	os.Setenv("X_BOOL_F", "false")
	t.Cleanup(func() { os.Unsetenv("X_BOOL_T"); os.Unsetenv("X_BOOL_F") })
	if !getBool("X_BOOL_T", false) {
		t.Fatalf("want true")
	}
	if getBool("X_BOOL_F", true) {
		t.Fatalf("want false")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APOLLO_ENABLE", "false")
	t.Setenv("QUOTE_VALID_DAYS", "")
	t.Setenv("DB_DRIVER", "sqlite")
	cfg, store, closer, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if closer != nil {
		t.Fatalf("no apollo closer expected")
	}
	if store.Get() != cfg {
		t.Fatalf("store must hold the loaded config")
	}
	if cfg.DB.Driver != "sqlite" || cfg.Business.QuoteValidDays != 30 || cfg.Business.WhatsApp == "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := Validate(cfg, nil); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestStoreValidatorsAndWatchers(t *testing.T) {
	cfg := &Config{}
	cfg.PG.MaxOpenConns = 10
	cfg.PG.MaxIdleConns = 5
	s := NewStore(cfg)

	var seen []map[string]bool
	stop := s.Watch(func(_ *Config, changed map[string]bool) { seen = append(seen, changed) })
	s.AddValidator(func(c *Config, _ map[string]bool) error {
		if c.PG.MaxIdleConns > c.PG.MaxOpenConns {
			return errors.New("idle > open")
		}
		return nil
	})

	bad := cloneConfig(cfg)
	bad.PG.MaxIdleConns = 50
	if s.UpdateValidated(bad, map[string]bool{"pg.max_idle": true}) {
		t.Fatalf("invalid update must be rejected")
	}
	if s.Get().PG.MaxIdleConns != 5 || len(seen) != 0 {
		t.Fatalf("rejected update leaked")
	}

	good := cloneConfig(cfg)
	good.PG.MaxIdleConns = 8
	if !s.UpdateValidated(good, map[string]bool{"pg.max_idle": true}) {
		t.Fatalf("valid update rejected")
	}
	if s.Get().PG.MaxIdleConns != 8 || len(seen) != 1 || !seen[0]["pg.max_idle"] {
		t.Fatalf("watcher not notified: %v", seen)
	}

	stop()
	s.Update(cloneConfig(good), map[string]bool{"x": true})
	if len(seen) != 1 {
		t.Fatalf("removed watcher still notified")
	}
}

type fakeCache map[string]any

func (f fakeCache) Set(key string, value interface{}, _ int) error { f[key] = value; return nil }
func (f fakeCache) EntryCount() int64                              { return int64(len(f)) }
func (f fakeCache) Get(key string) (interface{}, error) {
	v, ok := f[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return v, nil
}
func (f fakeCache) Del(key string) bool { delete(f, key); return true }
func (f fakeCache) Range(fn func(key, value interface{}) bool) {
	for k, v := range f {
		if !fn(k, v) {
			return
		}
	}
}
func (f fakeCache) Clear() {
	for k := range f {
		delete(f, k)
	}
}

func TestApplyApolloOverrides(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Business.QuoteValidDays = 30
	cache := fakeCache{
		"log.level":                 "debug",
		"business.name":             "Acme Interiors",
		"business.quote_valid_days": "45",
		"ratelimit.max":             "not-a-number",
		"pg.max_open":               "20",
	}
	applyApolloOverrides(cache, cfg)
	if cfg.Log.Level != "debug" || cfg.Business.Name != "Acme Interiors" {
		t.Fatalf("string overrides not applied: %+v", cfg)
	}
	if cfg.Business.QuoteValidDays != 45 || cfg.PG.MaxOpenConns != 20 {
		t.Fatalf("int overrides not applied: %+v", cfg)
	}
	if cfg.RateLimit.Limit != 0 {
		t.Fatalf("invalid int must be ignored")
	}
}
