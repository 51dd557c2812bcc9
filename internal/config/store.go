package config

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Watcher is notified after a config update is committed.
type Watcher func(newCfg *Config, changed map[string]bool)

// Validator can veto an update before it is committed.
type Validator func(newCfg *Config, changed map[string]bool) error

// Store holds the live config and fans out changes.
type Store struct {
	v          atomic.Pointer[Config]
	mu         sync.RWMutex
	nextID     int
	watchers   map[int]Watcher
	validators map[int]Validator
}

func NewStore(cfg *Config) *Store {
	s := &Store{watchers: map[int]Watcher{}, validators: map[int]Validator{}}
	s.v.Store(cfg)
	return s
}

func (s *Store) Get() *Config {
	return s.v.Load()
}

// Update commits newCfg without validation and notifies watchers.
func (s *Store) Update(newCfg *Config, changed map[string]bool) {
	s.v.Store(newCfg)
	s.mu.RLock()
	ws := make([]Watcher, 0, len(s.watchers))
	for _, w := range s.watchers {
		ws = append(ws, w)
	}
	s.mu.RUnlock()
	for _, w := range ws {
		w(newCfg, changed)
	}
}

// Watch registers w and returns a function that removes it.
func (s *Store) Watch(w Watcher) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = w
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}
}

// AddValidator registers a validator. If any validator returns error on update, the update will be discarded.
func (s *Store) AddValidator(v Validator) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.validators[id] = v
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.validators, id)
		s.mu.Unlock()
	}
}

// UpdateValidated runs validators before committing the config. If any validator fails, no change is applied.
func (s *Store) UpdateValidated(newCfg *Config, changed map[string]bool) bool {
	s.mu.RLock()
	vals := make([]Validator, 0, len(s.validators))
	for _, v := range s.validators {
		vals = append(vals, v)
	}
	s.mu.RUnlock()
	for _, v := range vals {
		if err := v(newCfg, changed); err != nil {
			configLogger.Sugar().Warnf("config update rejected: %v", err)
			return false
		}
	}
	s.Update(newCfg, changed)
	return true
}

// Validate is the default validator for runtime changes.
func Validate(c *Config, _ map[string]bool) error {
	var errs []error
	if c.PG.MaxIdleConns > c.PG.MaxOpenConns {
		errs = append(errs, errors.New("PG_MAX_IDLE cannot exceed PG_MAX_OPEN"))
	}
	if c.Business.QuoteValidDays <= 0 {
		errs = append(errs, fmt.Errorf("quote validity must be positive, got %d", c.Business.QuoteValidDays))
	}
	if c.RateLimit.Limit <= 0 || c.RateLimit.WindowSec <= 0 {
		errs = append(errs, errors.New("rate limit window and max must be positive"))
	}
	switch {
	case c.JWT.Algo != "HS256" && c.JWT.Algo != "RS256":
		errs = append(errs, fmt.Errorf("unsupported JWT_ALGO %q", c.JWT.Algo))
	case c.JWT.Algo == "RS256" && c.JWT.RSPublicKey == "":
		errs = append(errs, errors.New("RS256 needs JWT_RS_PUBLIC_KEY"))
	}
	if c.Catalog.CacheTTLSec < 0 {
		errs = append(errs, errors.New("catalog cache ttl must not be negative"))
	}
	return errors.Join(errs...)
}

func cloneConfig(in *Config) *Config {
	out := *in
	return &out
}
