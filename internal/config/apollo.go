package config

import (
	"strconv"

	agollo "github.com/apolloconfig/agollo/v4"
	"github.com/apolloconfig/agollo/v4/agcache"
	apconf "github.com/apolloconfig/agollo/v4/env/config"
	"github.com/apolloconfig/agollo/v4/storage"
	"go.uber.org/zap"
)

// overrideFromApollo starts the Apollo client, applies the current namespace
// on top of cfg and keeps the store updated on changes.
func overrideFromApollo(cfg *Config, store *Store) (func(), error) {
	if cfg.Apollo.Addrs == "" || cfg.Apollo.AppID == "" {
		configLogger.Warn("apollo: missing APOLLO_ADDRS or APOLLO_APP_ID; skip")
		return nil, nil
	}

	ns := cfg.Apollo.Namespace
	if ns == "" {
		ns = "application"
	}

	appCfg := &apconf.AppConfig{
		AppID:         cfg.Apollo.AppID,
		Cluster:       cfg.Apollo.Cluster,
		NamespaceName: ns,
		IP:            cfg.Apollo.Addrs, // 支持逗号分隔
		Secret:        cfg.Apollo.AccessKey,
	}

	client, err := agollo.StartWithConfig(func() (*apconf.AppConfig, error) { return appCfg, nil })
	if err != nil {
		return nil, err
	}

	next := cloneConfig(cfg)
	applyApolloOverrides(client.GetConfigCache(ns), next)
	_ = store.UpdateValidated(next, map[string]bool{"apollo.init": true})

	client.AddChangeListener(&changeLogger{ns: ns, client: client, store: store})

	// agollo v4 has no public Stop
	return func() {}, nil
}

// applyApolloOverrides copies known keys from the namespace cache into cfg.
func applyApolloOverrides(cache agcache.CacheInterface, cfg *Config) {
	if cache == nil {
		return
	}
	str := func(key string, dst *string) {
		if s := cacheString(cache, key); s != "" {
			*dst = s
		}
	}
	num := func(key string, dst *int) {
		if s := cacheString(cache, key); s != "" {
			if n, err := strconv.Atoi(s); err == nil {
				*dst = n
			}
		}
	}

	str("app.env", &cfg.AppEnv)
	str("server.addr", &cfg.Server.Addr)
	str("log.level", &cfg.Log.Level)
	str("log.format", &cfg.Log.Format)
	str("pg.url", &cfg.PG.URL)
	num("pg.max_open", &cfg.PG.MaxOpenConns)
	num("pg.max_idle", &cfg.PG.MaxIdleConns)
	str("redis.addr", &cfg.Redis.Addr)
	str("redis.password", &cfg.Redis.Password)
	num("redis.db", &cfg.Redis.DB)
	str("mq.url", &cfg.MQ.URL)
	str("es.addrs", &cfg.ES.Addrs)
	str("es.username", &cfg.ES.Username)
	str("es.password", &cfg.ES.Password)

	str("business.name", &cfg.Business.Name)
	str("business.phone", &cfg.Business.Phone)
	str("business.email", &cfg.Business.Email)
	str("business.whatsapp", &cfg.Business.WhatsApp)
	num("business.quote_valid_days", &cfg.Business.QuoteValidDays)

	num("ratelimit.window_sec", &cfg.RateLimit.WindowSec)
	num("ratelimit.max", &cfg.RateLimit.Limit)
	num("catalog.cache_ttl_sec", &cfg.Catalog.CacheTTLSec)
}

func cacheString(cache agcache.CacheInterface, key string) string {
	v, err := cache.Get(key)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

type changeLogger struct {
	ns     string
	client agollo.Client
	store  *Store
}

func (c *changeLogger) OnChange(e *storage.ChangeEvent) {
	configLogger.Info("apollo change", zap.String("namespace", e.Namespace), zap.Int("changes", len(e.Changes)))
	next := cloneConfig(c.store.Get())
	applyApolloOverrides(c.client.GetConfigCache(c.ns), next)
	changed := map[string]bool{}
	for k := range e.Changes {
		changed[k] = true
	}
	if !c.store.UpdateValidated(next, changed) {
		configLogger.Warn("apollo change rejected by validator", zap.String("namespace", e.Namespace))
	}
}

func (c *changeLogger) OnNewestChange(e *storage.FullChangeEvent) {
	configLogger.Debug("apollo newest change", zap.String("namespace", e.Namespace), zap.Int("keys", len(e.Changes)))
}
