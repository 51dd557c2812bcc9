package config

import (
	"os"
	"strconv"

	"github.com/samber/lo"

	"furniquote/internal/logx"
)

var configLogger = logx.GetScope("config")

// Config holds the application configuration
// JWTConfig selects how bearer tokens are verified. RS256 needs only the
// public key unless this service also mints tokens.
type JWTConfig struct {
	Algo         string // HS256 | RS256
	HSSecret     string
	RSPrivateKey string
	RSPublicKey  string
	Issuer       string
	Audience     string
	AccessMin    int
}

type Config struct {
	AppEnv string
	Server struct {
		Addr        string
		CORSOrigins string // comma separated, "*" allows any
	}
	Log struct {
		Level  string // debug, info, warn, error
		Format string // text, json
	}
	DB struct {
		Driver     string // postgres | sqlite
		SQLitePath string
	}
	PG struct {
		URL          string
		MaxOpenConns int
		MaxIdleConns int
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	MQ struct {
		URL      string // RabbitMQ URL
		Exchange string
	}
	ES struct {
		Addrs    string // comma separated
		Username string
		Password string
		Index    string
	}
	Apollo struct {
		Enable    bool
		AppID     string
		Cluster   string
		Namespace string
		Addrs     string
		AccessKey string
	}
	JWT     JWTConfig
	Storage struct {
		Mode          string // gcs | gcs_emulator | "" (disabled)
		Bucket        string
		CDNDomain     string
		PublicBaseURL string
		EmulatorHost  string
	}
	Business  Business
	RateLimit struct {
		WindowSec int
		Limit     int
	}
	Catalog struct {
		CacheTTLSec int
		Seed        bool
	}
	Realtime struct {
		Channel string
	}
}

// Business is the identity printed on quotations and booking messages.
type Business struct {
	Name           string
	Phone          string
	Email          string
	WhatsApp       string // digits only, with country code
	QuoteValidDays int
}

// Load loads config from env, and if enabled, overrides with Apollo values.
// Returns config, store, optional apollo closer, and error.
func Load() (*Config, *Store, func(), error) {
	cfg := &Config{}

	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.Server.Addr = getEnv("SERVER_ADDR", ":8080")
	cfg.Server.CORSOrigins = getEnv("CORS_ALLOW_ORIGINS", "*")
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "text")

	cfg.DB.Driver = getEnv("DB_DRIVER", "postgres")
	cfg.DB.SQLitePath = getEnv("SQLITE_PATH", "file:furniquote.db?_pragma=foreign_keys(1)")
	cfg.PG.URL = getEnv("POSTGRES_URL", "")
	cfg.PG.MaxOpenConns = getInt("PG_MAX_OPEN", 10)
	cfg.PG.MaxIdleConns = getInt("PG_MAX_IDLE", 5)

	// Redis
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)

	// RabbitMQ
	cfg.MQ.URL = getEnv("RABBITMQ_URL", "")
	cfg.MQ.Exchange = getEnv("RABBITMQ_EXCHANGE", "events")

	// Elasticsearch
	cfg.ES.Addrs = getEnv("ES_ADDRS", "")
	cfg.ES.Username = getEnv("ES_USERNAME", "")
	cfg.ES.Password = getEnv("ES_PASSWORD", "")
	cfg.ES.Index = getEnv("ES_PROJECT_INDEX", "projects")

	cfg.Apollo.Enable = getBool("APOLLO_ENABLE", false)
	cfg.Apollo.AppID = getEnv("APOLLO_APP_ID", "")
	cfg.Apollo.Cluster = getEnv("APOLLO_CLUSTER", "default")
	cfg.Apollo.Namespace = getEnv("APOLLO_NAMESPACE", "application")
	cfg.Apollo.Addrs = getEnv("APOLLO_ADDRS", "")
	cfg.Apollo.AccessKey = getEnv("APOLLO_ACCESS_KEY", "")

	cfg.JWT.Algo = getEnv("JWT_ALGO", "HS256")
	cfg.JWT.HSSecret = getEnv("JWT_HS_SECRET", "")
	cfg.JWT.RSPrivateKey = getEnv("JWT_RS_PRIVATE_KEY", "")
	cfg.JWT.RSPublicKey = getEnv("JWT_RS_PUBLIC_KEY", "")
	cfg.JWT.Issuer = getEnv("JWT_ISSUER", "furniquote")
	cfg.JWT.Audience = getEnv("JWT_AUDIENCE", "furniquote-api")
	cfg.JWT.AccessMin = getInt("JWT_ACCESS_MIN", 60)

	// Object storage for project photos
	cfg.Storage.Mode = getEnv("OBJECT_STORAGE_MODE", "")
	cfg.Storage.Bucket = getEnv("PHOTO_GCS_BUCKET_NAME", "")
	cfg.Storage.CDNDomain = getEnv("PHOTO_CDN_DOMAIN", "")
	cfg.Storage.PublicBaseURL = getEnv("OBJECT_STORAGE_PUBLIC_BASE_URL", "")
	cfg.Storage.EmulatorHost = getEnv("STORAGE_EMULATOR_HOST", "")

	cfg.Business.Name = getEnv("BUSINESS_NAME", "RESTOMATT Furniture Solutions")
	cfg.Business.Phone = getEnv("BUSINESS_PHONE", "+91 96364 77399")
	cfg.Business.Email = getEnv("BUSINESS_EMAIL", "info@restomatt.com")
	cfg.Business.WhatsApp = getEnv("BUSINESS_WHATSAPP", "919636477399")
	cfg.Business.QuoteValidDays = getInt("QUOTE_VALID_DAYS", 30)

	cfg.RateLimit.WindowSec = getInt("RATE_LIMIT_WINDOW_SEC", 60)
	cfg.RateLimit.Limit = getInt("RATE_LIMIT_MAX", 120)

	cfg.Catalog.CacheTTLSec = getInt("CATALOG_CACHE_TTL_SEC", 300)
	cfg.Catalog.Seed = getBool("CATALOG_SEED", true)

	cfg.Realtime.Channel = getEnv("REALTIME_CHANNEL", "furniquote:changes")

	store := NewStore(cfg)

	if cfg.Apollo.Enable {
		closer, err := overrideFromApollo(cfg, store)
		if err != nil {
			configLogger.Sugar().Errorf("apollo override failed: %v", err)
			return cfg, store, closer, err
		}
		return store.Get(), store, closer, nil
	}

	return cfg, store, nil, nil
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	return lo.Ternary(v != "", v, def)
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
