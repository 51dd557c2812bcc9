// Package main is the entry point for the API server
//
//	@title			Furniquote API
//	@version		1.0
//	@description	Furniture project quoting: catalog, projects, line items, extra costs, milestones, photos and quotation export.
//
//	@host		localhost:8080
//	@BasePath	/api/v1
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in						header
//	@name					Authorization
package main

import (
	"context"
	"errors"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	_ "furniquote/docs" // swagger docs
	"furniquote/internal/catalog"
	"furniquote/internal/config"
	"furniquote/internal/db"
	"furniquote/internal/esx"
	"furniquote/internal/httpx"
	"furniquote/internal/logx"
	"furniquote/internal/mqx"
	"furniquote/internal/quote"
	"furniquote/internal/quoting"
	"furniquote/internal/realtime"
	"furniquote/internal/redisx"
	"furniquote/internal/server"
	"furniquote/internal/storagex"
)

const (
	bodyLimit     = 12 << 20 // photo uploads
	sseHeartbeat  = 15 * time.Second
	shutdownGrace = 10 * time.Second
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Load config (env first; optional Apollo override)
	cfg, store, apClose, err := config.Load()
	if err != nil {
		panic(err)
	}
	if apClose != nil {
		defer apClose()
	}

	logx.Init(cfg.Log.Level, cfg.Log.Format)
	mainLogger := logx.GetScope("main")
	mainLogger.Info("config loaded",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.Server.Addr),
		zap.String("db.driver", cfg.DB.Driver),
		zap.String("log.level", cfg.Log.Level),
	)
	if err := config.Validate(cfg, nil); err != nil {
		mainLogger.Fatal("invalid config", zap.Error(err))
	}

	d, closeDB, err := db.Open(cfg)
	if err != nil {
		mainLogger.Fatal("open db", zap.Error(err))
	}
	defer closeDB()
	if err := db.Migrate(d); err != nil {
		mainLogger.Fatal("migrate", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional deps: Redis, MQ, ES, object storage
	rdb, redisClose, err := redisx.Open(cfg)
	if err != nil {
		mainLogger.Warn("redis init failed; running without cache and cross-instance push", zap.Error(err))
	}
	defer redisClose()

	var publisher mqx.Publisher = mqx.NopPublisher{}
	if cfg.MQ.URL != "" {
		if pub, err := mqx.NewRabbitPublisher(cfg.MQ.URL, cfg.MQ.Exchange); err != nil {
			mainLogger.Warn("mq init failed", zap.Error(err))
		} else {
			publisher = pub
			defer func() { _ = pub.Close() }()
		}
	}

	esClient, esClose, err := esx.Open(cfg)
	if err != nil {
		mainLogger.Warn("es init failed", zap.Error(err))
	}
	defer esClose()
	var index quoting.Indexer
	if pi := esx.NewProjectIndex(esClient, cfg.ES.Index); pi.Enabled() {
		index = pi
	}

	blobs, blobClose, err := storagex.Open(ctx, cfg)
	switch {
	case errors.Is(err, storagex.ErrDisabled):
		mainLogger.Info("object storage disabled; photo uploads answer 503")
	case err != nil:
		mainLogger.Warn("object storage init failed", zap.Error(err))
	}
	defer blobClose()

	cat := catalog.NewService(db.NewCatalogRepo(d), rdb, time.Duration(cfg.Catalog.CacheTTLSec)*time.Second)
	if cfg.Catalog.Seed {
		seedCtx, seedCancel := context.WithTimeout(ctx, 10*time.Second)
		if _, err := cat.SeedIfEmpty(seedCtx); err != nil {
			mainLogger.Fatal("seed catalog", zap.Error(err))
		}
		seedCancel()
	}

	hub := realtime.NewHub()
	var bus realtime.Publisher = realtime.LocalBus{Hub: hub}
	if rdb != nil {
		rb := realtime.NewRedisBus(rdb, cfg.Realtime.Channel)
		if err := rb.StartForwarder(ctx, hub.Broadcast); err != nil {
			mainLogger.Warn("realtime forwarder failed; falling back to local push", zap.Error(err))
		} else {
			bus = rb
		}
	}

	svc := &quoting.Service{
		Projects: db.NewProjectRepo(d),
		Catalog:  cat,
		Blobs:    blobs,
		Events:   publisher,
		Index:    index,
		Bus:      bus,
		Business: func() config.Business { return store.Get().Business },
		Env:      quote.DefaultEnv(),
	}

	app := httpx.NewApp(bodyLimit)
	httpx.RegisterCommonMiddlewares(app, cfg.Server.CORSOrigins)
	httpx.Register(app, &httpx.Providers{
		Config:    store.Get,
		Quoting:   svc,
		Catalog:   cat,
		Hub:       hub,
		RDB:       rdb,
		Ping:      d.SQL.PingContext,
		Heartbeat: sseHeartbeat,
	})

	// Validators: rollback strategy for invalid config
	store.AddValidator(config.Validate)
	store.Watch(func(newCfg *config.Config, changed map[string]bool) {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			db.UpdatePool(newCfg.PG.MaxOpenConns, newCfg.PG.MaxIdleConns)
			mainLogger.Info("db pool updated",
				zap.Int("max_open", newCfg.PG.MaxOpenConns),
				zap.Int("max_idle", newCfg.PG.MaxIdleConns),
			)
		}
		if changed["log.level"] || changed["log.format"] {
			logx.Init(newCfg.Log.Level, newCfg.Log.Format)
			mainLogger.Info("logger reconfigured", zap.String("level", newCfg.Log.Level))
		}
		if changed["server.addr"] || changed["pg.url"] || changed["ratelimit.max"] || changed["ratelimit.window_sec"] {
			mainLogger.Warn("setting changed; restart required to take effect", zap.Any("changed", changed))
		}
	})

	if err := server.Run(ctx, app, cfg.Server.Addr, shutdownGrace); err != nil {
		mainLogger.Error("server stopped", zap.Error(err))
	}
}
