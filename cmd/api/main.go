package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hivcare/art-tracker/internal/api"
	"github.com/hivcare/art-tracker/internal/core/ports"
	"github.com/hivcare/art-tracker/internal/infrastructure/config"
	"github.com/hivcare/art-tracker/internal/infrastructure/db/mongo"
	"github.com/hivcare/art-tracker/internal/infrastructure/db/redis"
	"github.com/hivcare/art-tracker/internal/infrastructure/db/sqldb"
	"github.com/hivcare/art-tracker/internal/infrastructure/queue"
	"github.com/hivcare/art-tracker/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.SecretKey == "" {
		log.Fatal().Msg("SECRET_KEY must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Relational store ---
	db, err := sqldb.Connect(sqldb.Config{
		DatabaseURL: cfg.Database.URL,
		SQLitePath:  cfg.Database.SQLitePath,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := sqldb.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	if err := sqldb.Seed(db, cfg.SeedData, log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	// --- Redis (session revocation) ---
	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	// --- Optional Mongo audit sink ---
	var auditRepo ports.AuditRepository = mongo.NoopAuditRepository{}
	deps := api.Deps{
		DB:        db,
		Redis:     rdb,
		JWTSecret: cfg.SecretKey,
		StaticDir: "web/static",
		Logger:    log,
	}
	if cfg.Mongo.URI != "" {
		client, mdb, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongo audit sink")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		auditRepo = mongo.NewAuditRepository(mdb)
		deps.Mongo = mdb
		log.Info().Str("database", cfg.Mongo.Database).Msg("audit trail enabled")
	}

	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditRepo, log)
	dispatcher.Start(ctx)
	deps.Audit = dispatcher

	e := api.NewRouter(deps)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("art tracker listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
