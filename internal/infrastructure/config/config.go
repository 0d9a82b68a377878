package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	SecretKey string `env:"SECRET_KEY"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	SeedData  bool   `env:"SEED_DATA,  default=false"`

	Database DatabaseConfig
	Redis    RedisConfig
	Mongo    MongoConfig
	Audit    AuditConfig
}

type DatabaseConfig struct {
	// URL is a postgres connection URL. Empty means a local SQLite file.
	URL        string `env:"DATABASE_URL"`
	SQLitePath string `env:"SQLITE_PATH, default=art_tracker.db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// MongoConfig points at the optional audit-trail sink. Auditing is disabled
// when URI is empty.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=art_tracker"`
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
