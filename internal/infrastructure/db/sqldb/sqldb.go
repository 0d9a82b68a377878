package sqldb

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config captures the settings for establishing the relational store.
type Config struct {
	// DatabaseURL is a postgres connection URL. When empty the store falls
	// back to a local SQLite file at SQLitePath.
	DatabaseURL string
	SQLitePath  string
}

// Connect opens the relational database: Postgres when DATABASE_URL is set,
// otherwise a file-backed SQLite database for local development.
func Connect(cfg Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}

	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("postgres open: %w", err)
		}
		return db, nil
	}

	path := cfg.SQLitePath
	if path == "" {
		path = "art_tracker.db"
	}
	db, err := gorm.Open(sqlite.Open(path), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	return db, nil
}
