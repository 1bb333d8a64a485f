package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/platefit/nutrition-engine/config"
)

// New creates a database connection for the recipe library and the
// product catalog. Production connects to PostgreSQL; development and
// test default to a local SQLite file unless a DB host is configured.
func New(cfg *config.Config) (*gorm.DB, error) {
	if config.IsProduction() || cfg.DBHost != "" && cfg.DBHost != "localhost" {
		return newPostgres(cfg)
	}
	return newSQLite(cfg)
}

func newPostgres(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	log.Printf("Connecting to database at %s:%s as user %s", cfg.DBHost, cfg.DBPort, cfg.DBUser)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	log.Printf("Successfully connected to database")
	return db, nil
}

func newSQLite(cfg *config.Config) (*gorm.DB, error) {
	name := cfg.DBName
	if name == "" {
		name = "nutrition"
	}
	db, err := gorm.Open(sqlite.Open(name+".db"), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}
	return db, nil
}

// HealthCheck checks if the database is accessible
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
