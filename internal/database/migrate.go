package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/platefit/nutrition-engine/internal/model"
)

// Migrate creates or updates the products and recipe library tables.
func Migrate(db *gorm.DB) error {
	log.Printf("Running schema migration (%s)", db.Dialector.Name())
	return db.AutoMigrate(
		&model.Product{},
		&model.Recipe{},
	)
}
