package main

import (
	"flag"
	"log"

	"gorm.io/gorm/clause"

	"github.com/platefit/nutrition-engine/config"
	"github.com/platefit/nutrition-engine/internal/catalog"
	"github.com/platefit/nutrition-engine/internal/database"
	"github.com/platefit/nutrition-engine/internal/model"
)

func main() {
	var file string
	flag.StringVar(&file, "file", "products_database.json", "path to the products JSON file")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	cat, err := catalog.LoadFile(file)
	if err != nil {
		log.Fatalf("Failed to load products file: %v", err)
	}
	if cat.Len() == 0 {
		log.Fatalf("Products file %s contains no usable entries", file)
	}

	imported := 0
	for _, entry := range cat.Entries() {
		product := model.Product{
			Name:     entry.Name,
			Calories: entry.Macros.Calories,
			Protein:  entry.Macros.Protein,
			Fat:      entry.Macros.Fat,
			Carbs:    entry.Macros.Carbs,
			Category: entry.Category,
		}
		err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&product).Error
		if err != nil {
			log.Printf("Failed to import product %q: %v", entry.Name, err)
			continue
		}
		imported++
	}

	log.Printf("Imported %d of %d products from %s", imported, cat.Len(), file)
}
