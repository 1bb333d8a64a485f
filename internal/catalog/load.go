package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/platefit/nutrition-engine/internal/model"
)

// fileEntry matches the products JSON produced by the calorizator
// scraper: {"name": {"calories": .., "protein": .., ...}, ...}.
type fileEntry struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Category string  `json:"category"`
}

// LoadFile reads a products JSON file into a Catalog.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var raw map[string]fileEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(raw))
	for name, fe := range raw {
		entries = append(entries, Entry{
			Name: name,
			Macros: model.Macros{
				Calories: fe.Calories,
				Protein:  fe.Protein,
				Fat:      fe.Fat,
				Carbs:    fe.Carbs,
			},
			Category: fe.Category,
		})
	}
	return New(entries), nil
}

// LoadDB reads the products table into a Catalog. A missing or empty
// table yields an empty catalog, not an error; whether that is fatal
// is the caller's decision.
func LoadDB(db *gorm.DB) (*Catalog, error) {
	var products []model.Product
	if err := db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	entries := make([]Entry, 0, len(products))
	for _, p := range products {
		entries = append(entries, Entry{
			Name:     p.Name,
			Macros:   p.PerHundredGrams(),
			Category: p.Category,
		})
	}
	return New(entries), nil
}
