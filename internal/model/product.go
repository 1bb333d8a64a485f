package model

// Product is one row of the nutrition catalog: a normalized product
// name with its per-100g macro profile. The table is written only by
// the import command and read as an immutable snapshot at startup.
type Product struct {
	Name     string  `gorm:"size:255;primary_key" json:"name"`
	Calories float64 `gorm:"type:float;not null" json:"calories"`
	Protein  float64 `gorm:"type:float;not null" json:"protein"`
	Fat      float64 `gorm:"type:float;not null" json:"fat"`
	Carbs    float64 `gorm:"type:float;not null" json:"carbs"`
	Category string  `gorm:"size:100" json:"category"`
}

// PerHundredGrams returns the product's macro vector per 100g.
func (p *Product) PerHundredGrams() Macros {
	return Macros{
		Calories: p.Calories,
		Protein:  p.Protein,
		Fat:      p.Fat,
		Carbs:    p.Carbs,
	}
}
