package main

import (
	"context"
	"log"
	"os"
	"strings"
	"unicode"

	"github.com/platefit/nutrition-engine/config"
	"github.com/platefit/nutrition-engine/internal/database"
	"github.com/platefit/nutrition-engine/internal/ingest"
	"github.com/platefit/nutrition-engine/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <recipe-file> [<recipe-file> ...]", os.Args[0])
	}

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

	svc := service.NewRecipeService(db)
	ctx := context.Background()

	total := 0
	imported := 0
	for _, path := range os.Args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Failed to read %s: %v", path, err)
			continue
		}

		for _, text := range splitRecipes(string(data)) {
			total++
			if importRecipe(ctx, svc, path, text) {
				imported++
			}
		}
	}

	log.Printf("Imported %d of %d recipes", imported, total)
}

func importRecipe(ctx context.Context, svc *service.RecipeService, path, text string) bool {
	recipe, err := ingest.ParseRecipe(text)
	if err != nil {
		log.Printf("Failed to parse recipe in %s: %v", path, err)
		return false
	}
	if err := ingest.Validate(recipe); err != nil {
		log.Printf("Skipping recipe in %s: %v", path, err)
		return false
	}

	exists, err := svc.TitleExists(ctx, recipe.Title)
	if err != nil {
		log.Printf("Failed to check for duplicate of %q: %v", recipe.Title, err)
		return false
	}
	if exists {
		log.Printf("Recipe %q already exists, skipping", recipe.Title)
		return false
	}

	if _, err := svc.CreateRecipe(ctx, recipe); err != nil {
		log.Printf("Failed to import %q: %v", recipe.Title, err)
		return false
	}

	log.Printf("Imported recipe %q (%s)", recipe.Title, recipe.FormattedMacros())
	return true
}

// splitRecipes splits a file into recipe blocks. A standalone line
// holding a one- or two-digit number separates recipes; a file without
// separators is a single recipe.
func splitRecipes(content string) []string {
	var recipes []string
	var current []string

	flush := func() {
		block := strings.TrimSpace(strings.Join(current, "\n"))
		if block != "" {
			recipes = append(recipes, block)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(content, "\n") {
		if isSeparator(line) {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return recipes
}

func isSeparator(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" || len(s) > 2 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
