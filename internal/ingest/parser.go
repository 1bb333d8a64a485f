// Package ingest parses the text format recipes arrive in for
// library imports: a title line, optional metadata lines (теги, время
// приготовления, сложность), a "КБЖУ на 100 г" block, then
// "Ингредиенты:" and "Приготовление:" sections with optional
// "*"-prefixed notes.
package ingest

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/platefit/nutrition-engine/internal/model"
)

var (
	// ErrUnparsable is returned when the text lacks a title or the
	// mandatory per-100g macro block.
	ErrUnparsable = errors.New("ingest: recipe text is not parsable")
	// ErrIncomplete is returned by Validate when a required field is
	// missing.
	ErrIncomplete = errors.New("ingest: recipe data is incomplete")
)

var (
	macroLineRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*ккал\s*(\d+(?:\.\d+)?)/(\d+(?:\.\d+)?)/(\d+(?:\.\d+)?)`)
	minutesRe    = regexp.MustCompile(`~?\s*(\d+)\s*мин`)
	afterColonRe = regexp.MustCompile(`:\s*(.+?)\s*$`)
)

// ParseRecipe parses one recipe from text. The macro block is
// mandatory; everything the library's matcher relies on comes from it.
func ParseRecipe(text string) (*model.Recipe, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	recipe := &model.Recipe{}

	title := ""
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			title = s
			break
		}
	}
	if title == "" {
		return nil, ErrUnparsable
	}
	recipe.Title = title

	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "теги:") {
			for _, tag := range strings.Split(line[strings.Index(line, ":")+1:], ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					recipe.Tags = append(recipe.Tags, tag)
				}
			}
			break
		}
	}

	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), "время") {
			continue
		}
		if m := minutesRe.FindStringSubmatch(line); m != nil {
			recipe.CookingTime = "~" + m[1] + " мин"
		} else if m := afterColonRe.FindStringSubmatch(line); m != nil {
			recipe.CookingTime = m[1]
		}
		break
	}

	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), "сложность") {
			if m := afterColonRe.FindStringSubmatch(line); m != nil {
				recipe.Difficulty = m[1]
			}
			break
		}
	}

	if !parseMacros(lines, recipe) {
		return nil, ErrUnparsable
	}

	recipe.Ingredients = sectionBetween(lines, "Ингредиенты:", "Приготовление:")
	recipe.Instructions = instructionsAfter(lines, "Приготовление:")
	recipe.Notes = collectNotes(lines)

	return recipe, nil
}

// Validate reports whether the parsed recipe has everything the
// library requires.
func Validate(recipe *model.Recipe) error {
	if recipe.Title == "" || recipe.CaloriesPer100g <= 0 ||
		recipe.Ingredients == "" || recipe.Instructions == "" {
		return ErrIncomplete
	}
	return nil
}

// parseMacros finds the "КБЖУ на 100" header and reads the
// "178 ккал 17.5/5.5/14.5" line from the few lines after it.
func parseMacros(lines []string, recipe *model.Recipe) bool {
	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), "кбжу на 100") {
			continue
		}
		for j := i + 1; j < len(lines) && j < i+5; j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				continue
			}
			m := macroLineRe.FindStringSubmatch(next)
			if m == nil {
				continue
			}
			recipe.CaloriesPer100g = mustFloat(m[1])
			recipe.ProteinPer100g = mustFloat(m[2])
			recipe.FatPer100g = mustFloat(m[3])
			recipe.CarbsPer100g = mustFloat(m[4])
			return true
		}
		return false
	}
	return false
}

func sectionBetween(lines []string, start, end string) string {
	startIdx := -1
	endIdx := -1
	for i, line := range lines {
		s := strings.TrimSpace(line)
		if startIdx == -1 && strings.HasPrefix(s, start) {
			startIdx = i + 1
			continue
		}
		if startIdx != -1 && strings.HasPrefix(strings.ToLower(s), strings.ToLower(end)) {
			endIdx = i
			break
		}
	}
	if startIdx == -1 {
		return ""
	}
	if endIdx == -1 {
		endIdx = len(lines)
	}

	var section []string
	for i := startIdx; i < endIdx; i++ {
		if s := strings.TrimSpace(lines[i]); s != "" {
			section = append(section, s)
		}
	}
	return strings.Join(section, "\n")
}

func instructionsAfter(lines []string, marker string) string {
	start := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), strings.ToLower(marker)) {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return ""
	}

	var steps []string
	for i := start; i < len(lines); i++ {
		s := strings.TrimSpace(lines[i])
		if s == "" || strings.HasPrefix(s, "Приятного") || strings.HasPrefix(s, "*") || isDigits(s) {
			continue
		}
		steps = append(steps, s)
	}
	return strings.Join(steps, "\n\n")
}

func collectNotes(lines []string) string {
	var notes []string
	for _, line := range lines {
		if s := strings.TrimSpace(line); strings.HasPrefix(s, "*") {
			notes = append(notes, s)
		}
	}
	return strings.Join(notes, "\n")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func mustFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
