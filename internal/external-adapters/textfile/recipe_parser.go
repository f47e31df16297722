// Package textfile reads and writes the line-oriented recipe file format
package textfile

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/ochairo/receptbok/internal/domain/entities"
	"github.com/ochairo/receptbok/internal/domain/interfaces/gateways"
	"github.com/ochairo/receptbok/internal/external-adapters/collation"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FieldSeparator splits the fields of an ingredient line
const FieldSeparator = ";"

type section int

const (
	sectionIndefinite section = iota
	sectionName
	sectionIngredients
	sectionInstructions
)

// RecipeParser parses recipe files. It keeps no state between calls.
type RecipeParser struct {
	collator gateways.Collator
}

// NewRecipeParser creates a parser that orders recipes by byte-wise name comparison
func NewRecipeParser() *RecipeParser {
	return NewRecipeParserWithCollator(collation.Ordinal{})
}

// NewRecipeParserWithCollator creates a parser that orders recipes with c
func NewRecipeParserWithCollator(c gateways.Collator) *RecipeParser {
	if c == nil {
		c = collation.Ordinal{}
	}
	return &RecipeParser{collator: c}
}

// ParseFile reads and parses a recipe file
func (p *RecipeParser) ParseFile(filePath string) ([]*entities.Recipe, error) {
	//nolint:gosec // G304: filePath is the configured recipe file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, &entities.IOError{Op: "read", Path: filePath, Err: err}
	}

	return p.ParseBytes(data)
}

// ParseBytes decodes file content and parses it. A UTF-8 byte order mark
// is dropped and UTF-16 content with a BOM is converted to UTF-8.
func (p *RecipeParser) ParseBytes(data []byte) ([]*entities.Recipe, error) {
	text, err := DecodeText(data)
	if err != nil {
		return nil, err
	}
	return p.Parse(SplitLines(text))
}

// Parse turns lines into recipes sorted by name. Any FormatError aborts the
// whole parse and no recipes are returned.
func (p *RecipeParser) Parse(lines []string) ([]*entities.Recipe, error) {
	var (
		recipes []*entities.Recipe
		current *entities.Recipe
		state   = sectionIndefinite
	)

	for i, line := range lines {
		lineNo := i + 1

		if strings.TrimSpace(line) == "" {
			continue
		}

		switch line {
		case entities.MarkerRecipe:
			state = sectionName
			continue
		case entities.MarkerIngredients:
			state = sectionIngredients
			continue
		case entities.MarkerInstructions:
			state = sectionInstructions
			continue
		}

		switch state {
		case sectionName:
			// Every content line here starts a new recipe, even a second
			// line under the same marker.
			current = entities.NewRecipe(line)
			recipes = append(recipes, current)

		case sectionIngredients:
			if current == nil {
				return nil, &entities.FormatError{Line: lineNo, Reason: entities.ReasonIngredientBeforeName}
			}
			ingredient, ok := parseIngredient(line)
			if !ok {
				return nil, &entities.FormatError{Line: lineNo, Reason: entities.ReasonMalformedIngredient}
			}
			current.AddIngredient(ingredient)

		case sectionInstructions:
			if current == nil {
				return nil, &entities.FormatError{Line: lineNo, Reason: entities.ReasonInstructionBeforeName}
			}
			current.AddInstruction(line)

		default:
			return nil, &entities.FormatError{Line: lineNo, Reason: entities.ReasonContentBeforeMarker}
		}
	}

	slices.SortStableFunc(recipes, func(a, b *entities.Recipe) int {
		return p.collator.Compare(a.Name, b.Name)
	})

	return recipes, nil
}

func parseIngredient(line string) (entities.Ingredient, bool) {
	fields := strings.Split(line, FieldSeparator)
	if len(fields) != 3 {
		return entities.Ingredient{}, false
	}
	return entities.Ingredient{
		Amount:  fields[0],
		Measure: fields[1],
		Name:    fields[2],
	}, true
}

// DecodeText converts file content to BOM-less UTF-8
func DecodeText(data []byte) ([]byte, error) {
	text, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode recipe text: %w", err)
	}
	return text, nil
}

// SplitLines splits file content on \n and strips a trailing \r from each line
func SplitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
