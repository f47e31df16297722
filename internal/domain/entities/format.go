package entities

import (
	"fmt"
	"strings"
)

// Section markers of the recipe file, matched exactly and case-sensitively
const (
	MarkerRecipe       = "[Recept]"
	MarkerIngredients  = "[Ingredienser]"
	MarkerInstructions = "[Instruktioner]"
)

// IsSectionMarker reports whether line would be read as a section marker
func IsSectionMarker(line string) bool {
	switch line {
	case MarkerRecipe, MarkerIngredients, MarkerInstructions:
		return true
	}
	return false
}

// Validate reports why r would not read back unchanged from the recipe file
func (r *Recipe) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: recipe is nil", ErrInvalid)
	}

	if err := checkLine("name", r.Name); err != nil {
		return err
	}

	for i, ing := range r.Ingredients {
		fields := []struct{ name, value string }{
			{"amount", ing.Amount},
			{"measure", ing.Measure},
			{"name", ing.Name},
		}
		for _, f := range fields {
			if strings.Contains(f.value, ";") {
				return fmt.Errorf("%w: ingredient %d %s contains ';'", ErrInvalid, i+1, f.name)
			}
			if strings.ContainsAny(f.value, "\r\n") {
				return fmt.Errorf("%w: ingredient %d %s contains a line break", ErrInvalid, i+1, f.name)
			}
		}
	}

	for i, line := range r.Instructions {
		if err := checkLine(fmt.Sprintf("instruction %d", i+1), line); err != nil {
			return err
		}
	}

	return nil
}

// checkLine validates text that occupies a whole line of the file
func checkLine(what, value string) error {
	switch {
	case strings.TrimSpace(value) == "":
		return fmt.Errorf("%w: %s is empty", ErrInvalid, what)
	case strings.ContainsAny(value, "\r\n"):
		return fmt.Errorf("%w: %s contains a line break", ErrInvalid, what)
	case IsSectionMarker(value):
		return fmt.Errorf("%w: %s is a section marker", ErrInvalid, what)
	}
	return nil
}
