// Package services defines interfaces for domain service contracts.
package services

import (
	"github.com/ochairo/receptbok/internal/domain/entities"
)

// SearchHit is a recipe copy together with its canonical index
type SearchHit struct {
	Index  int
	Recipe *entities.Recipe
}

// CookbookService holds the use cases built on top of the recipe repository
type CookbookService interface {
	// AddRecipe validates a recipe, appends it to the collection and persists it
	AddRecipe(recipe *entities.Recipe) error

	// Search returns recipes whose name contains query, ignoring case
	Search(query string) []SearchHit

	// Validate reports why a recipe could not round-trip through the file format
	Validate(recipe *entities.Recipe) error
}
