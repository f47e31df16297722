// Package repositories defines interfaces for data access layers.
package repositories

import (
	"github.com/ochairo/receptbok/internal/domain/entities"
)

// RecipeRepository owns the canonical recipe collection backed by a file.
// Every recipe handed out is a deep copy. Implementations are not safe for
// concurrent use; callers serialize access.
type RecipeRepository interface {
	// Load replaces the collection with the sorted contents of the backing
	// file. On any error the collection and modified flag are left untouched.
	Load() error

	// Save appends the serialized form of one recipe to the backing file
	Save(recipe *entities.Recipe) error

	// GetAll returns copies of every recipe in canonical order
	GetAll() []*entities.Recipe

	// GetAt returns a copy of the recipe at index
	GetAt(index int) (*entities.Recipe, error)

	// Delete removes the canonical entry identical or equal to recipe.
	// It is a no-op when nothing matches.
	Delete(recipe *entities.Recipe)

	// DeleteAt removes the recipe at index
	DeleteAt(index int) error

	// Append adds a recipe to the end of the collection without re-sorting
	Append(recipe *entities.Recipe)

	// Len returns the number of recipes in the collection
	Len() int

	// IsModified reports whether the collection changed since the last Load
	IsModified() bool

	// OnChanged registers a handler fired after every successful mutation.
	// The returned func removes it.
	OnChanged(handler func()) (unsubscribe func())
}
