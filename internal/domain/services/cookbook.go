// Package services implements domain business logic and use cases.
package services

import (
	"fmt"
	"strings"

	"github.com/ochairo/receptbok/internal/domain/entities"
	"github.com/ochairo/receptbok/internal/domain/interfaces"
	"github.com/ochairo/receptbok/internal/domain/interfaces/repositories"
	"github.com/ochairo/receptbok/internal/domain/interfaces/services"
)

// cookbookService implements CookbookService on top of a RecipeRepository
type cookbookService struct {
	repo   repositories.RecipeRepository
	logger interfaces.Logger
}

// NewCookbookService creates a cookbook service with dependency injection
func NewCookbookService(repo repositories.RecipeRepository, logger interfaces.Logger) services.CookbookService {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &cookbookService{repo: repo, logger: logger}
}

// AddRecipe persists the recipe first so a failed write leaves the
// in-memory collection unchanged.
func (s *cookbookService) AddRecipe(recipe *entities.Recipe) error {
	if err := s.Validate(recipe); err != nil {
		return err
	}

	if err := s.repo.Save(recipe); err != nil {
		return fmt.Errorf("failed to save recipe %q: %w", recipe.Name, err)
	}
	s.repo.Append(recipe)

	s.logger.Info("Added recipe",
		interfaces.F("name", recipe.Name),
		interfaces.F("ingredients", len(recipe.Ingredients)),
		interfaces.F("instructions", len(recipe.Instructions)))
	return nil
}

// Search matches query against recipe names, ignoring case. An empty
// query matches everything.
func (s *cookbookService) Search(query string) []services.SearchHit {
	needle := strings.ToLower(strings.TrimSpace(query))

	hits := make([]services.SearchHit, 0)
	for i, r := range s.repo.GetAll() {
		if needle == "" || strings.Contains(strings.ToLower(r.Name), needle) {
			hits = append(hits, services.SearchHit{Index: i, Recipe: r})
		}
	}
	return hits
}

// Validate rejects recipes that would not read back unchanged
func (s *cookbookService) Validate(recipe *entities.Recipe) error {
	return recipe.Validate()
}
