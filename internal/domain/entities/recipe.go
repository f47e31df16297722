package entities

import (
	"slices"
	"strings"
)

// Ingredient is one line of a recipe's ingredient list. All fields are
// opaque text and may be empty.
type Ingredient struct {
	Amount  string
	Measure string
	Name    string
}

// String renders the ingredient for display, e.g. "3 dl mjölk".
// Empty fields are skipped.
func (i Ingredient) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{i.Amount, i.Measure, i.Name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Recipe is a named recipe with its ingredients and instructions in file order
type Recipe struct {
	Name         string
	Ingredients  []Ingredient
	Instructions []string
}

// NewRecipe creates an empty recipe with the given name
func NewRecipe(name string) *Recipe {
	return &Recipe{Name: name}
}

// AddIngredient appends an ingredient
func (r *Recipe) AddIngredient(i Ingredient) {
	r.Ingredients = append(r.Ingredients, i)
}

// AddInstruction appends an instruction line
func (r *Recipe) AddInstruction(line string) {
	r.Instructions = append(r.Instructions, line)
}

// Clone returns a deep copy that shares no backing arrays with r.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	return &Recipe{
		Name:         r.Name,
		Ingredients:  slices.Clone(r.Ingredients),
		Instructions: slices.Clone(r.Instructions),
	}
}

// Equal reports whether two recipes hold the same name, ingredients and
// instructions in the same order. A nil and an empty sequence compare equal.
func (r *Recipe) Equal(other *Recipe) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Name == other.Name &&
		slices.Equal(r.Ingredients, other.Ingredients) &&
		slices.Equal(r.Instructions, other.Instructions)
}

// CloneRecipes deep copies every recipe in the slice
func CloneRecipes(recipes []*Recipe) []*Recipe {
	out := make([]*Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = r.Clone()
	}
	return out
}
