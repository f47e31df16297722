package textfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ochairo/receptbok/internal/domain/entities"
)

// Serialize renders one recipe as a complete section triple
func Serialize(recipe *entities.Recipe) []string {
	lines := make([]string, 0, 4+len(recipe.Ingredients)+len(recipe.Instructions))
	lines = append(lines, entities.MarkerRecipe, recipe.Name, entities.MarkerIngredients)
	for _, ing := range recipe.Ingredients {
		lines = append(lines, strings.Join([]string{ing.Amount, ing.Measure, ing.Name}, FieldSeparator))
	}
	lines = append(lines, entities.MarkerInstructions)
	lines = append(lines, recipe.Instructions...)
	return lines
}

// WriteRecipe writes the serialized recipe to w, one \n-terminated line each
func WriteRecipe(w io.Writer, recipe *entities.Recipe) error {
	bw := bufio.NewWriter(w)
	for _, line := range Serialize(recipe) {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write recipe %q: %w", recipe.Name, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write recipe %q: %w", recipe.Name, err)
	}
	return nil
}
