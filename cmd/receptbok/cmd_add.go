package main

import (
	"fmt"
	"strings"

	"github.com/ochairo/receptbok/internal/domain/entities"
	"github.com/spf13/cobra"
)

func newAddCmd(opts *globalOptions) *cobra.Command {
	var (
		name         string
		ingredients  []string
		instructions []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a new recipe to the recipe file",
		Example: `  receptbok add --name Pannkakor \
    --ingredient "3;dl;mjölk" --ingredient "2;st;ägg" \
    --step "Blanda allt." --step "Stek i smör."`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recipe, err := buildRecipe(name, ingredients, instructions)
			if err != nil {
				return err
			}

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			if err := a.cookbook.AddRecipe(recipe); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s\n", recipe.Name, a.repo.Path())
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Recipe name")
	cmd.Flags().StringArrayVarP(&ingredients, "ingredient", "i", nil, `Ingredient as "amount;measure;name" (repeatable)`)
	cmd.Flags().StringArrayVarP(&instructions, "step", "s", nil, "Instruction line (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// buildRecipe assembles a recipe from flag values
func buildRecipe(name string, ingredients, instructions []string) (*entities.Recipe, error) {
	recipe := entities.NewRecipe(strings.TrimSpace(name))
	for _, raw := range ingredients {
		fields := strings.Split(raw, ";")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: ingredient %q must be \"amount;measure;name\"", entities.ErrInvalid, raw)
		}
		recipe.AddIngredient(entities.Ingredient{
			Amount:  strings.TrimSpace(fields[0]),
			Measure: strings.TrimSpace(fields[1]),
			Name:    strings.TrimSpace(fields[2]),
		})
	}
	for _, line := range instructions {
		recipe.AddInstruction(line)
	}
	return recipe, nil
}
