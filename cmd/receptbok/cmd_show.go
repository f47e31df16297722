package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <index>",
		Short: "Show one recipe by its index in the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			if err := a.repo.Load(); err != nil {
				return err
			}

			recipe, err := a.repo.GetAt(index)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderRecipe(recipe))
			return nil
		},
	}
}
