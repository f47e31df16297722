package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List recipes, optionally filtered by name",
		Example: `  receptbok list
  receptbok list pannkak`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			if err := a.repo.Load(); err != nil {
				return err
			}

			query := strings.Join(args, " ")
			hits := a.cookbook.Search(query)

			out := cmd.OutOrStdout()
			if len(hits) == 0 {
				if query != "" {
					fmt.Fprintf(out, "No recipes matching %q\n", query)
				} else {
					fmt.Fprintln(out, "No recipes")
				}
				return nil
			}

			fmt.Fprintf(out, "Recipes (%d of %d):\n\n", len(hits), a.repo.Len())
			fmt.Fprint(out, renderHits(hits))
			return nil
		},
	}
}
