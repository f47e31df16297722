package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Parse the recipe file and report the first format error",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			if err := a.repo.Load(); err != nil {
				return fmt.Errorf("%s: %w", a.repo.Path(), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK, %d recipes\n", a.repo.Path(), a.repo.Len())
			return nil
		},
	}
}
