package main

import (
	"fmt"

	"github.com/ochairo/receptbok/internal/domain/entities"
	"github.com/ochairo/receptbok/internal/external-adapters/gpg"
	"github.com/ochairo/receptbok/internal/external-adapters/textfile"
	"github.com/spf13/cobra"
)

func newVerifyCmd(opts *globalOptions) *cobra.Command {
	var keyring string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the detached OpenPGP signature of the recipe file",
		Long: `Verify the recipe file against <file>.asc or <file>.sig using the
keyring from --keyring or signature.keyring in the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			verifier := a.verifier
			if keyring != "" {
				// --keyring replaces the configured keys
				if verifier == nil {
					verifier = gpg.NewVerifier()
				} else {
					verifier.ClearKeyring()
				}
				if err := verifier.ImportKeyFromFile(keyring); err != nil {
					return fmt.Errorf("failed to load keyring %s: %w", keyring, err)
				}
			}
			if verifier == nil {
				return fmt.Errorf("no keyring configured, use --keyring or signature.keyring")
			}

			path := a.repo.Path()
			sigPath, found := textfile.FindSignature(path)
			if !found {
				return fmt.Errorf("%w: no signature found for %s", entities.ErrSignature, path)
			}
			if err := verifier.VerifySignatureFromFile(path, sigPath); err != nil {
				return fmt.Errorf("%w: %s: %w", entities.ErrSignature, sigPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signature OK: %s (%d keys in keyring)\n", sigPath, verifier.GetKeyringSize())
			return nil
		},
	}

	cmd.Flags().StringVar(&keyring, "keyring", "", "Public keyring file (armored or binary)")
	return cmd
}
