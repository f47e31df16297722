package main

import (
	"fmt"

	"github.com/ochairo/receptbok/internal/config"
	"github.com/ochairo/receptbok/internal/domain/interfaces"
	"github.com/ochairo/receptbok/internal/domain/interfaces/services"
	domainservices "github.com/ochairo/receptbok/internal/domain/services"
	"github.com/ochairo/receptbok/internal/external-adapters/collation"
	"github.com/ochairo/receptbok/internal/external-adapters/gpg"
	"github.com/ochairo/receptbok/internal/external-adapters/logging"
	"github.com/ochairo/receptbok/internal/external-adapters/textfile"
	"github.com/spf13/cobra"
)

// Set by the linker
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type globalOptions struct {
	verbosity  int
	configPath string
	dataFile   string
}

// app holds everything a command needs, built once per invocation
type app struct {
	cfg      *config.Config
	log      *logging.Logger
	repo     *textfile.RecipeRepository
	cookbook services.CookbookService
	verifier *gpg.Verifier
}

// NewRootCmd builds the receptbok command tree
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "receptbok",
		Short: "A plain-text recipe book",
		Long: `receptbok keeps cooking recipes in a single line-oriented text file
with [Recept], [Ingredienser] and [Instruktioner] sections.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().StringVarP(&opts.dataFile, "file", "f", "", "Recipe file (overrides data_file)")

	root.AddCommand(
		newListCmd(opts),
		newShowCmd(opts),
		newAddCmd(opts),
		newCheckCmd(opts),
		newVerifyCmd(opts),
		newVersionCmd(),
	)

	return root
}

func newApp(cmd *cobra.Command, opts *globalOptions) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.dataFile != "" {
		cfg.DataFile = opts.dataFile
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if opts.verbosity > 0 {
		level = logging.LevelFromVerbosity(opts.verbosity)
	}
	log := logging.New(logging.NewConsole(cmd.ErrOrStderr(), level))
	log.Debug("Command started", interfaces.F("command", cmd.Name()), interfaces.F("file", cfg.DataFile))

	collator, err := collation.New(cfg.Collation)
	if err != nil {
		return nil, err
	}

	repoOpts := []textfile.Option{
		textfile.WithLogger(log.Component("repository")),
		textfile.WithCollator(collator),
	}

	var verifier *gpg.Verifier
	if cfg.Signature.Keyring != "" {
		verifier = gpg.NewVerifier()
		if err := verifier.ImportKeyFromFile(cfg.Signature.Keyring); err != nil {
			return nil, fmt.Errorf("failed to load keyring %s: %w", cfg.Signature.Keyring, err)
		}
		repoOpts = append(repoOpts, textfile.WithVerifier(verifier, cfg.Signature.Required))
	}

	repo := textfile.NewRecipeRepository(cfg.DataFile, repoOpts...)

	return &app{
		cfg:      cfg,
		log:      log,
		repo:     repo,
		cookbook: domainservices.NewCookbookService(repo, log.Component("cookbook")),
		verifier: verifier,
	}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "receptbok version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}
