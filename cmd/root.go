// Package cmd defines and implements the CLI commands for the leadgen executable.
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vikabot/leadgen/internal/logging"
	"github.com/vikabot/leadgen/internal/scaffold"
	"github.com/vikabot/leadgen/internal/setup"
)

var (
	projectDir string
	noClobber  bool
	verbose    bool

	logger *zap.Logger
)

// newRootCmd creates and configures the root command. Invoked with no
// arguments it performs the full setup run; validation and the demo fixture
// live in subcommands.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leadgen",
		Short: "Bootstrap the AI hardware sales lead pipeline",
		Long: `leadgen prepares a workstation for the sales lead scraper:
it checks for Python 3 and pip, scaffolds the project directory with its
configuration template and run script, and installs the scraper's Python
dependencies into a project-local virtual environment.

The scraper itself is delivered separately; after setup, follow
docs/SETUP_GUIDE.md to provision Google Sheets access and verify with
'leadgen doctor'.`,
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			logger, err = logging.New(verbose)
			if err != nil {
				return err
			}
			if projectDir == "" {
				projectDir, err = scaffold.DefaultProjectDir()
				if err != nil {
					return err
				}
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			logger.Sync() //nolint:errcheck // best-effort flush
		},

		RunE: runSetupCommand,
	}

	cmd.PersistentFlags().StringVar(&projectDir, "project-dir", "",
		"project directory (default $HOME/"+scaffold.DefaultProjectDirName+")")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	cmd.Flags().BoolVar(&noClobber, "no-clobber", false,
		"refuse to overwrite scaffold files that already exist")

	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newSeedCmd())

	return cmd
}

func runSetupCommand(cmd *cobra.Command, _ []string) error {
	policy := scaffold.ForceOverwrite
	if noClobber {
		policy = scaffold.FailIfExists
	}
	runner := setup.New(projectDir, policy, logger)
	return runner.Run(cmd.Context())
}

// Execute is the main entry point.
func Execute() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and translates failure into an exit status. Cobra's
// own error printing is silenced, so every returned error is reported here;
// a failure must never exit without printed text for the operator.
func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(color.Error, "Error: %v\n", err)
		return 1
	}
	return 0
}
