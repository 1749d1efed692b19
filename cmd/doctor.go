package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vikabot/leadgen/internal/config"
	"github.com/vikabot/leadgen/internal/deps"
	"github.com/vikabot/leadgen/internal/scaffold"
)

// newDoctorCmd creates the 'doctor' subcommand: the validation layer that
// runs after the operator has finished the manual Google Cloud provisioning.
func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Verify the project is fully provisioned and ready to run",
		Long: `Checks everything the manual provisioning steps must have produced:
a parseable config.json with a real sheet URL instead of the placeholder, a
service-account credential file at the configured path, the project virtual
environment, and a real lead_scraper.py in place of the shipped placeholder.`,
		RunE: runDoctorCommand,
	}
}

func runDoctorCommand(_ *cobra.Command, _ []string) error {
	out := color.Output
	okC := color.New(color.FgGreen)
	badC := color.New(color.FgRed)

	findings := 0
	report := func(what string, err error) {
		if err != nil {
			findings++
			badC.Fprintf(out, "  ✗ %s: %v\n", what, err)
			logger.Debug("doctor finding", zap.String("check", what), zap.Error(err))
			return
		}
		okC.Fprintf(out, "  ✓ %s\n", what)
	}

	fmt.Fprintf(out, "Checking %s\n", projectDir)

	cfgPath := filepath.Join(projectDir, config.FileName)
	cfg, err := config.Load(cfgPath)
	report("config.json parses and is structurally valid", err)
	if err != nil {
		// Nothing else is checkable without a config record.
		return fmt.Errorf("doctor found %d problem(s)", findings)
	}

	report("google_sheet_url is filled in", cfg.SheetConfigured())

	credPath := cfg.CredentialPath(projectDir)
	key, err := config.LoadServiceAccountKey(credPath)
	report("service-account credential at "+credPath, err)
	if err == nil {
		fmt.Fprintf(out, "    share the sheet with: %s\n", key.ClientEmail)
	}

	if _, err := os.Stat(deps.VenvPython(projectDir)); err != nil {
		report("python virtual environment", fmt.Errorf("missing, run 'leadgen' setup first"))
	} else {
		report("python virtual environment", nil)
	}

	scraperPath := filepath.Join(projectDir, scaffold.ScraperFileName)
	data, err := os.ReadFile(scraperPath)
	switch {
	case err != nil:
		report("lead_scraper.py present", err)
	case scaffold.IsScraperPlaceholder(data):
		report("lead_scraper.py present", fmt.Errorf("still the shipped placeholder, copy the delivered script over it"))
	default:
		report("lead_scraper.py present", nil)
	}

	if findings > 0 {
		badC.Fprintf(out, "\n✗ doctor found %d problem(s)\n", findings)
		return fmt.Errorf("doctor found %d problem(s)", findings)
	}
	okC.Fprintln(out, "\n✓ Everything checks out. Start the pipeline with ./run.sh")
	return nil
}
