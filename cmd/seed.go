package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vikabot/leadgen/internal/config"
	"github.com/vikabot/leadgen/internal/leads"
	"github.com/vikabot/leadgen/internal/lock"
	"github.com/vikabot/leadgen/internal/store"
)

// newSeedCmd creates the 'seed' subcommand. It loads the 15-company demo
// fixture into the local store so the operator can verify the pipeline end to
// end before the real scraper is delivered.
func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo fixture into the local store and export CSV",
		Long: `Inserts the 15 sample RAK/Sharjah leads into the project's SQLite
database, exports them to CSV, and prints the outreach summary. Sample data
only - nothing is scraped and nothing is written to Google Sheets.`,
		RunE: runSeedCommand,
	}
}

func runSeedCommand(cmd *cobra.Command, _ []string) error {
	out := color.Output
	badC := color.New(color.FgRed)

	release, err := lock.New(projectDir).Acquire()
	if err != nil {
		var held *lock.HeldError
		if errors.As(err, &held) {
			badC.Fprintf(out, "✗ %v\n", held)
			badC.Fprintln(out, "  wait for it to finish, or kill the process if it is stuck")
		}
		return err
	}
	defer func() {
		if rerr := release(); rerr != nil {
			logger.Warn("failed to release run lock", zap.Error(rerr))
		}
	}()

	s, err := store.Open(filepath.Join(projectDir, store.DefaultFileName))
	if err != nil {
		badC.Fprintf(out, "✗ %v\n", err)
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	inserted, skipped := 0, 0
	for _, l := range leads.SampleLeads() {
		switch _, err := s.Insert(ctx, l); {
		case errors.Is(err, store.ErrDuplicate):
			skipped++
		case err != nil:
			badC.Fprintf(out, "✗ %v\n", err)
			return err
		default:
			inserted++
		}
	}
	fmt.Fprintf(out, "Inserted %d new leads (%d already present)\n", inserted, skipped)

	csvPath := filepath.Join(projectDir, store.DefaultExportFileName)
	n, err := s.ExportCSV(ctx, csvPath)
	if err != nil {
		badC.Fprintf(out, "✗ %v\n", err)
		return err
	}
	fmt.Fprintf(out, "Exported %d leads to %s\n", n, csvPath)

	all, err := s.All(ctx)
	if err != nil {
		badC.Fprintf(out, "✗ %v\n", err)
		return err
	}
	printSummary(all)
	return nil
}

// printSummary renders the bucket and region tallies plus the five hottest
// leads, color-coded by priority.
func printSummary(all []leads.Lead) {
	out := color.Output
	header := color.New(color.FgCyan, color.Bold)

	header.Fprintln(out, "\nSummary")
	byPriority := leads.CountByPriority(all)
	fmt.Fprintf(out, "  Total leads: %d\n", len(all))
	color.New(color.FgRed).Fprintf(out, "  Hot (90-100):       %d\n", byPriority[leads.PriorityHot])
	color.New(color.FgYellow).Fprintf(out, "  High (80-89):       %d\n", byPriority[leads.PriorityHigh])
	color.New(color.FgGreen).Fprintf(out, "  Qualified (70-79):  %d\n", byPriority[leads.PriorityQualified])
	fmt.Fprintf(out, "  Nurture (<70):      %d\n", byPriority[leads.PriorityNurture])

	regions := config.Default().TargetRegions
	if cfg, err := config.Load(filepath.Join(projectDir, config.FileName)); err == nil {
		regions = cfg.TargetRegions
	}
	byRegion := leads.CountByRegion(all, regions)
	for _, region := range regions {
		fmt.Fprintf(out, "  %s: %d\n", region, byRegion[region])
	}

	header.Fprintln(out, "\nTop 5 leads")
	top := all
	if len(top) > 5 {
		top = top[:5]
	}
	for i, l := range top {
		fmt.Fprintf(out, "  %d. %s - score %d (%s)\n", i+1, l.Name, l.Score, l.Priority())
		fmt.Fprintf(out, "     %s at %s\n", l.Title, l.Company)
		fmt.Fprintf(out, "     %s | %s\n", l.Email1, l.Phone)
	}
}
