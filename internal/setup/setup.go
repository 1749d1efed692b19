// Package setup orchestrates the full bootstrap run: probe the host, scaffold
// the project directory, and install the Python dependency manifest into the
// project venv.
//
// Every step gates the next and every failure is terminal. The probes run
// before anything touches the filesystem, so a host without Python is left
// exactly as it was found.
package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/vikabot/leadgen/internal/config"
	"github.com/vikabot/leadgen/internal/deps"
	"github.com/vikabot/leadgen/internal/envcheck"
	"github.com/vikabot/leadgen/internal/scaffold"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	okColor     = color.New(color.FgGreen)
	failColor   = color.New(color.FgRed, color.Bold)
	noteColor   = color.New(color.FgYellow)
)

// Runner executes the bootstrap sequence.
type Runner struct {
	ProjectDir string
	Policy     scaffold.WritePolicy
	Probe      *envcheck.Probe
	Installer  *deps.Installer
	Logger     *zap.Logger
	Out        io.Writer
}

// New wires a Runner against the real host.
func New(projectDir string, policy scaffold.WritePolicy, logger *zap.Logger) *Runner {
	return &Runner{
		ProjectDir: projectDir,
		Policy:     policy,
		Probe:      envcheck.New(logger),
		Installer:  deps.NewInstaller(logger),
		Logger:     logger,
		Out:        os.Stdout,
	}
}

// Run performs the whole setup. The returned error is already reported to the
// operator; callers only translate it into a non-zero exit.
func (r *Runner) Run(ctx context.Context) error {
	headerColor.Fprintln(r.Out, "AI Hardware Sales Lead Generator - Setup")
	fmt.Fprintln(r.Out)

	// Step 1: host preconditions. Nothing is written before these pass.
	headerColor.Fprintln(r.Out, "[1/3] Checking environment")
	runtime, err := r.Probe.CheckRuntime(ctx)
	if err != nil {
		return r.fail(err)
	}
	okColor.Fprintf(r.Out, "  ✓ %s (%s)\n", runtime.Version, runtime.Path)

	pip, err := r.Probe.CheckPackageManager(ctx)
	if err != nil {
		return r.fail(err)
	}
	okColor.Fprintf(r.Out, "  ✓ %s\n", pip.Version)

	// Step 2: project scaffold, including requirements.txt for step 3.
	headerColor.Fprintf(r.Out, "\n[2/3] Scaffolding %s\n", r.ProjectDir)
	project := &scaffold.Project{Dir: r.ProjectDir, Policy: r.Policy, Logger: r.Logger}
	if err := project.Build(config.Default()); err != nil {
		if errors.Is(err, scaffold.ErrExists) {
			noteColor.Fprintln(r.Out, "  existing files kept (--no-clobber); remove them or rerun without the flag")
		}
		return r.fail(err)
	}
	okColor.Fprintln(r.Out, "  ✓ config.json, requirements.txt, lead_scraper.py, run.sh, logs/")

	// Step 3: isolated dependency install. One attempt, no rollback.
	headerColor.Fprintln(r.Out, "\n[3/3] Installing Python dependencies into .venv")
	if err := r.Installer.Install(ctx, r.ProjectDir); err != nil {
		return r.fail(err)
	}
	okColor.Fprintf(r.Out, "  ✓ %d packages installed\n", len(deps.Manifest()))

	r.printNextSteps()
	return nil
}

func (r *Runner) fail(err error) error {
	failColor.Fprintf(r.Out, "\n✗ Setup failed: %v\n", err)

	var missing *envcheck.MissingError
	if errors.As(err, &missing) {
		noteColor.Fprintln(r.Out, missing.Remediation)
	}
	r.Logger.Error("setup failed", zap.Error(err))
	return err
}

func (r *Runner) printNextSteps() {
	fmt.Fprintln(r.Out)
	okColor.Fprintln(r.Out, "✓ Setup complete")
	fmt.Fprintln(r.Out, "\nNext steps (see docs/SETUP_GUIDE.md for the full walkthrough):")
	fmt.Fprintf(r.Out, "  1. Create a Google Cloud service account and download its JSON key to\n     %s\n",
		filepath.Join(r.ProjectDir, config.CredentialFileName))
	fmt.Fprintln(r.Out, "  2. Create a Google Sheet and share it with the service account (Editor)")
	fmt.Fprintf(r.Out, "  3. Paste the sheet URL into %s\n", filepath.Join(r.ProjectDir, config.FileName))
	fmt.Fprintf(r.Out, "  4. Copy the delivered lead_scraper.py over %s\n",
		filepath.Join(r.ProjectDir, scaffold.ScraperFileName))
	fmt.Fprintln(r.Out, "  5. Run 'leadgen doctor' to verify, then start with ./run.sh")
}
