// Package deps declares the scraper's Python dependency manifest and installs
// it into a project-local virtual environment.
//
// The manifest is fixed: an HTML parser, an HTTP client, the Google Sheets
// client, and its three auth libraries. Installation never touches the host's
// site-packages; everything lands in <project>/.venv so a re-run or removal
// stays scoped to the project directory.
package deps

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/vikabot/leadgen/internal/envcheck"
	"github.com/vikabot/leadgen/internal/execx"
)

// VenvDir is the virtual environment directory inside the project.
const VenvDir = ".venv"

// RequirementsFileName is the manifest file consumed by pip.
const RequirementsFileName = "requirements.txt"

// Manifest returns the ordered dependency list for the scraper.
func Manifest() []string {
	return []string{
		"beautifulsoup4",
		"requests",
		"gspread",
		"google-auth",
		"google-auth-oauthlib",
		"google-auth-httplib2",
	}
}

// RequirementsFile renders the manifest as requirements.txt content.
func RequirementsFile() []byte {
	return []byte(strings.Join(Manifest(), "\n") + "\n")
}

// VenvPython returns the interpreter path inside the project venv.
func VenvPython(projectDir string) string {
	return filepath.Join(projectDir, VenvDir, "bin", "python3")
}

func venvPip(projectDir string) string {
	return filepath.Join(projectDir, VenvDir, "bin", "pip")
}

// InstallError reports a failed installation step. Installation is attempted
// exactly once; there is no retry and no rollback of a partially built venv.
type InstallError struct {
	Step     string
	ExitCode int
	Detail   string
}

func (e *InstallError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s failed with exit code %d", e.Step, e.ExitCode)
	}
	return fmt.Sprintf("%s failed with exit code %d: %s", e.Step, e.ExitCode, e.Detail)
}

// Installer builds the project venv and installs the manifest into it.
type Installer struct {
	Runner execx.Runner
	Logger *zap.Logger
}

// NewInstaller returns an Installer wired to the real host.
func NewInstaller(logger *zap.Logger) *Installer {
	return &Installer{Runner: execx.OSRunner{}, Logger: logger}
}

// Install creates .venv under projectDir, upgrades pip inside it, and installs
// requirements.txt. Any non-zero exit aborts the remaining steps.
func (i *Installer) Install(ctx context.Context, projectDir string) error {
	steps := []struct {
		name string
		bin  string
		args []string
	}{
		{"create virtual environment", envcheck.RuntimeBinary, []string{"-m", "venv", VenvDir}},
		{"upgrade pip", venvPip(projectDir), []string{"install", "--upgrade", "pip"}},
		{"install dependencies", venvPip(projectDir), []string{"install", "-r", RequirementsFileName}},
	}

	for _, step := range steps {
		i.Logger.Debug("running install step", zap.String("step", step.name))
		res, err := i.Runner.Run(ctx, step.bin, step.args, execx.Options{Dir: projectDir})
		if err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
		if res.ExitCode != 0 {
			return &InstallError{Step: step.name, ExitCode: res.ExitCode, Detail: res.StderrTail()}
		}
	}

	i.Logger.Debug("dependency manifest installed",
		zap.Strings("packages", Manifest()),
		zap.String("venv", filepath.Join(projectDir, VenvDir)),
	)
	return nil
}
