package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/vikabot/leadgen/internal/config"
	"github.com/vikabot/leadgen/internal/deps"
)

// Fixed file names inside the project directory.
const (
	ScraperFileName   = "lead_scraper.py"
	RunScriptFileName = "run.sh"
	LogsDirName       = "logs"
)

// DefaultProjectDirName is created under the operator's home directory.
const DefaultProjectDirName = "ai-hardware-leads"

// DefaultProjectDir resolves the fixed project location for this host.
func DefaultProjectDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultProjectDirName), nil
}

// Project scaffolds the lead pipeline's working directory.
type Project struct {
	Dir    string
	Policy WritePolicy
	Logger *zap.Logger
}

// Build creates the directory tree and writes every template file:
// config.json, requirements.txt, the scraper placeholder, and run.sh (marked
// executable). The logs directory is created here as well, since the cron
// wrapper appends to logs/run.log.
func (p *Project) Build(cfg config.Config) error {
	if err := EnsureDir(p.Dir); err != nil {
		return err
	}
	if err := EnsureDir(filepath.Join(p.Dir, LogsDirName)); err != nil {
		return err
	}

	rendered, err := cfg.Render()
	if err != nil {
		return err
	}

	files := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{config.FileName, rendered, 0o600},
		{deps.RequirementsFileName, deps.RequirementsFile(), 0o644},
		{ScraperFileName, scraperPlaceholder, 0o644},
		{RunScriptFileName, runScript(), 0o644},
	}
	for _, f := range files {
		target := filepath.Join(p.Dir, f.name)
		if err := WriteFile(target, f.data, f.perm, p.Policy); err != nil {
			return err
		}
		p.Logger.Debug("wrote scaffold file", zap.String("path", target))
	}

	if err := MarkExecutable(filepath.Join(p.Dir, RunScriptFileName)); err != nil {
		return err
	}
	return nil
}
