// Package envcheck probes the host for the Python runtime and pip.
//
// Both checks fail fast: a missing precondition terminates setup before any
// filesystem side effect, with remediation text for the operator. The original
// tooling attempted an ad hoc pip install when pip was absent; that asymmetry
// is gone on purpose.
package envcheck

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/vikabot/leadgen/internal/execx"
)

// RuntimeBinary is the interpreter the scaffolded project is built around.
const RuntimeBinary = "python3"

// MissingError reports an absent host precondition together with the
// remediation text shown to the operator.
type MissingError struct {
	Tool        string
	Remediation string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s not found on PATH", e.Tool)
}

// Report describes a successfully probed tool.
type Report struct {
	Path    string
	Version string
}

// Probe resolves host tools. LookPath and Runner are injectable for tests.
type Probe struct {
	LookPath func(name string) (string, error)
	Runner   execx.Runner
	Logger   *zap.Logger
}

// New returns a Probe wired to the real host.
func New(logger *zap.Logger) *Probe {
	return &Probe{
		LookPath: exec.LookPath,
		Runner:   execx.OSRunner{},
		Logger:   logger,
	}
}

// CheckRuntime verifies python3 is resolvable on PATH and reports its version.
// Returns *MissingError when absent.
func (p *Probe) CheckRuntime(ctx context.Context) (Report, error) {
	path, err := p.LookPath(RuntimeBinary)
	if err != nil {
		return Report{}, &MissingError{
			Tool: RuntimeBinary,
			Remediation: "Install Python 3 first:\n" +
				"  Debian/Ubuntu: sudo apt install python3 python3-venv python3-pip\n" +
				"  macOS:         brew install python3",
		}
	}

	version := p.versionOf(ctx, path, "--version")
	p.Logger.Debug("runtime resolved",
		zap.String("binary", RuntimeBinary),
		zap.String("path", path),
		zap.String("version", version),
	)
	return Report{Path: path, Version: version}, nil
}

// CheckPackageManager verifies pip is usable through the resolved runtime.
// Returns *MissingError when pip cannot run.
func (p *Probe) CheckPackageManager(ctx context.Context) (Report, error) {
	path, err := p.LookPath(RuntimeBinary)
	if err != nil {
		return Report{}, &MissingError{Tool: RuntimeBinary, Remediation: "Install Python 3 first."}
	}

	res, err := p.Runner.Run(ctx, path, []string{"-m", "pip", "--version"}, execx.Options{})
	if err != nil || res.ExitCode != 0 {
		return Report{}, &MissingError{
			Tool: "pip",
			Remediation: "Install pip for your Python 3 interpreter:\n" +
				"  Debian/Ubuntu: sudo apt install python3-pip\n" +
				"  Other:         python3 -m ensurepip --upgrade",
		}
	}

	version := strings.TrimSpace(res.Stdout)
	p.Logger.Debug("package manager resolved", zap.String("version", version))
	return Report{Path: path, Version: version}, nil
}

// versionOf runs the binary with the given flag and returns whichever stream
// carries the version line. Older CPython prints --version to stderr.
func (p *Probe) versionOf(ctx context.Context, path, flag string) string {
	res, err := p.Runner.Run(ctx, path, []string{flag}, execx.Options{})
	if err != nil {
		return "unknown"
	}
	if v := strings.TrimSpace(res.Stdout); v != "" {
		return v
	}
	if v := strings.TrimSpace(res.Stderr); v != "" {
		return v
	}
	return "unknown"
}
