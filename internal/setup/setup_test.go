package setup

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vikabot/leadgen/internal/deps"
	"github.com/vikabot/leadgen/internal/envcheck"
	"github.com/vikabot/leadgen/internal/execx"
	"github.com/vikabot/leadgen/internal/scaffold"
)

// hostRunner fakes every shell-out the setup performs.
type hostRunner struct {
	pipBroken     bool
	installFails  string // step substring that should exit non-zero
	installsSeen  []string
	versionStdout string
}

func (h *hostRunner) Run(_ context.Context, name string, args []string, _ execx.Options) (execx.Result, error) {
	joined := name + " " + strings.Join(args, " ")
	switch {
	case strings.HasSuffix(joined, "--version") && strings.Contains(joined, "pip"):
		if h.pipBroken {
			return execx.Result{ExitCode: 1, Stderr: "No module named pip\n"}, nil
		}
		return execx.Result{Stdout: "pip 24.0\n"}, nil
	case strings.HasSuffix(joined, "--version"):
		return execx.Result{Stdout: h.versionStdout}, nil
	default:
		h.installsSeen = append(h.installsSeen, joined)
		if h.installFails != "" && strings.Contains(joined, h.installFails) {
			return execx.Result{ExitCode: 1, Stderr: "resolution failed\n"}, nil
		}
		return execx.Result{}, nil
	}
}

func newTestRunner(t *testing.T, host *hostRunner, found bool) (*Runner, string, *bytes.Buffer) {
	t.Helper()
	if host.versionStdout == "" {
		host.versionStdout = "Python 3.11.2\n"
	}
	lookPath := func(string) (string, error) { return "/usr/bin/python3", nil }
	if !found {
		lookPath = func(string) (string, error) { return "", errors.New("not found") }
	}

	dir := filepath.Join(t.TempDir(), "proj")
	out := &bytes.Buffer{}
	logger := zap.NewNop()
	r := &Runner{
		ProjectDir: dir,
		Policy:     scaffold.ForceOverwrite,
		Probe:      &envcheck.Probe{LookPath: lookPath, Runner: host, Logger: logger},
		Installer:  &deps.Installer{Runner: host, Logger: logger},
		Logger:     logger,
		Out:        out,
	}
	return r, dir, out
}

func TestRunHappyPath(t *testing.T) {
	t.Parallel()

	host := &hostRunner{}
	r, dir, out := newTestRunner(t, host, true)

	require.NoError(t, r.Run(context.Background()))

	for _, name := range []string{"config.json", "requirements.txt", "lead_scraper.py", "run.sh"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
	}
	_, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)

	require.Len(t, host.installsSeen, 3)
	require.Contains(t, out.String(), "Setup complete")
	require.Contains(t, out.String(), "leadgen doctor")
}

func TestRunMissingRuntimeWritesNothing(t *testing.T) {
	t.Parallel()

	host := &hostRunner{}
	r, dir, out := newTestRunner(t, host, false)

	err := r.Run(context.Background())
	var missing *envcheck.MissingError
	require.ErrorAs(t, err, &missing)

	_, statErr := os.Stat(dir)
	require.True(t, os.IsNotExist(statErr), "project dir must not exist after a failed probe")
	require.Empty(t, host.installsSeen)
	require.Contains(t, out.String(), "Install Python 3")
}

func TestRunBrokenPipWritesNothing(t *testing.T) {
	t.Parallel()

	host := &hostRunner{pipBroken: true}
	r, dir, _ := newTestRunner(t, host, true)

	err := r.Run(context.Background())
	var missing *envcheck.MissingError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "pip", missing.Tool)

	_, statErr := os.Stat(dir)
	require.True(t, os.IsNotExist(statErr))
}

func TestRunInstallFailureIsTerminalAfterOneAttempt(t *testing.T) {
	t.Parallel()

	host := &hostRunner{installFails: "install -r requirements.txt"}
	r, dir, _ := newTestRunner(t, host, true)

	err := r.Run(context.Background())
	var installErr *deps.InstallError
	require.ErrorAs(t, err, &installErr)

	// scaffold happened, install was attempted exactly once and not retried
	_, statErr := os.Stat(filepath.Join(dir, "config.json"))
	require.NoError(t, statErr)
	attempts := 0
	for _, call := range host.installsSeen {
		if strings.Contains(call, "install -r requirements.txt") {
			attempts++
		}
	}
	require.Equal(t, 1, attempts)
}

func TestRunRerunSucceeds(t *testing.T) {
	t.Parallel()

	host := &hostRunner{}
	r, _, _ := newTestRunner(t, host, true)

	require.NoError(t, r.Run(context.Background()))
	require.NoError(t, r.Run(context.Background()), "re-running setup must exit cleanly")
}
