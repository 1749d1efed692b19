package envcheck

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vikabot/leadgen/internal/execx"
)

// stubRunner returns canned results keyed by the joined argument list.
type stubRunner struct {
	results map[string]execx.Result
	err     error
	calls   []string
}

func (s *stubRunner) Run(_ context.Context, name string, args []string, _ execx.Options) (execx.Result, error) {
	key := name
	for _, a := range args {
		key += " " + a
	}
	s.calls = append(s.calls, key)
	if s.err != nil {
		return execx.Result{}, s.err
	}
	return s.results[key], nil
}

func foundLookPath(string) (string, error)  { return "/usr/bin/python3", nil }
func absentLookPath(string) (string, error) { return "", errors.New("executable file not found") }

func TestCheckRuntimeReportsVersion(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{results: map[string]execx.Result{
		"/usr/bin/python3 --version": {Stdout: "Python 3.11.2\n"},
	}}
	p := &Probe{LookPath: foundLookPath, Runner: runner, Logger: zap.NewNop()}

	rep, err := p.CheckRuntime(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/usr/bin/python3", rep.Path)
	require.Equal(t, "Python 3.11.2", rep.Version)
}

func TestCheckRuntimeVersionOnStderr(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{results: map[string]execx.Result{
		"/usr/bin/python3 --version": {Stderr: "Python 3.6.9\n"},
	}}
	p := &Probe{LookPath: foundLookPath, Runner: runner, Logger: zap.NewNop()}

	rep, err := p.CheckRuntime(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Python 3.6.9", rep.Version)
}

func TestCheckRuntimeMissing(t *testing.T) {
	t.Parallel()

	p := &Probe{LookPath: absentLookPath, Runner: &stubRunner{}, Logger: zap.NewNop()}

	_, err := p.CheckRuntime(context.Background())
	var missing *MissingError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "python3", missing.Tool)
	require.Contains(t, missing.Remediation, "Install Python 3")
}

func TestCheckPackageManagerOK(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{results: map[string]execx.Result{
		"/usr/bin/python3 -m pip --version": {Stdout: "pip 23.0.1 from ... (python 3.11)\n"},
	}}
	p := &Probe{LookPath: foundLookPath, Runner: runner, Logger: zap.NewNop()}

	rep, err := p.CheckPackageManager(context.Background())
	require.NoError(t, err)
	require.Contains(t, rep.Version, "pip 23.0.1")
}

func TestCheckPackageManagerMissingIsFatalNotRemediated(t *testing.T) {
	t.Parallel()

	// pip module absent: python exits 1. The probe must report a missing
	// precondition instead of attempting any install.
	runner := &stubRunner{results: map[string]execx.Result{
		"/usr/bin/python3 -m pip --version": {ExitCode: 1, Stderr: "No module named pip\n"},
	}}
	p := &Probe{LookPath: foundLookPath, Runner: runner, Logger: zap.NewNop()}

	_, err := p.CheckPackageManager(context.Background())
	var missing *MissingError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "pip", missing.Tool)
	require.Len(t, runner.calls, 1, "probe must not shell out beyond the version check")
}
