// Package execx wraps external command execution behind a stub-friendly interface.
package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Result captures the outcome of one command invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Options carries optional execution parameters.
type Options struct {
	Dir string // working directory, empty means inherit
}

// Runner executes external commands. A Result with a non-zero ExitCode is not
// an error; the error return is reserved for spawn failures (binary missing,
// context canceled).
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts Options) (Result, error)
}

// OSRunner is the production Runner backed by os/exec.
type OSRunner struct{}

// Run executes the command and captures both output streams.
func (OSRunner) Run(ctx context.Context, name string, args []string, opts Options) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return res, nil
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	default:
		return res, err
	}
}

// StderrTail returns the last non-empty line of stderr, for compact error
// messages. Falls back to stdout when stderr is empty.
func (r Result) StderrTail() string {
	for _, stream := range []string{r.Stderr, r.Stdout} {
		lines := strings.Split(strings.TrimSpace(stream), "\n")
		for i := len(lines) - 1; i >= 0; i-- {
			if line := strings.TrimSpace(lines[i]); line != "" {
				return line
			}
		}
	}
	return ""
}
