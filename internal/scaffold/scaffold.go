// Package scaffold creates the project directory and its initial files.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// WritePolicy decides what happens when a scaffolded file already exists.
// Callers choose explicitly; there is no implicit overwrite-always default.
type WritePolicy int

const (
	// FailIfExists refuses to touch an existing file.
	FailIfExists WritePolicy = iota
	// ForceOverwrite replaces any existing file, destroying prior edits.
	ForceOverwrite
)

// ErrExists reports a refusal under FailIfExists.
var ErrExists = errors.New("file already exists")

// EnsureDir creates the directory if absent. Existing directories are fine.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o750); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// WriteFile writes data to path atomically (temp file in the same directory,
// then rename), honoring the given policy. On failure any existing file is
// left unchanged.
func WriteFile(path string, data []byte, perm os.FileMode, policy WritePolicy) error {
	if policy == FailIfExists {
		if _, err := os.Lstat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".leadgen-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file for %s: %w", path, err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename into place %s: %w", path, err)
	}
	return nil
}

// MarkExecutable sets permission bits so the file can be invoked directly.
func MarkExecutable(path string) error {
	if err := os.Chmod(path, 0o755); err != nil {
		return fmt.Errorf("mark executable %s: %w", path, err)
	}
	return nil
}
