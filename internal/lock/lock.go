// Package lock prevents overlapping runs against the project directory.
//
// Cron can fire a run while a previous one is still syncing; the lock file
// makes the second run bail out instead of corrupting the local store. Stale
// locks (dead process or very old) are broken automatically, so the operator
// never has to delete leads.lock by hand.
package lock

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// FileName is the lock file inside the project directory.
const FileName = "leads.lock"

// Info is the metadata stored in the lock file.
type Info struct {
	PID       int       `json:"pid"`
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`
}

// HeldError reports that another live run holds the lock.
type HeldError struct {
	Path string
	Info *Info // nil when the lock file is unreadable
}

func (e *HeldError) Error() string {
	if e.Info != nil {
		return fmt.Sprintf("another run (pid %d, started %s) holds %s",
			e.Info.PID, e.Info.CreatedAt.Format(time.RFC3339), e.Path)
	}
	return fmt.Sprintf("another run holds %s", e.Path)
}

// RunLock guards a project directory. Now and PIDAlive are injectable for
// tests.
type RunLock struct {
	Path       string
	StaleAfter time.Duration
	Now        func() time.Time
	PIDAlive   func(pid int) bool
}

// New returns a RunLock for the project directory with a 2h staleness bound.
func New(projectDir string) RunLock {
	return RunLock{
		Path:       filepath.Join(projectDir, FileName),
		StaleAfter: 2 * time.Hour,
		Now:        time.Now,
		PIDAlive:   pidAlive,
	}
}

// Acquire takes the lock, breaking a stale one if necessary, and returns a
// release function. Returns *HeldError when a live run holds it.
func (l RunLock) Acquire() (release func() error, err error) {
	// Two passes: the first may break a stale lock, the second takes it.
	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(l.Path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			info := Info{PID: os.Getpid(), RunID: uuid.NewString(), CreatedAt: l.Now()}
			data, _ := json.Marshal(info)
			if _, werr := f.Write(data); werr != nil {
				f.Close()
				os.Remove(l.Path)
				return nil, fmt.Errorf("write lock file: %w", werr)
			}
			if cerr := f.Close(); cerr != nil {
				os.Remove(l.Path)
				return nil, fmt.Errorf("close lock file: %w", cerr)
			}
			return func() error {
				if rerr := os.Remove(l.Path); rerr != nil && !os.IsNotExist(rerr) {
					return rerr
				}
				return nil
			}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("create lock file: %w", err)
		}

		info, readErr := l.read()
		if readErr != nil {
			// Unreadable lock file: judge staleness by mtime only.
			stat, statErr := os.Stat(l.Path)
			if statErr != nil || l.Now().Sub(stat.ModTime()) <= l.StaleAfter {
				return nil, &HeldError{Path: l.Path}
			}
		} else if !l.stale(info) {
			return nil, &HeldError{Path: l.Path, Info: info}
		}

		if rerr := os.Remove(l.Path); rerr != nil && !os.IsNotExist(rerr) {
			return nil, &HeldError{Path: l.Path, Info: info}
		}
	}
	return nil, &HeldError{Path: l.Path}
}

func (l RunLock) read() (*Info, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, err
	}
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (l RunLock) stale(info *Info) bool {
	if !l.PIDAlive(info.PID) {
		return true
	}
	return l.Now().Sub(info.CreatedAt) > l.StaleAfter
}

// pidAlive uses signal 0: delivery succeeds (or fails with EPERM) only when
// the process exists.
func pidAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = proc.Signal(syscall.Signal(0))
	if err == nil || errors.Is(err, syscall.EPERM) {
		return true
	}
	return false
}
