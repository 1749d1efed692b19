package lock

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAcquireAndRelease(t *testing.T) {
	t.Parallel()

	l := New(t.TempDir())
	release, err := l.Acquire()
	require.NoError(t, err)

	data, err := os.ReadFile(l.Path)
	require.NoError(t, err)
	var info Info
	require.NoError(t, json.Unmarshal(data, &info))
	require.Equal(t, os.Getpid(), info.PID)
	require.NotEmpty(t, info.RunID)

	require.NoError(t, release())
	_, err = os.Stat(l.Path)
	require.True(t, os.IsNotExist(err))
}

func TestAcquireBlockedByLiveHolder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := New(dir)
	release, err := first.Acquire()
	require.NoError(t, err)
	defer release() //nolint:errcheck

	second := New(dir)
	_, err = second.Acquire()
	var held *HeldError
	require.ErrorAs(t, err, &held)
	require.Equal(t, os.Getpid(), held.Info.PID)
}

func TestAcquireBreaksDeadHolder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stale := Info{PID: 999999, RunID: "dead", CreatedAt: time.Now()}
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), data, 0o600))

	l := New(dir)
	l.PIDAlive = func(int) bool { return false }

	release, err := l.Acquire()
	require.NoError(t, err)
	require.NoError(t, release())
}

func TestAcquireBreaksExpiredHolder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	old := Info{PID: os.Getpid(), RunID: "old", CreatedAt: time.Now().Add(-3 * time.Hour)}
	data, err := json.Marshal(old)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), data, 0o600))

	l := New(dir)
	release, err := l.Acquire()
	require.NoError(t, err)
	require.NoError(t, release())
}

func TestAcquireUnreadableFreshLockStaysHeld(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("garbage"), 0o600))

	l := New(dir)
	_, err := l.Acquire()
	var held *HeldError
	require.ErrorAs(t, err, &held)
	require.Nil(t, held.Info)
}

func TestReleaseTolerantOfMissingFile(t *testing.T) {
	t.Parallel()

	l := New(t.TempDir())
	release, err := l.Acquire()
	require.NoError(t, err)
	require.NoError(t, os.Remove(l.Path))
	require.NoError(t, release())
}
