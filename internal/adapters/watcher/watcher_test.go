package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clank/internal/adapters/logger"
)

func TestWatcher_FiresOnContentChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.cpp")
	require.NoError(t, os.WriteFile(path, []byte("int x;"), 0o644))

	w, err := NewWatcher(logger.NewNop())
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var fired atomic.Int32
	require.NoError(t, w.Watch(ctx, path, func() { fired.Add(1) }))

	require.NoError(t, os.WriteFile(path, []byte("int y;"), 0o644))

	require.Eventually(t, func() bool { return fired.Load() >= 1 },
		2*time.Second, 10*time.Millisecond)
}

func TestWatcher_IgnoresIdenticalRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.cpp")
	require.NoError(t, os.WriteFile(path, []byte("int x;"), 0o644))

	w, err := NewWatcher(logger.NewNop())
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var fired atomic.Int32
	require.NoError(t, w.Watch(ctx, path, func() { fired.Add(1) }))

	// Same bytes back: the event arrives but the hash cache swallows it.
	require.NoError(t, os.WriteFile(path, []byte("int x;"), 0o644))

	time.Sleep(4 * DefaultDebounceWindow)
	assert.Equal(t, int32(0), fired.Load())
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.cpp")
	require.NoError(t, os.WriteFile(path, []byte("int x;"), 0o644))

	w, err := NewWatcher(logger.NewNop())
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var fired atomic.Int32
	require.NoError(t, w.Watch(ctx, path, func() { fired.Add(1) }))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.cpp"), []byte("int o;"), 0o644))

	time.Sleep(4 * DefaultDebounceWindow)
	assert.Equal(t, int32(0), fired.Load())
}

func TestWatcher_RenameAndReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.cpp")
	require.NoError(t, os.WriteFile(path, []byte("int x;"), 0o644))

	w, err := NewWatcher(logger.NewNop())
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var fired atomic.Int32
	require.NoError(t, w.Watch(ctx, path, func() { fired.Add(1) }))

	// Atomic save: write a temp file and rename it over the target.
	tmp := filepath.Join(dir, ".main.cpp.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("int renamed;"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	require.Eventually(t, func() bool { return fired.Load() >= 1 },
		2*time.Second, 10*time.Millisecond)
}
