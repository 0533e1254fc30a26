package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingInvalidator struct {
	n atomic.Int64
}

func (c *countingInvalidator) Invalidate() { c.n.Add(1) }

func TestWatcher_InvalidatesOnFileChange(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "malta"), 0o750))

	w, err := New(20 * time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	inv := &countingInvalidator{}
	require.NoError(t, w.Add(root, inv))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(root, "malta", "_country.md"), []byte("---\ntitle: Malta\n---\n"), 0o600))

	require.Eventually(t, func() bool {
		return inv.n.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	root := t.TempDir()

	w, err := New(100 * time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	inv := &countingInvalidator{}
	require.NoError(t, w.Add(root, inv))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	for i := 0; i < 5; i++ {
		name := filepath.Join(root, "doc"+string(rune('a'+i))+".md")
		require.NoError(t, os.WriteFile(name, []byte("x"), 0o600))
	}

	require.Eventually(t, func() bool {
		return inv.n.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	// The burst collapses into one (or at most two) invalidations, not five.
	require.LessOrEqual(t, inv.n.Load(), int64(2))
}

func TestWatcher_PicksUpNewDirectories(t *testing.T) {
	root := t.TempDir()

	w, err := New(20 * time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	inv := &countingInvalidator{}
	require.NoError(t, w.Add(root, inv))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// Create a country directory, let the watcher register it, then write
	// a document inside it.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "fiji"), 0o750))
	time.Sleep(200 * time.Millisecond)
	before := inv.n.Load()

	require.NoError(t, os.WriteFile(filepath.Join(root, "fiji", "_country.md"), []byte("x"), 0o600))

	require.Eventually(t, func() bool {
		return inv.n.Load() > before
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_EventOutsideRegisteredRootsIgnored(t *testing.T) {
	w, err := New(10 * time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	require.Equal(t, "", w.rootFor("/somewhere/else"))
}
