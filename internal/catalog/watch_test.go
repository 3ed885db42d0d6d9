package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, path, doc string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
}

func waitReload(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return nil
	}
}

func TestWatcherReloads(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "content.yaml")
	writeDoc(t, path, "skills:\n  - {id: 1, category: Go, skills: [gin]}\n")

	c, err := LoadFile(path)
	require.NoError(t, err)
	store, err := Open(ctx)
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Load(ctx, c))

	reloads := make(chan error, 8)
	w, err := Watch(ctx, path, store, WatchOptions{
		Debounce: 20 * time.Millisecond,
		OnReload: func(err error) { reloads <- err },
	})
	require.NoError(t, err)
	defer w.Close()

	writeDoc(t, path, "skills:\n  - {id: 1, category: Go, skills: [gin, cobra]}\n")
	require.NoError(t, waitReload(t, reloads))

	skills, err := store.Skills(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"gin", "cobra"}, skills[0].Skills)

	writeDoc(t, path, "skills: [this is not\n")
	assert.Error(t, waitReload(t, reloads))

	skills, err = store.Skills(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"gin", "cobra"}, skills[0].Skills, "bad document keeps previous catalog")
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	writeDoc(t, path, "skills: []\n")

	store, err := Open(ctx)
	require.NoError(t, err)
	defer store.Close()

	reloads := make(chan error, 8)
	w, err := Watch(ctx, path, store, WatchOptions{
		Debounce: 20 * time.Millisecond,
		OnReload: func(err error) { reloads <- err },
	})
	require.NoError(t, err)

	writeDoc(t, filepath.Join(dir, "notes.txt"), "hello")
	select {
	case <-reloads:
		t.Fatal("unexpected reload for sibling file")
	case <-time.After(150 * time.Millisecond):
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWatchMissingDirectory(t *testing.T) {
	store, err := Open(context.Background())
	require.NoError(t, err)
	defer store.Close()

	_, err = Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "content.yaml"), store, WatchOptions{})
	assert.Error(t, err)
}
