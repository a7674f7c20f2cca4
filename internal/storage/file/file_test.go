package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcallaghan/tradebook/internal/storage/file"
)

func TestStore_RoundTrip(t *testing.T) {
	store, err := file.New(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	got, err := store.Read(ctx, "jobs")
	require.NoError(t, err)
	assert.Nil(t, got, "missing key reads as nil")

	require.NoError(t, store.Write(ctx, "jobs", []byte(`[{"id":"a"}]`)))

	got, err = store.Read(ctx, "jobs")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"a"}]`), got)
}

func TestStore_WriteReplacesWithoutTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	store, err := file.New(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Write(ctx, "jobs", []byte(`[]`)))
	require.NoError(t, store.Write(ctx, "jobs", []byte(`[1]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "jobs.json", entries[0].Name())
}

func TestStore_ClearRemovesOnlyJSON(t *testing.T) {
	dir := t.TempDir()
	store, err := file.New(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Write(ctx, "jobs", []byte(`[]`)))
	require.NoError(t, store.Write(ctx, "clients", []byte(`[]`)))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0o644))

	require.NoError(t, store.Clear(ctx))

	got, err := store.Read(ctx, "jobs")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = os.Stat(filepath.Join(dir, "notes.txt"))
	assert.NoError(t, err, "non-collection files survive a clear")
}
