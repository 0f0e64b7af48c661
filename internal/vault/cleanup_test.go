package vault

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exists(t *testing.T, store *FileStore, path string) bool {
	t.Helper()
	ok, err := store.Exists(context.Background(), path)
	require.NoError(t, err)
	return ok
}

func TestCleanupRemovesUnreferencedFolder(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Create(ctx, "trash/a.md", "a"))
	require.NoError(t, store.Create(ctx, "trash/sub/b.md", "b"))

	idx, err := BuildIndex(ctx, store)
	require.NoError(t, err)

	removed, err := NewCleanup(store, idx).RemoveFolder(ctx, "trash")
	require.NoError(t, err)
	assert.True(t, removed)

	dirExists, err := store.DirExists(ctx, "trash")
	require.NoError(t, err)
	assert.False(t, dirExists)
}

func TestCleanupKeepsReferencedNoteButRemovesSiblings(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Create(ctx, "keep.md", "Still need [[pinned]]."))
	require.NoError(t, store.Create(ctx, "trash/pinned.md", "referenced"))
	require.NoError(t, store.Create(ctx, "trash/loose.md", "unreferenced"))
	require.NoError(t, store.Create(ctx, "trash/sub/gone.md", "unreferenced"))

	idx, err := BuildIndex(ctx, store)
	require.NoError(t, err)

	removed, err := NewCleanup(store, idx).RemoveFolder(ctx, "trash")
	require.NoError(t, err)
	assert.False(t, removed, "a referenced note must block full removal")

	// The referenced note and its folder survive; everything else is
	// still removed despite the failure.
	assert.True(t, exists(t, store, "trash/pinned.md"))
	assert.False(t, exists(t, store, "trash/loose.md"))
	assert.False(t, exists(t, store, "trash/sub/gone.md"))

	subExists, err := store.DirExists(ctx, "trash/sub")
	require.NoError(t, err)
	assert.False(t, subExists, "fully emptied subfolders are removed")
}

func TestCleanupInternalReferencesDoNotBlock(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Create(ctx, "trash/a.md", "links to [[b]]"))
	require.NoError(t, store.Create(ctx, "trash/sub/b.md", "links to [[a]]"))

	idx, err := BuildIndex(ctx, store)
	require.NoError(t, err)

	removed, err := NewCleanup(store, idx).RemoveFolder(ctx, "trash")
	require.NoError(t, err)
	assert.True(t, removed, "references between notes inside the folder must not block removal")
}

func TestCleanupWithoutIndexIgnoresBacklinks(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Create(ctx, "keep.md", "Still need [[pinned]]."))
	require.NoError(t, store.Create(ctx, "trash/pinned.md", "referenced"))

	removed, err := NewCleanup(store, nil).RemoveFolder(ctx, "trash")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, exists(t, store, "trash/pinned.md"))
}
