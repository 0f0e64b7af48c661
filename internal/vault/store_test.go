package vault

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(t.TempDir())
}

func TestFileStoreReadWrite(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Create(ctx, "notes/a.md", "hello"))

	got, err := store.Read(ctx, "notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	exists, err := store.Exists(ctx, "notes/a.md")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.Exists(ctx, "notes/b.md")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFileStoreCompareAndSwap(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Create(ctx, "a.md", "v1"))

	swapped, err := store.CompareAndSwap(ctx, "a.md", "v1", "v2")
	require.NoError(t, err)
	assert.True(t, swapped)

	got, _ := store.Read(ctx, "a.md")
	assert.Equal(t, "v2", got)

	// Stale expectation is rejected without writing.
	swapped, err = store.CompareAndSwap(ctx, "a.md", "v1", "v3")
	require.NoError(t, err)
	assert.False(t, swapped)

	got, _ = store.Read(ctx, "a.md")
	assert.Equal(t, "v2", got)
}

func TestFileStoreCreateRaceToSameContent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Create(ctx, "a.md", "same"))

	// Another actor already produced the desired end state.
	assert.NoError(t, store.Create(ctx, "a.md", "same"))

	// Different content is a real collision.
	assert.Error(t, store.Create(ctx, "a.md", "different"))
}

func TestFileStoreDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Create(ctx, "a.md", "x"))

	require.NoError(t, store.Delete(ctx, "a.md"))
	// Already gone: the desired end state was reached.
	assert.NoError(t, store.Delete(ctx, "a.md"))
	assert.NoError(t, store.RemoveDir(ctx, "never-existed"))
}

func TestFileStoreDirs(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	exists, err := store.DirExists(ctx, "sub")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Mkdir(ctx, "sub/deeper"))

	exists, err = store.DirExists(ctx, "sub/deeper")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFileStoreDocuments(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewFileStore(dir)

	require.NoError(t, store.Create(ctx, "a.md", "A"))
	require.NoError(t, store.Create(ctx, "sub/b.md", "B"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "image.png"), []byte{1}, 0644))

	docs, err := store.Documents(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a.md": "A", "sub/b.md": "B"}, docs)
}

func TestMemStoreCompareAndSwap(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	store.Put("a.md", "v1")

	swapped, err := store.CompareAndSwap(ctx, "a.md", "stale", "v2")
	require.NoError(t, err)
	assert.False(t, swapped)

	swapped, err = store.CompareAndSwap(ctx, "a.md", "v1", "v2")
	require.NoError(t, err)
	assert.True(t, swapped)

	got, ok := store.Get("a.md")
	require.True(t, ok)
	assert.Equal(t, "v2", got)
}
