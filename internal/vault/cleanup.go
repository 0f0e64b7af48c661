package vault

import (
	"context"
	"strings"
)

// Cleanup removes folders recursively while keeping any note that is
// still referenced from outside the folder being removed.
type Cleanup struct {
	store *FileStore
	index *Index
}

// NewCleanup creates a cleanup over store using index for backlink
// checks.
func NewCleanup(store *FileStore, index *Index) *Cleanup {
	return &Cleanup{store: store, index: index}
}

// RemoveFolder deletes folder depth-first and reports whether the
// whole subtree was removed.
//
// Each node yields a success flag and the flags are combined by AND
// without short-circuiting, so independently deletable siblings are
// still removed when one sibling fails. A note with a referrer outside
// folder is kept and marks its subtree unsuccessful; a folder is
// removed only once it is empty.
func (c *Cleanup) RemoveFolder(ctx context.Context, folder string) (bool, error) {
	return c.removeTree(ctx, folder, folder)
}

// removeTree removes folder, judging backlinks against root, the
// folder the whole removal started from.
func (c *Cleanup) removeTree(ctx context.Context, folder, root string) (bool, error) {
	entries, err := c.store.List(ctx, folder)
	if err != nil {
		return false, err
	}

	ok := true
	for _, entry := range entries {
		if entry.Dir {
			removed, err := c.removeTree(ctx, entry.Path, root)
			if err != nil {
				return false, err
			}
			ok = removed && ok
			continue
		}

		if c.referencedOutside(entry.Path, root) {
			ok = false
			continue
		}
		if err := c.store.Delete(ctx, entry.Path); err != nil {
			return false, err
		}
	}

	if !ok {
		return false, nil
	}
	if err := c.store.RemoveDir(ctx, folder); err != nil {
		return false, err
	}
	return true, nil
}

// referencedOutside reports whether any document outside folder links
// to docPath.
func (c *Cleanup) referencedOutside(docPath, folder string) bool {
	if c.index == nil {
		return false
	}
	prefix := strings.TrimSuffix(folder, "/") + "/"
	for _, ref := range c.index.Referencing(docPath) {
		if !strings.HasPrefix(ref, prefix) {
			return true
		}
	}
	return false
}
