package vault

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore is a document store over a vault directory on disk. Paths
// are vault-relative, slash-separated.
//
// The filesystem has no native compare-and-swap, so stale-write
// rejection is approximated by re-reading and comparing under a
// process-local mutex immediately before committing. That serializes
// writers within one process; an external writer racing the final
// window can still win, which the retry cycle absorbs on the next
// read.
type FileStore struct {
	root string
	mu   sync.Mutex
}

// NewFileStore creates a store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{root: dir}
}

// abs resolves a vault-relative path to a filesystem path.
func (s *FileStore) abs(path string) string {
	return filepath.Join(s.root, filepath.FromSlash(path))
}

// Read returns the document's full current content.
func (s *FileStore) Read(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(s.abs(path))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// CompareAndSwap writes newContent only while the stored content still
// equals expected. It reports false, without writing, when the
// document moved since the expected snapshot was taken.
func (s *FileStore) CompareAndSwap(ctx context.Context, path string, expected, newContent string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := os.ReadFile(s.abs(path))
	if err != nil {
		return false, fmt.Errorf("re-reading %s: %w", path, err)
	}
	if string(current) != expected {
		return false, nil
	}
	if err := os.WriteFile(s.abs(path), []byte(newContent), 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

// Exists reports whether the document exists.
func (s *FileStore) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(s.abs(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Create writes a new document. If the document already exists with
// exactly the desired content, another actor got there first and the
// call succeeds; any other existing content is an error.
func (s *FileStore) Create(ctx context.Context, path, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, err := os.ReadFile(s.abs(path)); err == nil {
		if string(existing) == content {
			return nil
		}
		return fmt.Errorf("creating %s: file already exists", path)
	}

	if err := os.MkdirAll(filepath.Dir(s.abs(path)), 0755); err != nil {
		return fmt.Errorf("creating parent of %s: %w", path, err)
	}
	if err := os.WriteFile(s.abs(path), []byte(content), 0644); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return nil
}

// Delete removes the document. A document that is already gone counts
// as success; the desired end state was reached by another actor.
func (s *FileStore) Delete(ctx context.Context, path string) error {
	err := os.Remove(s.abs(path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting %s: %w", path, err)
	}
	return nil
}

// DirExists reports whether the folder exists.
func (s *FileStore) DirExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(s.abs(path))
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Mkdir creates the folder and any missing parents.
func (s *FileStore) Mkdir(ctx context.Context, path string) error {
	if err := os.MkdirAll(s.abs(path), 0755); err != nil {
		return fmt.Errorf("creating folder %s: %w", path, err)
	}
	return nil
}

// RemoveDir removes an empty folder. An already-missing folder counts
// as success.
func (s *FileStore) RemoveDir(ctx context.Context, path string) error {
	err := os.Remove(s.abs(path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing folder %s: %w", path, err)
	}
	return nil
}

// List returns the vault-relative paths of the folder's immediate
// entries, directories marked by Dir.
func (s *FileStore) List(ctx context.Context, path string) ([]Entry, error) {
	entries, err := os.ReadDir(s.abs(path))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", path, err)
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		rel := name
		if path != "" && path != "." {
			rel = path + "/" + name
		}
		out = append(out, Entry{Path: rel, Dir: e.IsDir()})
	}
	return out, nil
}

// Entry is one listing result.
type Entry struct {
	Path string
	Dir  bool
}

// Documents returns every markdown document in the vault keyed by its
// vault-relative path.
func (s *FileStore) Documents(ctx context.Context) (map[string]string, error) {
	docs := make(map[string]string)
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(p) != ".md" {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		docs[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning vault: %w", err)
	}
	return docs, nil
}
