package pipeline

import (
	"os"
	"path/filepath"
)

// ScopedDir is the RAII-style directory handle CodegenService opens for a
// single service's output: every write goes through it, and nothing else
// in the tree touches the filesystem ahead of Close. Grounded on the
// scoped-acquisition commentary in spec.md §5 ("opened directories are
// closed on scope exit"), expressed in Go as a callback-scoped opener
// rather than a Zig `defer`.
type ScopedDir struct {
	Path  string
	files []*os.File
}

// openScopedDir creates base/slug (including any missing parents) and
// returns a handle ready to accept writes.
func openScopedDir(base, slug string) (*ScopedDir, error) {
	p := filepath.Join(base, slug)
	if err := os.MkdirAll(p, 0o755); err != nil {
		return nil, err
	}
	return &ScopedDir{Path: p}, nil
}

// WriteFile creates name under the scoped directory and writes content to
// it, matching the state diagram's "open → pass buffered writer → flush →
// close" per-writer sequence; the file is closed before WriteFile returns
// and is not tracked in the handle.
func (d *ScopedDir) WriteFile(name, content string) error {
	f, err := os.Create(filepath.Join(d.Path, name))
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Close releases any file handles WriteFile did not already close. Present
// so WithScopedDir can defer it unconditionally even though the current
// writers all close synchronously.
func (d *ScopedDir) Close() error {
	var first error
	for _, f := range d.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// WithScopedDir opens base/slug, invokes fn with the handle, and closes it
// on every exit path (including a panic unwind), the callback-scoped
// opener spec.md §5 calls for in place of Zig's block-scoped defer.
func WithScopedDir(base, slug string, fn func(*ScopedDir) error) error {
	d, err := openScopedDir(base, slug)
	if err != nil {
		return err
	}
	defer d.Close()
	return fn(d)
}
