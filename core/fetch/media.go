package fetch

import (
	"context"
	"fmt"
	"os"
	"path"

	"media-gallery/core/reconcile"

	"github.com/spf13/afero"
)

// MediaFS keeps gallery files in a directory tree.
// File references such as "/a/b/abc.png" are relative to the media root.
type MediaFS struct {
	fs afero.Fs
}

// NewMediaFS creates a media store rooted at root on fs.
func NewMediaFS(fs afero.Fs, root string) *MediaFS {
	return &MediaFS{fs: afero.NewBasePathFs(fs, root)}
}

func clean(file string) string {
	return path.Clean("/" + file)
}

// Exists reports whether the file is stored.
func (m *MediaFS) Exists(ctx context.Context, file string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return afero.Exists(m.fs, clean(file))
}

// Read returns the stored bytes of file.
func (m *MediaFS) Read(ctx context.Context, file string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(m.fs, clean(file))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	return data, nil
}

// Write stores data as file, creating parent directories.
func (m *MediaFS) Write(ctx context.Context, file string, data []byte, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := clean(file)
	if err := m.fs.MkdirAll(path.Dir(name), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", file, err)
	}
	if err := afero.WriteFile(m.fs, name, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	return nil
}

// Remove deletes file. Removing a missing file is not an error.
func (m *MediaFS) Remove(ctx context.Context, file string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.fs.Remove(clean(file)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", file, err)
	}
	return nil
}

// LoadContent reads the stored bytes of an existing gallery entry.
func (m *MediaFS) LoadContent(ctx context.Context, entry reconcile.ExistingEntry) ([]byte, error) {
	return m.Read(ctx, entry.File)
}
