package fetch

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/spf13/afero"
)

// sniffLen is the number of bytes http.DetectContentType looks at.
const sniffLen = 512

// LocalFS reads import files from an afero filesystem.
type LocalFS struct {
	fs afero.Fs
}

// NewLocalFS creates a reader over fs. Paths are used as given.
func NewLocalFS(fs afero.Fs) *LocalFS {
	return &LocalFS{fs: fs}
}

// NewImportFS creates a reader confined to dir on fs. Paths are relative to
// dir and nothing outside it can be opened.
func NewImportFS(fs afero.Fs, dir string) *LocalFS {
	return &LocalFS{fs: afero.NewBasePathFs(fs, dir)}
}

// Exists reports whether path is an existing regular file.
func (l *LocalFS) Exists(path string) (bool, error) {
	exists, err := afero.Exists(l.fs, path)
	if err != nil || !exists {
		return false, err
	}
	isDir, err := afero.IsDir(l.fs, path)
	if err != nil {
		return false, err
	}
	return !isDir, nil
}

// ReadAll returns the contents of path.
func (l *LocalFS) ReadAll(path string) ([]byte, error) {
	return afero.ReadFile(l.fs, path)
}

// DetectMediaType sniffs the first bytes of path. When sniffing is
// inconclusive the extension decides.
func (l *LocalFS) DetectMediaType(path string) (string, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}

	detected := http.DetectContentType(head[:n])
	if detected != "application/octet-stream" && detected != "text/plain; charset=utf-8" {
		return detected, nil
	}
	if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		return byExt, nil
	}
	return detected, nil
}
