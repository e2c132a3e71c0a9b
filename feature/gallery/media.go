package gallery

import (
	"context"
	"fmt"
	"mime"
	"path"
	"strings"

	"media-gallery/core/reconcile"
)

// MediaStore stores gallery files addressed by dispersion paths ("/a/b/abc.png").
type MediaStore interface {
	reconcile.ContentLoader
	Exists(ctx context.Context, file string) (bool, error)
	Read(ctx context.Context, file string) ([]byte, error)
	Write(ctx context.Context, file string, data []byte, mediaType string) error
	Remove(ctx context.Context, file string) error
}

// maxNameAttempts bounds the "_N" suffix search for a free file name.
const maxNameAttempts = 1000

// DispersionPath spreads files over two directory levels named after the
// first two characters of the file name: "abc.png" becomes "/a/b/abc.png".
// Missing characters are replaced by "_".
func DispersionPath(name string) string {
	levels := []byte{'_', '_'}
	for i := 0; i < len(name) && i < 2; i++ {
		c := name[i]
		if c == '.' {
			break
		}
		levels[i] = c
	}
	return "/" + strings.ToLower(string(levels[0])) + "/" + strings.ToLower(string(levels[1])) + "/" + name
}

// storageName returns the file name an uploaded content block is stored under.
func storageName(content *reconcile.Content, fallbackRef string) string {
	name := strings.TrimSpace(content.Name)
	if name == "" && fallbackRef != "" {
		name = path.Base(fallbackRef)
	}
	name = sanitizeName(reconcile.ParseFilename(name))
	if name == "" || name == "." || name == "/" {
		name = "image"
	}
	if !reconcile.HasExtension(name) {
		name += extensionFor(content.Type)
	}
	return name
}

var preferredExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func extensionFor(mediaType string) string {
	if mt, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = mt
	}
	if ext, ok := preferredExtensions[mediaType]; ok {
		return ext
	}
	if exts, _ := mime.ExtensionsByType(mediaType); len(exts) > 0 {
		return exts[0]
	}
	return ""
}

// sanitizeName keeps letters, digits, '.', '-' and '_'; everything else becomes '_'.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// availablePath returns the dispersion path of name, appending "_1", "_2", ...
// to the base name while the path is taken in store or reserved.
func availablePath(ctx context.Context, store MediaStore, name string, reserved map[string]struct{}) (string, error) {
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for i := 0; i < maxNameAttempts; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s_%d%s", base, i, ext)
		}
		file := DispersionPath(candidate)
		if _, ok := reserved[file]; ok {
			continue
		}
		exists, err := store.Exists(ctx, file)
		if err != nil {
			return "", err
		}
		if !exists {
			return file, nil
		}
	}
	return "", fmt.Errorf("no free file name for %s after %d attempts", name, maxNameAttempts)
}
