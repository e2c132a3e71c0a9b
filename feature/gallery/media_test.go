package gallery

import (
	"context"
	"testing"

	"media-gallery/core/fetch"
	"media-gallery/core/reconcile"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispersionPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Regular", "abc.png", "/a/b/abc.png"},
		{"UpperCase", "Photo.jpg", "/p/h/Photo.jpg"},
		{"SingleChar", "a.png", "/a/_/a.png"},
		{"Underscore", "_x.gif", "/_/x/_x.gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DispersionPath(tt.in))
		})
	}
}

func TestStorageName(t *testing.T) {
	tests := []struct {
		name    string
		content *reconcile.Content
		ref     string
		want    string
	}{
		{"ContentName", &reconcile.Content{Name: "v1.2.logo.png", Type: "image/png"}, "", "v12logo.png"},
		{"FallbackToRef", &reconcile.Content{Type: "image/png"}, "https://x/y/a.b.png", "ab.png"},
		{"ExtensionFromType", &reconcile.Content{Name: "photo", Type: "image/jpeg"}, "", "photo.jpg"},
		{"UnsafeCharacters", &reconcile.Content{Name: "my photo (1).png", Type: "image/png"}, "", "my_photo__1_.png"},
		{"Nothing", &reconcile.Content{Type: "image/webp"}, "", "image.webp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storageName(tt.content, tt.ref))
		})
	}
}

func TestAvailablePath(t *testing.T) {
	ctx := context.Background()
	store := fetch.NewMediaFS(afero.NewMemMapFs(), "/media")
	require.NoError(t, store.Write(ctx, "/a/b/abc.png", []byte("1"), "image/png"))
	require.NoError(t, store.Write(ctx, "/a/b/abc_1.png", []byte("2"), "image/png"))

	file, err := availablePath(ctx, store, "abc.png", map[string]struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "/a/b/abc_2.png", file)

	reserved := map[string]struct{}{"/a/b/abc_2.png": {}}
	file, err = availablePath(ctx, store, "abc.png", reserved)
	require.NoError(t, err)
	assert.Equal(t, "/a/b/abc_3.png", file)

	file, err = availablePath(ctx, store, "new.png", reserved)
	require.NoError(t, err)
	assert.Equal(t, "/n/e/new.png", file)
}
