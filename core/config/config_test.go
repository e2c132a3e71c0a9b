package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gallery", cfg.Storage.Bucket)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)

	assert.False(t, cfg.Gallery.Enabled)
	assert.False(t, cfg.Gallery.PassURL)
	assert.Equal(t, ".", cfg.Gallery.RootPath)
	assert.Equal(t, "pub/media/import", cfg.Gallery.BasePath)
	assert.Equal(t, "filesystem", cfg.Gallery.MediaBackend)
	assert.Equal(t, 4, cfg.Gallery.FetchConcurrency)
	assert.Equal(t, int64(20971520), cfg.Gallery.MaxImageBytes)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("GALLERY_ENABLED", "true")
	t.Setenv("GALLERY_PASS_URL", "1")
	t.Setenv("GALLERY_SKIP_UNCHANGED", "true")
	t.Setenv("GALLERY_BASE_PATH", "var/import")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Gallery.Enabled)
	assert.True(t, cfg.Gallery.PassURL)
	assert.False(t, cfg.Gallery.PassPath)
	assert.True(t, cfg.Gallery.SkipUnchanged)
	assert.Equal(t, "./var/import", cfg.Gallery.ImportDir())
	assert.Equal(t, "9090", cfg.Server.Port)

	flags := cfg.Gallery.Flags()
	assert.True(t, flags.PassURLEnabled())
	assert.False(t, flags.PassPathEnabled())
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	env := "GALLERY_MEDIA_BACKEND=storage\nSTORAGE_BUCKET=media\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("GALLERY_MEDIA_BACKEND")
		os.Unsetenv("STORAGE_BUCKET")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "storage", cfg.Gallery.MediaBackend)
	assert.True(t, cfg.Gallery.IsValidMediaBackend())
	assert.Equal(t, "media", cfg.Storage.Bucket)
}
