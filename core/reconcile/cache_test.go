package reconcile

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentCache_EmbeddedContent(t *testing.T) {
	loader := &countingLoader{}
	cache := NewContentCache(loader)

	data, err := cache.Load(context.Background(), ExistingEntry{ID: 1, File: "/a/b/ab.png", Content: inline("embedded")})
	require.NoError(t, err)
	assert.Equal(t, []byte("embedded"), data)
	assert.Equal(t, int32(0), loader.calls.Load())
}

// TestContentCache_Memoizes tests that the loader is hit once per existing id.
func TestContentCache_Memoizes(t *testing.T) {
	loader := &countingLoader{files: map[string][]byte{"/a/b/ab.png": []byte("stored")}}
	cache := NewContentCache(loader)
	entry := ExistingEntry{ID: 3, File: "/a/b/ab.png"}

	for i := 0; i < 3; i++ {
		data, err := cache.Load(context.Background(), entry)
		require.NoError(t, err)
		assert.Equal(t, []byte("stored"), data)
	}

	assert.Equal(t, int32(1), loader.calls.Load())
	assert.Equal(t, 1, cache.Loads())
}

func TestContentCache_ConcurrentLoads(t *testing.T) {
	loader := &countingLoader{files: map[string][]byte{"/a/b/ab.png": []byte("stored")}}
	cache := NewContentCache(loader)
	entry := ExistingEntry{ID: 3, File: "/a/b/ab.png"}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := cache.Load(context.Background(), entry)
			assert.NoError(t, err)
			assert.Equal(t, []byte("stored"), data)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), loader.calls.Load())
}

func TestContentCache_MissingContent(t *testing.T) {
	tests := []struct {
		name   string
		loader ContentLoader
		entry  ExistingEntry
	}{
		{
			name:   "LoaderError",
			loader: &countingLoader{err: errors.New("no such key")},
			entry:  ExistingEntry{ID: 4, File: "/x/y/xy.png"},
		},
		{
			name:   "EmptyFile",
			loader: &countingLoader{files: map[string][]byte{"/x/y/xy.png": {}}},
			entry:  ExistingEntry{ID: 4, File: "/x/y/xy.png"},
		},
		{
			name:  "NoLoader",
			entry: ExistingEntry{ID: 4, File: "/x/y/xy.png"},
		},
		{
			name:   "NoFile",
			loader: &countingLoader{},
			entry:  ExistingEntry{ID: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewContentCache(tt.loader)
			_, err := cache.Load(context.Background(), tt.entry)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingContent)
			assert.True(t, IsResolutionError(err))
			assert.Equal(t, 0, cache.Loads())
		})
	}
}

func TestContentCache_CanceledLoad(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := ContentLoaderFunc(func(ctx context.Context, entry ExistingEntry) ([]byte, error) {
		return nil, ctx.Err()
	})
	_, err := NewContentCache(loader).Load(ctx, ExistingEntry{ID: 1, File: "/a/b/ab.png"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsResolutionError(err))
}
