package reconcile

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ContentLoader reads the stored bytes of an existing entry.
type ContentLoader interface {
	LoadContent(ctx context.Context, entry ExistingEntry) ([]byte, error)
}

// ContentLoaderFunc adapts a function to the ContentLoader interface.
type ContentLoaderFunc func(ctx context.Context, entry ExistingEntry) ([]byte, error)

// LoadContent calls f.
func (f ContentLoaderFunc) LoadContent(ctx context.Context, entry ExistingEntry) ([]byte, error) {
	return f(ctx, entry)
}

// ContentCache memoizes existing entry bytes by id for one reconciliation run.
type ContentCache struct {
	loader   ContentLoader
	mu       sync.RWMutex
	contents map[int64][]byte
	sf       singleflight.Group
	loads    int
}

// NewContentCache creates an empty cache backed by loader.
func NewContentCache(loader ContentLoader) *ContentCache {
	return &ContentCache{
		loader:   loader,
		contents: make(map[int64][]byte),
	}
}

// Load returns the bytes of entry, computing them on first access.
// Embedded content wins over the backing file. An entry that yields no bytes
// fails with a MissingContentError: unknown content cannot count as unchanged.
func (c *ContentCache) Load(ctx context.Context, entry ExistingEntry) ([]byte, error) {
	// Fast path
	c.mu.RLock()
	data, ok := c.contents[entry.ID]
	c.mu.RUnlock()
	if ok {
		return data, nil
	}

	result, err, _ := c.sf.Do(strconv.FormatInt(entry.ID, 10), func() (interface{}, error) {
		c.mu.RLock()
		data, ok := c.contents[entry.ID]
		c.mu.RUnlock()
		if ok {
			return data, nil
		}

		data, err := c.load(ctx, entry)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.contents[entry.ID] = data
		c.loads++
		c.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

// Loads returns how many entries were actually loaded (cache misses).
func (c *ContentCache) Loads() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loads
}

func (c *ContentCache) load(ctx context.Context, entry ExistingEntry) ([]byte, error) {
	if !entry.Content.IsBlank() {
		data, err := entry.Content.Bytes()
		if err != nil {
			return nil, &MissingContentError{ID: entry.ID, File: entry.File, Err: err}
		}
		if len(data) > 0 {
			return data, nil
		}
	}

	if c.loader == nil || entry.File == "" {
		return nil, &MissingContentError{ID: entry.ID, File: entry.File}
	}

	data, err := c.loader.LoadContent(ctx, entry)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &MissingContentError{ID: entry.ID, File: entry.File, Err: err}
	}
	if len(data) == 0 {
		return nil, &MissingContentError{ID: entry.ID, File: entry.File}
	}
	return data, nil
}
