package cmd

import (
	"context"
	"fmt"

	"media-gallery/core/config"
	"media-gallery/core/fetch"
	"media-gallery/core/reconcile"
	"media-gallery/core/storage"
	"media-gallery/feature/gallery"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newMediaStore builds the gallery media store selected by gallery.media_backend.
func newMediaStore(ctx context.Context, cfg *config.Config) (gallery.MediaStore, error) {
	switch cfg.Gallery.MediaBackend {
	case reconcile.MediaBackendFilesystem:
		root := reconcile.JoinBase(cfg.Gallery.RootPath, cfg.Gallery.MediaPath)
		return fetch.NewMediaFS(afero.NewOsFs(), root), nil
	case reconcile.MediaBackendStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(ctx, cfg.Storage.Timeout())
		defer cancel()
		if err := storage.EnsureBucket(ctx, client, cfg.Storage); err != nil {
			return nil, err
		}
		return storage.NewObjectStore(client, cfg.Storage.Bucket, cfg.Gallery.MediaPath), nil
	default:
		return nil, fmt.Errorf("unknown media backend: %s", cfg.Gallery.MediaBackend)
	}
}

// newFetcher builds the content fetcher. Local references are read through a
// filesystem rooted at the import directory, so the fetcher resolves them
// against "/" of that filesystem.
func newFetcher(cfg *config.Config) *reconcile.Fetcher {
	return reconcile.NewFetcher(
		fetch.NewHTTPClient(cfg.Gallery),
		fetch.NewImportFS(afero.NewOsFs(), cfg.Gallery.ImportDir()),
		"/",
	)
}

// newGalleryFeature wires the gallery feature with its collaborators.
func newGalleryFeature(ctx context.Context, cfg *config.Config, db *gorm.DB, logg *zap.Logger) (*gallery.Feature, error) {
	store, err := newMediaStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create media store: %w", err)
	}
	return gallery.NewFeature(db, store, newFetcher(cfg), cfg.Gallery, logg), nil
}
