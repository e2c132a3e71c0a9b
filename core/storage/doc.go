// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface and builds the
// gallery media store on top of it. This abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: used by EnsureBucket on startup.
//   - PutObject: Uploads gallery images.
//   - GetObject: Retrieves stored images for content comparison.
//   - StatObject: Checks whether a dispersion path is already taken.
//   - RemoveObject: Rolls back uploads when persistence fails.
//
// # ObjectStore
//
// ObjectStore maps gallery file references ("/a/b/abc.png") onto object keys under
// a configurable prefix and implements reconcile.ContentLoader, so the reconcile
// engine can read existing gallery content straight from the bucket.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	store := storage.NewObjectStore(client, config.Bucket, "catalog/product")
//	data, err := store.Read(ctx, "/a/b/abc.png")
package storage
