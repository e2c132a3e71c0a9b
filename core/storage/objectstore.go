package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"media-gallery/core/reconcile"

	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps gallery files in a bucket under a key prefix.
// File references such as "/a/b/abc.png" map to "<prefix>/a/b/abc.png".
type ObjectStore struct {
	client Client
	bucket string
	prefix string
}

// NewObjectStore creates a media store on top of client.
func NewObjectStore(client Client, bucket, prefix string) *ObjectStore {
	return &ObjectStore{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Key returns the object key of a file reference.
func (s *ObjectStore) Key(file string) string {
	return strings.TrimLeft(path.Join(s.prefix, path.Clean("/"+file)), "/")
}

// Exists reports whether the file is stored.
func (s *ObjectStore) Exists(ctx context.Context, file string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, s.Key(file), minio.StatObjectOptions{})
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", file, err)
	}
	return true, nil
}

// Read downloads the file.
func (s *ObjectStore) Read(ctx context.Context, file string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.Key(file), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", file, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	return data, nil
}

// Write uploads data as the file.
func (s *ObjectStore) Write(ctx context.Context, file string, data []byte, mediaType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.Key(file), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: mediaType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", file, err)
	}
	return nil
}

// Remove deletes the file.
func (s *ObjectStore) Remove(ctx context.Context, file string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, s.Key(file), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", file, err)
	}
	return nil
}

// LoadContent reads the stored bytes of an existing gallery entry.
func (s *ObjectStore) LoadContent(ctx context.Context, entry reconcile.ExistingEntry) ([]byte, error) {
	return s.Read(ctx, entry.File)
}
