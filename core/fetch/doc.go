// Package fetch provides the I/O collaborators of the reconcile engine.
//
//   - HTTPClient implements reconcile.RemoteFetcher with net/http, a per-request
//     timeout and a cap on the body size.
//   - LocalFS implements reconcile.LocalReader on an afero filesystem and detects
//     media types by content sniffing. NewImportFS confines it to the import
//     directory.
//   - MediaFS is the filesystem gallery media store; it also implements
//     reconcile.ContentLoader.
//
// Tests run against afero.NewMemMapFs and httptest servers.
package fetch
