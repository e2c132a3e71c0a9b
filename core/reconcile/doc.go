// Package reconcile decides what happens to each image of an incoming gallery
// batch: upload new bytes, reuse a file that is already stored, or drop the
// entry as a duplicate of another entry in the same batch.
//
// # Architecture
//
// The package consists of three components:
//
// 1. Fetcher: resolves a file reference (local path or HTTP(S) URL) into bytes,
//    media type and a sanitized logical name. References without an extension
//    pass through untouched.
//
// 2. ContentCache: per-run memoization of the stored bytes of existing entries,
//    loaded lazily through a ContentLoader.
//
// 3. Engine: the decision algorithm. Phase A fetches missing content
//    (concurrently, reassembled in input order). Phase B compares content with
//    the existing batch, strictly in input order. Phase C returns the batch
//    and the diagnostic trail.
//
// # Sameness
//
// Two images are the same when their decoded bytes are identical. An incoming
// entry with an id is only compared with the existing entry of that id; an
// entry without an id is compared with every existing entry and takes the
// first match in existing order.
//
// # Usage Example
//
//	fetcher := reconcile.NewFetcher(fetch.NewHTTPClient(cfg), fetch.NewLocalFS(afero.NewOsFs()), cfg.ImportDir())
//	engine := reconcile.NewEngine(fetcher, store, reconcile.WithLogger(log))
//
//	result, err := engine.Reconcile(ctx, reconcile.Request{
//	    Incoming: incoming,
//	    Existing: existing,
//	    Flags:    cfg.Flags(),
//	})
package reconcile
