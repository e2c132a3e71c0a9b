// Package gallery exposes product image galleries over HTTP and persists them.
//
// A reconcile request runs the submitted batch through the reconcile engine
// against the stored gallery of the same SKU. Rows whose file is not in the
// media store take no part in the comparison. Then it:
//
//   - drops entries left with neither content nor a file reference,
//   - uploads remaining content to the media store under a dispersion path
//     ("/a/b/abc.png", "_1" appended while the name is taken),
//   - replaces the gallery_entries rows of the SKU in one transaction,
//   - deletes the files of dropped rows no other row references.
//
// Uploaded files are removed again when the transaction fails. With dry_run the
// decisions and target paths are reported without writing anything.
//
// Fetch and existing-content failures are answered with 422 and a message naming
// the offending reference; everything else goes through the errmask handler.
//
// # Routes
//
//	GET  /gallery/:sku
//	GET  /gallery/:sku/check
//	POST /gallery/:sku/reconcile?dry_run=true
package gallery
