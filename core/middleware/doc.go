// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: Implements API key validation to protect endpoints.
//   - rayid: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - errmask: The Fiber error handler. Unexpected errors become a generic 500
//     that references the RayID; with debug enabled the generic message is
//     followed by the original error with absolute paths stripped.
//
// These middleware components are registered globally in cmd/start.
package middleware
