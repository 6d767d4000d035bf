// Package assets implements the asset-upload collaborators: an HTTP
// multipart client for the hosted files service and an S3-compatible
// uploader for self-hosted deployments. Both report incremental progress
// through the same callback shape.
package assets

import "context"

// ProgressFunc receives incremental (bytes so far, bytes total) updates
// during an upload. Callbacks arrive in order; total is constant for one
// upload.
type ProgressFunc func(soFar, outOf int64)

// Uploader sends a staged local file to asset storage and returns the
// asset id the backend can be patched with.
type Uploader interface {
	Upload(ctx context.Context, localPath, filename, tag, mimeType string, onProgress ProgressFunc) (string, error)
}
