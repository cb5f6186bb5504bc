package interfaces

import "context"

// BlobStore uploads binary payloads to an external object store and returns
// a publicly addressable URL. Used by the image generation helper for the
// upload round-trip after an image has been produced.
type BlobStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}
