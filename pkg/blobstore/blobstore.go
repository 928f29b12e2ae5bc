package blobstore

import (
	"context"
	"io"
)

// Store holds uploaded binary assets under opaque names. The name may
// contain slashes to group related assets (e.g. "products/123-abc.png").
type Store interface {
	Put(ctx context.Context, name, contentType string, content io.Reader) error
}
