package kvstore

import "context"

// Store is a minimal named-string configuration store. Missing keys read as
// an empty string, never as an error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
}
