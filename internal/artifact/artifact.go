package artifact

import "context"

// Store persists submission artifacts. Keys are job-scoped and unique, so
// no overwrite semantics are needed.
type Store interface {
	Put(ctx context.Context, key string, content []byte, contentType string) error
}
