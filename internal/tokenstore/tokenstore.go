// Package tokenstore persists the single auth token the API client
// attaches to outgoing requests. A token is opaque and has no client-side
// expiry; it is valid until the server rejects it.
package tokenstore

import "context"

// Store is consulted before every outgoing request. Get returns an empty
// string when no token is persisted; that is not an error.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
