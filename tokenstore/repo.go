package tokenstore

import "context"

// TokenKey is the only key the client writes to durable storage.
const TokenKey = "token"

// Repo is device-local durable key-value storage.
// Get returns errors.ErrNotFound when the key is absent. Delete of an absent key is not an error.
type Repo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
