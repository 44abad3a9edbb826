// Package storage persists small key/value pairs (tokens, the serialized user
// snapshot, preference flags) in a local SQLite database.
package storage

import "context"

// Keys used by the session and preference stores.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUser         = "user"
	KeyLoggedIn     = "logged_in"
	KeyDarkMode     = "dark_mode"
)

// Repository is a context-aware key/value store.
// Get returns (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
