// Package storage provides the durable key/value store backing the session:
// the bearer token, the cached user record and the theme preference. It is a
// dumb string store; no validation of stored content happens here.
package storage

import "context"

// Well-known keys. The token and user are written together at login and
// removed together at logout or on an authentication failure; the theme is
// independent of both.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyTheme = "theme"
)

// Store is a durable string key/value store.
//
// Get reports the value and whether the key was present. Implementations
// return an error only for infrastructure failures; a missing key is
// (_, false, nil).
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
