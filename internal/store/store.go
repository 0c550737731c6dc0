package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrNoCurrentTest = errors.New("no current test")
)

// Keys of the persisted values. Every value is stored as a whole JSON
// document; writes overwrite, last writer wins.
const (
	KeySavedTests    = "savedTests"
	KeyCurrentTestID = "current-test-id"
	KeySavedNotes    = "savedNotes"
	KeyThemeInfo     = "themeInfo"
)

// KV is a key-value store partitioned by profile. A profile plays the role
// of a browser profile: each client gets its own tests, notes and theme.
type KV interface {
	// Get returns ErrNotFound when the key has never been written.
	Get(ctx context.Context, profile, key string) ([]byte, error)
	Put(ctx context.Context, profile, key string, value []byte) error
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, profile, key string) error
}
