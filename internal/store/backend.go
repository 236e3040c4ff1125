// Package store implements the local-first card store: durable persistence of
// combat cards and the user profile behind a pluggable key-value backend, with
// subscriber notification on every mutation.
package store

import "context"

// Storage keys. These are stable across versions; changing them would silently
// orphan previously persisted data.
const (
	KeyCards    = "warlord_combat_cards"
	KeyProfile  = "warlord_user_profile"
	KeyLastSync = "cloud_backup_timestamp"
)

// Backend is the minimal key-value persistence contract the store writes
// through. A missing key is reported as (nil, nil), not an error.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// BatchBackend is implemented by backends that can apply several writes
// atomically. The store uses it on restore paths so a dossier import is
// all-or-nothing at the persistence level.
type BatchBackend interface {
	SetBatch(ctx context.Context, values map[string][]byte) error
}
