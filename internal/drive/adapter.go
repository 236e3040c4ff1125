// Package drive defines the cloud-dossier sync contract and its
// S3-compatible implementation. The local store stays correct without any
// adapter; sync failures only delay the next backup.
package drive

import (
	"context"
	"errors"
	"time"

	"github.com/warlord-os/warlord/internal/models"
)

// ErrNotLinked is returned by Sync when no cloud link is established.
var ErrNotLinked = errors.New("cloud dossier not linked")

// Adapter pushes snapshots of the local state to remote storage.
//
// Callers must serialize Sync invocations: at most one call may be in flight
// at a time. The adapter does not queue or coalesce concurrent pushes.
type Adapter interface {
	// IsConnected reports the current link status without side effects.
	IsConnected() bool

	// Authenticate establishes the cloud link. It is idempotent when
	// already connected.
	Authenticate(ctx context.Context) error

	// Sync pushes the given snapshot to the remote. On success the
	// last-sync timestamp is recorded.
	Sync(ctx context.Context, snap models.Snapshot) error

	// Disconnect drops the link and forgets the last-sync timestamp.
	Disconnect(ctx context.Context) error

	// LastSyncTime returns when the last successful push finished, or
	// false if no push has ever succeeded.
	LastSyncTime(ctx context.Context) (time.Time, bool)
}
