// Package syncer runs the periodic background push of the local snapshot to
// the cloud dossier.
package syncer

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/warlord-os/warlord/internal/drive"
	"github.com/warlord-os/warlord/internal/logging"
	"github.com/warlord-os/warlord/internal/store"
)

// pushTimeout bounds a single push so a stalled upload cannot wedge the loop.
const pushTimeout = 30 * time.Second

// Syncer pushes snapshots on a fixed interval while a cloud link exists and
// at least one card is stored. A push still outstanding when the next tick
// fires makes that tick a no-op, so pushes never overlap. Manual syncs go
// through the same guard.
type Syncer struct {
	store    *store.Store
	adapter  drive.Adapter
	log      logging.Logger
	interval time.Duration

	inFlight atomic.Bool
}

// New returns a syncer. The adapter may be nil, in which case every push is
// skipped.
func New(st *store.Store, adapter drive.Adapter, log logging.Logger, interval time.Duration) *Syncer {
	return &Syncer{
		store:    st,
		adapter:  adapter,
		log:      log.With("component", "syncer"),
		interval: interval,
	}
}

// Run ticks until ctx is cancelled.
func (s *Syncer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pushCtx, cancel := context.WithTimeout(ctx, pushTimeout)
			s.TrySync(pushCtx)
			cancel()
		case <-ctx.Done():
			return
		}
	}
}

// TrySync pushes the current snapshot if a link exists, at least one card is
// stored, and no other push is outstanding. It reports whether a push
// happened and succeeded. Failures are logged and retried only on the next
// tick or explicit user action.
func (s *Syncer) TrySync(ctx context.Context) bool {
	if s.adapter == nil || !s.adapter.IsConnected() {
		return false
	}

	snap := s.store.Snapshot(ctx)
	if len(snap.Cards) == 0 {
		return false
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		s.log.Warn(ctx, "previous sync still in flight, skipping")
		return false
	}
	defer s.inFlight.Store(false)

	if err := s.adapter.Sync(ctx, snap); err != nil {
		s.log.Error(ctx, "cloud sync failed", "error", err)
		return false
	}

	if snap.User != nil {
		p := *snap.User
		p.LastSync = time.Now().UnixMilli()
		s.store.SetProfile(ctx, &p)
	}
	s.log.Info(ctx, "cloud sync completed", "cards", len(snap.Cards))
	return true
}
