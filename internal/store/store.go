package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/warlord-os/warlord/internal/logging"
	"github.com/warlord-os/warlord/internal/models"
)

// nowFn is a test seam for the clock used for card ids and timestamps.
var nowFn = time.Now

// Subscriber receives the full current card list, newest first.
type Subscriber func(cards []models.CombatCard)

// Store is the single source of truth for the card list and the user profile.
//
// Every mutation is persisted through the backend and then delivered to all
// subscribers. Persistence failures are logged and do not roll back the
// in-memory state: for the current session the in-memory view stays
// authoritative even if durability was lost. Corrupt or unreadable persisted
// state is treated as empty rather than surfaced as an error.
//
// Cards and the profile are independent notification channels: profile
// changes never trigger card subscribers.
type Store struct {
	backend Backend
	log     logging.Logger

	mu      sync.Mutex
	loaded  bool
	cards   []models.CombatCard
	profile *models.UserProfile

	nextSubId int
	subs      map[int]Subscriber
}

// New returns a store over the given backend. State is loaded lazily on first
// access.
func New(backend Backend, log logging.Logger) *Store {
	return &Store{
		backend: backend,
		log:     log.With("component", "store"),
		subs:    make(map[int]Subscriber),
	}
}

// newCardId derives a fresh card id from the current time plus a random
// suffix, so ids stay unique across process restarts.
func newCardId(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("intel_%d_%s", now.UnixMilli(), suffix)
}

// ensureLoaded reads persisted state on first access. Callers must hold mu.
func (s *Store) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	if data, err := s.backend.Get(ctx, KeyCards); err != nil {
		s.log.Warn(ctx, "failed to read cards, starting empty", "error", err)
	} else if len(data) > 0 {
		var cards []models.CombatCard
		if err := json.Unmarshal(data, &cards); err != nil {
			s.log.Warn(ctx, "corrupt card data, starting empty", "error", err)
		} else {
			s.cards = cards
		}
	}

	if data, err := s.backend.Get(ctx, KeyProfile); err != nil {
		s.log.Warn(ctx, "failed to read profile, starting empty", "error", err)
	} else if len(data) > 0 {
		var profile models.UserProfile
		if err := json.Unmarshal(data, &profile); err != nil {
			s.log.Warn(ctx, "corrupt profile data, starting empty", "error", err)
		} else {
			s.profile = &profile
		}
	}
}

// persistCards writes the current card list. Callers must hold mu. A write
// failure is logged; the in-memory mutation stands.
func (s *Store) persistCards(ctx context.Context) {
	data, err := json.Marshal(s.cards)
	if err != nil {
		s.log.Error(ctx, "failed to marshal cards", "error", err)
		return
	}
	if err := s.backend.Set(ctx, KeyCards, data); err != nil {
		s.log.Error(ctx, "failed to persist cards", "error", err)
	}
}

// snapshotLocked copies the card list for handing out. Callers must hold mu.
func (s *Store) snapshotLocked() []models.CombatCard {
	out := make([]models.CombatCard, len(s.cards))
	copy(out, s.cards)
	return out
}

// subscribersLocked snapshots the subscriber set so that callbacks registered
// during a notification are only invoked from the next mutation onward.
// Callers must hold mu.
func (s *Store) subscribersLocked() []Subscriber {
	out := make([]Subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		out = append(out, sub)
	}
	return out
}

// Create assigns a fresh id and creation timestamp to the draft, prepends the
// card to the stored list (newest first), persists, and notifies subscribers.
func (s *Store) Create(ctx context.Context, draft models.CardDraft) models.CombatCard {
	s.mu.Lock()
	s.ensureLoaded(ctx)

	now := nowFn()
	card := models.CombatCard{
		Id:               newCardId(now),
		SubjectId:        draft.SubjectId,
		Title:            draft.Title,
		Summary:          draft.Summary,
		CriticalFormulas: draft.CriticalFormulas,
		Traps:            draft.Traps,
		CreatedAt:        now.UnixMilli(),
	}
	s.cards = append([]models.CombatCard{card}, s.cards...)
	s.persistCards(ctx)
	cards, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	s.notify(cards, subs)
	return card
}

// Update merges the patch into the card with the given id, preserving Id and
// CreatedAt. Updating an unknown id is a no-op.
func (s *Store) Update(ctx context.Context, id string, patch models.CardPatch) {
	s.mu.Lock()
	s.ensureLoaded(ctx)

	found := false
	for i := range s.cards {
		if s.cards[i].Id != id {
			continue
		}
		found = true
		if patch.SubjectId != nil {
			s.cards[i].SubjectId = *patch.SubjectId
		}
		if patch.Title != nil {
			s.cards[i].Title = *patch.Title
		}
		if patch.Summary != nil {
			s.cards[i].Summary = *patch.Summary
		}
		if patch.CriticalFormulas != nil {
			s.cards[i].CriticalFormulas = *patch.CriticalFormulas
		}
		if patch.Traps != nil {
			s.cards[i].Traps = *patch.Traps
		}
		break
	}
	if !found {
		s.mu.Unlock()
		return
	}

	s.persistCards(ctx)
	cards, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	s.notify(cards, subs)
}

// Delete removes the card with the given id. An unknown id is not an error:
// the resulting state is unchanged, but the list is still persisted and
// subscribers still receive it, exactly as with a matching id.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	s.ensureLoaded(ctx)

	filtered := s.cards[:0]
	for _, c := range s.cards {
		if c.Id == id {
			continue
		}
		filtered = append(filtered, c)
	}
	s.cards = filtered

	s.persistCards(ctx)
	cards, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	s.notify(cards, subs)
}

// List returns the current card list, newest first.
func (s *Store) List(ctx context.Context) []models.CombatCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.snapshotLocked()
}

// Get returns the card with the given id, or false if it does not exist.
func (s *Store) Get(ctx context.Context, id string) (models.CombatCard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	for _, c := range s.cards {
		if c.Id == id {
			return c, true
		}
	}
	return models.CombatCard{}, false
}

// Subscribe registers cb for card-list updates. The current list is delivered
// synchronously before Subscribe returns, then again after every mutation.
// The returned function removes the subscription and is safe to call twice.
func (s *Store) Subscribe(ctx context.Context, cb Subscriber) func() {
	s.mu.Lock()
	s.ensureLoaded(ctx)
	id := s.nextSubId
	s.nextSubId++
	s.subs[id] = cb
	cards := s.snapshotLocked()
	s.mu.Unlock()

	cb(cards)

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify(cards []models.CombatCard, subs []Subscriber) {
	for _, sub := range subs {
		sub(cards)
	}
}

// GetProfile returns the current profile, or nil when nobody is logged in.
func (s *Store) GetProfile(ctx context.Context) *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// SetProfile replaces the profile; nil clears it (logout). Profile changes do
// not trigger card subscribers.
func (s *Store) SetProfile(ctx context.Context, profile *models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	if profile == nil {
		s.profile = nil
		if err := s.backend.Delete(ctx, KeyProfile); err != nil {
			s.log.Error(ctx, "failed to clear profile", "error", err)
		}
		return
	}

	p := *profile
	s.profile = &p
	data, err := json.Marshal(p)
	if err != nil {
		s.log.Error(ctx, "failed to marshal profile", "error", err)
		return
	}
	if err := s.backend.Set(ctx, KeyProfile, data); err != nil {
		s.log.Error(ctx, "failed to persist profile", "error", err)
	}
}

// Snapshot returns the current (cards, profile) pair.
func (s *Store) Snapshot(ctx context.Context) models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	snap := models.Snapshot{Cards: s.snapshotLocked()}
	if s.profile != nil {
		p := *s.profile
		snap.User = &p
	}
	return snap
}

// Restore overwrites parts of the store from a parsed dossier document. A nil
// cards pointer leaves the card list untouched, a nil user pointer leaves the
// profile untouched. The card list is replaced wholesale (never merged) and
// the normal notification path fires. Both sections are persisted in one
// batch when the backend supports it.
func (s *Store) Restore(ctx context.Context, cards *[]models.CombatCard, user *models.UserProfile) {
	if cards == nil && user == nil {
		return
	}

	s.mu.Lock()
	s.ensureLoaded(ctx)

	values := make(map[string][]byte)
	if cards != nil {
		replacement := make([]models.CombatCard, len(*cards))
		copy(replacement, *cards)
		s.cards = replacement

		if data, err := json.Marshal(s.cards); err != nil {
			s.log.Error(ctx, "failed to marshal cards", "error", err)
		} else {
			values[KeyCards] = data
		}
	}
	if user != nil {
		p := *user
		s.profile = &p

		if data, err := json.Marshal(p); err != nil {
			s.log.Error(ctx, "failed to marshal profile", "error", err)
		} else {
			values[KeyProfile] = data
		}
	}

	if err := s.setAll(ctx, values); err != nil {
		s.log.Error(ctx, "failed to persist restored state", "error", err)
	}

	if cards == nil {
		s.mu.Unlock()
		return
	}
	list, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	s.notify(list, subs)
}

func (s *Store) setAll(ctx context.Context, values map[string][]byte) error {
	if batch, ok := s.backend.(BatchBackend); ok {
		return batch.SetBatch(ctx, values)
	}
	for key, value := range values {
		if err := s.backend.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}
