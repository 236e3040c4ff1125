// Package dossier implements export and import of the full card-store state
// as a single human-readable JSON document, for manual backup and restore.
package dossier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/warlord-os/warlord/internal/models"
	"github.com/warlord-os/warlord/internal/store"
)

// ErrInvalidDossier is returned by Import when the document cannot be parsed.
// Nothing is applied in that case.
var ErrInvalidDossier = errors.New("invalid dossier document")

// Document is the wire format of an exported dossier. ExportDate is epoch
// milliseconds. Unknown extra fields are ignored on import.
type Document struct {
	Cards      []models.CombatCard `json:"cards"`
	User       *models.UserProfile `json:"user,omitempty"`
	ExportDate int64               `json:"exportDate"`
}

const filePrefix = "warlord_dossier"

// Codec serializes the store state to a dossier document and back.
type Codec struct {
	store *store.Store
	now   func() time.Time
}

// New returns a codec over the given store.
func New(st *store.Store) *Codec {
	return &Codec{store: st, now: time.Now}
}

// Export serializes the full store state to indented JSON and returns it with
// the deterministic file name for the current date, e.g.
// warlord_dossier_2026-03-07.json.
func (c *Codec) Export(ctx context.Context) ([]byte, string, error) {
	snap := c.store.Snapshot(ctx)
	doc := Document{
		Cards:      snap.Cards,
		User:       snap.User,
		ExportDate: c.now().UnixMilli(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize dossier: %w", err)
	}

	name := fmt.Sprintf("%s_%s.json", filePrefix, c.now().Format("2006-01-02"))
	return data, name, nil
}

// Import parses data and applies it to the store. A present cards section
// wholesale replaces the card list (triggering the normal notification path);
// a present user section replaces the profile; a missing section leaves that
// part untouched. Malformed input returns ErrInvalidDossier and leaves the
// store completely unchanged.
func (c *Codec) Import(ctx context.Context, data []byte) error {
	var doc struct {
		Cards *[]models.CombatCard `json:"cards"`
		User  *models.UserProfile  `json:"user"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDossier, err)
	}

	c.store.Restore(ctx, doc.Cards, doc.User)
	return nil
}
