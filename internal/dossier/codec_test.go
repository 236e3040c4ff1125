package dossier

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warlord-os/warlord/internal/logging"
	"github.com/warlord-os/warlord/internal/models"
	"github.com/warlord-os/warlord/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return store.New(store.NewMemoryBackend(), logger)
}

func TestExport_FileNameEmbedsDate(t *testing.T) {
	c := New(newTestStore(t))
	c.now = func() time.Time { return time.Date(2026, time.March, 7, 10, 30, 0, 0, time.UTC) }

	_, name, err := c.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "warlord_dossier_2026-03-07.json", name)
}

func TestExport_DocumentShape(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	card := st.Create(ctx, models.CardDraft{
		SubjectId: "maths",
		Title:     "Mensuration",
		Summary:   []string{"V=lbh"},
	})
	st.SetProfile(ctx, &models.UserProfile{Username: "saifan"})

	c := New(st)
	data, _, err := c.Export(ctx)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Cards, 1)
	assert.Equal(t, card.Id, doc.Cards[0].Id)
	require.NotNil(t, doc.User)
	assert.Equal(t, "saifan", doc.User.Username)
	assert.NotZero(t, doc.ExportDate)
}

func TestRoundTrip_ReproducesState(t *testing.T) {
	src := newTestStore(t)
	ctx := context.Background()

	src.Create(ctx, models.CardDraft{
		SubjectId:        "maths",
		Title:            "Mensuration",
		Summary:          []string{"V=lbh"},
		CriticalFormulas: []string{"TSA=2(lb+bh+hl)"},
		Traps:            []string{},
	})
	src.Create(ctx, models.CardDraft{SubjectId: "science", Title: "Sound", Summary: []string{"waves"}})
	src.SetProfile(ctx, &models.UserProfile{Username: "saifan", LastSync: 7})

	data, _, err := New(src).Export(ctx)
	require.NoError(t, err)

	dst := newTestStore(t)
	require.NoError(t, New(dst).Import(ctx, data))

	assert.Equal(t, src.List(ctx), dst.List(ctx))
	assert.Equal(t, src.GetProfile(ctx), dst.GetProfile(ctx))
}

func TestImport_RejectsGarbageWithoutMutation(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	st.Create(ctx, models.CardDraft{SubjectId: "maths", Title: "keep me"})
	st.SetProfile(ctx, &models.UserProfile{Username: "saifan"})
	before := st.List(ctx)

	c := New(st)
	err := c.Import(ctx, []byte("not json"))
	require.ErrorIs(t, err, ErrInvalidDossier)

	assert.Equal(t, before, st.List(ctx))
	assert.Equal(t, "saifan", st.GetProfile(ctx).Username)

	// structurally invalid cards section: nothing is applied either
	err = c.Import(ctx, []byte(`{"cards": "nope", "user": {"username": "evil"}}`))
	require.ErrorIs(t, err, ErrInvalidDossier)
	assert.Equal(t, before, st.List(ctx))
	assert.Equal(t, "saifan", st.GetProfile(ctx).Username)
}

func TestImport_MissingSectionsLeftUntouched(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	st.Create(ctx, models.CardDraft{SubjectId: "maths", Title: "keep me"})
	st.SetProfile(ctx, &models.UserProfile{Username: "saifan"})

	c := New(st)

	// user only: cards stay
	require.NoError(t, c.Import(ctx, []byte(`{"user": {"username": "commander"}}`)))
	require.Len(t, st.List(ctx), 1)
	assert.Equal(t, "commander", st.GetProfile(ctx).Username)

	// cards only: profile stays
	require.NoError(t, c.Import(ctx, []byte(`{"cards": []}`)))
	assert.Empty(t, st.List(ctx))
	assert.Equal(t, "commander", st.GetProfile(ctx).Username)
}

func TestImport_IgnoresUnknownFields(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	doc := `{"cards": [{"id":"intel_1_abc","subjectId":"maths","title":"T","summary":[],"criticalFormulas":[],"traps":[],"createdAt":1}],
	         "exportDate": 123, "schemaVersion": 9, "vendor": "warlord"}`
	require.NoError(t, New(st).Import(ctx, []byte(doc)))

	cards := st.List(ctx)
	require.Len(t, cards, 1)
	assert.Equal(t, "T", cards[0].Title)
}

func TestScenario_ExportClearImport(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	st.Create(ctx, models.CardDraft{
		SubjectId:        "maths",
		Title:            "Mensuration",
		Summary:          []string{"V=lbh"},
		CriticalFormulas: []string{"TSA=2(lb+bh+hl)"},
		Traps:            []string{},
	})

	c := New(st)
	exported, _, err := c.Export(ctx)
	require.NoError(t, err)

	// clear the store, then restore from the export
	empty := []models.CombatCard{}
	st.Restore(ctx, &empty, nil)
	require.Empty(t, st.List(ctx))

	require.NoError(t, c.Import(ctx, exported))
	cards := st.List(ctx)
	require.Len(t, cards, 1)
	assert.Equal(t, "Mensuration", cards[0].Title)
}
