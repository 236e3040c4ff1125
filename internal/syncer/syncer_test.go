package syncer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warlord-os/warlord/internal/logging"
	"github.com/warlord-os/warlord/internal/models"
	"github.com/warlord-os/warlord/internal/store"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeAdapter is a controllable drive.Adapter.
type fakeAdapter struct {
	mu        sync.Mutex
	connected bool
	syncErr   error
	calls     int
	block     chan struct{} // when non-nil, Sync blocks until closed
	waitCtx   bool          // when set, Sync blocks until ctx is cancelled
}

func (f *fakeAdapter) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

func (f *fakeAdapter) Authenticate(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connected = true
	return nil
}

func (f *fakeAdapter) Sync(ctx context.Context, snap models.Snapshot) error {
	f.mu.Lock()
	f.calls++
	block := f.block
	waitCtx := f.waitCtx
	err := f.syncErr
	f.mu.Unlock()

	if waitCtx {
		<-ctx.Done()
		return ctx.Err()
	}
	if block != nil {
		<-block
	}
	return err
}

func (f *fakeAdapter) Disconnect(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connected = false
	return nil
}

func (f *fakeAdapter) LastSyncTime(ctx context.Context) (time.Time, bool) {
	return time.Time{}, false
}

func (f *fakeAdapter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(store.NewMemoryBackend(), testLogger())
}

func TestTrySync_SkipsWithoutAdapterOrLink(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	st.Create(ctx, models.CardDraft{Title: "card"})

	s := New(st, nil, testLogger(), time.Minute)
	assert.False(t, s.TrySync(ctx))

	adapter := &fakeAdapter{}
	s = New(st, adapter, testLogger(), time.Minute)
	assert.False(t, s.TrySync(ctx), "not connected yet")
	assert.Zero(t, adapter.callCount())
}

func TestTrySync_SkipsEmptyStore(t *testing.T) {
	st := newTestStore(t)
	adapter := &fakeAdapter{connected: true}
	s := New(st, adapter, testLogger(), time.Minute)

	assert.False(t, s.TrySync(context.Background()))
	assert.Zero(t, adapter.callCount())
}

func TestTrySync_PushesAndStampsProfile(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	st.Create(ctx, models.CardDraft{SubjectId: "maths", Title: "card"})
	st.SetProfile(ctx, &models.UserProfile{Username: "saifan"})

	adapter := &fakeAdapter{connected: true}
	s := New(st, adapter, testLogger(), time.Minute)

	require.True(t, s.TrySync(ctx))
	assert.Equal(t, 1, adapter.callCount())

	p := st.GetProfile(ctx)
	require.NotNil(t, p)
	assert.NotZero(t, p.LastSync)
}

func TestTrySync_FailureLeavesProfileUnstamped(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	st.Create(ctx, models.CardDraft{Title: "card"})
	st.SetProfile(ctx, &models.UserProfile{Username: "saifan"})

	adapter := &fakeAdapter{connected: true, syncErr: errors.New("boom")}
	s := New(st, adapter, testLogger(), time.Minute)

	require.False(t, s.TrySync(ctx))
	assert.Zero(t, st.GetProfile(ctx).LastSync)
}

func TestTrySync_SecondCallSkippedWhileInFlight(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	st.Create(ctx, models.CardDraft{Title: "card"})

	block := make(chan struct{})
	adapter := &fakeAdapter{connected: true, block: block}
	s := New(st, adapter, testLogger(), time.Minute)

	done := make(chan bool)
	go func() { done <- s.TrySync(ctx) }()

	// wait for the first push to enter the adapter
	require.Eventually(t, func() bool { return adapter.callCount() == 1 },
		time.Second, 5*time.Millisecond)

	assert.False(t, s.TrySync(ctx), "overlapping push must be skipped")
	assert.Equal(t, 1, adapter.callCount())

	close(block)
	assert.True(t, <-done)
}

func TestRun_CancelInterruptsInFlightPush(t *testing.T) {
	st := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	st.Create(ctx, models.CardDraft{Title: "card"})

	adapter := &fakeAdapter{connected: true, waitCtx: true}
	s := New(st, adapter, testLogger(), 5*time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(stopped)
	}()

	// wait until a push is stuck inside the adapter
	require.Eventually(t, func() bool { return adapter.callCount() >= 1 },
		time.Second, time.Millisecond)

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("cancelling the loop must also cancel the in-flight push")
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	st := newTestStore(t)
	adapter := &fakeAdapter{}
	s := New(st, adapter, testLogger(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(stopped)
	}()

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on context cancellation")
	}
}
