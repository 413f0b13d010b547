package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/hackathon-scout/internal/domain"
	"github.com/couchcryptid/hackathon-scout/internal/history"
	"github.com/couchcryptid/hackathon-scout/internal/observability"
)

// --- mocks ---

// countingRetriever returns a fixed payload (or error) and counts calls.
type countingRetriever struct {
	mu      sync.Mutex
	calls   int
	payload []byte
	err     error

	// release, when set, blocks Retrieve until closed.
	release chan struct{}
	started chan struct{}
}

func (r *countingRetriever) Retrieve(_ context.Context, _ string) ([]byte, error) {
	r.mu.Lock()
	r.calls++
	started := r.started
	r.started = nil
	r.mu.Unlock()
	if started != nil {
		close(started)
	}
	if r.release != nil {
		<-r.release
	}
	return r.payload, r.err
}

func (r *countingRetriever) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type memStore struct {
	mu     sync.Mutex
	values map[string]string
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func newTestPipeline(t *testing.T, r domain.Retriever) *Pipeline {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hist := history.NewManager(context.Background(), &memStore{values: map[string]string{}}, logger)

	p := New(r, hist, logger, observability.NewMetricsForTesting(), clockwork.NewFakeClock())
	p.newID = func() string { return "test-lookup" }
	return p
}

const singleRecordPayload = `[{"Hackathon Name":"City Hack 2025","Leader Name":"Ravi"}]`

// --- tests ---

func TestLookup_EmptyInputIgnored(t *testing.T) {
	r := &countingRetriever{payload: []byte(singleRecordPayload)}
	p := newTestPipeline(t, r)

	for _, input := range []string{"", "   ", "\t"} {
		_, err := p.Lookup(context.Background(), input)
		require.ErrorIs(t, err, domain.ErrEmptyRegion, "input %q", input)
	}

	assert.Equal(t, 0, r.callCount(), "blank input must never reach the engine")
	assert.Error(t, p.CheckReadiness(context.Background()))
}

func TestLookup_NormalizedKeyCacheHit(t *testing.T) {
	r := &countingRetriever{payload: []byte(singleRecordPayload)}
	p := newTestPipeline(t, r)
	ctx := context.Background()

	first, err := p.Lookup(ctx, "Bangalore")
	require.NoError(t, err)

	second, err := p.Lookup(ctx, " bangalore ")
	require.NoError(t, err)

	assert.Equal(t, 1, r.callCount(), "second lookup must be served from cache")
	assert.Empty(t, cmp.Diff(first, second))
}

func TestLookup_DistinctRegionsMiss(t *testing.T) {
	r := &countingRetriever{payload: []byte(singleRecordPayload)}
	p := newTestPipeline(t, r)
	ctx := context.Background()

	_, err := p.Lookup(ctx, "Bangalore")
	require.NoError(t, err)
	_, err = p.Lookup(ctx, "Pune")
	require.NoError(t, err)

	assert.Equal(t, 2, r.callCount())
}

func TestLookup_EmptyResultBecomesSentinelSet(t *testing.T) {
	r := &countingRetriever{payload: []byte(`[]`)}
	p := newTestPipeline(t, r)

	set, err := p.Lookup(context.Background(), "Nowhere")
	require.NoError(t, err)

	require.Len(t, set, 1)
	for _, v := range set[0].Values() {
		assert.Equal(t, domain.NotAvailable, v)
	}
}

func TestLookup_FailureLeavesCacheAndHistoryUntouched(t *testing.T) {
	r := &countingRetriever{err: errors.New("engine unavailable")}
	p := newTestPipeline(t, r)
	ctx := context.Background()

	_, err := p.Lookup(ctx, "Bangalore")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine unavailable")
	assert.Empty(t, p.History())

	// No false cache hit: the retry reaches the engine again.
	r.err = nil
	r.payload = []byte(singleRecordPayload)
	_, err = p.Lookup(ctx, "Bangalore")
	require.NoError(t, err)
	assert.Equal(t, 2, r.callCount())
}

func TestLookup_FailureKeepsPriorViewingState(t *testing.T) {
	r := &countingRetriever{payload: []byte(singleRecordPayload)}
	p := newTestPipeline(t, r)
	ctx := context.Background()

	good, err := p.Lookup(ctx, "Bangalore")
	require.NoError(t, err)

	r.err = errors.New("engine unavailable")
	_, err = p.Lookup(ctx, "Pune")
	require.Error(t, err)

	st := p.Snapshot()
	assert.False(t, st.Loading, "loading flag always clears")
	assert.Equal(t, "Bangalore", st.Viewing)
	assert.Empty(t, cmp.Diff(good, st.Active))
	assert.Contains(t, st.LastError, "engine unavailable")
}

func TestLookup_SuccessRecordsHistory(t *testing.T) {
	r := &countingRetriever{payload: []byte(singleRecordPayload)}
	p := newTestPipeline(t, r)
	ctx := context.Background()

	_, err := p.Lookup(ctx, " Bangalore ")
	require.NoError(t, err)

	// Display form (trimmed, original casing) goes on the list.
	assert.Equal(t, []string{"Bangalore"}, p.History())
}

func TestLookup_CacheHitDoesNotTouchHistory(t *testing.T) {
	r := &countingRetriever{payload: []byte(singleRecordPayload)}
	p := newTestPipeline(t, r)
	ctx := context.Background()

	_, err := p.Lookup(ctx, "Bangalore")
	require.NoError(t, err)
	_, err = p.Lookup(ctx, "BANGALORE")
	require.NoError(t, err)

	assert.Equal(t, []string{"Bangalore"}, p.History())
}

func TestLookup_RejectsOverlappingInvocation(t *testing.T) {
	r := &countingRetriever{
		payload: []byte(singleRecordPayload),
		release: make(chan struct{}),
		started: make(chan struct{}),
	}
	p := newTestPipeline(t, r)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := p.Lookup(ctx, "Bangalore")
		assert.NoError(t, err)
	}()

	select {
	case <-r.started:
	case <-time.After(time.Second):
		t.Fatal("first lookup never reached the engine")
	}

	assert.True(t, p.Snapshot().Loading)

	_, err := p.Lookup(ctx, "Pune")
	require.ErrorIs(t, err, ErrLookupInFlight)

	close(r.release)
	<-done

	// Guard released: the next lookup goes through.
	_, err = p.Lookup(ctx, "Pune")
	require.NoError(t, err)
}

func TestLookup_ReadinessAfterFirstCompletion(t *testing.T) {
	r := &countingRetriever{payload: []byte(singleRecordPayload)}
	p := newTestPipeline(t, r)
	ctx := context.Background()

	require.Error(t, p.CheckReadiness(ctx))

	_, err := p.Lookup(ctx, "Bangalore")
	require.NoError(t, err)

	assert.NoError(t, p.CheckReadiness(ctx))
}

func TestLookup_StateReplacedAtomically(t *testing.T) {
	r := &countingRetriever{payload: []byte(singleRecordPayload)}
	p := newTestPipeline(t, r)

	set, err := p.Lookup(context.Background(), "Bangalore")
	require.NoError(t, err)

	st := p.Snapshot()
	assert.Equal(t, "Bangalore", st.Viewing)
	assert.False(t, st.Loading)
	assert.Empty(t, st.LastError)
	assert.Empty(t, cmp.Diff(set, st.Active))
}
