package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/hackathon-scout/internal/domain"
	"github.com/couchcryptid/hackathon-scout/internal/history"
	"github.com/couchcryptid/hackathon-scout/internal/observability"
)

// ErrLookupInFlight is returned when a lookup starts while another is still
// waiting on the engine. Rejecting the overlap keeps the single-mutator
// model honest instead of letting two completions race on shared state.
var ErrLookupInFlight = errors.New("a lookup is already in flight")

// State is the transient view the presentation layer reads. It is replaced
// wholesale on every mutation, never edited field by field, so a reader can
// never observe a half-updated lookup.
type State struct {
	Input     string
	Loading   bool
	Viewing   string
	Active    domain.RecordSet
	LastError string
}

// Pipeline orchestrates one region lookup end to end: normalize, cache
// probe, retrieve, validate, cache, record history.
type Pipeline struct {
	retriever domain.Retriever
	cache     *resultCache
	history   *history.Manager
	logger    *slog.Logger
	metrics   *observability.Metrics
	clock     clockwork.Clock
	newID     func() string

	inFlight atomic.Bool
	ready    atomic.Bool

	mu    sync.Mutex
	state State
}

// New creates a Pipeline with the given collaborators.
func New(r domain.Retriever, h *history.Manager, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Pipeline {
	return &Pipeline{
		retriever: r,
		cache:     newResultCache(),
		history:   h,
		logger:    logger,
		metrics:   metrics,
		clock:     clock,
		newID:     uuid.NewString,
	}
}

// CheckReadiness returns nil once at least one lookup has completed, or an
// error describing why the client has nothing to show yet.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no lookup has completed yet")
	}
	return nil
}

// Snapshot returns a copy of the current pipeline state.
func (p *Pipeline) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Pipeline) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// Lookup runs the full pipeline for one user-entered region string.
//
// Blank input returns domain.ErrEmptyRegion with no other effect. A cache
// hit returns the stored set without touching the engine or the history. A
// failed retrieval leaves the cache and history untouched, records the error
// in the state, and keeps the previously viewed set on screen.
func (p *Pipeline) Lookup(ctx context.Context, input string) (domain.RecordSet, error) {
	display := domain.DisplayRegion(input)
	if display == "" {
		return nil, domain.ErrEmptyRegion
	}
	key := domain.NormalizeRegion(input)

	if set, ok := p.cache.get(key); ok {
		p.metrics.Lookups.WithLabelValues("cache_hit").Inc()
		p.setState(State{Input: input, Viewing: display, Active: set})
		p.ready.Store(true)
		return set, nil
	}

	if !p.inFlight.CompareAndSwap(false, true) {
		return nil, ErrLookupInFlight
	}
	defer p.inFlight.Store(false)

	id := p.newID()
	prev := p.Snapshot()
	p.setState(State{Input: input, Loading: true, Viewing: prev.Viewing, Active: prev.Active})
	p.logger.Info("lookup started", "lookup_id", id, "region", display)

	start := p.clock.Now()
	raw, err := p.retriever.Retrieve(ctx, display)
	elapsed := p.clock.Since(start)
	if err != nil {
		p.metrics.Lookups.WithLabelValues("error").Inc()
		p.logger.Error("lookup failed", "lookup_id", id, "region", display, "elapsed", elapsed, "error", err)
		p.setState(State{Input: input, Viewing: prev.Viewing, Active: prev.Active, LastError: err.Error()})
		return nil, fmt.Errorf("look up hackathons for %q: %w", display, err)
	}

	set := Validate(raw)
	if set.IsFallback() {
		p.metrics.FallbackResults.Inc()
	}

	p.cache.put(key, set)
	p.metrics.CacheEntries.Set(float64(p.cache.len()))

	if err := p.history.Record(ctx, display); err != nil {
		// The in-memory list stays authoritative for the session; persistence
		// catches up on the next successful save.
		p.logger.Warn("history save failed", "lookup_id", id, "region", display, "error", err)
	}
	p.metrics.HistorySize.Set(float64(len(p.history.Regions())))

	p.metrics.Lookups.WithLabelValues("success").Inc()
	p.ready.Store(true)
	p.logger.Info("lookup complete", "lookup_id", id, "region", display, "records", len(set), "elapsed", elapsed)
	p.setState(State{Input: input, Viewing: display, Active: set})
	return set, nil
}

// History returns the most-recent-first list of looked-up regions.
func (p *Pipeline) History() []string {
	return p.history.Regions()
}
