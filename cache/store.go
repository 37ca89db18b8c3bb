package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

var tracer = otel.Tracer("github.com/goobiebot/respcache/cache")

// Store is a bounded, TTL-aware in-memory key-value store.
//
// T is the type of cached values. The store owns its entries exclusively:
// callers interact only through Get, Put, Delete, Clear and the accounting
// methods, all of which are safe for concurrent use.
type Store[T any] struct {
	mu      sync.RWMutex
	entries map[string]*entry[T]

	capacity int
	ttls     map[Category]time.Duration

	stats stats
	group singleflight.Group

	sweepInterval time.Duration
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup

	logger *slog.Logger

	hitCounter        prometheus.Counter
	missCounter       prometheus.Counter
	evictionCounter   prometheus.Counter
	expirationCounter prometheus.Counter
	traceEnabled      bool
}

// Option configures a Store.
type Option[T any] func(*Store[T])

// WithLogger sets the logger used by the store and its janitor.
// The default is slog.Default().
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(s *Store[T]) {
		s.logger = l
	}
}

// WithMetrics enables Prometheus metrics collection using the provided registerer.
func WithMetrics[T any](reg prometheus.Registerer) Option[T] {
	return func(s *Store[T]) {
		s.hitCounter = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "respcache_hits_total",
			Help: "Total number of cache hits",
		})
		s.missCounter = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "respcache_misses_total",
			Help: "Total number of cache misses",
		})
		s.evictionCounter = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "respcache_evictions_total",
			Help: "Total number of capacity evictions",
		})
		s.expirationCounter = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "respcache_expirations_total",
			Help: "Total number of entries removed after their TTL elapsed",
		})
		reg.MustRegister(s.hitCounter, s.missCounter, s.evictionCounter, s.expirationCounter)
	}
}

// WithTracing enables OpenTelemetry tracing for store operations.
func WithTracing[T any]() Option[T] {
	return func(s *Store[T]) {
		s.traceEnabled = true
	}
}

// New returns a Store configured by cfg. Misconfiguration (non-positive
// capacity, a declared category without a positive TTL, a TTL for an unknown
// category) is reported here and never at request time.
//
// When cfg.SweepInterval is positive a background janitor goroutine sweeps
// expired entries on that period; call Close to stop it.
func New[T any](cfg Config, opts ...Option[T]) (*Store[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	ttls := make(map[Category]time.Duration, len(cfg.TTLs))
	for cat, ttl := range cfg.TTLs {
		ttls[cat] = ttl
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Store[T]{
		entries:       make(map[string]*entry[T]),
		capacity:      cfg.MaxEntries,
		ttls:          ttls,
		sweepInterval: cfg.SweepInterval,
		ctx:           ctx,
		cancel:        cancel,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger.Info("cache store initialized",
		"capacity", s.capacity,
		"categories", len(s.ttls),
		"sweep_interval", s.sweepInterval)
	if s.sweepInterval > 0 {
		s.wg.Add(1)
		go s.sweeper()
	}
	return s, nil
}

// Get returns the value stored under key. The boolean is true only when an
// entry exists and is still fresh. A stale entry found here is removed
// inline and reported as a miss; the hit or miss counter is incremented
// exactly once per call.
func (s *Store[T]) Get(ctx context.Context, key string) (T, bool) {
	var span trace.Span
	if s.traceEnabled {
		_, span = tracer.Start(ctx, "Store.Get")
		defer span.End()
	}
	now := time.Now()
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		s.recordMiss()
		if s.traceEnabled {
			span.SetAttributes(attribute.String("respcache.result", "miss"))
		}
		var zero T
		return zero, false
	}
	if !e.fresh(now) {
		delete(s.entries, key)
		s.mu.Unlock()
		s.recordMiss()
		s.recordExpirations(1)
		if s.traceEnabled {
			span.SetAttributes(attribute.String("respcache.result", "expired"))
		}
		var zero T
		return zero, false
	}
	s.mu.Unlock()
	s.recordHit()
	if s.traceEnabled {
		span.SetAttributes(attribute.String("respcache.result", "hit"))
	}
	return e.value, true
}

// Put inserts or overwrites the entry for key, stamping it with the current
// time and the TTL configured for category. When inserting a new key would
// exceed capacity, the oldest entry is evicted first; the capacity bound
// holds at all times from any other caller's point of view. Overwriting an
// existing key never counts as growth.
func (s *Store[T]) Put(ctx context.Context, key string, value T, category Category) {
	var span trace.Span
	if s.traceEnabled {
		_, span = tracer.Start(ctx, "Store.Put")
		defer span.End()
		span.SetAttributes(attribute.String("respcache.category", string(category)))
	}
	ttl, ok := s.ttls[category]
	if !ok {
		// Unreachable through a validated Config. Absorb rather than fail
		// the caller; the key simply stays a miss.
		s.logger.Error("put with unregistered category, value not cached",
			"key", key, "category", string(category))
		return
	}
	s.mu.Lock()
	if _, exists := s.entries[key]; !exists {
		// The loop also heals the store if the count ever ends up above
		// capacity.
		for len(s.entries) >= s.capacity {
			victim, ok := selectVictim(s.entries)
			if !ok {
				break
			}
			delete(s.entries, victim)
			s.recordEviction()
			s.logger.Debug("evicted entry", "key", victim)
		}
	}
	s.entries[key] = &entry[T]{
		value:     value,
		category:  category,
		createdAt: time.Now(),
		ttl:       ttl,
	}
	s.mu.Unlock()
}

// Delete removes the entry for key if present. Used for explicit
// invalidation; deleting a missing key is a no-op.
func (s *Store[T]) Delete(ctx context.Context, key string) {
	var span trace.Span
	if s.traceEnabled {
		_, span = tracer.Start(ctx, "Store.Delete")
		defer span.End()
	}
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Len returns the current entry count.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear removes all entries. The accounting counters are untouched; use
// ResetStats to zero them.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	n := len(s.entries)
	s.entries = make(map[string]*entry[T])
	s.mu.Unlock()
	s.logger.Info("cache cleared", "removed", n)
}

// Stats returns a point-in-time snapshot of the accounting counters.
func (s *Store[T]) Stats() Snapshot {
	return s.stats.snapshot()
}

// ResetStats zeroes the accounting counters. Independent of Clear.
func (s *Store[T]) ResetStats() {
	s.stats.reset()
}

// Close stops the background janitor and drops all entries. The store must
// not be used after Close.
func (s *Store[T]) Close() {
	s.cancel()
	s.wg.Wait()
	s.mu.Lock()
	s.entries = make(map[string]*entry[T])
	s.mu.Unlock()
}

func (s *Store[T]) recordHit() {
	s.stats.hits.Add(1)
	if s.hitCounter != nil {
		s.hitCounter.Inc()
	}
}

func (s *Store[T]) recordMiss() {
	s.stats.misses.Add(1)
	if s.missCounter != nil {
		s.missCounter.Inc()
	}
}

func (s *Store[T]) recordEviction() {
	s.stats.evictions.Add(1)
	if s.evictionCounter != nil {
		s.evictionCounter.Inc()
	}
}

func (s *Store[T]) recordExpirations(n int) {
	s.stats.expirations.Add(uint64(n))
	if s.expirationCounter != nil {
		s.expirationCounter.Add(float64(n))
	}
}
