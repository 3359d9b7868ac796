package tests

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"carpool/internal/domain"
	"carpool/internal/repository"
)

// newTestLogger returns a logger that discards output.
func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// ──────────────────────────────────────────────
// MOCK TRIP CANDIDATE REPOSITORY
// ──────────────────────────────────────────────

// MockTripCandidateRepository is a mock implementation of TripCandidateRepository.
type MockTripCandidateRepository struct {
	mu         sync.RWMutex
	candidates []domain.TripCandidate

	// Counters for verification
	FindCallCount int32

	// Last query seen, for contract assertions
	LastQuery repository.CandidateQuery

	// Error injection
	FindError error
}

// NewMockTripCandidateRepository creates a new mock candidate repository.
func NewMockTripCandidateRepository() *MockTripCandidateRepository {
	return &MockTripCandidateRepository{}
}

// SetCandidates seeds the candidate set returned by FindCandidates, in
// retriever order (ascending distance-to-origin).
func (m *MockTripCandidateRepository) SetCandidates(candidates []domain.TripCandidate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.candidates = candidates
}

func (m *MockTripCandidateRepository) FindCandidates(ctx context.Context, q repository.CandidateQuery) ([]domain.TripCandidate, error) {
	atomic.AddInt32(&m.FindCallCount, 1)
	m.mu.Lock()
	m.LastQuery = q
	m.mu.Unlock()

	if m.FindError != nil {
		return nil, m.FindError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	// Honor the retrieval cap the way the real store does.
	limit := len(m.candidates)
	if q.Limit > 0 && q.Limit < limit {
		limit = q.Limit
	}
	result := make([]domain.TripCandidate, limit)
	copy(result, m.candidates[:limit])
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK ROUTE CACHE
// ──────────────────────────────────────────────

// MockRouteCache is a mock implementation of RouteCacheInterface.
type MockRouteCache struct {
	mu      sync.RWMutex
	entries map[string]domain.RouteResult

	// Counters for verification
	GetCallCount int32
	SetCallCount int32

	// Last TTL passed to Set
	LastTTL time.Duration

	// Error injection
	GetError error
	SetError error
}

// NewMockRouteCache creates a new mock route cache.
func NewMockRouteCache() *MockRouteCache {
	return &MockRouteCache{
		entries: make(map[string]domain.RouteResult),
	}
}

func (m *MockRouteCache) Get(ctx context.Context, key string) (*domain.RouteResult, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[key]
	if !ok {
		return nil, nil // Cache miss
	}
	// Return a copy to avoid mutation issues.
	copy := entry
	return &copy, nil
}

func (m *MockRouteCache) Set(ctx context.Context, key string, result *domain.RouteResult, ttl time.Duration) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	if m.SetError != nil {
		return m.SetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = *result
	m.LastTTL = ttl
	return nil
}

// Entries returns how many entries the cache holds, for test assertions.
func (m *MockRouteCache) Entries() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// ──────────────────────────────────────────────
// MOCK ROUTE PROVIDER
// ──────────────────────────────────────────────

// MockRouteProvider is a mock implementation of RouteProvider.
type MockRouteProvider struct {
	mu  sync.RWMutex
	leg domain.RouteLeg

	// Counters for verification
	ComputeCallCount int32

	// Error injection
	ComputeError error
}

// NewMockRouteProvider creates a new mock route provider.
func NewMockRouteProvider(leg domain.RouteLeg) *MockRouteProvider {
	return &MockRouteProvider{leg: leg}
}

func (m *MockRouteProvider) ComputeRoute(ctx context.Context, origin, destination string) (*domain.RouteLeg, error) {
	atomic.AddInt32(&m.ComputeCallCount, 1)
	if m.ComputeError != nil {
		return nil, m.ComputeError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	copy := m.leg
	return &copy, nil
}
