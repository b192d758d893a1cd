package store

import (
	"context"
	"errors"
	"sync"

	"github.com/doxalab/doxa/internal/domain"
)

var (
	ErrDuplicateID   = errors.New("belief id already exists")
	ErrUnknownBelief = errors.New("belief not found")
)

// GraphStore is the in-memory belief graph. Beliefs live in a map keyed by
// ID with a separate slice preserving insertion order; edges are a plain
// slice, also insertion-ordered. All enumerations walk those orders, which
// is the stability guarantee domain.GraphStore asks for.
//
// A GraphStore is an owned value: construct as many as you need, there is
// no package-level instance. Methods are safe for concurrent use; writes
// take the write lock, reads copy out under the read lock so callers never
// alias internal state.
type GraphStore struct {
	mu      sync.RWMutex
	beliefs map[string]domain.Belief
	order   []string
	edges   []domain.Edge
}

func NewGraphStore() *GraphStore {
	return &GraphStore{
		beliefs: make(map[string]domain.Belief),
		order:   make([]string, 0),
		edges:   make([]domain.Edge, 0),
	}
}

// InsertBelief adds a new belief. A duplicate ID is rejected with
// ErrDuplicateID and the store is left exactly as it was.
func (s *GraphStore) InsertBelief(ctx context.Context, b *domain.Belief) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.beliefs[b.ID]; exists {
		return ErrDuplicateID
	}

	s.beliefs[b.ID] = *b
	s.order = append(s.order, b.ID)
	return nil
}

// InsertEdge adds a directed edge. Both endpoints must already exist;
// re-inserting an identical (source, target, relation) triple is a no-op,
// so linking twice never double-counts an edge.
func (s *GraphStore) InsertEdge(ctx context.Context, e *domain.Edge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.beliefs[e.Source]; !ok {
		return ErrUnknownBelief
	}
	if _, ok := s.beliefs[e.Target]; !ok {
		return ErrUnknownBelief
	}

	for _, existing := range s.edges {
		if existing.Source == e.Source && existing.Target == e.Target && existing.Relation == e.Relation {
			return nil
		}
	}

	s.edges = append(s.edges, *e)
	return nil
}

func (s *GraphStore) GetBelief(ctx context.Context, id string) (*domain.Belief, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.beliefs[id]
	if !ok {
		return nil, ErrUnknownBelief
	}
	return &b, nil
}

func (s *GraphStore) ListBeliefs(ctx context.Context) ([]domain.Belief, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listLocked(), nil
}

// Cluster returns every belief asserting something about (entity,
// predicate), whatever its status, in insertion order.
func (s *GraphStore) Cluster(ctx context.Context, entity, predicate string) ([]domain.Belief, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]domain.Belief, 0)
	for _, id := range s.order {
		b := s.beliefs[id]
		if b.Entity == entity && b.Predicate == predicate {
			results = append(results, b)
		}
	}
	return results, nil
}

// EdgesFrom returns the outgoing edges of sourceID with the given
// relation, in edge insertion order.
func (s *GraphStore) EdgesFrom(ctx context.Context, sourceID string, rel domain.Relation) ([]domain.Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]domain.Edge, 0)
	for _, e := range s.edges {
		if e.Source == sourceID && e.Relation == rel {
			results = append(results, e)
		}
	}
	return results, nil
}

func (s *GraphStore) SetStatus(ctx context.Context, id string, status domain.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.beliefs[id]
	if !ok {
		return ErrUnknownBelief
	}
	b.Status = status
	s.beliefs[id] = b
	return nil
}

func (s *GraphStore) SetConfidence(ctx context.Context, id string, confidence float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.beliefs[id]
	if !ok {
		return ErrUnknownBelief
	}
	b.Confidence = confidence
	s.beliefs[id] = b
	return nil
}

// Snapshot copies beliefs and edges out under a single read lock, so the
// two halves are always from the same instant.
func (s *GraphStore) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	edges := make([]domain.Edge, len(s.edges))
	copy(edges, s.edges)

	return &domain.Snapshot{
		Beliefs: s.listLocked(),
		Edges:   edges,
	}, nil
}

func (s *GraphStore) Counts(ctx context.Context) (beliefs, edges int, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order), len(s.edges), nil
}

// listLocked snapshots all beliefs in insertion order. Callers hold at
// least the read lock.
func (s *GraphStore) listLocked() []domain.Belief {
	results := make([]domain.Belief, 0, len(s.order))
	for _, id := range s.order {
		results = append(results, s.beliefs[id])
	}
	return results
}

var _ domain.GraphStore = (*GraphStore)(nil)
