package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/doxalab/doxa/internal/domain"
	"github.com/doxalab/doxa/internal/events"
	"github.com/doxalab/doxa/internal/store"
	"go.uber.org/zap"
)

var (
	ErrBeliefNotFound  = errors.New("belief not found")
	ErrBeliefExists    = errors.New("belief with this id already exists")
	ErrBeliefIDEmpty   = errors.New("id is required")
	ErrEntityEmpty     = errors.New("entity is required")
	ErrPredicateEmpty  = errors.New("predicate is required")
	ErrValueMissing    = errors.New("value is required")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrConfidenceRange = errors.New("confidence must be between 0 and 1")
)

// BeliefService is the engine's write path: it inserts beliefs and edges,
// detects contradictions, resolves them, and propagates decay. A mutex
// serializes the whole pipeline so each add lands as one transaction;
// concurrent callers never observe a contradiction scan mid-flight.
type BeliefService struct {
	graph  domain.GraphStore
	bus    *events.Bus
	logger *zap.Logger

	mu sync.Mutex
}

func NewBeliefService(graph domain.GraphStore, bus *events.Bus, logger *zap.Logger) *BeliefService {
	return &BeliefService{
		graph:  graph,
		bus:    bus,
		logger: logger,
	}
}

// AddBelief validates and inserts a belief, then, unless the caller set
// SkipCheck, scans for contradictions and resolves each one. It returns
// the belief as stored after any resolution, so a newcomer that lost its
// own conflict comes back demoted.
//
// Validation failures and duplicate IDs reject the call before or instead
// of any mutation; the store is untouched on error.
func (s *BeliefService) AddBelief(ctx context.Context, in domain.BeliefInput) (*domain.Belief, error) {
	if in.ID == "" {
		return nil, ErrBeliefIDEmpty
	}
	if in.Entity == "" {
		return nil, ErrEntityEmpty
	}
	if in.Predicate == "" {
		return nil, ErrPredicateEmpty
	}
	if in.Value.IsZero() {
		return nil, ErrValueMissing
	}
	if in.Confidence < 0 || in.Confidence > 1 {
		return nil, ErrConfidenceRange
	}
	if in.Status != "" && !domain.ValidStatus(string(in.Status)) {
		return nil, ErrInvalidStatus
	}

	b := &domain.Belief{
		ID:         in.ID,
		Entity:     in.Entity,
		Predicate:  in.Predicate,
		Value:      in.Value,
		Confidence: in.Confidence,
		Source:     in.Source,
		Status:     in.Status,
		CreatedAt:  timeNow().UTC(),
	}
	if b.Source == "" {
		b.Source = domain.DefaultSource
	}
	if b.Status == "" {
		b.Status = domain.StatusActive
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.graph.InsertBelief(ctx, b); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			return nil, ErrBeliefExists
		}
		return nil, err
	}

	s.publish(events.Event{
		Type:          events.TypeBeliefAdded,
		BeliefID:      b.ID,
		Entity:        b.Entity,
		Predicate:     b.Predicate,
		Value:         b.Value.String(),
		NewConfidence: b.Confidence,
		NewStatus:     string(b.Status),
	})

	if !in.SkipCheck {
		if err := s.detectAndResolve(ctx, b); err != nil {
			return nil, err
		}
	}

	return s.graph.GetBelief(ctx, b.ID)
}

// AddSupportEdge links parent -> child with a supports edge, marking the
// parent as evidence for the child. Linking the same pair twice is a
// no-op.
func (s *BeliefService) AddSupportEdge(ctx context.Context, parentID, childID string) error {
	if parentID == "" || childID == "" {
		return ErrBeliefIDEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := &domain.Edge{
		Source:    parentID,
		Target:    childID,
		Relation:  domain.RelationSupports,
		CreatedAt: timeNow().UTC(),
	}
	if err := s.graph.InsertEdge(ctx, e); err != nil {
		if errors.Is(err, store.ErrUnknownBelief) {
			return ErrBeliefNotFound
		}
		return err
	}

	s.publish(events.Event{
		Type:      events.TypeSupportLinked,
		BeliefID:  parentID,
		RelatedID: childID,
	})
	return nil
}

// ArchiveBelief advances a belief one lifecycle step: outdated beliefs
// become archived, archived ones become shadow_history. Active beliefs
// are left alone and shadow_history is terminal; neither counts as an
// error.
func (s *BeliefService) ArchiveBelief(ctx context.Context, id string) (*domain.Belief, error) {
	if id == "" {
		return nil, ErrBeliefIDEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.archiveStep(ctx, id); err != nil {
		if errors.Is(err, store.ErrUnknownBelief) {
			return nil, ErrBeliefNotFound
		}
		return nil, err
	}
	return s.graph.GetBelief(ctx, id)
}

func (s *BeliefService) publish(e events.Event) {
	if s.bus == nil {
		return
	}
	e.At = timeNow().UTC()
	s.bus.Publish(e)
}

var timeNow = time.Now
