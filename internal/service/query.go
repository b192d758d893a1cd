package service

import (
	"context"

	"github.com/doxalab/doxa/internal/domain"
	"go.uber.org/zap"
)

// QueryService is the engine's read path. Its results are coherent
// snapshots: each call reads the store once, so a concurrent write lands
// either wholly before or wholly after what a query observes.
type QueryService struct {
	graph  domain.GraphStore
	logger *zap.Logger
}

func NewQueryService(graph domain.GraphStore, logger *zap.Logger) *QueryService {
	return &QueryService{
		graph:  graph,
		logger: logger,
	}
}

// Ask returns the active belief with the highest confidence for the
// (entity, predicate) pair. Having no answer (no beliefs at all, or none
// active) is a normal outcome and comes back as (nil, nil), never an
// error.
//
// Confidence ties go to the newest-inserted belief: candidates are walked
// in insertion order and a later one displaces an earlier one at equal
// confidence.
func (s *QueryService) Ask(ctx context.Context, predicate, entity string) (*domain.Belief, error) {
	if entity == "" {
		return nil, ErrEntityEmpty
	}
	if predicate == "" {
		return nil, ErrPredicateEmpty
	}

	cluster, err := s.graph.Cluster(ctx, entity, predicate)
	if err != nil {
		return nil, err
	}

	var best *domain.Belief
	for i := range cluster {
		cand := cluster[i]
		if cand.Status != domain.StatusActive {
			continue
		}
		if best == nil || cand.Confidence >= best.Confidence {
			best = &cand
		}
	}

	if best == nil {
		s.logger.Debug("ask found no active belief",
			zap.String("entity", entity),
			zap.String("predicate", predicate))
		return nil, nil
	}

	s.logger.Debug("ask answered",
		zap.String("entity", entity),
		zap.String("predicate", predicate),
		zap.String("belief_id", best.ID),
		zap.String("value", best.Value.String()),
		zap.Float64("confidence", best.Confidence))
	return best, nil
}

// Snapshot returns every belief and edge in insertion order, taken at one
// instant. It is the dump the HTTP layer, the DOT renderer, and the demo
// drivers all read from.
func (s *QueryService) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	return s.graph.Snapshot(ctx)
}
