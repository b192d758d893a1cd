package service

import (
	"context"

	"github.com/doxalab/doxa/internal/domain"
	"go.uber.org/zap"
)

// ReliabilityService scores how much an (entity, predicate) pair can be
// trusted as a whole, counting every belief ever asserted about it,
// archived history included, against the best active confidence.
type ReliabilityService struct {
	graph  domain.GraphStore
	logger *zap.Logger
}

func NewReliabilityService(graph domain.GraphStore, logger *zap.Logger) *ReliabilityService {
	return &ReliabilityService{
		graph:  graph,
		logger: logger,
	}
}

// Compute returns the reliability report for a pair, or (nil, nil) when
// no belief has ever mentioned it. The score is the highest active
// confidence (0 when nothing is active) divided by a penalty that grows
// with each distinct value beyond the first, rounded to three decimals.
// Compute reads only; calling it twice in a row yields identical reports.
func (s *ReliabilityService) Compute(ctx context.Context, predicate, entity string) (*domain.ReliabilityReport, error) {
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
	if len(cluster) == 0 {
		return nil, nil
	}

	var maxActive float64
	activeCount := 0
	distinct := make(map[domain.Value]struct{})
	for _, b := range cluster {
		distinct[b.Value] = struct{}{}
		if b.Status != domain.StatusActive {
			continue
		}
		activeCount++
		if b.Confidence > maxActive {
			maxActive = b.Confidence
		}
	}

	contradictions := len(distinct) - 1
	if contradictions < 0 {
		contradictions = 0
	}

	score := Round3(maxActive / (1 + ReliabilityPenaltyWeight*float64(contradictions)))

	s.logger.Debug("reliability computed",
		zap.String("entity", entity),
		zap.String("predicate", predicate),
		zap.Float64("score", score),
		zap.Int("cluster_size", len(cluster)),
		zap.Int("contradictions", contradictions))

	return &domain.ReliabilityReport{
		Entity:         entity,
		Predicate:      predicate,
		Score:          score,
		MaxActive:      maxActive,
		ClusterSize:    len(cluster),
		ActiveCount:    activeCount,
		DistinctValues: len(distinct),
		Contradictions: contradictions,
	}, nil
}
