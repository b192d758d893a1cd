package service

import (
	"context"

	"github.com/doxalab/doxa/internal/domain"
	"github.com/doxalab/doxa/internal/events"
	"go.uber.org/zap"
)

// detectAndResolve scans the (entity, predicate) cluster for beliefs that
// disagree with the newcomer and resolves each conflict in turn. The
// match set is fixed up front: statuses changed by one resolution do not
// add or remove matches within the same call.
//
// A belief conflicts when its status is active or outdated and its value
// differs from the newcomer's by exact comparison. Each match gets one
// contradicts edge, newcomer -> older belief, before its resolution runs.
func (s *BeliefService) detectAndResolve(ctx context.Context, newB *domain.Belief) error {
	cluster, err := s.graph.Cluster(ctx, newB.Entity, newB.Predicate)
	if err != nil {
		return err
	}

	matches := make([]domain.Belief, 0)
	for _, other := range cluster {
		if other.ID == newB.ID {
			continue
		}
		if other.Status != domain.StatusActive && other.Status != domain.StatusOutdated {
			continue
		}
		if other.Value == newB.Value {
			continue
		}
		matches = append(matches, other)
	}

	if len(matches) == 0 {
		return nil
	}

	s.logger.Debug("contradiction scan found matches",
		zap.String("belief_id", newB.ID),
		zap.String("entity", newB.Entity),
		zap.String("predicate", newB.Predicate),
		zap.Int("matches", len(matches)))

	for _, old := range matches {
		edge := &domain.Edge{
			Source:    newB.ID,
			Target:    old.ID,
			Relation:  domain.RelationContradicts,
			CreatedAt: timeNow().UTC(),
		}
		if err := s.graph.InsertEdge(ctx, edge); err != nil {
			return err
		}

		s.publish(events.Event{
			Type:      events.TypeContradictionDetected,
			BeliefID:  newB.ID,
			RelatedID: old.ID,
			Entity:    newB.Entity,
			Predicate: newB.Predicate,
			Value:     newB.Value.String(),
		})

		if err := s.resolve(ctx, newB.ID, old.ID); err != nil {
			return err
		}
	}
	return nil
}

// resolve settles one conflict. The belief with the higher confidence
// wins (the newcomer on an exact tie) and is forced active. The loser
// is set outdated, decayed by LoserDecayFactor, has the decay propagated
// along its supports edges, and is then advanced one archival step.
//
// Confidences are re-read here rather than taken from the scan, so a
// newcomer already demoted by an earlier match in the same scan fights
// the next match with its decayed value.
func (s *BeliefService) resolve(ctx context.Context, newID, oldID string) error {
	newB, err := s.graph.GetBelief(ctx, newID)
	if err != nil {
		return err
	}
	oldB, err := s.graph.GetBelief(ctx, oldID)
	if err != nil {
		return err
	}

	winner, loser := oldB, newB
	if newB.Confidence >= oldB.Confidence {
		winner, loser = newB, oldB
	}

	if err := s.graph.SetStatus(ctx, winner.ID, domain.StatusActive); err != nil {
		return err
	}
	if err := s.graph.SetStatus(ctx, loser.ID, domain.StatusOutdated); err != nil {
		return err
	}

	decayed := Decay(loser.Confidence, LoserDecayFactor)
	if err := s.graph.SetConfidence(ctx, loser.ID, decayed); err != nil {
		return err
	}

	s.publish(events.Event{
		Type:      events.TypeConflictResolved,
		BeliefID:  winner.ID,
		RelatedID: loser.ID,
		Entity:    winner.Entity,
		Predicate: winner.Predicate,
		Value:     winner.Value.String(),
	})
	s.publish(events.Event{
		Type:          events.TypeConfidenceDecayed,
		BeliefID:      loser.ID,
		OldConfidence: loser.Confidence,
		NewConfidence: decayed,
	})

	// The loser itself already took its hit; seed the visited set with it
	// so a support cycle cannot decay it a second time.
	visited := map[string]bool{loser.ID: true}
	if err := s.propagate(ctx, loser.ID, visited); err != nil {
		return err
	}

	return s.archiveStep(ctx, loser.ID)
}

// propagate walks outgoing supports edges from id, decaying every belief
// it reaches by SupportDecayFactor. The visited set spans the whole
// propagation call: each belief decays at most once per triggering event,
// and cycles terminate.
func (s *BeliefService) propagate(ctx context.Context, id string, visited map[string]bool) error {
	edges, err := s.graph.EdgesFrom(ctx, id, domain.RelationSupports)
	if err != nil {
		return err
	}

	for _, e := range edges {
		if visited[e.Target] {
			continue
		}
		visited[e.Target] = true

		child, err := s.graph.GetBelief(ctx, e.Target)
		if err != nil {
			return err
		}
		decayed := Decay(child.Confidence, SupportDecayFactor)
		if err := s.graph.SetConfidence(ctx, child.ID, decayed); err != nil {
			return err
		}

		s.publish(events.Event{
			Type:          events.TypeConfidenceDecayed,
			BeliefID:      child.ID,
			RelatedID:     id,
			OldConfidence: child.Confidence,
			NewConfidence: decayed,
		})

		if err := s.propagate(ctx, e.Target, visited); err != nil {
			return err
		}
	}
	return nil
}

// archiveStep advances one belief a single step along the lifecycle.
// Active beliefs and shadow_history are left where they are.
func (s *BeliefService) archiveStep(ctx context.Context, id string) error {
	b, err := s.graph.GetBelief(ctx, id)
	if err != nil {
		return err
	}

	next := b.Status.Next()
	if next == b.Status {
		return nil
	}
	if err := s.graph.SetStatus(ctx, id, next); err != nil {
		return err
	}

	s.publish(events.Event{
		Type:      events.TypeBeliefArchived,
		BeliefID:  id,
		OldStatus: string(b.Status),
		NewStatus: string(next),
	})
	return nil
}
