// Package events carries the engine's narration. Every mutation the
// belief graph makes (inserts, links, detected contradictions,
// resolutions, decays, archival steps) is published as one typed event,
// logged once, and fanned out to any subscribers. The engine itself never
// prints.
package events

import "time"

type Type string

const (
	TypeBeliefAdded           Type = "belief_added"
	TypeSupportLinked         Type = "support_linked"
	TypeContradictionDetected Type = "contradiction_detected"
	TypeConflictResolved      Type = "conflict_resolved"
	TypeConfidenceDecayed     Type = "confidence_decayed"
	TypeBeliefArchived        Type = "belief_archived"
)

// Event is one engine action. Fields beyond Type, BeliefID, and At are
// filled per type: RelatedID is the counterpart belief (the contradicted
// belief, the linked child, the resolution loser), Old/NewConfidence frame
// a decay, Old/NewStatus frame an archival step.
type Event struct {
	Type          Type      `json:"type"`
	BeliefID      string    `json:"belief_id"`
	RelatedID     string    `json:"related_id,omitempty"`
	Entity        string    `json:"entity,omitempty"`
	Predicate     string    `json:"predicate,omitempty"`
	Value         string    `json:"value,omitempty"`
	OldConfidence float64   `json:"old_confidence,omitempty"`
	NewConfidence float64   `json:"new_confidence,omitempty"`
	OldStatus     string    `json:"old_status,omitempty"`
	NewStatus     string    `json:"new_status,omitempty"`
	At            time.Time `json:"at"`
}
