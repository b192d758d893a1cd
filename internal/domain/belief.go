package domain

import "time"

// DefaultSource labels beliefs whose caller did not name a provenance.
const DefaultSource = "unknown"

// Status is the lifecycle state of a belief. Beliefs only ever move
// forward: active -> outdated -> archived -> shadow_history.
type Status string

const (
	StatusActive        Status = "active"
	StatusOutdated      Status = "outdated"
	StatusArchived      Status = "archived"
	StatusShadowHistory Status = "shadow_history"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusActive, StatusOutdated, StatusArchived, StatusShadowHistory:
		return true
	}
	return false
}

// Next returns the status one archival step forward. Active beliefs are
// never archived implicitly and shadow_history is terminal; both map to
// themselves.
func (s Status) Next() Status {
	switch s {
	case StatusOutdated:
		return StatusArchived
	case StatusArchived:
		return StatusShadowHistory
	}
	return s
}

// Belief is a scored assertion that Entity's Predicate has Value.
// Confidence stays in [0,1] and is only ever lowered by decay; CreatedAt
// is set once at insertion and never touched again.
type Belief struct {
	ID         string    `json:"id"`
	Entity     string    `json:"entity"`
	Predicate  string    `json:"predicate"`
	Value      Value     `json:"value"`
	Confidence float64   `json:"confidence"`
	Source     string    `json:"source"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeliefInput carries the caller-supplied fields for a new belief.
// Source defaults to DefaultSource and Status to active when left empty.
// SkipCheck suppresses the contradiction scan for this one insert, for
// callers seeding derived beliefs they know agree with the graph.
type BeliefInput struct {
	ID         string
	Entity     string
	Predicate  string
	Value      Value
	Confidence float64
	Source     string
	Status     Status
	SkipCheck  bool
}
