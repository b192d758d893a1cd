package domain

import "time"

// Relation is the type of a directed edge between two beliefs.
type Relation string

const (
	// RelationSupports is caller-created: the source belief is evidence
	// for the target, and confidence decay flows source -> target.
	RelationSupports Relation = "supports"
	// RelationContradicts is engine-recorded at detection time, directed
	// from the newer belief to the older one. Never removed.
	RelationContradicts Relation = "contradicts"
)

func ValidRelation(r string) bool {
	switch Relation(r) {
	case RelationSupports, RelationContradicts:
		return true
	}
	return false
}

// Edge is a directed, typed link between two beliefs.
type Edge struct {
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	Relation  Relation  `json:"relation"`
	CreatedAt time.Time `json:"created_at"`
}

// ReliabilityReport summarizes how trustworthy the cluster of beliefs
// around one (entity, predicate) pair is. Score divides the best active
// confidence by a penalty that grows with the number of distinct values
// ever asserted for the pair.
type ReliabilityReport struct {
	Entity         string  `json:"entity"`
	Predicate      string  `json:"predicate"`
	Score          float64 `json:"score"`
	MaxActive      float64 `json:"max_active_confidence"`
	ClusterSize    int     `json:"cluster_size"`
	ActiveCount    int     `json:"active_count"`
	DistinctValues int     `json:"distinct_values"`
	Contradictions int     `json:"contradictions"`
}

// Snapshot is a point-in-time copy of the whole graph, beliefs and edges
// both in insertion order.
type Snapshot struct {
	Beliefs []Belief `json:"beliefs"`
	Edges   []Edge   `json:"edges"`
}
