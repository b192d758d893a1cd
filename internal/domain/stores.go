package domain

import "context"

// GraphStore owns belief nodes and the edges between them. Every
// enumeration (ListBeliefs, Cluster, EdgesFrom, Snapshot) returns items in
// insertion order; the engine's tie-breaks lean on that order being
// stable, so implementations must document and keep it.
type GraphStore interface {
	InsertBelief(ctx context.Context, b *Belief) error
	InsertEdge(ctx context.Context, e *Edge) error

	GetBelief(ctx context.Context, id string) (*Belief, error)
	ListBeliefs(ctx context.Context) ([]Belief, error)
	// Cluster returns all beliefs sharing (entity, predicate), across
	// every status.
	Cluster(ctx context.Context, entity, predicate string) ([]Belief, error)
	// EdgesFrom returns the outgoing edges of one belief filtered by
	// relation.
	EdgesFrom(ctx context.Context, sourceID string, rel Relation) ([]Edge, error)

	SetStatus(ctx context.Context, id string, status Status) error
	SetConfidence(ctx context.Context, id string, confidence float64) error

	// Snapshot copies beliefs and edges under one read lock so a caller
	// never observes a half-applied write.
	Snapshot(ctx context.Context) (*Snapshot, error)
	Counts(ctx context.Context) (beliefs, edges int, err error)
}
