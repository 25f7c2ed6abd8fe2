package graph

import (
	"context"
	"errors"

	"github.com/agenthands/insight/internal/core/model"
)

// Direction controls which edges a neighbor lookup follows.
type Direction int

const (
	Outgoing Direction = iota
	Both
)

var (
	ErrNodeNotFound  = errors.New("node not found")
	ErrDuplicateNode = errors.New("node already exists")
)

// ThoughtGraph is the read surface the tunnel engine consumes. The graph
// itself (storage, edge lifecycle, kinds) belongs to whoever implements this.
type ThoughtGraph interface {
	GetNode(ctx context.Context, id string) (model.ThoughtNode, error)
	// Neighbors returns adjacent node ids in a stable order. Outgoing follows
	// edges in their declared direction only; Both ignores direction.
	Neighbors(ctx context.Context, id string, dir Direction) ([]string, error)
	// HasEdge reports whether a directed edge fromID->toID exists.
	HasEdge(ctx context.Context, fromID, toID string) (bool, error)
}

// Store is a ThoughtGraph that also accepts writes and whole-graph
// enumeration. The HTTP surface and the candidate picker need this; the
// engine itself only ever sees the ThoughtGraph half.
type Store interface {
	ThoughtGraph
	AddNode(ctx context.Context, node model.ThoughtNode) error
	AddEdge(ctx context.Context, edge model.CausalEdge) error
	Nodes(ctx context.Context) ([]model.ThoughtNode, error)
	Edges(ctx context.Context) ([]model.CausalEdge, error)
}
