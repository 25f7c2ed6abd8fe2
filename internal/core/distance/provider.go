package distance

import (
	"context"

	"github.com/agenthands/insight/internal/core/graph"
	"github.com/agenthands/insight/internal/core/model"
)

// Provider computes the surface distance between two nodes: the shortest
// step count through existing edges, or Unreachable when no path exists.
// Implementations must report graph.ErrNodeNotFound for missing endpoints
// rather than silently returning Unreachable.
type Provider interface {
	Distance(ctx context.Context, g graph.ThoughtGraph, fromID, toID string) (model.Distance, error)
}
