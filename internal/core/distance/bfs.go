package distance

import (
	"context"

	"github.com/agenthands/insight/internal/core/graph"
	"github.com/agenthands/insight/internal/core/model"
)

// BFSProvider finds the shortest hop count by breadth-first search over the
// graph's neighbor lookups. BFS is required here, not just convenient: the
// compression ratio is only meaningful against the true minimum path length.
type BFSProvider struct {
	// Direction is Outgoing by default; Both makes the search ignore edge
	// direction ("bidirectional mode").
	Direction graph.Direction
}

func NewBFSProvider() *BFSProvider {
	return &BFSProvider{Direction: graph.Outgoing}
}

func (p *BFSProvider) Distance(ctx context.Context, g graph.ThoughtGraph, fromID, toID string) (model.Distance, error) {
	// Resolve both endpoints first so a missing node surfaces as
	// ErrNodeNotFound instead of a bogus Unreachable.
	if _, err := g.GetNode(ctx, fromID); err != nil {
		return model.Distance{}, err
	}
	if _, err := g.GetNode(ctx, toID); err != nil {
		return model.Distance{}, err
	}

	if fromID == toID {
		return model.StepsDistance(0), nil
	}

	type frontier struct {
		id    string
		depth float64
	}

	visited := map[string]bool{fromID: true}
	queue := []frontier{{id: fromID, depth: 0}}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return model.Distance{}, err
		}

		current := queue[0]
		queue = queue[1:]

		neighbors, err := g.Neighbors(ctx, current.id, p.Direction)
		if err != nil {
			return model.Distance{}, err
		}

		for _, n := range neighbors {
			if n == toID {
				return model.StepsDistance(current.depth + 1), nil
			}
			if !visited[n] {
				visited[n] = true
				queue = append(queue, frontier{id: n, depth: current.depth + 1})
			}
		}
	}

	return model.UnreachableDistance(), nil
}
