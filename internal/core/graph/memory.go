package graph

import (
	"context"
	"fmt"
	"sync"

	"github.com/agenthands/insight/internal/core/model"
)

// MemoryGraph is a map-backed Store. Reads are safe to run concurrently;
// writes take the lock, so a graph built up front behaves as an immutable
// snapshot for any number of parallel evaluations.
type MemoryGraph struct {
	mu       sync.RWMutex
	nodes    map[string]model.ThoughtNode
	outgoing map[string][]string
	incoming map[string][]string
	edges    map[string]map[string]model.EdgeKind // from -> to -> kind
	order    []string                             // node insertion order
}

func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{
		nodes:    make(map[string]model.ThoughtNode),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		edges:    make(map[string]map[string]model.EdgeKind),
	}
}

func (g *MemoryGraph) AddNode(ctx context.Context, node model.ThoughtNode) error {
	if node.ID == "" {
		return fmt.Errorf("node id must not be empty")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[node.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, node.ID)
	}
	g.nodes[node.ID] = node
	g.order = append(g.order, node.ID)
	return nil
}

func (g *MemoryGraph) AddEdge(ctx context.Context, edge model.CausalEdge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[edge.SourceID]; !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, edge.SourceID)
	}
	if _, ok := g.nodes[edge.TargetID]; !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, edge.TargetID)
	}

	if g.edges[edge.SourceID] == nil {
		g.edges[edge.SourceID] = make(map[string]model.EdgeKind)
	}
	if _, dup := g.edges[edge.SourceID][edge.TargetID]; dup {
		// Re-declaring an edge just updates its kind.
		g.edges[edge.SourceID][edge.TargetID] = edge.Kind
		return nil
	}
	g.edges[edge.SourceID][edge.TargetID] = edge.Kind
	g.outgoing[edge.SourceID] = append(g.outgoing[edge.SourceID], edge.TargetID)
	g.incoming[edge.TargetID] = append(g.incoming[edge.TargetID], edge.SourceID)
	return nil
}

func (g *MemoryGraph) GetNode(ctx context.Context, id string) (model.ThoughtNode, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	node, ok := g.nodes[id]
	if !ok {
		return model.ThoughtNode{}, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	return node, nil
}

func (g *MemoryGraph) Neighbors(ctx context.Context, id string, dir Direction) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}

	out := g.outgoing[id]
	if dir == Outgoing {
		return append([]string(nil), out...), nil
	}

	// Both: outgoing first, then incoming, each in insertion order, deduped.
	seen := make(map[string]bool, len(out))
	neighbors := make([]string, 0, len(out)+len(g.incoming[id]))
	for _, n := range out {
		if !seen[n] {
			seen[n] = true
			neighbors = append(neighbors, n)
		}
	}
	for _, n := range g.incoming[id] {
		if !seen[n] {
			seen[n] = true
			neighbors = append(neighbors, n)
		}
	}
	return neighbors, nil
}

func (g *MemoryGraph) HasEdge(ctx context.Context, fromID, toID string) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[fromID][toID]
	return ok, nil
}

func (g *MemoryGraph) Nodes(ctx context.Context) ([]model.ThoughtNode, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]model.ThoughtNode, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes, nil
}

func (g *MemoryGraph) Edges(ctx context.Context) ([]model.CausalEdge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var edges []model.CausalEdge
	for _, from := range g.order {
		for _, to := range g.outgoing[from] {
			edges = append(edges, model.CausalEdge{
				SourceID: from,
				TargetID: to,
				Kind:     g.edges[from][to],
			})
		}
	}
	return edges, nil
}
