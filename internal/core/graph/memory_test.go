package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/insight/internal/core/model"
)

func TestMemoryGraph_NodeLifecycle(t *testing.T) {
	ctx := context.Background()
	g := NewMemoryGraph()

	node := model.ThoughtNode{
		ID:      "n1",
		Kind:    model.KindPremise,
		Content: "light is a wave",
		Metadata: map[string]interface{}{
			"tags": []string{"optics"},
		},
	}
	require.NoError(t, g.AddNode(ctx, node))

	got, err := g.GetNode(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, node, got)
	assert.Equal(t, []string{"optics"}, got.Tags())

	_, err = g.GetNode(ctx, "missing")
	assert.ErrorIs(t, err, ErrNodeNotFound)

	err = g.AddNode(ctx, model.ThoughtNode{ID: "n1"})
	assert.ErrorIs(t, err, ErrDuplicateNode)

	err = g.AddNode(ctx, model.ThoughtNode{})
	assert.Error(t, err)
}

func TestMemoryGraph_Edges(t *testing.T) {
	ctx := context.Background()
	g := NewMemoryGraph()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddNode(ctx, model.ThoughtNode{ID: id}))
	}
	require.NoError(t, g.AddEdge(ctx, model.CausalEdge{SourceID: "a", TargetID: "b", Kind: model.EdgeSupports}))
	require.NoError(t, g.AddEdge(ctx, model.CausalEdge{SourceID: "a", TargetID: "c", Kind: model.EdgeCauses}))

	has, err := g.HasEdge(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, has)

	// Direction matters.
	has, err = g.HasEdge(ctx, "b", "a")
	require.NoError(t, err)
	assert.False(t, has)

	err = g.AddEdge(ctx, model.CausalEdge{SourceID: "a", TargetID: "ghost"})
	assert.ErrorIs(t, err, ErrNodeNotFound)

	edges, err := g.Edges(ctx)
	require.NoError(t, err)
	assert.Len(t, edges, 2)
}

func TestMemoryGraph_Neighbors(t *testing.T) {
	ctx := context.Background()
	g := NewMemoryGraph()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddNode(ctx, model.ThoughtNode{ID: id}))
	}
	require.NoError(t, g.AddEdge(ctx, model.CausalEdge{SourceID: "a", TargetID: "b"}))
	require.NoError(t, g.AddEdge(ctx, model.CausalEdge{SourceID: "c", TargetID: "a"}))

	out, err := g.Neighbors(ctx, "a", Outgoing)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, out)

	both, err := g.Neighbors(ctx, "a", Both)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, both)

	_, err = g.Neighbors(ctx, "ghost", Outgoing)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestMemoryGraph_RedeclaredEdgeUpdatesKind(t *testing.T) {
	ctx := context.Background()
	g := NewMemoryGraph()

	require.NoError(t, g.AddNode(ctx, model.ThoughtNode{ID: "a"}))
	require.NoError(t, g.AddNode(ctx, model.ThoughtNode{ID: "b"}))
	require.NoError(t, g.AddEdge(ctx, model.CausalEdge{SourceID: "a", TargetID: "b", Kind: model.EdgeSupports}))
	require.NoError(t, g.AddEdge(ctx, model.CausalEdge{SourceID: "a", TargetID: "b", Kind: model.EdgeContradicts}))

	// No duplicate neighbor entries, latest kind wins.
	out, err := g.Neighbors(ctx, "a", Outgoing)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, out)

	edges, err := g.Edges(ctx)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, model.EdgeContradicts, edges[0].Kind)
}

func TestMemoryGraph_Nodes(t *testing.T) {
	ctx := context.Background()
	g := NewMemoryGraph()

	for _, id := range []string{"z", "a", "m"} {
		require.NoError(t, g.AddNode(ctx, model.ThoughtNode{ID: id}))
	}

	nodes, err := g.Nodes(ctx)
	require.NoError(t, err)

	// Insertion order, not sorted.
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	assert.Equal(t, []string{"z", "a", "m"}, ids)
}
