package distance

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/insight/internal/core/graph"
	"github.com/agenthands/insight/internal/core/model"
)

func buildGraph(t *testing.T, nodeIDs []string, edges [][2]string) *graph.MemoryGraph {
	t.Helper()
	ctx := context.Background()

	g := graph.NewMemoryGraph()
	for _, id := range nodeIDs {
		require.NoError(t, g.AddNode(ctx, model.ThoughtNode{ID: id, Kind: model.KindPremise}))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(ctx, model.CausalEdge{
			SourceID: e[0],
			TargetID: e[1],
			Kind:     model.EdgeCauses,
		}))
	}
	return g
}

func TestBFS_PathGraph(t *testing.T) {
	ids := make([]string, 10)
	var edges [][2]string
	for i := range ids {
		ids[i] = fmt.Sprintf("n%d", i+1)
	}
	for i := 0; i < 9; i++ {
		edges = append(edges, [2]string{ids[i], ids[i+1]})
	}
	g := buildGraph(t, ids, edges)

	p := NewBFSProvider()

	d, err := p.Distance(context.Background(), g, "n1", "n10")
	require.NoError(t, err)
	assert.Equal(t, model.StepsDistance(9), d)

	d, err = p.Distance(context.Background(), g, "n1", "n2")
	require.NoError(t, err)
	assert.Equal(t, model.StepsDistance(1), d)

	d, err = p.Distance(context.Background(), g, "n1", "n1")
	require.NoError(t, err)
	assert.Equal(t, model.StepsDistance(0), d)
}

func TestBFS_ShortestPathWins(t *testing.T) {
	// Two routes a->d: the long way round (3 hops) and a shortcut (2 hops).
	g := buildGraph(t,
		[]string{"a", "b", "c", "d", "x"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"a", "x"}, {"x", "d"}},
	)

	d, err := NewBFSProvider().Distance(context.Background(), g, "a", "d")
	require.NoError(t, err)
	assert.Equal(t, model.StepsDistance(2), d)
}

func TestBFS_RespectsDirection(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})

	directed := NewBFSProvider()

	// Against the arrows: unreachable in directed mode.
	d, err := directed.Distance(context.Background(), g, "c", "a")
	require.NoError(t, err)
	assert.True(t, d.Unreachable)

	// Bidirectional mode ignores edge direction.
	bidirectional := &BFSProvider{Direction: graph.Both}
	d, err = bidirectional.Distance(context.Background(), g, "c", "a")
	require.NoError(t, err)
	assert.Equal(t, model.StepsDistance(2), d)
}

func TestBFS_Unreachable(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "island"}, [][2]string{{"a", "b"}})

	d, err := NewBFSProvider().Distance(context.Background(), g, "a", "island")
	require.NoError(t, err)
	assert.True(t, d.Unreachable)
}

func TestBFS_MissingEndpointIsAnError(t *testing.T) {
	// Never a silent Unreachable for a node that does not exist.
	g := buildGraph(t, []string{"a"}, nil)
	p := NewBFSProvider()

	_, err := p.Distance(context.Background(), g, "a", "ghost")
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)

	_, err = p.Distance(context.Background(), g, "ghost", "a")
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestBFS_Cancellation(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"}, [][2]string{{"a", "b"}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBFSProvider().Distance(ctx, g, "a", "b")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOrdinalProvider(t *testing.T) {
	// The test double never touches the graph: a nil graph is fine.
	p := OrdinalProvider{}

	d, err := p.Distance(context.Background(), nil, "n1", "n10")
	require.NoError(t, err)
	assert.Equal(t, model.StepsDistance(9), d)

	_, err = p.Distance(context.Background(), nil, "setup", "punchline")
	assert.Error(t, err)
}
