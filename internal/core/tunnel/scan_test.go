package tunnel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/insight/internal/core/distance"
	"github.com/agenthands/insight/internal/core/graph"
	"github.com/agenthands/insight/internal/core/model"
	"github.com/agenthands/insight/internal/core/resonance"
)

func collect(seq func(yield func(*model.TunnelResult, error) bool)) ([]model.TunnelResult, []error) {
	var results []model.TunnelResult
	var errs []error
	for result, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, *result)
	}
	return results, errs
}

func TestScan_YieldsOnlyAcceptedPairs(t *testing.T) {
	g := pathGraph(t, 5)
	engine := NewEngine(g, distance.NewBFSProvider(), resonance.AlwaysResonant{})

	// Pairs: (n1,n3) d=2, (n1,n5) d=4, (n3,n5) d=2 accepted;
	// adjacent pairs are skipped silently.
	results, errs := collect(engine.Scan(context.Background(), []string{"n1", "n2", "n3", "n5"}))
	require.Empty(t, errs)

	got := make(map[[2]string]float64)
	for _, r := range results {
		got[[2]string{r.SourceID, r.TargetID}] = r.SurfaceDistance.Steps
	}

	assert.Equal(t, map[[2]string]float64{
		{"n1", "n3"}: 2,
		{"n1", "n5"}: 4,
		{"n2", "n5"}: 3,
		{"n3", "n5"}: 2,
	}, got)
}

func TestScan_PartialFailure(t *testing.T) {
	// A pair with a missing endpoint reports its error; the rest of the
	// scan still runs.
	g := pathGraph(t, 5)
	engine := NewEngine(g, distance.NewBFSProvider(), resonance.AlwaysResonant{})

	results, errs := collect(engine.Scan(context.Background(), []string{"n1", "ghost", "n5"}))

	require.Len(t, errs, 2) // (n1,ghost) and (ghost,n5)
	for _, err := range errs {
		assert.ErrorIs(t, err, graph.ErrNodeNotFound)
	}

	require.Len(t, results, 1)
	assert.Equal(t, "n1", results[0].SourceID)
	assert.Equal(t, "n5", results[0].TargetID)
}

func TestScan_FailFast(t *testing.T) {
	g := pathGraph(t, 5)
	engine := NewEngine(g, distance.NewBFSProvider(), resonance.AlwaysResonant{})
	engine.FailFast = true

	// (n1,ghost) is first; the scan must stop right after reporting it.
	results, errs := collect(engine.Scan(context.Background(), []string{"n1", "ghost", "n5"}))
	assert.Len(t, errs, 1)
	assert.Empty(t, results)
}

func TestScan_Restartable(t *testing.T) {
	g := pathGraph(t, 4)
	engine := NewEngine(g, distance.NewBFSProvider(), resonance.AlwaysResonant{})

	seq := engine.Scan(context.Background(), []string{"n1", "n3", "n4"})

	first, _ := collect(seq)
	second, _ := collect(seq)
	assert.Equal(t, first, second)
}

func TestEvaluatePairs_ExplicitCandidates(t *testing.T) {
	g := pathGraph(t, 6)
	engine := NewEngine(g, distance.NewBFSProvider(), resonance.AlwaysResonant{})

	pairs := []Pair{{SourceID: "n1", TargetID: "n6"}}
	results, errs := collect(engine.EvaluatePairs(context.Background(), pairs))

	require.Empty(t, errs)
	require.Len(t, results, 1)
	assert.Equal(t, model.Ratio(5), results[0].CompressionRatio)
}
