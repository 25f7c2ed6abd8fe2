package distance

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/agenthands/insight/internal/core/graph"
	"github.com/agenthands/insight/internal/core/model"
)

var ordinalSuffix = regexp.MustCompile(`\d+$`)

// OrdinalProvider is a test double that derives a synthetic distance from the
// numeric suffixes of the two ids (n1 vs n10 -> 9) without touching the graph.
// It honors the Provider contract shape but must never stand in for the BFS
// provider outside tests.
type OrdinalProvider struct{}

func (OrdinalProvider) Distance(ctx context.Context, g graph.ThoughtGraph, fromID, toID string) (model.Distance, error) {
	from, err := ordinal(fromID)
	if err != nil {
		return model.Distance{}, err
	}
	to, err := ordinal(toID)
	if err != nil {
		return model.Distance{}, err
	}
	return model.StepsDistance(math.Abs(float64(from - to))), nil
}

func ordinal(id string) (int, error) {
	suffix := ordinalSuffix.FindString(id)
	if suffix == "" {
		return 0, fmt.Errorf("id %q has no numeric suffix", id)
	}
	return strconv.Atoi(suffix)
}
