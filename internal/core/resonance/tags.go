package resonance

import (
	"context"

	"github.com/agenthands/insight/internal/core/model"
)

// TagOverlapOracle accepts a pair when the nodes share at least MinShared
// metadata tags. Cheap and deterministic; useful as a first gate before an
// expensive oracle.
type TagOverlapOracle struct {
	MinShared int
}

func NewTagOverlapOracle() *TagOverlapOracle {
	return &TagOverlapOracle{MinShared: 1}
}

func (o *TagOverlapOracle) IsResonant(ctx context.Context, a, b model.ThoughtNode) (bool, error) {
	return SharedTags(a, b) >= o.MinShared, nil
}

// SharedTags counts tags present on both nodes.
func SharedTags(a, b model.ThoughtNode) int {
	tagsA := make(map[string]bool)
	for _, t := range a.Tags() {
		tagsA[t] = true
	}

	shared := 0
	seen := make(map[string]bool)
	for _, t := range b.Tags() {
		if tagsA[t] && !seen[t] {
			seen[t] = true
			shared++
		}
	}
	return shared
}
