// Package humor reuses the compression machinery for incongruity scoring:
// a punchline is a one-step tunnel between concepts the setup placed far
// apart.
package humor

import (
	"github.com/agenthands/insight/internal/core/model"
	"github.com/agenthands/insight/internal/core/resonance"
	"github.com/agenthands/insight/internal/core/tunnel"
)

// SemanticDistance simulates embedding-space distance between two concepts.
// Unlike the graph providers it needs no graph: the "surface" here is
// expectation, not edges.
type SemanticDistance interface {
	Distance(a, b model.ThoughtNode) model.Distance
}

// TagOverlapDistance places nodes sharing tags close together (1/shared
// steps) and nodes with disjoint tag sets a fixed FarSteps apart.
type TagOverlapDistance struct {
	FarSteps float64
}

func NewTagOverlapDistance() *TagOverlapDistance {
	return &TagOverlapDistance{FarSteps: 10}
}

func (d *TagOverlapDistance) Distance(a, b model.ThoughtNode) model.Distance {
	shared := resonance.SharedTags(a, b)
	if shared > 0 {
		return model.StepsDistance(1 / float64(shared))
	}
	return model.StepsDistance(d.FarSteps)
}

// Scorer measures the topological compression of a setup/punchline pair.
type Scorer struct {
	Semantic   SemanticDistance
	Thresholds tunnel.Thresholds
	// LandedRatio is the compression a joke must clear to land at all;
	// below it the punchline reads as a plain statement.
	LandedRatio float64
}

func NewScorer() *Scorer {
	return &Scorer{
		Semantic:    NewTagOverlapDistance(),
		Thresholds:  tunnel.DefaultThresholds(),
		LandedRatio: 5,
	}
}

// Score always returns a metric: unlike insight detection, low compression
// is itself a meaningful humor verdict (the joke just isn't funny).
func (s *Scorer) Score(setup, punchline model.ThoughtNode) model.TunnelResult {
	surface := s.Semantic.Distance(setup, punchline)
	ratio := surface.Ratio(1)

	return model.TunnelResult{
		SourceID:         setup.ID,
		TargetID:         punchline.ID,
		SurfaceDistance:  surface,
		TunnelDistance:   1,
		CompressionRatio: model.Ratio(ratio),
		Magnitude:        s.Thresholds.Classify(ratio),
	}
}

// Landed reports whether the scored pair compresses sharply enough to work
// as a joke.
func (s *Scorer) Landed(result model.TunnelResult) bool {
	return float64(result.CompressionRatio) > s.LandedRatio
}
