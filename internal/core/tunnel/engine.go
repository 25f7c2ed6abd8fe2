package tunnel

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/agenthands/insight/internal/core/distance"
	"github.com/agenthands/insight/internal/core/graph"
	"github.com/agenthands/insight/internal/core/model"
	"github.com/agenthands/insight/internal/core/resonance"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrOracleFailure = errors.New("resonance oracle failure")
)

// The engine only ever evaluates direct hypothetical edges.
const tunnelLength = 1

// Thresholds is the magnitude ladder. Strict-greater at every rung, so a
// ratio of exactly 10 is still Epiphany, exactly 5 still Major, exactly 2
// still Minor.
type Thresholds struct {
	Major         float64 `json:"major"`
	Epiphany      float64 `json:"epiphany"`
	ParadigmShift float64 `json:"paradigm_shift"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{Major: 2, Epiphany: 5, ParadigmShift: 10}
}

// Classify maps a compression ratio onto the ladder, highest tier first.
func (t Thresholds) Classify(ratio float64) model.Magnitude {
	switch {
	case ratio > t.ParadigmShift:
		return model.ParadigmShift
	case ratio > t.Epiphany:
		return model.Epiphany
	case ratio > t.Major:
		return model.Major
	default:
		return model.Minor
	}
}

// Engine detects non-local shortcuts: pairs of nodes far apart through
// ordinary step-by-step reasoning that a direct edge would join in one step.
// It holds no mutable state; concurrent Evaluate calls against a read-only
// graph snapshot need no locking.
type Engine struct {
	Graph      graph.ThoughtGraph
	Provider   distance.Provider
	Oracle     resonance.Oracle
	Thresholds Thresholds
	// FailFast makes Scan stop at the first failed pair instead of reporting
	// it and moving on.
	FailFast bool
}

func NewEngine(g graph.ThoughtGraph, p distance.Provider, o resonance.Oracle) *Engine {
	return &Engine{
		Graph:      g,
		Provider:   p,
		Oracle:     o,
		Thresholds: DefaultThresholds(),
	}
}

// Evaluate judges the hypothetical direct edge between two distinct nodes.
// (nil, nil) is reserved for the well-defined no-insight outcomes: the nodes
// are already adjacent, or the oracle rejects the shortcut as noise. Every
// other failure surfaces as an error, never as a silent nil.
func (e *Engine) Evaluate(ctx context.Context, sourceID, targetID string) (*model.TunnelResult, error) {
	if sourceID == "" || targetID == "" {
		return nil, fmt.Errorf("%w: empty node id", ErrInvalidInput)
	}
	if sourceID == targetID {
		return nil, fmt.Errorf("%w: identical node ids %q", ErrInvalidInput, sourceID)
	}

	source, err := e.Graph.GetNode(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	target, err := e.Graph.GetNode(ctx, targetID)
	if err != nil {
		return nil, err
	}

	// A pre-existing direct edge can never be an insight; skip the search.
	adjacent, err := e.Graph.HasEdge(ctx, sourceID, targetID)
	if err != nil {
		return nil, err
	}

	surface := model.StepsDistance(1)
	if !adjacent {
		surface, err = e.Provider.Distance(ctx, e.Graph, sourceID, targetID)
		if err != nil {
			return nil, err
		}
	}

	// Unreachable pairs fall through on purpose: a resonant connection
	// across disconnected components is the strongest shortcut there is.
	if !surface.Unreachable && surface.Steps <= 1 {
		return nil, nil
	}

	resonant, err := e.Oracle.IsResonant(ctx, source, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOracleFailure, err)
	}
	if !resonant {
		return nil, nil
	}

	ratio := surface.Ratio(tunnelLength)
	return &model.TunnelResult{
		SourceID:         sourceID,
		TargetID:         targetID,
		SurfaceDistance:  surface,
		TunnelDistance:   tunnelLength,
		CompressionRatio: model.Ratio(ratio),
		Magnitude:        e.Thresholds.Classify(ratio),
	}, nil
}

// Pair identifies one candidate shortcut for batch evaluation.
type Pair struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
}

// Scan lazily evaluates every unordered pair from the candidate set and
// yields accepted results as discovered, in no particular order. By default
// a failing pair yields its error and the scan moves on (partial-failure
// semantics); with FailFast set the scan stops there. The computation is
// pure, so the sequence is restartable.
func (e *Engine) Scan(ctx context.Context, nodeIDs []string) iter.Seq2[*model.TunnelResult, error] {
	pairs := make([]Pair, 0, len(nodeIDs)*(len(nodeIDs)-1)/2)
	for i := 0; i < len(nodeIDs); i++ {
		for j := i + 1; j < len(nodeIDs); j++ {
			pairs = append(pairs, Pair{SourceID: nodeIDs[i], TargetID: nodeIDs[j]})
		}
	}
	return e.EvaluatePairs(ctx, pairs)
}

// EvaluatePairs is Scan over an explicit candidate pair list, e.g. one
// produced by the cross-cluster candidate picker.
func (e *Engine) EvaluatePairs(ctx context.Context, pairs []Pair) iter.Seq2[*model.TunnelResult, error] {
	return func(yield func(*model.TunnelResult, error) bool) {
		for _, p := range pairs {
			result, err := e.Evaluate(ctx, p.SourceID, p.TargetID)
			if err != nil {
				if !yield(nil, fmt.Errorf("pair %s/%s: %w", p.SourceID, p.TargetID, err)) {
					return
				}
				if e.FailFast {
					return
				}
				continue
			}
			if result == nil {
				continue
			}
			if !yield(result, nil) {
				return
			}
		}
	}
}
