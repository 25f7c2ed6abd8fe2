package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// Distance is a surface-distance measurement between two nodes.
// Steps is a hop count for graph traversal (always integral there) or a
// simulated semantic distance (possibly fractional). Unreachable means no
// path exists; Steps is meaningless in that case.
type Distance struct {
	Steps       float64 `json:"steps"`
	Unreachable bool    `json:"unreachable,omitempty"`
}

// Steps builds a reachable distance of n hops.
func StepsDistance(n float64) Distance {
	return Distance{Steps: n}
}

// UnreachableDistance marks the pair as having no connecting path.
func UnreachableDistance() Distance {
	return Distance{Unreachable: true}
}

// Ratio is the compression ratio against a tunnel of the given length.
// Unreachable distances compress infinitely.
func (d Distance) Ratio(tunnelLen float64) float64 {
	if d.Unreachable {
		return math.Inf(1)
	}
	return d.Steps / tunnelLen
}

// Magnitude is the ordered severity of an accepted tunnel.
type Magnitude int

const (
	Minor Magnitude = iota
	Major
	Epiphany
	ParadigmShift
)

var magnitudeNames = map[Magnitude]string{
	Minor:         "minor",
	Major:         "major",
	Epiphany:      "epiphany",
	ParadigmShift: "paradigm_shift",
}

func (m Magnitude) String() string {
	if name, ok := magnitudeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("magnitude(%d)", int(m))
}

func (m Magnitude) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Magnitude) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for mag, name := range magnitudeNames {
		if name == s {
			*m = mag
			return nil
		}
	}
	return fmt.Errorf("unknown magnitude %q", s)
}

// Ratio is a compression ratio. It marshals infinite ratios (unreachable
// surface distance) as null, since JSON has no representation for Inf.
type Ratio float64

func (r Ratio) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(r), 1) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(r))
}

// IsInf reports whether the ratio is infinite.
func (r Ratio) IsInf() bool {
	return math.IsInf(float64(r), 1)
}

// TunnelResult records one accepted shortcut between two nodes.
// Results are transient: computed per query, never persisted, and carry no
// reference back to the graph they were computed against.
type TunnelResult struct {
	SourceID         string    `json:"source_id"`
	TargetID         string    `json:"target_id"`
	SurfaceDistance  Distance  `json:"surface_distance"`
	TunnelDistance   float64   `json:"tunnel_distance"` // always 1: only direct hypothetical edges are evaluated
	CompressionRatio Ratio     `json:"compression_ratio"`
	Magnitude        Magnitude `json:"magnitude"`
}
