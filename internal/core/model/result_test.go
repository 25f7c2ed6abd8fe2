package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceRatio(t *testing.T) {
	assert.Equal(t, 9.0, StepsDistance(9).Ratio(1))
	assert.Equal(t, 4.5, StepsDistance(9).Ratio(2))
	assert.True(t, math.IsInf(UnreachableDistance().Ratio(1), 1))
}

func TestRatioJSON(t *testing.T) {
	data, err := json.Marshal(Ratio(2.5))
	require.NoError(t, err)
	assert.Equal(t, "2.5", string(data))

	// Infinity has no JSON form; it degrades to null.
	data, err = json.Marshal(Ratio(math.Inf(1)))
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestMagnitudeJSON(t *testing.T) {
	data, err := json.Marshal(Epiphany)
	require.NoError(t, err)
	assert.Equal(t, `"epiphany"`, string(data))

	var m Magnitude
	require.NoError(t, json.Unmarshal([]byte(`"paradigm_shift"`), &m))
	assert.Equal(t, ParadigmShift, m)

	assert.Error(t, json.Unmarshal([]byte(`"cosmic"`), &m))
}

func TestTunnelResultJSON(t *testing.T) {
	result := TunnelResult{
		SourceID:         "n1",
		TargetID:         "n10",
		SurfaceDistance:  StepsDistance(9),
		TunnelDistance:   1,
		CompressionRatio: 9,
		Magnitude:        Epiphany,
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"source_id": "n1",
		"target_id": "n10",
		"surface_distance": {"steps": 9},
		"tunnel_distance": 1,
		"compression_ratio": 9,
		"magnitude": "epiphany"
	}`, string(data))
}

func TestTags(t *testing.T) {
	n := ThoughtNode{Metadata: map[string]interface{}{"tags": []string{"a", "b"}}}
	assert.Equal(t, []string{"a", "b"}, n.Tags())

	// JSON decoding hands us []interface{}.
	n = ThoughtNode{Metadata: map[string]interface{}{"tags": []interface{}{"a", 7, "b"}}}
	assert.Equal(t, []string{"a", "b"}, n.Tags())

	assert.Nil(t, ThoughtNode{}.Tags())
}
