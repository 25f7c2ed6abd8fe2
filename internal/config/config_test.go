package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 2.0, cfg.Engine.MajorThreshold)
	assert.Equal(t, 5.0, cfg.Engine.EpiphanyThreshold)
	assert.Equal(t, 10.0, cfg.Engine.ParadigmShiftThreshold)
	assert.Equal(t, "directed", cfg.Engine.DistanceMode)
	assert.Equal(t, "always", cfg.Resonance.Oracle)
	assert.Empty(t, cfg.Memgraph.URI)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[engine]
epiphany_threshold = 6.5
distance_mode = "bidirectional"

[resonance]
oracle = "tags"
min_shared_tags = 2

[memgraph]
uri = "bolt://localhost:7687"
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6.5, cfg.Engine.EpiphanyThreshold)
	assert.Equal(t, "bidirectional", cfg.Engine.DistanceMode)
	assert.Equal(t, "tags", cfg.Resonance.Oracle)
	assert.Equal(t, 2, cfg.Resonance.MinSharedTags)
	assert.Equal(t, "bolt://localhost:7687", cfg.Memgraph.URI)

	// Untouched sections keep their defaults.
	assert.Equal(t, 2.0, cfg.Engine.MajorThreshold)
	assert.Equal(t, 0.75, cfg.Resonance.SimilarityThreshold)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	assert.Error(t, err)
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[engine\nbroken"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
