package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type EngineConfig struct {
	MajorThreshold         float64 `toml:"major_threshold"`
	EpiphanyThreshold      float64 `toml:"epiphany_threshold"`
	ParadigmShiftThreshold float64 `toml:"paradigm_shift_threshold"`
	DistanceMode           string  `toml:"distance_mode"` // directed | bidirectional
	FailFast               bool    `toml:"fail_fast"`
}

type ResonanceConfig struct {
	Oracle              string  `toml:"oracle"` // always | tags | embedding | llm
	MinSharedTags       int     `toml:"min_shared_tags"`
	SimilarityThreshold float64 `toml:"similarity_threshold"`
}

type Prompts struct {
	Resonance string `toml:"resonance"`
	Narration string `toml:"narration"`
}

type LLMConfig struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	EmbeddingModel string `toml:"embedding_model"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type Config struct {
	Engine    EngineConfig    `toml:"engine"`
	Resonance ResonanceConfig `toml:"resonance"`
	LLM       LLMConfig       `toml:"llm"`
	Memgraph  MemgraphConfig  `toml:"memgraph"`
	Prompts   Prompts         `toml:"prompts"`
}

// Default is the configuration the engine runs with when no file is given:
// stock thresholds, directed traversal, the placeholder always-true oracle,
// and an in-memory graph (empty Memgraph URI).
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			MajorThreshold:         2,
			EpiphanyThreshold:      5,
			ParadigmShiftThreshold: 10,
			DistanceMode:           "directed",
		},
		Resonance: ResonanceConfig{
			Oracle:              "always",
			MinSharedTags:       1,
			SimilarityThreshold: 0.75,
		},
	}
}

// Load reads a TOML file over the defaults, so a config file only needs to
// name what it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}
