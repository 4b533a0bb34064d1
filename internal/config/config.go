package config

import (
	"fmt"
	"os"

	"github.com/san-kum/hopsim/internal/lattice"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSites = 80
	DefaultSteps = 100
	DefaultRate  = 5.0
	DefaultDt    = 0.02
)

type Config struct {
	Sites     int        `yaml:"sites"`
	Steps     int        `yaml:"steps"`
	Rate      float64    `yaml:"rate"`
	Dt        float64    `yaml:"dt"`
	Stepper   string     `yaml:"stepper"`
	Init      InitConfig `yaml:"init"`
	Snapshots []int      `yaml:"snapshots"`
}

type InitConfig struct {
	Type    string    `yaml:"type"` // delta, uniform, weights
	Site    int       `yaml:"site"`
	Weights []float64 `yaml:"weights"`
}

// DefaultConfig is the reference scenario: 80 sites, delta start in the
// middle, k=5, dt=0.02, 100 time points.
func DefaultConfig() *Config {
	return &Config{
		Sites:     DefaultSites,
		Steps:     DefaultSteps,
		Rate:      DefaultRate,
		Dt:        DefaultDt,
		Stepper:   "euler",
		Init:      InitConfig{Type: "delta", Site: DefaultSites/2 - 1},
		Snapshots: []int{0, 10, 50, 99},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// InitialDistribution builds the initial column described by the config.
func (c *Config) InitialDistribution() (lattice.Distribution, error) {
	switch c.Init.Type {
	case "", "delta":
		return lattice.Delta(c.Sites, c.Init.Site)
	case "uniform":
		return lattice.Uniform(c.Sites)
	case "weights":
		if len(c.Init.Weights) != c.Sites {
			return nil, fmt.Errorf("init weights: expected %d entries, got %d",
				c.Sites, len(c.Init.Weights))
		}
		return lattice.FromWeights(c.Init.Weights)
	default:
		return nil, fmt.Errorf("unknown init type: %s", c.Init.Type)
	}
}

// SnapshotIndices returns the configured snapshot time indices clamped to
// the run length, defaulting to first/middle/last when none are set.
func (c *Config) SnapshotIndices() []int {
	if len(c.Snapshots) == 0 {
		return []int{0, c.Steps / 2, c.Steps - 1}
	}
	out := make([]int, 0, len(c.Snapshots))
	for _, t := range c.Snapshots {
		if t >= 0 && t < c.Steps {
			out = append(out, t)
		}
	}
	return out
}
