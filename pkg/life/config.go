package life

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"torlife/pkg/core"
)

// Config controls soup-style engine construction.
type Config struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// Rule is a registry name ("life", "highlife", ...) or B/S notation.
	Rule string `yaml:"rule"`

	Seed        int64   `yaml:"seed"`
	Density     float64 `yaml:"density"`
	Generations int     `yaml:"generations"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:    256,
		Cols:    256,
		Rule:    "life",
		Seed:    1337,
		Density: 0.25,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Generations = parsed
		}
	}
	return c
}

// LoadConfig reads a YAML config file, layering it over the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// NewFromConfig builds an engine seeded with a deterministic random soup
// and advances it by the configured number of generations.
func NewFromConfig(cfg Config) (*Engine, error) {
	rule, err := resolveRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", core.ErrInvalidDimensions, cfg.Rows, cfg.Cols)
	}
	cells := make([][]bool, cfg.Rows)
	for i := range cells {
		cells[i] = make([]bool, cfg.Cols)
	}
	e, err := NewWithRule(cfg.Rows, cfg.Cols, cells, rule)
	if err != nil {
		return nil, err
	}
	e.Randomize(cfg.Seed, cfg.Density)
	e.AdvanceGenerations(cfg.Generations)
	return e, nil
}

func resolveRule(name string) (Rule, error) {
	if name == "" {
		return Conway, nil
	}
	if r, ok := RuleByName(name); ok {
		return r, nil
	}
	return ParseRule(name)
}
