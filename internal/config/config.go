package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	DefaultSpeed          = 1.0
	DefaultBaseIntervalMs = 1000
	DefaultPreset         = "random"
	DefaultSeed           = 1
	DefaultLogLevel       = "info"
	MinSpeed              = 0.1
	MaxSpeed              = 5.0
)

var (
	ErrSpeedRange      = errors.New("config: speed out of range [0.1, 5.0]")
	ErrUnknownPreset   = errors.New("config: unknown preset")
	ErrDuplicatePreset = errors.New("config: duplicate preset name")
)

type Config struct {
	Speed          float64  `yaml:"speed"`
	BaseIntervalMs int      `yaml:"base_interval_ms"`
	Preset         string   `yaml:"preset"`
	Seed           int64    `yaml:"seed"`
	Array          []int    `yaml:"array,omitempty"`
	Algorithms     []string `yaml:"algorithms,omitempty"`
	LogLevel       string   `yaml:"log_level"`
	Theme          string   `yaml:"theme,omitempty"`
	Presets        []Preset `yaml:"presets,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Speed:          DefaultSpeed,
		BaseIntervalMs: DefaultBaseIntervalMs,
		Preset:         DefaultPreset,
		Seed:           DefaultSeed,
		LogLevel:       DefaultLogLevel,
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
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

func (c *Config) Validate() error {
	if math.IsNaN(c.Speed) || c.Speed < MinSpeed || c.Speed > MaxSpeed {
		return fmt.Errorf("%w: %g", ErrSpeedRange, c.Speed)
	}
	if c.BaseIntervalMs <= 0 {
		return fmt.Errorf("config: base_interval_ms must be positive, got %d", c.BaseIntervalMs)
	}
	if _, err := c.GetAlgorithms(); err != nil {
		return err
	}
	names := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.Name == "" || len(p.Array) == 0 {
			return fmt.Errorf("config: preset entries need a name and a non-empty array")
		}
		if names[p.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicatePreset, p.Name)
		}
		names[p.Name] = true
	}
	if len(c.Array) == 0 && c.GetPreset(c.Preset) == nil {
		return fmt.Errorf("%w: %s", ErrUnknownPreset, c.Preset)
	}
	return nil
}

// GetAlgorithms resolves the configured subset, or all algorithms when none
// are listed.
func (c *Config) GetAlgorithms() ([]sorting.Algorithm, error) {
	if len(c.Algorithms) == 0 {
		return sorting.All(), nil
	}
	algs := make([]sorting.Algorithm, 0, len(c.Algorithms))
	seen := make(map[sorting.Algorithm]bool)
	for _, name := range c.Algorithms {
		alg, err := sorting.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		if !seen[alg] {
			seen[alg] = true
			algs = append(algs, alg)
		}
	}
	return algs, nil
}

// GetArray returns the explicit array if one is configured, otherwise the
// array of the selected preset.
func (c *Config) GetArray() ([]int, error) {
	if len(c.Array) > 0 {
		return append([]int(nil), c.Array...), nil
	}
	p := c.GetPreset(c.Preset)
	if p == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, c.Preset, c.ListPresets())
	}
	return p.Array, nil
}

// Catalog returns the built-in presets for the configured seed followed by
// user presets; a user preset replaces a built-in of the same name.
func (c *Config) Catalog() []Preset {
	builtin := Presets(c.Seed)
	out := make([]Preset, 0, len(builtin)+len(c.Presets))
	override := make(map[string]Preset, len(c.Presets))
	for _, p := range c.Presets {
		override[p.Name] = p
	}
	for _, p := range builtin {
		if u, ok := override[p.Name]; ok {
			p = u
			delete(override, p.Name)
		}
		out = append(out, p)
	}
	for _, p := range c.Presets {
		if _, ok := override[p.Name]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) GetPreset(name string) *Preset {
	for _, p := range c.Catalog() {
		if p.Name == name {
			return &p
		}
	}
	return nil
}

func (c *Config) ListPresets() []string {
	catalog := c.Catalog()
	names := make([]string, 0, len(catalog))
	for _, p := range catalog {
		names = append(names, p.Name)
	}
	return names
}
