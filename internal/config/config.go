package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMass     = 100.0
	DefaultVelocity = -100.0
	DefaultDt       = 1.0 / 60.0
	DefaultDuration = 60.0
	DefaultFPS      = 60
)

type Config struct {
	MassLarge     float64 `yaml:"mass_large"`
	VelocityLarge float64 `yaml:"velocity_large"`
	Dt            float64 `yaml:"dt"`
	Duration      float64 `yaml:"duration"`
	FPS           int     `yaml:"fps"`
	StopOnFinish  bool    `yaml:"stop_on_finish"`
}

func DefaultConfig() *Config {
	return &Config{
		MassLarge:     DefaultMass,
		VelocityLarge: DefaultVelocity,
		Dt:            DefaultDt,
		Duration:      DefaultDuration,
		FPS:           DefaultFPS,
		StopOnFinish:  true,
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

// Validate enforces the engine's construction invariants at the config
// boundary so a bad file fails before an engine is built.
func (c *Config) Validate() error {
	if c.MassLarge <= 0 {
		return fmt.Errorf("mass_large must be positive, got %f", c.MassLarge)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}
