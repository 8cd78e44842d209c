package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSteps    = 500
	DefaultDt       = 0.02
	DefaultInterval = 30 * time.Millisecond
	DefaultOffset   = 2.0
)

var ErrInvalid = errors.New("config: invalid value")

// Config drives the synthetic feed producer.
type Config struct {
	Plane    PlaneConfig   `yaml:"plane"`
	Path     PathConfig    `yaml:"path"`
	Steps    int           `yaml:"steps"`
	Dt       float64       `yaml:"dt"`
	Interval time.Duration `yaml:"interval"`
}

type PlaneConfig struct {
	Normal [3]float64 `yaml:"normal"`
	Offset float64    `yaml:"offset"`
}

// PathConfig shapes the query point trajectory
//
//	p(t) = (XAmp sin t, YBase + YAmp sin(YFreq t), ZAmp cos t)
type PathConfig struct {
	XAmp  float64 `yaml:"x_amp"`
	YBase float64 `yaml:"y_base"`
	YAmp  float64 `yaml:"y_amp"`
	YFreq float64 `yaml:"y_freq"`
	ZAmp  float64 `yaml:"z_amp"`
}

func DefaultConfig() *Config {
	return &Config{
		Plane: PlaneConfig{
			Normal: [3]float64{0, 1, 0},
			Offset: DefaultOffset,
		},
		Path: PathConfig{
			XAmp:  1,
			YBase: -0.5,
			YAmp:  0.5,
			YFreq: 0.3,
			ZAmp:  0.5,
		},
		Steps:    DefaultSteps,
		Dt:       DefaultDt,
		Interval: DefaultInterval,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
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

// Validate rejects configurations the producer cannot run. Zero steps means
// run until cancelled.
func (c *Config) Validate() error {
	n := c.Plane.Normal
	switch {
	case n[0] == 0 && n[1] == 0 && n[2] == 0:
		return fmt.Errorf("%w: plane normal is zero", ErrInvalid)
	case c.Steps < 0:
		return fmt.Errorf("%w: steps %d", ErrInvalid, c.Steps)
	case c.Dt <= 0:
		return fmt.Errorf("%w: dt %v", ErrInvalid, c.Dt)
	case c.Interval < 0:
		return fmt.Errorf("%w: interval %v", ErrInvalid, c.Interval)
	}
	return nil
}
