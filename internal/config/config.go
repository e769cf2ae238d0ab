package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultThreshold    = 0.1
	DefaultRateConstant = 0.05
	DefaultInitialConc  = 100.0
	DefaultNoiseLevel   = 0.02
	DefaultDuration     = 60.0
	DefaultStep         = 5.0
	DefaultSeed         = 42
)

type Config struct {
	Threshold float64      `yaml:"threshold"`
	Sample    SampleConfig `yaml:"sample"`
}

type SampleConfig struct {
	Seed         int64   `yaml:"seed"`
	RateConstant float64 `yaml:"rate_constant"`
	InitialConc  float64 `yaml:"initial_conc"`
	NoiseLevel   float64 `yaml:"noise_level"`
	Duration     float64 `yaml:"duration"`
	Step         float64 `yaml:"step"`
}

func DefaultConfig() *Config {
	return &Config{
		Threshold: DefaultThreshold,
		Sample: SampleConfig{
			Seed:         DefaultSeed,
			RateConstant: DefaultRateConstant,
			InitialConc:  DefaultInitialConc,
			NoiseLevel:   DefaultNoiseLevel,
			Duration:     DefaultDuration,
			Step:         DefaultStep,
		},
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
