package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt    = 0.01
	DefaultSpeed = 1.0
	DefaultSteps = 10000

	DefaultLorenzTrail      = 2000
	DefaultBrusselatorTrail = 1000
	DefaultLogisticTrail    = 200

	DefaultGrowthRate       = 3.8
	DefaultCarryingCapacity = 1000.0
	DefaultInitialPop       = 2.0
	DefaultYears            = 50
)

type Config struct {
	System  string             `yaml:"system"`
	Stepper string             `yaml:"stepper"`
	Dt      float64            `yaml:"dt"`
	Speed   float64            `yaml:"speed"`
	Steps   int                `yaml:"steps"`
	Trail   int                `yaml:"trail"`
	Params  map[string]float64 `yaml:"params"`

	Logistic LogisticConfig `yaml:"logistic"`
	Sweep    SweepConfig    `yaml:"sweep"`
}

type LogisticConfig struct {
	R     float64 `yaml:"r"`
	K     float64 `yaml:"k"`
	P0    float64 `yaml:"p0"`
	Years int     `yaml:"years"`
}

type SweepConfig struct {
	MinR       float64 `yaml:"min_r"`
	MaxR       float64 `yaml:"max_r"`
	K          float64 `yaml:"k"`
	P0         float64 `yaml:"p0"`
	Settle     int     `yaml:"settle"`
	Sample     int     `yaml:"sample"`
	Resolution int     `yaml:"resolution"`
}

func DefaultConfig() *Config {
	return &Config{
		System: "lorenz",
		Dt:     DefaultDt,
		Speed:  DefaultSpeed,
		Steps:  DefaultSteps,
		Trail:  DefaultLorenzTrail,
		Logistic: LogisticConfig{
			R:     DefaultGrowthRate,
			K:     DefaultCarryingCapacity,
			P0:    DefaultInitialPop,
			Years: DefaultYears,
		},
		Sweep: SweepConfig{
			MinR:       0.0,
			MaxR:       4.0,
			K:          DefaultCarryingCapacity,
			P0:         DefaultInitialPop,
			Settle:     1000,
			Sample:     100,
			Resolution: 1000,
		},
	}
}

// DefaultTrail returns the trail capacity used when none is configured.
func DefaultTrail(system string) int {
	switch system {
	case "brusselator":
		return DefaultBrusselatorTrail
	case "logistic":
		return DefaultLogisticTrail
	}
	return DefaultLorenzTrail
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
