// Package config loads the optional .loggen.yaml tuning file. When the
// file is absent the loader returns the stock demo settings, so a plain
// `loggen` run needs no configuration at all.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/valter-silva-au/loggen/internal/severity"
)

// Config holds the tunable parameters of the emitter loop. The message
// catalog itself is deliberately not configurable.
type Config struct {
	// Weights are the relative severity selection weights.
	Weights severity.Weights

	// MinSleep and MaxSleep bound the randomized pause between entries.
	MinSleep time.Duration
	MaxSleep time.Duration
}

// Manager defines the interface for loading emitter configuration.
type Manager interface {
	Load() (*Config, error)
}

// viperManager implements Manager using Viper to read an optional
// .loggen.yaml file.
type viperManager struct {
	// basePath is the directory searched for .loggen.yaml.
	basePath string
}

// NewManager creates a Manager that looks for .loggen.yaml in basePath.
func NewManager(basePath string) Manager {
	return &viperManager{basePath: basePath}
}

// Default returns the stock demo settings: 85/12/3 severity weights and
// a pause drawn from [0.5s, 1.5s].
func Default() *Config {
	return &Config{
		Weights:  severity.DefaultWeights(),
		MinSleep: 500 * time.Millisecond,
		MaxSleep: 1500 * time.Millisecond,
	}
}

// Load reads .loggen.yaml from the base path. A missing file yields the
// defaults; a present file overrides only the keys it sets. The resulting
// configuration is validated before being returned.
func (m *viperManager) Load() (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName(".loggen")
	v.SetConfigType("yaml")
	v.AddConfigPath(m.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("weights.info", cfg.Weights.Info)
	v.SetDefault("weights.warn", cfg.Weights.Warn)
	v.SetDefault("weights.err", cfg.Weights.Err)
	v.SetDefault("sleep.min", cfg.MinSleep)
	v.SetDefault("sleep.max", cfg.MaxSleep)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found — run with defaults.
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .loggen.yaml: %w", err)
	}

	cfg.Weights.Info = v.GetInt("weights.info")
	cfg.Weights.Warn = v.GetInt("weights.warn")
	cfg.Weights.Err = v.GetInt("weights.err")
	cfg.MinSleep = v.GetDuration("sleep.min")
	cfg.MaxSleep = v.GetDuration("sleep.max")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid .loggen.yaml: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration can drive the emitter: weights
// must be accepted by severity.NewChooser and the sleep interval must be
// positive and ordered.
func (c *Config) Validate() error {
	if _, err := severity.NewChooser(c.Weights); err != nil {
		return err
	}
	if c.MinSleep <= 0 {
		return fmt.Errorf("sleep.min must be positive, got %s", c.MinSleep)
	}
	if c.MaxSleep < c.MinSleep {
		return fmt.Errorf("sleep.max (%s) is below sleep.min (%s)", c.MaxSleep, c.MinSleep)
	}
	return nil
}
