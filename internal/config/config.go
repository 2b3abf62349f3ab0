package config

import (
	"errors"
	"io"
	"os"
	"time"

	"fivecardshowdown/internal/util"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for Five Card Showdown
type Config struct {
	loaded         bool
	Addr           string        `yaml:"addr" envconfig:"addr"`
	StartingTokens int           `yaml:"startingTokens" envconfig:"starting_tokens"`
	Seed           int64         `yaml:"seed" envconfig:"seed"`
	SessionTTL     time.Duration `yaml:"sessionTTL" envconfig:"session_ttl"`
	Log            struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Addr:           ":5000",
		StartingTokens: 100,
		SessionTTL:     time.Hour,
	}

	cfg.Log.Level = "info"
	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values from the YAML file are applied over the defaults, then the SHOWDOWN_* environment
// variables are applied over both. A missing config file is not an error.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("SHOWDOWN_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}

	if err := envconfig.Process("showdown", &cfg); err != nil {
		return err
	}

	if cfg.StartingTokens <= 0 {
		return errors.New("startingTokens must be > 0")
	}

	if cfg.Seed < 0 {
		return errors.New("seed cannot be < 0")
	}

	cfg.loaded = true
	config = cfg
	return nil
}
