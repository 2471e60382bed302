// Package config holds service-level settings for the matcher: the TOML
// config file, environment overrides, and logger setup.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
)

// Matching tunes the ranker defaults served to clients that do not pass
// their own options.
type Matching struct {
	MaxResults      int     `toml:"max_results"`
	MinScore        float64 `toml:"min_score"`
	ExcludeSameShow bool    `toml:"exclude_same_show"`
}

// Options converts the section into ranker options.
func (m Matching) Options() apptype.MatchOptions {
	return apptype.MatchOptions{
		MaxResults:      m.MaxResults,
		MinScore:        m.MinScore,
		ExcludeSameShow: m.ExcludeSameShow,
	}
}

// Snapshot configures the optional episode catalog file.
type Snapshot struct {
	Path    string `toml:"path"`
	Watch   bool   `toml:"watch"`
	Project string `toml:"project"`
}

// Logging configures the dual-output logger.
type Logging struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Config is the full service configuration.
type Config struct {
	Matching Matching `toml:"matching"`
	Snapshot Snapshot `toml:"snapshot"`
	Logging  Logging  `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Matching: Matching{MaxResults: 5, MinScore: 0.3},
		Snapshot: Snapshot{Project: "default"},
		Logging:  Logging{Level: "info"},
	}
}

// Load reads the TOML file at path, layered over defaults and under
// environment overrides. A missing file is not an error; an unreadable or
// malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CRIMEWEB_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Matching.MaxResults = n
		}
	}
	if v := os.Getenv("CRIMEWEB_MIN_SCORE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Matching.MinScore = f
		}
	}
	if v := os.Getenv("CRIMEWEB_SNAPSHOT"); v != "" {
		c.Snapshot.Path = v
	}
	if v := os.Getenv("CRIMEWEB_SNAPSHOT_WATCH"); v != "" {
		c.Snapshot.Watch = v == "1" || v == "true"
	}
	if v := os.Getenv("CRIMEWEB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CRIMEWEB_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

func (c *Config) validate() error {
	if c.Matching.MaxResults <= 0 {
		return fmt.Errorf("matching.max_results must be positive, got %d", c.Matching.MaxResults)
	}
	if c.Matching.MinScore < 0 || c.Matching.MinScore > 1 {
		return fmt.Errorf("matching.min_score must be in [0, 1], got %g", c.Matching.MinScore)
	}
	if c.Snapshot.Watch && c.Snapshot.Path == "" {
		return errors.New("snapshot.watch requires snapshot.path")
	}
	return nil
}
