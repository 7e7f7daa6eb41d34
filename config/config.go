// SPDX-License-Identifier: MIT

// Package config loads gridpath settings from YAML.
//
// A file only needs the keys it changes; everything else keeps the value
// from Default.
//
//	log:
//	  level: debug
//	  format: json
//	valley:
//	  legs: 3
//	valves:
//	  start: AA
//	  minutes: 30
//	  pair_minutes: 26
//	search:
//	  max_distance: 0   # 0 means unlimited
//	  max_time: 10000
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the full set of gridpath settings.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Valley ValleyConfig `yaml:"valley"`
	Valves ValvesConfig `yaml:"valves"`
	Search SearchConfig `yaml:"search"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ValleyConfig controls blizzard basin trips.
type ValleyConfig struct {
	Legs int `yaml:"legs"`
}

// ValvesConfig sets the start valve and time budgets for valve plans.
type ValvesConfig struct {
	Start       string `yaml:"start"`
	Minutes     int    `yaml:"minutes"`
	PairMinutes int    `yaml:"pair_minutes"`
}

// SearchConfig bounds the underlying searches.
type SearchConfig struct {
	// MaxDistance caps dijkstra searches; 0 disables the cap.
	MaxDistance int64 `yaml:"max_distance"`
	// MaxTime caps wavefront searches in ticks; 0 disables the cap.
	MaxTime int `yaml:"max_time"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Valley: ValleyConfig{Legs: 3},
		Valves: ValvesConfig{Start: "AA", Minutes: 30, PairMinutes: 26},
		Search: SearchConfig{MaxTime: 100000},
	}
}

// Load reads path and merges it over Default. The result is validated.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalid, c.Log.Format)
	}
	if c.Valley.Legs < 1 {
		return fmt.Errorf("%w: valley.legs must be at least 1, got %d", ErrInvalid, c.Valley.Legs)
	}
	if c.Valves.Start == "" {
		return fmt.Errorf("%w: valves.start is empty", ErrInvalid)
	}
	if c.Valves.Minutes < 0 || c.Valves.PairMinutes < 0 {
		return fmt.Errorf("%w: valves minutes must be non-negative", ErrInvalid)
	}
	if c.Search.MaxDistance < 0 || c.Search.MaxTime < 0 {
		return fmt.Errorf("%w: search limits must be non-negative", ErrInvalid)
	}
	return nil
}

// Level returns the parsed log level, or Info if it does not parse.
func (c Config) Level() logrus.Level {
	l, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return l
}

// Fields flattens c for a structured log entry.
func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"log_level":           c.Log.Level,
		"log_format":          c.Log.Format,
		"valley_legs":         c.Valley.Legs,
		"valves_start":        c.Valves.Start,
		"valves_minutes":      c.Valves.Minutes,
		"valves_pair_minutes": c.Valves.PairMinutes,
		"search_max_distance": c.Search.MaxDistance,
		"search_max_time":     c.Search.MaxTime,
	}
}
