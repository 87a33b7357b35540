// ReelMatch - Critic-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package config holds runtime configuration for the reelmatch CLI.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values for everything optional
//  2. Config File: optional YAML file (reelmatch.yaml) for persistent settings
//  3. Environment Variables: REELMATCH_* overrides any setting
//
// The input files themselves are usually given as command-line arguments,
// which the CLI applies on top of the loaded configuration.
package config

// Config holds all settings for one reelmatch invocation.
// It is immutable after Load and safe for concurrent reads.
type Config struct {
	Input     InputConfig     `koanf:"input"`
	Recommend RecommendConfig `koanf:"recommend"`
	Output    OutputConfig    `koanf:"output"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// InputConfig names the three CSV files of a run, resolved relative to Dir.
// Values here act as defaults; command-line arguments override them.
//
// Environment Variables:
//   - REELMATCH_INPUT_DIR: base directory (default: .)
//   - REELMATCH_INPUT_MOVIES: movie metadata file name
//   - REELMATCH_INPUT_CRITICS: critic ratings file name
//   - REELMATCH_INPUT_PERSONAL: personal ratings file name
type InputConfig struct {
	Dir      string `koanf:"dir"`
	Movies   string `koanf:"movies"`
	Critics  string `koanf:"critics"`
	Personal string `koanf:"personal"`
}

// RecommendConfig tunes the recommendation pipeline.
//
// Environment Variables:
//   - REELMATCH_CRITICS: how many closest critics to select (default: 3)
type RecommendConfig struct {
	Critics int `koanf:"critics" validate:"min=1,max=100"`
}

// OutputConfig controls how results are rendered.
//
// Environment Variables:
//   - REELMATCH_OUTPUT_FORMAT: text or json (default: text)
type OutputConfig struct {
	Format string `koanf:"format" validate:"oneof=text json"`
}

// LoggingConfig mirrors the logging package's settings.
//
// Environment Variables:
//   - REELMATCH_LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - REELMATCH_LOG_FORMAT: json or console (default: console)
//   - REELMATCH_LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and environment.
func defaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Dir: ".",
		},
		Recommend: RecommendConfig{
			Critics: 3,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
	}
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	return validateStruct(c)
}
