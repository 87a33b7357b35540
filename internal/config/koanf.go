// ReelMatch - Critic-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, in order of
// priority. The first file found wins.
var DefaultConfigPaths = []string{
	"reelmatch.yaml",
	"reelmatch.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "REELMATCH_CONFIG"

// Load builds the configuration using Koanf v2 with layered sources:
// defaults, then an optional YAML config file, then REELMATCH_* environment
// variables (highest priority). The result is validated before returning.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional config file
	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Layer 3: environment variables
	if err := k.Load(env.Provider("REELMATCH_", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file, environment override first.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps environment variable names to koanf config paths.
// Unknown variables are dropped rather than guessed at.
var envMappings = map[string]string{
	"REELMATCH_INPUT_DIR":      "input.dir",
	"REELMATCH_INPUT_MOVIES":   "input.movies",
	"REELMATCH_INPUT_CRITICS":  "input.critics",
	"REELMATCH_INPUT_PERSONAL": "input.personal",
	"REELMATCH_CRITICS":        "recommend.critics",
	"REELMATCH_OUTPUT_FORMAT":  "output.format",
	"REELMATCH_LOG_LEVEL":      "logging.level",
	"REELMATCH_LOG_FORMAT":     "logging.format",
	"REELMATCH_LOG_CALLER":     "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf paths.
//
// Examples:
//   - REELMATCH_INPUT_DIR -> input.dir
//   - REELMATCH_LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	return envMappings[strings.ToUpper(key)]
}
