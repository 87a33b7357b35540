// ReelMatch - Critic-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package main is the entry point for the reelmatch CLI.
//
// ReelMatch reads three CSV datasets (movie metadata, critic ratings, and
// one person's ratings), then prints the three critics whose reviews sit
// closest to the person's (Euclidean distance over shared titles) and, per
// genre, the unwatched movie those critics rated highest on average.
//
// # Usage
//
//	reelmatch [flags] <dir> <movies.csv> <critics.csv> <personal.csv>
//
// The four positional arguments may be omitted when the input files are
// named in the configuration instead (reelmatch.yaml or REELMATCH_* env
// vars). Flags:
//
//	-format text|json   output format (default from config: text)
//	-critics N          how many closest critics to use (default: 3)
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): REELMATCH_* environment variables, an optional
// reelmatch.yaml, then built-in defaults. See internal/config.
//
// # Exit Status
//
// The process exits 0 on success and 1 on any failure: unreadable files,
// missing required columns, or non-numeric ratings. Errors name the dataset
// and column at fault.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/report"
)

func main() {
	formatFlag := flag.String("format", "", "output format: text or json (overrides config)")
	criticsFlag := flag.Int("critics", 0, "number of closest critics to use (overrides config)")
	flag.Usage = usage
	flag.Parse()

	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	// Tag everything this invocation logs with one run ID.
	logging.SetLogger(logging.With().Str("run_id", uuid.NewString()).Logger())

	applyArgs(cfg)
	applyFlags(cfg, *formatFlag, *criticsFlag)

	if cfg.Input.Movies == "" || cfg.Input.Critics == "" || cfg.Input.Personal == "" {
		flag.Usage()
		logging.Fatal().Msg("All three input files must be given as arguments or configuration")
	}

	logging.Debug().
		Str("dir", cfg.Input.Dir).
		Str("movies", cfg.Input.Movies).
		Str("critics", cfg.Input.Critics).
		Str("personal", cfg.Input.Personal).
		Msg("Configuration loaded")

	catalog, matrix, personal, err := dataset.Load(dataset.Inputs{
		Dir:      cfg.Input.Dir,
		Movies:   cfg.Input.Movies,
		Critics:  cfg.Input.Critics,
		Personal: cfg.Input.Personal,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load datasets")
	}

	logging.Info().
		Int("movies", len(catalog)).
		Int("rated_titles", matrix.Len()).
		Int("critics", len(matrix.Critics())).
		Str("person", personal.Name).
		Msg("Datasets loaded")

	critics := recommend.ClosestCritics(matrix, personal, cfg.Recommend.Critics)
	candidates := recommend.Recommend(matrix, personal, critics, catalog)

	result := &report.Report{
		Person:          personal.Name,
		ClosestCritics:  critics,
		Recommendations: candidates,
	}

	switch cfg.Output.Format {
	case "json":
		err = report.WriteJSON(os.Stdout, result)
	default:
		err = report.Write(os.Stdout, result)
	}
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to write report")
	}
}

// applyArgs overlays the positional arguments (dir plus three file names)
// on the loaded configuration. Zero arguments means the configuration must
// already name the files; any other count is a usage error.
func applyArgs(cfg *config.Config) {
	switch flag.NArg() {
	case 0:
		return
	case 4:
		cfg.Input = config.InputConfig{
			Dir:      flag.Arg(0),
			Movies:   flag.Arg(1),
			Critics:  flag.Arg(2),
			Personal: flag.Arg(3),
		}
	default:
		flag.Usage()
		logging.Fatal().Int("args", flag.NArg()).Msg("Expected a directory and three file names")
	}
}

// applyFlags overlays explicit flag values on the loaded configuration.
func applyFlags(cfg *config.Config, format string, critics int) {
	if format != "" {
		if format != "text" && format != "json" {
			logging.Fatal().Str("format", format).Msg("Output format must be text or json")
		}
		cfg.Output.Format = format
	}
	if critics > 0 {
		cfg.Recommend.Critics = critics
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <dir> <movies.csv> <critics.csv> <personal.csv>\n\nFlags:\n",
		os.Args[0])
	flag.PrintDefaults()
}
