// ReelMatch - Critic-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tomtom215/reelmatch/internal/logging"
)

// CSV column names shared with the upstream IMDB-style exports.
const (
	colTitle   = "Title"
	colGenre   = "Genre1"
	colYear    = "Year"
	colRuntime = "Runtime"
)

// Inputs names the three files of one recommendation run, resolved
// relative to Dir.
type Inputs struct {
	Dir      string
	Movies   string
	Critics  string
	Personal string
}

// Load reads all three datasets for a run.
func Load(in Inputs) (Catalog, *RatingMatrix, *PersonalRatings, error) {
	catalog, err := LoadCatalog(filepath.Join(in.Dir, in.Movies))
	if err != nil {
		return nil, nil, nil, err
	}

	matrix, err := LoadCriticMatrix(filepath.Join(in.Dir, in.Critics))
	if err != nil {
		return nil, nil, nil, err
	}

	personal, err := LoadPersonalRatings(filepath.Join(in.Dir, in.Personal))
	if err != nil {
		return nil, nil, nil, err
	}

	return catalog, matrix, personal, nil
}

// LoadCatalog reads the movie metadata CSV. It requires the Title, Genre1,
// Year, and Runtime columns and ignores any others.
func LoadCatalog(path string) (Catalog, error) {
	rows, header, err := readCSV("movies", path)
	if err != nil {
		return nil, err
	}

	titleIdx, err := findColumn("movies", path, header, colTitle)
	if err != nil {
		return nil, err
	}
	genreIdx, err := findColumn("movies", path, header, colGenre)
	if err != nil {
		return nil, err
	}
	yearIdx, err := findColumn("movies", path, header, colYear)
	if err != nil {
		return nil, err
	}
	runtimeIdx, err := findColumn("movies", path, header, colRuntime)
	if err != nil {
		return nil, err
	}

	catalog := make(Catalog, len(rows))
	for _, rec := range rows {
		title := strings.TrimSpace(rec[titleIdx])
		if title == "" {
			continue
		}
		if _, dup := catalog[title]; dup {
			logging.Warn().
				Str("dataset", "movies").
				Str("title", title).
				Msg("Duplicate title, keeping last occurrence")
		}
		catalog[title] = Movie{
			Title:   title,
			Genre:   strings.TrimSpace(rec[genreIdx]),
			Year:    strings.TrimSpace(rec[yearIdx]),
			Runtime: strings.TrimSpace(rec[runtimeIdx]),
		}
	}

	logging.Debug().Int("movies", len(catalog)).Str("path", path).Msg("Catalog loaded")
	return catalog, nil
}

// LoadCriticMatrix reads the critic ratings CSV. Every column other than
// Title is a critic; column order is preserved for stable tie-breaking.
func LoadCriticMatrix(path string) (*RatingMatrix, error) {
	rows, header, err := readCSV("critics", path)
	if err != nil {
		return nil, err
	}

	titleIdx, err := findColumn("critics", path, header, colTitle)
	if err != nil {
		return nil, err
	}

	critics := make([]string, 0, len(header)-1)
	for i, name := range header {
		if i != titleIdx {
			critics = append(critics, name)
		}
	}

	matrix := NewRatingMatrix(critics)
	for _, rec := range rows {
		title := strings.TrimSpace(rec[titleIdx])
		if title == "" {
			continue
		}
		if _, dup := matrix.ratings[title]; dup {
			logging.Warn().
				Str("dataset", "critics").
				Str("title", title).
				Msg("Duplicate title, keeping last occurrence")
			delete(matrix.ratings, title)
		}
		for i, cell := range rec {
			if i == titleIdx {
				continue
			}
			critic := header[i]
			rating, ok, err := parseRating(cell)
			if err != nil {
				return nil, newColumnError("critics", path, critic,
					fmt.Errorf("title %q: %w", title, err))
			}
			if ok {
				matrix.Set(title, critic, rating)
			}
		}
	}

	logging.Debug().
		Int("titles", matrix.Len()).
		Int("critics", len(critics)).
		Str("path", path).
		Msg("Critic matrix loaded")
	return matrix, nil
}

// LoadPersonalRatings reads the personal ratings CSV. The header must be
// Title plus exactly one other column; that column's name is the person's.
func LoadPersonalRatings(path string) (*PersonalRatings, error) {
	rows, header, err := readCSV("personal", path)
	if err != nil {
		return nil, err
	}

	titleIdx, err := findColumn("personal", path, header, colTitle)
	if err != nil {
		return nil, err
	}
	if len(header) != 2 {
		return nil, newError("personal", path,
			fmt.Errorf("expected %s plus exactly one rating column, found %d columns", colTitle, len(header)))
	}

	personIdx := 1 - titleIdx
	personal := &PersonalRatings{
		Name:    header[personIdx],
		Ratings: make(map[string]float64, len(rows)),
	}

	for _, rec := range rows {
		title := strings.TrimSpace(rec[titleIdx])
		if title == "" {
			continue
		}
		if _, dup := personal.Ratings[title]; dup {
			logging.Warn().
				Str("dataset", "personal").
				Str("title", title).
				Msg("Duplicate title, keeping last occurrence")
		}
		rating, ok, err := parseRating(rec[personIdx])
		if err != nil {
			return nil, newColumnError("personal", path, personal.Name,
				fmt.Errorf("title %q: %w", title, err))
		}
		if ok {
			personal.Ratings[title] = rating
		} else {
			// An explicit blank still means unwatched.
			delete(personal.Ratings, title)
		}
	}

	logging.Debug().
		Str("person", personal.Name).
		Int("rated", len(personal.Ratings)).
		Str("path", path).
		Msg("Personal ratings loaded")
	return personal, nil
}

// readCSV opens and fully reads one CSV file, returning data rows and header.
func readCSV(dataset, path string) ([][]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, newError(dataset, path, err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, newError(dataset, path, fmt.Errorf("%w: file is empty", ErrNotTabular))
	}
	if err != nil {
		return nil, nil, newError(dataset, path, fmt.Errorf("%w: %v", ErrNotTabular, err))
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, newError(dataset, path, fmt.Errorf("%w: %v", ErrNotTabular, err))
		}
		rows = append(rows, rec)
	}

	return rows, header, nil
}

// findColumn locates a required column in the header.
func findColumn(dataset, path string, header []string, name string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return 0, newColumnError(dataset, path, name, ErrMissingColumn)
}

// parseRating interprets one rating cell. Blank means the rating is absent;
// anything else must parse as a float.
func parseRating(cell string) (float64, bool, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrBadRating, cell)
	}
	return v, true, nil
}
