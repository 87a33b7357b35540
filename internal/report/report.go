// ReelMatch - Critic-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package report renders the result of a recommendation run for people
// (aligned text) or for scripts (JSON).
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Report is the full result of one recommendation run.
type Report struct {
	// Person is the name of the person the run was for.
	Person string `json:"person"`

	// ClosestCritics are the selected critics, most similar first.
	ClosestCritics []string `json:"closest_critics"`

	// Recommendations hold one winner (or several, on ties) per genre.
	Recommendations []recommend.Candidate `json:"recommendations"`
}

// sorted returns the recommendations ordered by genre, then title.
func (r *Report) sorted() []recommend.Candidate {
	out := make([]recommend.Candidate, len(r.Recommendations))
	copy(out, r.Recommendations)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Genre != out[j].Genre {
			return out[i].Genre < out[j].Genre
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// Write renders the human-readable report:
//
//	The following critics had reviews closest to the person's:
//	Bob, Anna, Carol
//
//	Recommendations for Dana:
//	"The Longest Title" (Drama), rating: 8.25, 2001, runs 98 min
//	"Short"             (Western), rating: 7.00, 1965
//
// Quoted titles are padded to the longest title plus the quotes, and the
// runtime suffix is omitted for titles with a blank runtime.
func Write(w io.Writer, r *Report) error {
	if _, err := fmt.Fprintf(w, "The following critics had reviews closest to the person's:\n%s\n\n",
		strings.Join(r.ClosestCritics, ", ")); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Recommendations for %s:\n", r.Person); err != nil {
		return err
	}

	recs := r.sorted()

	width := 0
	for _, c := range recs {
		if len(c.Title) > width {
			width = len(c.Title)
		}
	}
	width += 2 // quotes

	for _, c := range recs {
		line := fmt.Sprintf("%-*s (%s), rating: %.2f, %s",
			width, `"`+c.Title+`"`, c.Genre, c.AvgRating, c.Year)
		if c.Runtime != "" {
			line += ", runs " + c.Runtime
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// WriteJSON renders the report as indented JSON with the recommendations in
// the same genre-then-title order the text report uses.
func WriteJSON(w io.Writer, r *Report) error {
	out := Report{
		Person:          r.Person,
		ClosestCritics:  r.ClosestCritics,
		Recommendations: r.sorted(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
