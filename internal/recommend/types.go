// ReelMatch - Critic-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

// DefaultCritics is how many closest critics back a recommendation run.
const DefaultCritics = 3

// CriticDistance pairs a critic with their Euclidean distance from the
// person's ratings. Lower means more similar.
type CriticDistance struct {
	// Critic is the critic's name (rating matrix column).
	Critic string `json:"critic"`

	// Distance is the Euclidean distance over co-rated titles.
	Distance float64 `json:"distance"`
}

// Candidate is one recommended movie: the (or a tied) highest-average
// unwatched title within its genre.
type Candidate struct {
	// Title is the movie title.
	Title string `json:"title"`

	// Genre is the primary genre the candidate won.
	Genre string `json:"genre"`

	// AvgRating is the mean rating among the selected critics who rated it.
	AvgRating float64 `json:"avg_rating"`

	// Year is the release year from the catalog.
	Year string `json:"year"`

	// Runtime is the runtime text from the catalog, possibly blank.
	Runtime string `json:"runtime,omitempty"`
}
