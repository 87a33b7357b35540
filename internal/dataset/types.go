// ReelMatch - Critic-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

// Movie is one row of the movie catalog. Year and Runtime are kept as the
// raw CSV text: they are display fields, never computed with, and upstream
// data leaves Runtime blank for some titles.
type Movie struct {
	// Title is the unique catalog key.
	Title string `json:"title"`

	// Genre is the primary genre classification (CSV column Genre1).
	Genre string `json:"genre"`

	// Year is the release year as it appears in the catalog.
	Year string `json:"year"`

	// Runtime is the runtime text, possibly blank.
	Runtime string `json:"runtime,omitempty"`
}

// Catalog maps movie title to its catalog entry.
type Catalog map[string]Movie

// RatingMatrix is the sparse movie-by-critic rating matrix. A rating exists
// only if the critic actually rated the title; absent cells stay absent.
type RatingMatrix struct {
	critics []string
	ratings map[string]map[string]float64
}

// NewRatingMatrix creates an empty matrix with the given critic column order.
// The order is preserved exactly as it appeared in the CSV header; ranking
// relies on it to break distance ties deterministically.
func NewRatingMatrix(critics []string) *RatingMatrix {
	return &RatingMatrix{
		critics: critics,
		ratings: make(map[string]map[string]float64),
	}
}

// Critics returns the critic names in original column order.
func (m *RatingMatrix) Critics() []string {
	return m.critics
}

// Titles returns every title with at least one row in the matrix,
// in unspecified order.
func (m *RatingMatrix) Titles() []string {
	titles := make([]string, 0, len(m.ratings))
	for title := range m.ratings {
		titles = append(titles, title)
	}
	return titles
}

// Rating returns the rating a critic gave a title, and whether one exists.
func (m *RatingMatrix) Rating(title, critic string) (float64, bool) {
	row, ok := m.ratings[title]
	if !ok {
		return 0, false
	}
	r, ok := row[critic]
	return r, ok
}

// Set records a rating. A repeated (title, critic) pair overwrites the
// earlier value, which gives the loader its last-seen-wins behavior for
// duplicate titles.
func (m *RatingMatrix) Set(title, critic string, rating float64) {
	row, ok := m.ratings[title]
	if !ok {
		row = make(map[string]float64, len(m.critics))
		m.ratings[title] = row
	}
	row[critic] = rating
}

// Len returns the number of titles in the matrix.
func (m *RatingMatrix) Len() int {
	return len(m.ratings)
}

// PersonalRatings holds one person's ratings keyed by movie title.
// A title absent from Ratings is unwatched.
type PersonalRatings struct {
	// Name is the person's name, taken from the single non-Title CSV header.
	Name string

	// Ratings maps movie title to the person's rating.
	Ratings map[string]float64
}

// Rated reports whether the person has rated the given title.
func (p *PersonalRatings) Rated(title string) bool {
	_, ok := p.Ratings[title]
	return ok
}

// Rating returns the person's rating for a title, and whether one exists.
func (p *PersonalRatings) Rating(title string) (float64, bool) {
	r, ok := p.Ratings[title]
	return r, ok
}
