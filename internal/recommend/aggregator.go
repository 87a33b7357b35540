// ReelMatch - Critic-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"sort"

	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/logging"
)

// Recommend selects, per genre, the unwatched movie(s) with the highest
// average rating among the selected critics.
//
// A title is eligible when all of these hold:
//   - at least one selected critic rated it (otherwise it has no average)
//   - the person has not rated it
//   - the catalog has a row for it with a non-blank genre
//
// Within a genre every candidate whose average exactly equals the group
// maximum is returned, so ties yield multiple candidates. Blank catalog
// fields other than the genre (e.g. Runtime) never disqualify a title.
//
// The result is ordered by title; the report layer regroups by genre.
func Recommend(matrix *dataset.RatingMatrix, personal *dataset.PersonalRatings, critics []string, catalog dataset.Catalog) []Candidate {
	titles := matrix.Titles()
	sort.Strings(titles)

	best := make(map[string][]Candidate)
	skippedMeta := 0

	for _, title := range titles {
		avg, ok := averageRating(matrix, title, critics)
		if !ok {
			continue
		}
		if personal.Rated(title) {
			continue
		}

		movie, ok := catalog[title]
		if !ok || movie.Genre == "" {
			skippedMeta++
			continue
		}

		candidate := Candidate{
			Title:     title,
			Genre:     movie.Genre,
			AvgRating: avg,
			Year:      movie.Year,
			Runtime:   movie.Runtime,
		}

		group := best[movie.Genre]
		switch {
		case len(group) == 0 || avg > group[0].AvgRating:
			best[movie.Genre] = []Candidate{candidate}
		case avg == group[0].AvgRating:
			best[movie.Genre] = append(group, candidate)
		}
	}

	if skippedMeta > 0 {
		logging.Debug().
			Int("titles", skippedMeta).
			Msg("Skipped unwatched titles without genre metadata")
	}

	candidates := make([]Candidate, 0, len(best))
	for _, group := range best {
		candidates = append(candidates, group...)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Title < candidates[j].Title
	})
	return candidates
}

// averageRating is the mean of the ratings the selected critics gave a
// title. The second return is false when none of them rated it.
func averageRating(matrix *dataset.RatingMatrix, title string, critics []string) (float64, bool) {
	var sum float64
	var count int
	for _, critic := range critics {
		if r, ok := matrix.Rating(title, critic); ok {
			sum += r
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}
