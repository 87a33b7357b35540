// ReelMatch - Critic-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"math"
	"sort"

	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/logging"
)

// Distances computes the Euclidean distance between each critic's rating
// column and the person's ratings, in the matrix's critic column order.
//
// distance = sqrt(sum over co-rated titles of (critic - person)^2)
//
// Titles rated by only one side are excluded from the sum. A critic who
// shares no rated title with the person therefore sums over an empty set and
// gets distance 0; that degenerate case is deliberate and keeps the column
// order as the ranking.
func Distances(matrix *dataset.RatingMatrix, personal *dataset.PersonalRatings) []CriticDistance {
	titles := matrix.Titles()

	distances := make([]CriticDistance, 0, len(matrix.Critics()))
	for _, critic := range matrix.Critics() {
		var sum float64
		for _, title := range titles {
			criticRating, ok := matrix.Rating(title, critic)
			if !ok {
				continue
			}
			personRating, ok := personal.Rating(title)
			if !ok {
				continue
			}
			diff := criticRating - personRating
			sum += diff * diff
		}
		distances = append(distances, CriticDistance{
			Critic:   critic,
			Distance: math.Sqrt(sum),
		})
	}

	// Stable: exact ties keep the critic CSV column order.
	sort.SliceStable(distances, func(i, j int) bool {
		return distances[i].Distance < distances[j].Distance
	})

	return distances
}

// ClosestCritics returns the names of the up-to-n critics whose ratings are
// closest to the person's, ordered by ascending distance. When fewer than n
// critics exist, all of them are returned and a warning is logged.
func ClosestCritics(matrix *dataset.RatingMatrix, personal *dataset.PersonalRatings, n int) []string {
	if n <= 0 {
		n = DefaultCritics
	}

	distances := Distances(matrix, personal)
	if len(distances) < n {
		logging.Warn().
			Int("available", len(distances)).
			Int("requested", n).
			Msg("Fewer critics than requested, using all of them")
		n = len(distances)
	}

	critics := make([]string, 0, n)
	for _, d := range distances[:n] {
		critics = append(critics, d.Critic)
	}
	return critics
}
