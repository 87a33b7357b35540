// ReelMatch - Critic-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/reelmatch/internal/dataset"
)

func catalogOf(movies ...dataset.Movie) dataset.Catalog {
	c := make(dataset.Catalog, len(movies))
	for _, m := range movies {
		c[m.Title] = m
	}
	return c
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	critics := []string{"A", "B", "C"}

	t.Run("picks per-genre maximum", func(t *testing.T) {
		matrix := matrixOf(critics, map[string]map[string]float64{
			"Low":   {"A": 5, "B": 5, "C": 5},
			"High":  {"A": 9, "B": 8, "C": 7},
			"Indie": {"A": 6},
		})
		personal := personOf("Dana", map[string]float64{})
		catalog := catalogOf(
			dataset.Movie{Title: "Low", Genre: "Drama", Year: "1999"},
			dataset.Movie{Title: "High", Genre: "Drama", Year: "2001", Runtime: "98 min"},
			dataset.Movie{Title: "Indie", Genre: "Documentary", Year: "2010"},
		)

		got := Recommend(matrix, personal, critics, catalog)
		want := []Candidate{
			{Title: "High", Genre: "Drama", AvgRating: 8, Year: "2001", Runtime: "98 min"},
			{Title: "Indie", Genre: "Documentary", AvgRating: 6, Year: "2010"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Recommend() = %+v, want %+v", got, want)
		}
	})

	t.Run("never recommends watched titles", func(t *testing.T) {
		matrix := matrixOf(critics, map[string]map[string]float64{
			"Seen":   {"A": 10, "B": 10, "C": 10},
			"Unseen": {"A": 2},
		})
		personal := personOf("Dana", map[string]float64{"Seen": 3})
		catalog := catalogOf(
			dataset.Movie{Title: "Seen", Genre: "Drama", Year: "1999"},
			dataset.Movie{Title: "Unseen", Genre: "Drama", Year: "2000"},
		)

		got := Recommend(matrix, personal, critics, catalog)
		if len(got) != 1 || got[0].Title != "Unseen" {
			t.Errorf("Recommend() = %+v, want only Unseen despite its lower average", got)
		}
	})

	t.Run("exact average tie returns all winners", func(t *testing.T) {
		matrix := matrixOf(critics, map[string]map[string]float64{
			"Y": {"A": 8, "B": 9},
			"Z": {"A": 9, "B": 8},
		})
		personal := personOf("Dana", map[string]float64{})
		catalog := catalogOf(
			dataset.Movie{Title: "Y", Genre: "Comedy", Year: "1994"},
			dataset.Movie{Title: "Z", Genre: "Comedy", Year: "1996"},
		)

		got := Recommend(matrix, personal, critics, catalog)
		if len(got) != 2 {
			t.Fatalf("Recommend() = %+v, want both tied winners", got)
		}
		if got[0].AvgRating != 8.5 || got[1].AvgRating != 8.5 {
			t.Errorf("tied averages = %v, %v, want 8.5 each", got[0].AvgRating, got[1].AvgRating)
		}
	})

	t.Run("drops titles without catalog genre", func(t *testing.T) {
		matrix := matrixOf(critics, map[string]map[string]float64{
			"Ghost":    {"A": 10},
			"NoGenre":  {"A": 10},
			"Catalogd": {"A": 4},
		})
		personal := personOf("Dana", map[string]float64{})
		catalog := catalogOf(
			// Ghost has no catalog row at all.
			dataset.Movie{Title: "NoGenre", Genre: "", Year: "2002"},
			dataset.Movie{Title: "Catalogd", Genre: "Drama", Year: "2003"},
		)

		got := Recommend(matrix, personal, critics, catalog)
		if len(got) != 1 || got[0].Title != "Catalogd" {
			t.Errorf("Recommend() = %+v, want only the title with genre metadata", got)
		}
	})

	t.Run("blank runtime is kept not dropped", func(t *testing.T) {
		matrix := matrixOf(critics, map[string]map[string]float64{
			"Bare": {"A": 7},
		})
		personal := personOf("Dana", map[string]float64{})
		catalog := catalogOf(
			dataset.Movie{Title: "Bare", Genre: "Drama", Year: "2005", Runtime: ""},
		)

		got := Recommend(matrix, personal, critics, catalog)
		if len(got) != 1 {
			t.Fatalf("Recommend() = %+v, want blank-runtime title kept", got)
		}
		if got[0].Runtime != "" {
			t.Errorf("Runtime = %q, want blank preserved", got[0].Runtime)
		}
	})

	t.Run("title with no selected-critic ratings has no average", func(t *testing.T) {
		matrix := matrixOf([]string{"A", "B", "Other"}, map[string]map[string]float64{
			"OnlyOther": {"Other": 10},
		})
		personal := personOf("Dana", map[string]float64{})
		catalog := catalogOf(
			dataset.Movie{Title: "OnlyOther", Genre: "Drama", Year: "2007"},
		)

		got := Recommend(matrix, personal, []string{"A", "B"}, catalog)
		if len(got) != 0 {
			t.Errorf("Recommend() = %+v, want no candidates without an average", got)
		}
	})

	t.Run("average ignores missing critics", func(t *testing.T) {
		matrix := matrixOf(critics, map[string]map[string]float64{
			"Sparse": {"A": 6, "C": 9},
		})
		personal := personOf("Dana", map[string]float64{})
		catalog := catalogOf(
			dataset.Movie{Title: "Sparse", Genre: "Drama", Year: "2008"},
		)

		got := Recommend(matrix, personal, critics, catalog)
		if len(got) != 1 {
			t.Fatalf("Recommend() = %+v, want one candidate", got)
		}
		// Mean of the two present ratings, not sum/3.
		if math.Abs(got[0].AvgRating-7.5) > 1e-9 {
			t.Errorf("AvgRating = %v, want 7.5", got[0].AvgRating)
		}
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		matrix := matrixOf(critics, map[string]map[string]float64{
			"M1": {"A": 5, "B": 6},
			"M2": {"A": 7},
			"M3": {"B": 7},
			"M4": {"C": 3},
		})
		personal := personOf("Dana", map[string]float64{"M4": 2})
		catalog := catalogOf(
			dataset.Movie{Title: "M1", Genre: "Drama", Year: "1991"},
			dataset.Movie{Title: "M2", Genre: "Drama", Year: "1992"},
			dataset.Movie{Title: "M3", Genre: "Comedy", Year: "1993"},
		)

		first := Recommend(matrix, personal, critics, catalog)
		for i := 0; i < 10; i++ {
			if again := Recommend(matrix, personal, critics, catalog); !reflect.DeepEqual(first, again) {
				t.Fatalf("run %d differs: %+v vs %+v", i, first, again)
			}
		}
	})
}
