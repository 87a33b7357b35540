// ReelMatch - Critic-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"math"
	"testing"

	"github.com/tomtom215/reelmatch/internal/dataset"
)

// matrixOf builds a rating matrix from critic column order and
// title -> critic -> rating data.
func matrixOf(critics []string, data map[string]map[string]float64) *dataset.RatingMatrix {
	m := dataset.NewRatingMatrix(critics)
	for title, row := range data {
		for critic, rating := range row {
			m.Set(title, critic, rating)
		}
	}
	return m
}

func personOf(name string, ratings map[string]float64) *dataset.PersonalRatings {
	return &dataset.PersonalRatings{Name: name, Ratings: ratings}
}

func TestDistances(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		matrix   *dataset.RatingMatrix
		personal *dataset.PersonalRatings
		want     []CriticDistance
	}{
		{
			name: "single shared title orders by absolute difference",
			matrix: matrixOf([]string{"A", "B", "C", "D"}, map[string]map[string]float64{
				"X": {"A": 3, "B": 4, "C": 5, "D": 1},
			}),
			personal: personOf("Dana", map[string]float64{"X": 4}),
			want: []CriticDistance{
				{Critic: "B", Distance: 0},
				{Critic: "A", Distance: 1},
				{Critic: "C", Distance: 1},
				{Critic: "D", Distance: 3},
			},
		},
		{
			name: "titles missing on either side are skipped",
			matrix: matrixOf([]string{"A", "B"}, map[string]map[string]float64{
				"X": {"A": 2, "B": 9},
				"Y": {"A": 10},
				"Z": {"B": 10},
			}),
			// Y is unrated by B, W is in nobody's matrix, Z unrated by A.
			personal: personOf("Dana", map[string]float64{"X": 2, "W": 1}),
			want: []CriticDistance{
				{Critic: "A", Distance: 0},
				{Critic: "B", Distance: 7},
			},
		},
		{
			name: "empty intersection yields zero distance in column order",
			matrix: matrixOf([]string{"C1", "C2", "C3"}, map[string]map[string]float64{
				"X": {"C1": 1, "C2": 5, "C3": 9},
			}),
			personal: personOf("Dana", map[string]float64{"Other": 4}),
			want: []CriticDistance{
				{Critic: "C1", Distance: 0},
				{Critic: "C2", Distance: 0},
				{Critic: "C3", Distance: 0},
			},
		},
		{
			name: "multiple titles accumulate before sqrt",
			matrix: matrixOf([]string{"A"}, map[string]map[string]float64{
				"X": {"A": 1},
				"Y": {"A": 5},
			}),
			personal: personOf("Dana", map[string]float64{"X": 4, "Y": 1}),
			// sqrt(3^2 + 4^2) = 5
			want: []CriticDistance{{Critic: "A", Distance: 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distances(tt.matrix, tt.personal)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i].Critic != tt.want[i].Critic {
					t.Errorf("[%d].Critic = %q, want %q", i, got[i].Critic, tt.want[i].Critic)
				}
				if math.Abs(got[i].Distance-tt.want[i].Distance) > 1e-9 {
					t.Errorf("[%d].Distance = %v, want %v", i, got[i].Distance, tt.want[i].Distance)
				}
			}
		})
	}
}

func TestClosestCritics(t *testing.T) {
	t.Parallel()

	matrix := matrixOf([]string{"A", "B", "C", "D"}, map[string]map[string]float64{
		"X": {"A": 3, "B": 4, "C": 5, "D": 1},
	})
	personal := personOf("Dana", map[string]float64{"X": 4})

	t.Run("returns top three with stable tie order", func(t *testing.T) {
		got := ClosestCritics(matrix, personal, 3)
		want := []string{"B", "A", "C"}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("[%d] = %q, want %q (A must precede C on tied distance)", i, got[i], want[i])
			}
		}
	})

	t.Run("fewer critics than requested uses all", func(t *testing.T) {
		small := matrixOf([]string{"A", "B"}, map[string]map[string]float64{
			"X": {"A": 3, "B": 4},
		})
		got := ClosestCritics(small, personal, 3)
		if len(got) != 2 {
			t.Fatalf("got %v, want both available critics", got)
		}
	})

	t.Run("never includes a critic absent from the matrix", func(t *testing.T) {
		got := ClosestCritics(matrix, personal, 10)
		if len(got) != 4 {
			t.Fatalf("got %d critics, want 4", len(got))
		}
		seen := map[string]bool{}
		for _, c := range got {
			seen[c] = true
		}
		for _, c := range []string{"A", "B", "C", "D"} {
			if !seen[c] {
				t.Errorf("missing critic %q", c)
			}
		}
	})

	t.Run("non-positive n falls back to default", func(t *testing.T) {
		got := ClosestCritics(matrix, personal, 0)
		if len(got) != DefaultCritics {
			t.Fatalf("got %d critics, want %d", len(got), DefaultCritics)
		}
	})
}
