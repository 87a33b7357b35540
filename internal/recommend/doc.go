// ReelMatch - Critic-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend implements the critic-matching recommendation pipeline.
//
// # Pipeline
//
// The pipeline has two stages, both pure functions over in-memory data:
//
//  1. ClosestCritics ranks every critic by Euclidean distance between their
//     rating column and the person's ratings, computed only over titles both
//     sides have rated, and returns the closest few.
//  2. Recommend averages the selected critics' ratings per title, keeps
//     titles the person has not watched, joins them with the movie catalog,
//     and picks the highest-average title (with ties) per genre.
//
// # Missing Values
//
// Ratings are sparse. A (title, critic) pair with no rating is skipped, not
// zeroed: a skipped pair contributes nothing to a distance sum, and a title
// with no ratings among the selected critics has no average at all and is
// never recommended. Coercing absence to zero would silently change both
// distances and averages.
//
// # Determinism
//
// Same inputs produce identical outputs. Distance ties keep the critic CSV
// column order (stable sort), candidate output is ordered by title, and no
// stage keeps hidden state between calls.
package recommend
