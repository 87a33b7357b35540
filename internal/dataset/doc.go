// ReelMatch - Critic-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package dataset loads the three CSV inputs the recommender works from: the
// movie catalog, the critic rating matrix, and one person's ratings.
//
// # Input Schemas
//
// Movie catalog (extra columns are ignored):
//
//	Title,Genre1,Year,Runtime
//	"The Example",Drama,1999,120 min
//
// Critic ratings: a Title column plus one column per critic. Empty cells mean
// the critic has not rated that movie.
//
//	Title,Anna,Bob,Carol
//	"The Example",7,,8.5
//
// Personal ratings: a Title column plus exactly one column whose header is the
// person's name.
//
//	Title,Dana
//	"The Example",6
//
// # Missing Values
//
// A rating is either present or absent; absence is modeled by map membership,
// never by a zero value. Downstream distance and average computations depend
// on this tri-state distinction.
//
// # Duplicate Titles
//
// If a dataset repeats a title, the last occurrence wins. Loaders log a
// warning but do not fail.
package dataset
