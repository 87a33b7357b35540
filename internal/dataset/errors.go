// ReelMatch - Critic-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying dataset failures with errors.Is.
var (
	// ErrMissingColumn indicates a required column is absent from a dataset header.
	ErrMissingColumn = errors.New("required column missing")

	// ErrNotTabular indicates a file could not be parsed as CSV at all.
	ErrNotTabular = errors.New("dataset is not valid tabular data")

	// ErrBadRating indicates a non-blank rating cell that is not numeric.
	ErrBadRating = errors.New("rating is not numeric")
)

// Error reports a failure loading one of the three input datasets.
// It always names the dataset and file path at fault, and the offending
// column when one is known, so a user can fix the right file.
type Error struct {
	// Dataset is the logical dataset name: "movies", "critics", or "personal".
	Dataset string

	// Path is the resolved file path.
	Path string

	// Column is the offending column name, empty for file-level failures.
	Column string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s dataset %s: column %q: %v", e.Dataset, e.Path, e.Column, e.Err)
	}
	return fmt.Sprintf("%s dataset %s: %v", e.Dataset, e.Path, e.Err)
}

// Unwrap returns the underlying cause for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// newError builds a file-level dataset error.
func newError(dataset, path string, err error) *Error {
	return &Error{Dataset: dataset, Path: path, Err: err}
}

// newColumnError builds a column-level dataset error.
func newColumnError(dataset, path, column string, err error) *Error {
	return &Error{Dataset: dataset, Path: path, Column: column, Err: err}
}
