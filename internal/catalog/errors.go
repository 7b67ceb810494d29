// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package catalog

import "errors"

// ErrStructural is the parent of every load-time invariant violation.
var ErrStructural = errors.New("catalog: structural error")

// Load-time invariant violations.
var (
	ErrEmptyCatalog      = structural("catalog is empty")
	ErrDimensionMismatch = structural("similarity matrix does not match catalog size")
	ErrNonFinite         = structural("similarity matrix contains a non-finite score")
	ErrAsymmetric        = structural("similarity matrix is not symmetric")
	ErrInvalidItem       = structural("invalid catalog item")
)

type structuralError struct {
	msg string
}

func structural(msg string) error {
	return &structuralError{msg: msg}
}

func (e *structuralError) Error() string { return "catalog: " + e.msg }

func (e *structuralError) Unwrap() error { return ErrStructural }
