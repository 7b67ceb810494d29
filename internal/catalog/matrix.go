// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package catalog

import (
	"fmt"
	"math"
)

// SymmetryTolerance is the largest |m[i][j] - m[j][i]| accepted at load.
const SymmetryTolerance = 1e-4

// Matrix is a dense N×N similarity matrix stored row-major.
type Matrix struct {
	n    int
	data []float32
}

// NewMatrix returns a zeroed n×n matrix.
func NewMatrix(n int) *Matrix {
	if n < 0 {
		n = 0
	}
	return &Matrix{n: n, data: make([]float32, n*n)}
}

// MatrixFromRows copies rows into a matrix. Every row must have len(rows) entries.
func MatrixFromRows(rows [][]float32) (*Matrix, error) {
	n := len(rows)
	m := NewMatrix(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d scores, want %d", ErrDimensionMismatch, i, len(row), n)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}
	return m, nil
}

// Size returns N.
func (m *Matrix) Size() int {
	if m == nil {
		return 0
	}
	return m.n
}

// At returns the score between i and j.
func (m *Matrix) At(i, j int) float64 {
	return float64(m.data[i*m.n+j])
}

// Set writes the score between i and j. Only builders call it, before the
// matrix is handed to New.
func (m *Matrix) Set(i, j int, v float32) {
	m.data[i*m.n+j] = v
}

// Row returns row i. The slice aliases the matrix and must not be modified.
func (m *Matrix) Row(i int) []float32 {
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
}

func (m *Matrix) validate() error {
	for i := 0; i < m.n; i++ {
		row := m.Row(i)
		for j, v := range row {
			f := float64(v)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("%w: [%d][%d] = %v", ErrNonFinite, i, j, v)
			}
			if j > i {
				if d := math.Abs(f - m.At(j, i)); d > SymmetryTolerance {
					return fmt.Errorf("%w: [%d][%d]=%v but [%d][%d]=%v", ErrAsymmetric, i, j, v, j, i, m.At(j, i))
				}
			}
		}
	}
	return nil
}
