// Package testutil provides shared fixtures for layer distribution tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stackqr/stackqr/internal/symbol"
)

// MustMatrix wraps symbol.NewMatrix and fails the test on error.
func MustMatrix(t *testing.T, cells [][]bool) symbol.Matrix {
	t.Helper()
	m, err := symbol.NewMatrix(cells)
	require.NoError(t, err)
	return m
}

// PatternMatrix builds a correctly sized matrix for a version with a fixed
// pseudo-random black/white pattern. Not a valid QR code, but exercises the
// same cell mix without depending on the external encoder.
func PatternMatrix(t *testing.T, v symbol.Version) symbol.Matrix {
	t.Helper()
	size := v.Size()
	cells := make([][]bool, size)
	for r := range cells {
		cells[r] = make([]bool, size)
		for c := range cells[r] {
			cells[r][c] = (r*31+c*17)%3 != 0
		}
	}
	return MustMatrix(t, cells)
}

// SolidMatrix builds an all-black matrix of the version's size.
func SolidMatrix(t *testing.T, v symbol.Version) symbol.Matrix {
	t.Helper()
	size := v.Size()
	cells := make([][]bool, size)
	for r := range cells {
		cells[r] = make([]bool, size)
		for c := range cells[r] {
			cells[r][c] = true
		}
	}
	return MustMatrix(t, cells)
}
