package symbol

import (
	"errors"
	"fmt"
)

// Version identifies a QR symbol version, which fixes the structural layout
// of the module matrix (size, alignment pattern positions, presence of
// version information blocks).
type Version int

const (
	MinVersion Version = 1
	MaxVersion Version = 40
)

// Valid reports whether v is a defined symbol version.
func (v Version) Valid() bool {
	return v >= MinVersion && v <= MaxVersion
}

// Size returns the module matrix side length for the version (4v + 17).
func (v Version) Size() int {
	return 4*int(v) + 17
}

// Matrix is an immutable square grid of modules; true is a black module.
type Matrix struct {
	cells [][]bool
	size  int
}

// ErrNotSquare is returned by NewMatrix for ragged or non-square input.
var ErrNotSquare = errors.New("module matrix is not square")

// NewMatrix wraps a row-major bool grid. The grid is not copied; callers
// must not mutate it afterwards.
func NewMatrix(cells [][]bool) (Matrix, error) {
	size := len(cells)
	for i, row := range cells {
		if len(row) != size {
			return Matrix{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), size)
		}
	}
	return Matrix{cells: cells, size: size}, nil
}

// Size returns the side length of the matrix.
func (m Matrix) Size() int { return m.size }

// Empty reports whether the matrix has no modules.
func (m Matrix) Empty() bool { return m.size == 0 }

// At returns the module at (row, col); true is black.
func (m Matrix) At(row, col int) bool { return m.cells[row][col] }
