// Package geometry decides, for each cell of a QR module matrix, whether
// the cell belongs to the symbol's fixed structure (finder, timing,
// alignment, format and version information) or carries data/error
// correction payload. Classification is a pure function of
// (row, col, size, version); structural cells must stay intact on every
// generated layer for scanners to locate the symbol.
package geometry

import "github.com/stackqr/stackqr/internal/symbol"

// RegionClass tags a cell as fixed symbol structure or distributable data.
type RegionClass int

const (
	Data RegionClass = iota
	Structural
)

func (rc RegionClass) String() string {
	if rc == Structural {
		return "structural"
	}
	return "data"
}

// point is a (row, col) cell coordinate.
type point struct {
	row, col int
}

// Classifier answers region queries for one (size, version) layout.
// Alignment centers are precomputed once; Classify itself is integer range
// tests only.
type Classifier struct {
	size    int
	version symbol.Version
	centers []point
	approx  bool
}

// NewClassifier builds a classifier for a matrix of the given side length
// and symbol version.
func NewClassifier(size int, version symbol.Version) *Classifier {
	centers, approx := alignmentCenters(version, size)
	return &Classifier{size: size, version: version, centers: centers, approx: approx}
}

// Approximate reports whether the alignment centers used by this
// classifier were estimated rather than table-exact (versions beyond the
// tabulated range). See ErrApproximateGeometry.
func (c *Classifier) Approximate() bool { return c.approx }

// Classify returns the region class of the cell at (row, col). First match
// wins; cells matching no structural rule are Data.
func (c *Classifier) Classify(row, col int) RegionClass {
	size := c.size

	// Finder patterns with separators: 8x8 blocks at three corners.
	if (row < 8 && col < 8) ||
		(row < 8 && col >= size-8) ||
		(row >= size-8 && col < 8) {
		return Structural
	}

	// Timing patterns: row 6 and column 6 between the finder blocks.
	if (row == 6 && col >= 8 && col < size-8) ||
		(col == 6 && row >= 8 && row < size-8) {
		return Structural
	}

	// Alignment patterns: 5x5 footprint around each center.
	for _, ct := range c.centers {
		if chebyshev(row, col, ct.row, ct.col) <= 2 {
			return Structural
		}
	}

	// Format information: strips along row 8 and column 8 next to the
	// top-left finder (skipping the timing intersection), mirrored next to
	// the top-right and bottom-left finders.
	if row == 8 && ((col <= 8 && col != 6) || col >= size-8) {
		return Structural
	}
	if col == 8 && ((row <= 7 && row != 6) || row >= size-8) {
		return Structural
	}

	// Version information: two 3x6 blocks, present from version 7 up.
	if c.version >= 7 {
		if row < 6 && col >= size-11 && col < size-8 {
			return Structural
		}
		if col < 6 && row >= size-11 && row < size-8 {
			return Structural
		}
	}

	return Data
}

// Classify is the one-shot form of Classifier.Classify for callers that do
// not reuse the precomputed layout.
func Classify(row, col, size int, version symbol.Version) RegionClass {
	return NewClassifier(size, version).Classify(row, col)
}

// chebyshev returns the Chebyshev distance between two cells.
func chebyshev(r1, c1, r2, c2 int) int {
	dr := absInt(r1 - r2)
	dc := absInt(c1 - c2)
	if dr > dc {
		return dr
	}
	return dc
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
