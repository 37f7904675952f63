package geometry

import (
	"errors"
	"math"

	"github.com/stackqr/stackqr/internal/symbol"
)

// ErrApproximateGeometry signals that alignment pattern centers were
// estimated rather than taken from the standard's table. Non-fatal: layer
// generation continues, callers may log it.
var ErrApproximateGeometry = errors.New("alignment pattern centers are approximated for this version")

// alignmentCoords holds the per-version alignment pattern center
// coordinates from the symbology standard, indexed by version. Centers are
// the cross product of the coordinate list with itself, minus entries
// falling inside finder pattern footprints. Version 1 has no alignment
// patterns.
var alignmentCoords = [...][]int{
	1:  nil,
	2:  {6, 18},
	3:  {6, 22},
	4:  {6, 26},
	5:  {6, 30},
	6:  {6, 34},
	7:  {6, 22, 38},
	8:  {6, 24, 42},
	9:  {6, 26, 46},
	10: {6, 28, 50},
	11: {6, 30, 54},
	12: {6, 32, 58},
	13: {6, 34, 62},
}

// maxTabulatedVersion is the last version with a table entry above.
const maxTabulatedVersion = symbol.Version(len(alignmentCoords) - 1)

// AlignmentCoords returns the alignment pattern center coordinates for a
// version, and whether they were approximated. Versions up to 13 come from
// the standard's table; beyond that the span [6, size-7] is divided evenly
// into the standard's expected coordinate count, which is not guaranteed
// bit-exact to the published table.
func AlignmentCoords(version symbol.Version) (coords []int, approximate bool) {
	if version < 2 {
		return nil, false
	}
	if version <= maxTabulatedVersion {
		return alignmentCoords[version], false
	}

	size := version.Size()
	count := int(version)/7 + 2
	step := float64(size-13) / float64(count-1)
	coords = make([]int, count)
	for i := range coords {
		coords[i] = 6 + int(math.Round(float64(i)*step))
	}
	return coords, true
}

// alignmentCenters expands the coordinate list into (row, col) center
// pairs, dropping centers inside finder pattern footprints.
func alignmentCenters(version symbol.Version, size int) (centers []point, approximate bool) {
	coords, approximate := AlignmentCoords(version)
	for _, r := range coords {
		for _, c := range coords {
			if insideFinderFootprint(r, c, size) {
				continue
			}
			centers = append(centers, point{r, c})
		}
	}
	return centers, approximate
}

// insideFinderFootprint reports whether a candidate alignment center lands
// in the area claimed by a finder pattern plus its separator.
func insideFinderFootprint(row, col, size int) bool {
	return (row < 9 && col < 9) ||
		(row < 9 && col > size-10) ||
		(row > size-10 && col < 9)
}
