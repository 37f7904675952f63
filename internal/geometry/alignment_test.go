package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackqr/stackqr/internal/symbol"
)

func TestAlignmentCoordsTabulated(t *testing.T) {
	tests := []struct {
		version symbol.Version
		want    []int
	}{
		{1, nil},
		{2, []int{6, 18}},
		{3, []int{6, 22}},
		{6, []int{6, 34}},
		{7, []int{6, 22, 38}},
		{10, []int{6, 28, 50}},
		{13, []int{6, 34, 62}},
	}
	for _, tt := range tests {
		coords, approx := AlignmentCoords(tt.version)
		assert.False(t, approx, "version %d should be table-exact", tt.version)
		assert.Equal(t, tt.want, coords, "version %d", tt.version)
	}
}

func TestAlignmentCoordsApproximated(t *testing.T) {
	for _, v := range []symbol.Version{14, 20, 27, 40} {
		coords, approx := AlignmentCoords(v)
		require.True(t, approx, "version %d should be flagged approximate", v)

		wantCount := int(v)/7 + 2
		require.Len(t, coords, wantCount, "version %d", v)

		size := v.Size()
		assert.Equal(t, 6, coords[0], "version %d first coordinate", v)
		assert.Equal(t, size-7, coords[len(coords)-1], "version %d last coordinate", v)
		for i := 1; i < len(coords); i++ {
			assert.Greater(t, coords[i], coords[i-1], "version %d coordinates must ascend", v)
		}
	}
}

func TestAlignmentCoordsApproximationAnchors(t *testing.T) {
	// Version 14 happens to match the published table even through the
	// even-spacing estimate; a regression here means the spacing changed.
	coords, approx := AlignmentCoords(14)
	require.True(t, approx)
	assert.Equal(t, []int{6, 26, 46, 66}, coords)
}

func TestAlignmentCentersExcludeFinderFootprints(t *testing.T) {
	for v := symbol.Version(2); v <= 13; v++ {
		size := v.Size()
		centers, approx := alignmentCenters(v, size)
		require.False(t, approx)
		require.NotEmpty(t, centers, "version %d", v)

		for _, ct := range centers {
			assert.False(t, insideFinderFootprint(ct.row, ct.col, size),
				"version %d center (%d,%d) overlaps a finder", v, ct.row, ct.col)
		}
	}

	// Version 2: of the four coordinate pairs only (18,18) survives.
	centers, _ := alignmentCenters(2, symbol.Version(2).Size())
	require.Equal(t, []point{{18, 18}}, centers)
}

func TestAlignmentCentersVersion1(t *testing.T) {
	centers, approx := alignmentCenters(1, symbol.Version(1).Size())
	assert.Empty(t, centers)
	assert.False(t, approx)
}
