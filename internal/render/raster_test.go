package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackqr/stackqr/internal/layers"
)

func TestRasterizeDimensions(t *testing.T) {
	mask := layers.NewMask(21)
	img, err := Rasterize(mask, 10, 4)
	require.NoError(t, err)

	want := (21 + 2*4) * 10
	assert.Equal(t, want, img.Bounds().Dx())
	assert.Equal(t, want, img.Bounds().Dy())
}

func TestRasterizeCellPlacement(t *testing.T) {
	mask := layers.NewMask(4)
	mask[1][2] = true

	boxSize, border := 5, 2
	img, err := Rasterize(mask, boxSize, border)
	require.NoError(t, err)

	x0 := (border + 2) * boxSize
	y0 := (border + 1) * boxSize

	// Every pixel of the set cell's box is opaque black.
	for dy := 0; dy < boxSize; dy++ {
		for dx := 0; dx < boxSize; dx++ {
			got := img.NRGBAAt(x0+dx, y0+dy)
			require.Equal(t, color.NRGBA{A: 255}, got, "pixel (%d,%d)", x0+dx, y0+dy)
		}
	}

	// Neighbors and the quiet zone stay fully transparent.
	assert.Zero(t, img.NRGBAAt(x0-1, y0).A)
	assert.Zero(t, img.NRGBAAt(x0+boxSize, y0).A)
	assert.Zero(t, img.NRGBAAt(0, 0).A)
	assert.Zero(t, img.NRGBAAt(img.Bounds().Dx()-1, img.Bounds().Dy()-1).A)
}

func TestRasterizeZeroBorder(t *testing.T) {
	mask := layers.NewMask(2)
	mask[0][0] = true

	img, err := Rasterize(mask, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, img.Bounds().Dx())
	assert.Equal(t, color.NRGBA{A: 255}, img.NRGBAAt(0, 0))
	assert.Zero(t, img.NRGBAAt(5, 5).A)
}

func TestRasterizeInvalidParams(t *testing.T) {
	mask := layers.NewMask(2)

	_, err := Rasterize(mask, 0, 4)
	require.Error(t, err)
	var rerr *RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "rasterize", rerr.Operation)

	_, err = Rasterize(mask, 10, -1)
	require.Error(t, err)
}
