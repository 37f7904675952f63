// Package render turns layer masks into PNG files and stacks layer images
// back into a single preview. Mask cells render as opaque black squares on
// a transparent canvas so that physically overlaying printed layers darkens
// exactly the union of their masks.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/stackqr/stackqr/internal/layers"
)

// RenderError wraps a failure in one render operation.
type RenderError struct {
	Operation string
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error in %s: %v", e.Operation, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

var opaqueBlack = image.NewUniform(color.NRGBA{A: 255})

// Rasterize draws a layer mask onto a transparent canvas. Each set cell
// becomes a boxSize x boxSize opaque black square offset by the quiet-zone
// border (in modules); unset cells stay fully transparent. The output is
// square with side (size + 2*border) * boxSize pixels.
func Rasterize(mask layers.Mask, boxSize, border int) (*image.NRGBA, error) {
	if boxSize < 1 {
		return nil, &RenderError{Operation: "rasterize", Err: fmt.Errorf("box size %d, want >= 1", boxSize)}
	}
	if border < 0 {
		return nil, &RenderError{Operation: "rasterize", Err: fmt.Errorf("border %d, want >= 0", border)}
	}

	size := len(mask)
	dim := (size + 2*border) * boxSize
	canvas := imaging.New(dim, dim, color.Transparent)

	for r, row := range mask {
		for c, set := range row {
			if !set {
				continue
			}
			x := (border + c) * boxSize
			y := (border + r) * boxSize
			rect := image.Rect(x, y, x+boxSize, y+boxSize)
			draw.Draw(canvas, rect, opaqueBlack, image.Point{}, draw.Src)
		}
	}
	return canvas, nil
}
