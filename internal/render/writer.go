package render

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/stackqr/stackqr/internal/layers"
)

// LayerFilename returns the output name for layer index (0-based) out of
// total layers. Names are 1-based on disk, matching how people count
// physical sheets.
func LayerFilename(prefix string, index, total int) string {
	return fmt.Sprintf("%s%d_of_%d.png", prefix, index+1, total)
}

// WriteLayers rasterizes every mask in the set and writes one PNG per
// layer into dir. A failure on one file is recorded and the remaining
// layers are still written; the count of successfully written files is
// returned together with the joined per-file errors, if any.
func WriteLayers(ls layers.LayerSet, dir, prefix string, boxSize, border int) (written int, err error) {
	if mkErr := os.MkdirAll(dir, 0o750); mkErr != nil {
		return 0, &RenderError{Operation: "write", Err: mkErr}
	}

	n := ls.Layers()
	var errs []error
	for i, mask := range ls.Masks {
		path := filepath.Join(dir, LayerFilename(prefix, i, n))
		if wErr := writeLayer(mask, path, boxSize, border); wErr != nil {
			errs = append(errs, fmt.Errorf("layer %d: %w", i, wErr))
			continue
		}
		written++
	}
	return written, errors.Join(errs...)
}

func writeLayer(mask layers.Mask, path string, boxSize, border int) error {
	img, err := Rasterize(mask, boxSize, border)
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // G304: writing to a user-chosen output directory is the point
	if err != nil {
		return &RenderError{Operation: "write", Err: err}
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return &RenderError{Operation: "encode", Err: err}
	}
	if err := f.Close(); err != nil {
		return &RenderError{Operation: "write", Err: err}
	}
	return nil
}
