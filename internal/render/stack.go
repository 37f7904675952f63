package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
)

// SupportedImageExtensions lists the file extensions accepted when loading
// layer images for stacking.
var SupportedImageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// IsSupportedImage reports whether the path has a supported image extension.
func IsSupportedImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedImageExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// LoadImage opens and decodes a layer image file.
func LoadImage(path string) (image.Image, error) {
	if path == "" {
		return nil, &RenderError{Operation: "load", Err: errors.New("empty path")}
	}
	if !IsSupportedImage(path) {
		return nil, &RenderError{Operation: "load", Err: fmt.Errorf("unsupported format: %s", filepath.Ext(path))}
	}

	f, err := os.Open(path) //nolint:gosec // G304: reading a user-provided layer file is expected
	if err != nil {
		return nil, &RenderError{Operation: "load", Err: err}
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &RenderError{Operation: "decode", Err: err}
	}
	return img, nil
}

// Flatten composites layer images in order over a white canvas sized to the
// largest input, simulating a stack of printed transparencies.
func Flatten(imgs []image.Image) (image.Image, error) {
	if len(imgs) == 0 {
		return nil, &RenderError{Operation: "flatten", Err: errors.New("no layers to stack")}
	}

	var w, h int
	for _, img := range imgs {
		b := img.Bounds()
		if b.Dx() > w {
			w = b.Dx()
		}
		if b.Dy() > h {
			h = b.Dy()
		}
	}

	canvas := imaging.New(w, h, color.White)
	for _, img := range imgs {
		canvas = imaging.Overlay(canvas, img, image.Point{}, 1.0)
	}
	return canvas, nil
}

// WriteImage saves an image as PNG, creating parent directories as needed.
func WriteImage(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return &RenderError{Operation: "write", Err: err}
	}
	if err := imaging.Save(img, path); err != nil {
		return &RenderError{Operation: "write", Err: err}
	}
	return nil
}
