package symbol

import (
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrEncodingTooLarge indicates that no supported symbol version can hold
// the input text.
var ErrEncodingTooLarge = errors.New("input too large for any supported symbol version")

// Symbol is the output of the external encoder: the bare module matrix
// (no quiet zone) plus the version the encoder selected. Level records the
// error correction level used; the layering core does not consume it but
// callers report it alongside the version.
type Symbol struct {
	Matrix  Matrix
	Version Version
	Level   string
}

// Encode runs the external QR encoder on text at the Low error correction
// level, letting it pick the minimal version that fits.
func Encode(text string) (Symbol, error) {
	qr, err := qrcode.New(text, qrcode.Low)
	if err != nil {
		if strings.Contains(err.Error(), "too long") {
			return Symbol{}, fmt.Errorf("encode: %w", ErrEncodingTooLarge)
		}
		return Symbol{}, fmt.Errorf("encode: %w", err)
	}

	// Bitmap() normally pads the symbol with the quiet zone; the layering
	// core works on bare modules and the rasterizer adds its own border.
	qr.DisableBorder = true

	m, err := NewMatrix(qr.Bitmap())
	if err != nil {
		return Symbol{}, fmt.Errorf("encode: %w", err)
	}

	v := Version(qr.VersionNumber)
	if !v.Valid() {
		return Symbol{}, fmt.Errorf("encode: encoder reported version %d outside [%d,%d]", v, MinVersion, MaxVersion)
	}
	if m.Size() != v.Size() {
		return Symbol{}, fmt.Errorf("encode: matrix size %d does not match version %d (want %d)", m.Size(), v, v.Size())
	}

	return Symbol{Matrix: m, Version: v, Level: "L"}, nil
}
