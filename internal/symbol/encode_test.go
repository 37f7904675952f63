package symbol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	sym, err := Encode("https://example.com")
	require.NoError(t, err)

	assert.True(t, sym.Version.Valid())
	assert.Equal(t, sym.Version.Size(), sym.Matrix.Size())
	assert.Equal(t, "L", sym.Level)

	// A real symbol always has black modules (the finder patterns alone
	// guarantee that).
	black := 0
	for r := 0; r < sym.Matrix.Size(); r++ {
		for c := 0; c < sym.Matrix.Size(); c++ {
			if sym.Matrix.At(r, c) {
				black++
			}
		}
	}
	assert.Positive(t, black)

	// Finder pattern corner modules are black in any QR code.
	assert.True(t, sym.Matrix.At(0, 0))
	assert.True(t, sym.Matrix.At(0, sym.Matrix.Size()-1))
	assert.True(t, sym.Matrix.At(sym.Matrix.Size()-1, 0))
}

func TestEncodePicksMinimalVersionOrdering(t *testing.T) {
	short, err := Encode("hi")
	require.NoError(t, err)
	long, err := Encode(strings.Repeat("stackqr ", 40))
	require.NoError(t, err)
	assert.LessOrEqual(t, short.Version, long.Version)
	assert.Greater(t, long.Version, Version(1))
}

func TestEncodeTooLarge(t *testing.T) {
	// Far beyond the byte-mode capacity of version 40.
	_, err := Encode(strings.Repeat("x", 8000))
	require.ErrorIs(t, err, ErrEncodingTooLarge)
}

func TestEncodeDeterministic(t *testing.T) {
	a, err := Encode("deterministic")
	require.NoError(t, err)
	b, err := Encode("deterministic")
	require.NoError(t, err)

	require.Equal(t, a.Version, b.Version)
	for r := 0; r < a.Matrix.Size(); r++ {
		for c := 0; c < a.Matrix.Size(); c++ {
			require.Equal(t, a.Matrix.At(r, c), b.Matrix.At(r, c), "cell (%d,%d)", r, c)
		}
	}
}
