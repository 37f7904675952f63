// Package layers splits a QR module matrix into n boolean layer masks such
// that stacking any k of them restores every black module. Structural
// modules (per the geometry package) appear on all layers; each black data
// module appears on exactly n-k+1 layers chosen uniformly at random, the
// minimal count for which every k-sized draw of layers still hits at least
// one carrier.
package layers

import "errors"

var (
	// ErrInvalidThreshold is returned when k is outside [1, n].
	ErrInvalidThreshold = errors.New("required layer count must be between 1 and the total layer count")

	// ErrEmptyMatrix is returned for a zero-size module matrix.
	ErrEmptyMatrix = errors.New("module matrix is empty")
)

// Mask is a square boolean grid; true marks a cell drawn black on a layer.
type Mask [][]bool

// NewMask returns an all-false mask of the given side length.
func NewMask(size int) Mask {
	m := make(Mask, size)
	for i := range m {
		m[i] = make([]bool, size)
	}
	return m
}

// LayerSet is the output of Distribute: one mask per layer, all the same
// size as the source matrix.
type LayerSet struct {
	Masks []Mask

	// Size is the module matrix side length shared by all masks.
	Size int

	// ApproxGeometry is set when structural classification relied on
	// estimated alignment pattern centers (geometry.ErrApproximateGeometry).
	ApproxGeometry bool

	// StructuralModules and DataModules count the black modules seen in
	// each region class during distribution.
	StructuralModules int
	DataModules       int
}

// Layers returns the number of layers in the set.
func (ls LayerSet) Layers() int { return len(ls.Masks) }
