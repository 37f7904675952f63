package layers

import (
	"fmt"

	"github.com/stackqr/stackqr/internal/symbol"
)

// Reconstruct overlays the selected layers: a cell is black if any chosen
// mask has it set. This models physically stacking the printed layers.
func Reconstruct(ls LayerSet, indices []int) Mask {
	out := NewMask(ls.Size)
	for _, i := range indices {
		for r, row := range ls.Masks[i] {
			for c, v := range row {
				if v {
					out[r][c] = true
				}
			}
		}
	}
	return out
}

// Verify checks that every k-subset of layers reconstructs the source
// matrix exactly: all black modules revealed, no white module darkened.
// The check is exhaustive over all C(n, k) subsets.
func Verify(ls LayerSet, m symbol.Matrix, k int) error {
	n := ls.Layers()
	if k < 1 || k > n {
		return fmt.Errorf("%w: k=%d, n=%d", ErrInvalidThreshold, k, n)
	}
	var verr error
	forEachSubset(n, k, func(indices []int) bool {
		got := Reconstruct(ls, indices)
		for r := 0; r < ls.Size; r++ {
			for c := 0; c < ls.Size; c++ {
				if got[r][c] != m.At(r, c) {
					verr = fmt.Errorf("layer subset %v: cell (%d,%d) reconstructs %t, want %t",
						indices, r, c, got[r][c], m.At(r, c))
					return false
				}
			}
		}
		return true
	})
	return verr
}

// forEachSubset calls fn with every k-combination of [0, n) in
// lexicographic order, stopping early if fn returns false. The slice passed
// to fn is reused between calls.
func forEachSubset(n, k int, fn func([]int) bool) {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return
		}
		// Advance to the next combination.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
