package layers

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/stackqr/stackqr/internal/geometry"
	"github.com/stackqr/stackqr/internal/symbol"
)

// Options controls randomness and parallelism of Distribute.
type Options struct {
	// Seed keys the per-cell subset draws. The same seed always yields the
	// same layer assignment regardless of worker count. Zero selects a
	// random seed.
	Seed uint64

	// Workers is the number of goroutines partitioning matrix rows.
	// Values below 2 run the distribution serially.
	Workers int
}

// Distribute assigns every black module of m to a subset of n layer masks.
// White cells stay false on every mask. Black structural cells are set on
// all masks. Black data cells are set on a uniformly random subset of
// exactly n-k+1 masks, drawn independently per cell, so that any k masks
// overlaid reproduce the full matrix.
func Distribute(m symbol.Matrix, version symbol.Version, n, k int, opts Options) (LayerSet, error) {
	if k < 1 || k > n {
		return LayerSet{}, fmt.Errorf("%w: k=%d, n=%d", ErrInvalidThreshold, k, n)
	}
	if m.Empty() {
		return LayerSet{}, ErrEmptyMatrix
	}

	size := m.Size()
	cls := geometry.NewClassifier(size, version)

	masks := make([]Mask, n)
	for i := range masks {
		masks[i] = NewMask(size)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	blackCount := n - k + 1
	d := &distributor{
		matrix:     m,
		cls:        cls,
		masks:      masks,
		seed:       seed,
		blackCount: blackCount,
	}

	workers := opts.Workers
	if workers > size {
		workers = size
	}
	if workers < 2 {
		d.rows(0, size)
	} else {
		d.parallel(workers, size)
	}

	return LayerSet{
		Masks:             masks,
		Size:              size,
		ApproxGeometry:    cls.Approximate(),
		StructuralModules: int(d.structural.Load()),
		DataModules:       int(d.data.Load()),
	}, nil
}

// distributor carries the shared read-only inputs of one Distribute call.
// Workers write disjoint rows of the masks, so no locking is needed.
type distributor struct {
	matrix     symbol.Matrix
	cls        *geometry.Classifier
	masks      []Mask
	seed       uint64
	blackCount int

	structural atomic.Int64
	data       atomic.Int64
}

func (d *distributor) parallel(workers, size int) {
	var wg sync.WaitGroup
	chunk := (size + workers - 1) / workers
	for lo := 0; lo < size; lo += chunk {
		hi := lo + chunk
		if hi > size {
			hi = size
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			d.rows(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// rows distributes the half-open row range [lo, hi). Each row gets its own
// PCG stream keyed by (seed, row), which keeps draws independent across
// cells and the overall output identical for any row partitioning.
func (d *distributor) rows(lo, hi int) {
	size := d.matrix.Size()
	n := len(d.masks)
	for row := lo; row < hi; row++ {
		rng := rand.New(rand.NewPCG(d.seed, uint64(row)))
		for col := 0; col < size; col++ {
			if !d.matrix.At(row, col) {
				continue
			}
			if d.cls.Classify(row, col) == geometry.Structural {
				d.structural.Add(1)
				for _, mask := range d.masks {
					mask[row][col] = true
				}
				continue
			}
			d.data.Add(1)
			for _, idx := range sampleIndexes(rng, n, d.blackCount) {
				d.masks[idx][row][col] = true
			}
		}
	}
}
