package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackqr/stackqr/internal/geometry"
	"github.com/stackqr/stackqr/internal/symbol"
	"github.com/stackqr/stackqr/internal/testutil"
)

func countSet(ls LayerSet, row, col int) int {
	n := 0
	for _, mask := range ls.Masks {
		if mask[row][col] {
			n++
		}
	}
	return n
}

func TestDistributeInvariants(t *testing.T) {
	tests := []struct {
		name    string
		version symbol.Version
		n, k    int
	}{
		{"v1 n5 k3", 1, 5, 3},
		{"v2 n3 k2", 2, 3, 2},
		{"v7 n4 k4", 7, 4, 4},
		{"v13 n6 k2", 13, 6, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testutil.PatternMatrix(t, tt.version)
			ls, err := Distribute(m, tt.version, tt.n, tt.k, Options{Seed: 7})
			require.NoError(t, err)
			require.Len(t, ls.Masks, tt.n)
			require.Equal(t, m.Size(), ls.Size)

			cls := geometry.NewClassifier(m.Size(), tt.version)
			blackCount := tt.n - tt.k + 1
			for row := 0; row < m.Size(); row++ {
				for col := 0; col < m.Size(); col++ {
					got := countSet(ls, row, col)
					switch {
					case !m.At(row, col):
						assert.Zero(t, got, "white cell (%d,%d) must stay clear", row, col)
					case cls.Classify(row, col) == geometry.Structural:
						assert.Equal(t, tt.n, got, "structural cell (%d,%d) must be on all layers", row, col)
					default:
						assert.Equal(t, blackCount, got, "data cell (%d,%d) must be on exactly n-k+1 layers", row, col)
					}
				}
			}
		})
	}
}

func TestDistributeModuleCounts(t *testing.T) {
	m := testutil.SolidMatrix(t, 2)
	ls, err := Distribute(m, 2, 5, 3, Options{Seed: 1})
	require.NoError(t, err)

	size := m.Size()
	assert.Equal(t, size*size, ls.StructuralModules+ls.DataModules)
	assert.Positive(t, ls.StructuralModules)
	assert.Positive(t, ls.DataModules)
}

func TestDistributeSingleLayerIdentity(t *testing.T) {
	m := testutil.PatternMatrix(t, 1)
	ls, err := Distribute(m, 1, 1, 1, Options{Seed: 3})
	require.NoError(t, err)
	require.Len(t, ls.Masks, 1)

	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			assert.Equal(t, m.At(row, col), ls.Masks[0][row][col], "cell (%d,%d)", row, col)
		}
	}
}

func TestDistributeThresholdValidation(t *testing.T) {
	m := testutil.PatternMatrix(t, 1)

	_, err := Distribute(m, 1, 3, 5, Options{})
	require.ErrorIs(t, err, ErrInvalidThreshold)

	_, err = Distribute(m, 1, 4, 0, Options{})
	require.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestDistributeEmptyMatrix(t *testing.T) {
	m := testutil.MustMatrix(t, nil)
	_, err := Distribute(m, 1, 3, 2, Options{})
	require.ErrorIs(t, err, ErrEmptyMatrix)
}

func TestDistributeDeterministicForSeed(t *testing.T) {
	m := testutil.PatternMatrix(t, 2)
	a, err := Distribute(m, 2, 5, 3, Options{Seed: 42})
	require.NoError(t, err)
	b, err := Distribute(m, 2, 5, 3, Options{Seed: 42})
	require.NoError(t, err)
	assert.Equal(t, a.Masks, b.Masks)

	c, err := Distribute(m, 2, 5, 3, Options{Seed: 43})
	require.NoError(t, err)
	assert.NotEqual(t, a.Masks, c.Masks, "different seeds should differ somewhere")
}

func TestDistributeWorkerCountDoesNotChangeOutput(t *testing.T) {
	m := testutil.PatternMatrix(t, 3)
	serial, err := Distribute(m, 3, 5, 3, Options{Seed: 99, Workers: 1})
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 16, 1000} {
		parallel, err := Distribute(m, 3, 5, 3, Options{Seed: 99, Workers: workers})
		require.NoError(t, err)
		assert.Equal(t, serial.Masks, parallel.Masks, "workers=%d", workers)
	}
}

func TestDistributeApproxGeometryFlag(t *testing.T) {
	exact, err := Distribute(testutil.PatternMatrix(t, 13), 13, 3, 2, Options{Seed: 1})
	require.NoError(t, err)
	assert.False(t, exact.ApproxGeometry)

	approx, err := Distribute(testutil.PatternMatrix(t, 14), 14, 3, 2, Options{Seed: 1})
	require.NoError(t, err)
	assert.True(t, approx.ApproxGeometry)
}
