package layers

import "math/rand/v2"

// sampleIndexes draws count distinct indexes from [0, n) uniformly over all
// C(n, count) subsets, via a partial Fisher-Yates shuffle: only the first
// count slots need settling.
func sampleIndexes(rng *rand.Rand, n, count int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:count]
}
