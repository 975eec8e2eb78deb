package sorter

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabu1204/go-vector/types"
)

func intCmp(a, b interface{}) int { return a.(int) - b.(int) }

func strategies() map[string]Sorter {
	return map[string]Sorter{
		"Default":             Default{},
		"RandomizedQuickSort": RandomizedQuickSort{},
		"MergeSortTopDown":    MergeSortTopDown{},
		"MergeSortBottomUp":   MergeSortBottomUp{},
		"TreeSort":            TreeSort{},
		"ParallelMergeSort":   ParallelMergeSort{Workers: 4},
	}
}

func TestSortConcrete(t *testing.T) {
	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			data := types.Slice{5, 3, 8, 1, 9, 2}
			s.Sort(data, nil)
			assert.Equal(t, types.Slice{1, 2, 3, 5, 8, 9}, data)
		})
	}
}

func TestSortEmptyAndSingle(t *testing.T) {
	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			empty := types.Slice{}
			s.Sort(empty, intCmp)
			assert.Len(t, empty, 0)

			one := types.Slice{42}
			s.Sort(one, nil)
			assert.Equal(t, types.Slice{42}, one)
		})
	}
}

func TestSortRandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{2, 3, 7, 64, 1000} {
				data := make(types.Slice, n)
				want := make(types.Slice, n)
				for i := range data {
					data[i] = rng.Intn(n / 2) // duplicates likely
					want[i] = data[i]
				}
				sort.Sort(&types.Array{Data: want, Cmp: intCmp})
				s.Sort(data, intCmp)
				require.Equal(t, want, data, "n=%d", n)
			}
		})
	}
}

func TestSortWithComparator(t *testing.T) {
	desc := func(a, b interface{}) int { return b.(int) - a.(int) }
	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			data := types.Slice{5, 3, 8, 1, 9, 2}
			s.Sort(data, desc)
			assert.Equal(t, types.Slice{9, 8, 5, 3, 2, 1}, data)
		})
	}
}

type record struct {
	key int
	seq int
}

func recordCmp(a, b interface{}) int { return a.(record).key - b.(record).key }

func TestStableStrategiesPreserveTies(t *testing.T) {
	stable := map[string]Sorter{
		"MergeSortTopDown":  MergeSortTopDown{},
		"MergeSortBottomUp": MergeSortBottomUp{},
		"TreeSort":          TreeSort{},
		"ParallelMergeSort": ParallelMergeSort{Workers: 2},
	}
	for name, s := range stable {
		t.Run(name, func(t *testing.T) {
			data := types.Slice{
				record{2, 0}, record{1, 1}, record{2, 2}, record{1, 3}, record{0, 4},
			}
			s.Sort(data, recordCmp)
			assert.Equal(t, types.Slice{
				record{0, 4}, record{1, 1}, record{1, 3}, record{2, 0}, record{2, 2},
			}, data)
		})
	}
}

func TestStableStrategiesIdempotent(t *testing.T) {
	for _, s := range []Sorter{MergeSortTopDown{}, MergeSortBottomUp{}} {
		data := types.Slice{record{1, 0}, record{1, 1}, record{2, 2}}
		s.Sort(data, recordCmp)
		assert.Equal(t, types.Slice{record{1, 0}, record{1, 1}, record{2, 2}}, data)
	}
}

func TestQuickSortSameMultisetUnderDuplicates(t *testing.T) {
	data := types.Slice{record{1, 0}, record{1, 1}, record{1, 2}}
	RandomizedQuickSort{}.Sort(data, recordCmp)
	seen := map[int]bool{}
	for _, e := range data {
		assert.Equal(t, 1, e.(record).key)
		seen[e.(record).seq] = true
	}
	assert.Len(t, seen, 3)
}

func TestQuickSortRandCapability(t *testing.T) {
	// worst-case pivot choice still sorts, and bounds are always valid
	q := RandomizedQuickSort{Rand: func(low, high int) int {
		require.LessOrEqual(t, low, high)
		return low
	}}
	data := types.Slice{4, 1, 3, 2, 5, 0}
	q.Sort(data, intCmp)
	assert.Equal(t, types.Slice{0, 1, 2, 3, 4, 5}, data)
}

func TestNaturalOrderFallback(t *testing.T) {
	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			data := types.Slice{"pear", "apple", "fig"}
			s.Sort(data, nil)
			assert.Equal(t, types.Slice{"apple", "fig", "pear"}, data)
		})
	}
}
