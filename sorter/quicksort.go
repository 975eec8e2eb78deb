package sorter

import (
	"math/rand"

	"github.com/kabu1204/go-vector/types"
)

// RandomizedQuickSort partitions around a uniformly random pivot
// (Lomuto scheme) and recurses on both sides. Expected O(n log n)
// comparisons on any input, worst-case recursion depth O(n). Not stable.
type RandomizedQuickSort struct {
	// Rand returns a pseudo-random int in [low, high], both inclusive.
	// nil uses the shared math/rand source.
	Rand func(low, high int) int
}

func (q RandomizedQuickSort) Sort(data types.Slice, cmp types.Comparator) {
	if len(data) < 2 {
		return
	}
	next := q.Rand
	if next == nil {
		next = func(low, high int) int { return low + rand.Intn(high-low+1) }
	}
	quickSort(data, resolve(data, cmp), next, 0, len(data)-1)
}

func quickSort(data types.Slice, cmp types.Comparator, next func(int, int) int, low, high int) {
	if low >= high {
		return
	}
	p := next(low, high)
	data[p], data[high] = data[high], data[p]
	pivot := data[high]
	i := low - 1
	for j := low; j < high; j++ {
		if cmp(data[j], pivot) <= 0 {
			i++
			data[i], data[j] = data[j], data[i]
		}
	}
	// pivot lands at its final position i+1
	data[i+1], data[high] = data[high], data[i+1]
	quickSort(data, cmp, next, low, i)
	quickSort(data, cmp, next, i+2, high)
}
