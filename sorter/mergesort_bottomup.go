package sorter

import (
	"github.com/kabu1204/go-vector/types"
)

// MergeSortBottomUp is the iterative merge sort: runs of size 1, 2, 4, ...
// are merged pairwise until one run covers the whole slice. A single
// full-length auxiliary buffer is reused across all merges. Stable: ties
// go to the left run.
type MergeSortBottomUp struct{}

func (MergeSortBottomUp) Sort(data types.Slice, cmp types.Comparator) {
	if len(data) < 2 {
		return
	}
	c := resolve(data, cmp)
	aux := make(types.Slice, len(data))
	n := len(data)
	for sz := 1; sz < n; sz *= 2 {
		// lo+sz >= n means no right run; that block is already sorted
		for lo := 0; lo+sz < n; lo += 2 * sz {
			mergeRuns(data, aux, c, lo, lo+sz-1, minInt(lo+2*sz-1, n-1))
		}
	}
}

// mergeRuns merges the sorted runs data[low..mid] and data[mid+1..high]
// through aux.
func mergeRuns(data, aux types.Slice, cmp types.Comparator, low, mid, high int) {
	copy(aux[low:high+1], data[low:high+1])
	l, r := low, mid+1
	for k := low; k <= high; k++ {
		switch {
		case l > mid:
			data[k] = aux[r]
			r++
		case r > high:
			data[k] = aux[l]
			l++
		case cmp(aux[l], aux[r]) <= 0:
			data[k] = aux[l]
			l++
		default:
			data[k] = aux[r]
			r++
		}
	}
}
