package sorter

import (
	"github.com/kabu1204/go-vector/types"
)

// MergeSortTopDown is the recursive merge sort. Every merge copies the
// two sorted halves into freshly allocated temporaries before merging
// them back, trading allocation volume for simplicity. Stable: ties go
// to the left half.
type MergeSortTopDown struct{}

func (MergeSortTopDown) Sort(data types.Slice, cmp types.Comparator) {
	if len(data) < 2 {
		return
	}
	mergeSortTopDown(data, resolve(data, cmp), 0, len(data)-1)
}

func mergeSortTopDown(data types.Slice, cmp types.Comparator, low, high int) {
	if low >= high {
		return
	}
	mid := low + (high-low)/2
	mergeSortTopDown(data, cmp, low, mid)
	mergeSortTopDown(data, cmp, mid+1, high)
	mergeHalves(data, cmp, low, mid, high)
}

func mergeHalves(data types.Slice, cmp types.Comparator, low, mid, high int) {
	left := make(types.Slice, mid-low+1)
	right := make(types.Slice, high-mid)
	copy(left, data[low:mid+1])
	copy(right, data[mid+1:high+1])
	l, r := 0, 0
	for k := low; k <= high; k++ {
		switch {
		case l == len(left):
			data[k] = right[r]
			r++
		case r == len(right):
			data[k] = left[l]
			l++
		case cmp(left[l], right[r]) <= 0:
			data[k] = left[l]
			l++
		default:
			data[k] = right[r]
			r++
		}
	}
}
