package sorter

import (
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/kabu1204/go-vector/types"
)

// ParallelMergeSort runs the bottom-up merge passes on a goroutine pool.
// Within one pass the merged blocks are disjoint, so they proceed
// concurrently over a shared auxiliary buffer; a barrier separates the
// passes. The comparator must be safe for concurrent calls (any pure
// comparator is). Output is identical to MergeSortBottomUp.
type ParallelMergeSort struct {
	// Workers caps the pool size. Values < 1 fall back to 1.
	Workers int
}

func (p ParallelMergeSort) Sort(data types.Slice, cmp types.Comparator) {
	if len(data) < 2 {
		return
	}
	c := resolve(data, cmp)
	pool, err := ants.NewPool(maxInt(p.Workers, 1))
	if err != nil {
		MergeSortBottomUp{}.Sort(data, c)
		return
	}
	defer pool.Release()

	n := len(data)
	aux := make(types.Slice, n)
	var wg sync.WaitGroup
	for sz := 1; sz < n; sz *= 2 {
		for lo := 0; lo+sz < n; lo += 2 * sz {
			low, mid, high := lo, lo+sz-1, minInt(lo+2*sz-1, n-1)
			wg.Add(1)
			task := func() {
				mergeRuns(data, aux, c, low, mid, high)
				wg.Done()
			}
			if pool.Submit(task) != nil {
				task()
			}
		}
		wg.Wait()
	}
}
