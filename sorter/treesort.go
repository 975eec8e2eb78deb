package sorter

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/kabu1204/go-vector/types"
)

// TreeSort inserts every element into a red-black tree keyed by the
// comparator and reads the tree back in order. Comparator-equal elements
// share a bucket in arrival order, so the result is stable. O(n log n)
// with tree-node overhead per element.
type TreeSort struct{}

func (TreeSort) Sort(data types.Slice, cmp types.Comparator) {
	if len(data) < 2 {
		return
	}
	c := resolve(data, cmp)
	mp := treemap.NewWith(utils.Comparator(c))
	for _, e := range data {
		if bucket, ok := mp.Get(e); ok {
			mp.Put(e, append(bucket.(types.Slice), e))
		} else {
			mp.Put(e, types.Slice{e})
		}
	}
	k := 0
	it := mp.Iterator()
	for it.Next() {
		for _, e := range it.Value().(types.Slice) {
			data[k] = e
			k++
		}
	}
}
