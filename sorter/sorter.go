// Package sorter provides interchangeable in-place sorting strategies
// over types.Slice.
package sorter

import (
	"sort"

	"github.com/kabu1204/go-vector/types"
)

// Sorter reorders data in place into non-decreasing order under cmp.
// A nil cmp means the natural order of the element type (see
// types.Natural). Slices of length 0 or 1 are left untouched.
// Implementations are not required to be stable.
type Sorter interface {
	Sort(data types.Slice, cmp types.Comparator)
}

// Default delegates to the standard library sort. It is what a Vector
// uses when no explicit strategy is installed.
type Default struct{}

func (Default) Sort(data types.Slice, cmp types.Comparator) {
	if len(data) < 2 {
		return
	}
	sort.Sort(&types.Array{Data: data, Cmp: resolve(data, cmp)})
}

// resolve substitutes the natural order for a nil cmp. Callers guarantee
// len(data) >= 2.
func resolve(data types.Slice, cmp types.Comparator) types.Comparator {
	if cmp != nil {
		return cmp
	}
	return types.Natural(data[0])
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
