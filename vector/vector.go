// Package vector implements a growable array whose sort order is
// produced by a pluggable sorter.Sorter strategy.
package vector

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/cornelk/hashmap"

	"github.com/kabu1204/go-vector/optional"
	"github.com/kabu1204/go-vector/sorter"
	"github.com/kabu1204/go-vector/types"
)

const (
	defaultCapacity = 10
	growth          = 10
)

// ErrIndexOutOfRange reports element access outside [0, Count).
var ErrIndexOutOfRange = errors.New("index out of range")

// Vector owns a contiguous buffer of which the first Count slots are
// live. Build one with New, NewDefault or Of; the zero value works but
// starts with no capacity. Not safe for concurrent use.
type Vector struct {
	// Sorter is the strategy Sort delegates to. nil means
	// sorter.Default; it may be reassigned at any time before Sort.
	Sorter sorter.Sorter

	data  types.Slice
	count int
}

// New returns an empty vector with the given initial capacity (>= 0).
func New(capacity int) *Vector {
	return &Vector{data: make(types.Slice, capacity)}
}

// NewDefault returns an empty vector with capacity 10.
func NewDefault() *Vector {
	return New(defaultCapacity)
}

// Of returns a vector holding elems in order.
func Of(elems ...interface{}) *Vector {
	v := New(len(elems))
	for _, e := range elems {
		v.Add(e)
	}
	return v
}

func (v *Vector) Count() int    { return v.count }
func (v *Vector) Capacity() int { return len(v.data) }

func (v *Vector) Get(i int) (interface{}, error) {
	if i < 0 || i >= v.count {
		return nil, fmt.Errorf("vector: get %d with count %d: %w", i, v.count, ErrIndexOutOfRange)
	}
	return v.data[i], nil
}

// Set replaces the element at i in place; it never grows the vector.
func (v *Vector) Set(i int, e interface{}) error {
	if i < 0 || i >= v.count {
		return fmt.Errorf("vector: set %d with count %d: %w", i, v.count, ErrIndexOutOfRange)
	}
	v.data[i] = e
	return nil
}

// Add appends e. A full buffer grows by a fixed 10 slots (copying the
// live elements), so a long append sequence reallocates every 10th call.
func (v *Vector) Add(e interface{}) {
	if v.count == len(v.data) {
		grown := make(types.Slice, len(v.data)+growth)
		copy(grown, v.data[:v.count])
		v.data = grown
	}
	v.data[v.count] = e
	v.count++
}

// IndexOf returns the position of the first element equal to e by value,
// or -1 when absent.
func (v *Vector) IndexOf(e interface{}) int {
	for i := 0; i < v.count; i++ {
		if reflect.DeepEqual(v.data[i], e) {
			return i
		}
	}
	return -1
}

// Sort orders the elements by their natural order (see types.Natural).
// The buffer is first trimmed to exactly Count, so Capacity == Count
// once Sort returns; a later Add grows it again.
func (v *Vector) Sort() {
	v.SortWith(nil)
}

// SortWith orders the elements by cmp, nil meaning natural order. The
// trim described on Sort applies here too.
func (v *Vector) SortWith(cmp types.Comparator) {
	v.data = v.data[:v.count:v.count]
	v.active().Sort(v.data, cmp)
}

func (v *Vector) active() sorter.Sorter {
	if v.Sorter != nil {
		return v.Sorter
	}
	return sorter.Default{}
}

// ForEach calls f on every live element in index order.
func (v *Vector) ForEach(f types.Consumer) {
	live := v.data[:v.count]
	it := live.Iterator()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		f(*e)
	}
}

// Find returns the first element satisfying p, or optional.None.
func (v *Vector) Find(p types.Predicate) optional.Optional {
	live := v.data[:v.count]
	it := live.Iterator()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		if p(*e) {
			return optional.Some{Value: *e}
		}
	}
	return optional.None{}
}

// Distinct drops duplicates in place, keeping the first occurrence of
// each. hash must map equal elements to the same int.
func (v *Vector) Distinct(hash types.IntFunction) {
	seen := &hashmap.HashMap{}
	w := 0
	for i := 0; i < v.count; i++ {
		if _, exist := seen.GetOrInsert(hash(v.data[i]), struct{}{}); !exist {
			v.data[w] = v.data[i]
			w++
		}
	}
	for i := w; i < v.count; i++ {
		v.data[i] = nil
	}
	v.count = w
}

// ToSlice returns a copy of the live elements.
func (v *Vector) ToSlice() types.Slice {
	return v.data.Clone(v.count)
}
