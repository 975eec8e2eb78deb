package types

type (
	Slice []interface{}

	Predicate func(interface{}) bool

	Consumer func(interface{})

	IntFunction func(interface{}) int

	// Comparator reports the order of e1 relative to e2: negative when
	// e1 < e2, zero when equal, positive when e1 > e2. It must be a
	// consistent total order and must not mutate the elements; violating
	// that yields an arbitrary ordering, not a crash.
	Comparator func(e1, e2 interface{}) int
)

// Array adapts a Slice plus a Comparator to sort.Interface.
type Array struct {
	Data Slice
	Cmp  Comparator
}
