package types

type Iterator interface {
	hasNext() bool
	Next() (*interface{}, bool)
	Len() int
}

type sliceIterator struct {
	index int
	slice *Slice
}

func (s *Slice) Iterator() *sliceIterator {
	return &sliceIterator{
		index: -1,
		slice: s,
	}
}

func (it *sliceIterator) hasNext() bool {
	return it.index < len(*it.slice)-1
}

func (it *sliceIterator) Next() (*interface{}, bool) {
	if it.hasNext() {
		it.index++
		return &((*it.slice)[it.index]), true
	}
	return nil, false
}

func (it *sliceIterator) Len() int {
	return len(*it.slice)
}

// Index reports the position of the element most recently returned by
// Next, -1 before the first call.
func (it *sliceIterator) Index() int {
	return it.index
}
