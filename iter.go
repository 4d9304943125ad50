package strview

// Iterator walks a view's bytes front to back.
type Iterator struct {
	view View
	i    int
}

// Iter returns an iterator positioned before the first byte of the view.
func (v View) Iter() *Iterator {
	return &Iterator{view: v, i: -1}
}

// Next advances to the next byte. It returns false when the view is
// exhausted.
func (it *Iterator) Next() bool {
	if it.i+1 >= it.view.n {
		return false
	}
	it.i++
	return true
}

// Byte returns the byte at the current position. Only valid after a Next
// call that returned true.
func (it *Iterator) Byte() byte {
	return it.view.AtUnchecked(it.i)
}

// Index returns the index of the current position within the view.
func (it *Iterator) Index() int {
	return it.i
}

// ReverseIterator walks a view's bytes back to front.
type ReverseIterator struct {
	view View
	i    int
}

// ReverseIter returns an iterator positioned after the last byte of the
// view.
func (v View) ReverseIter() *ReverseIterator {
	return &ReverseIterator{view: v, i: v.n}
}

// Next advances to the previous byte. It returns false when the view is
// exhausted.
func (it *ReverseIterator) Next() bool {
	if it.i <= 0 {
		return false
	}
	it.i--
	return true
}

// Byte returns the byte at the current position. Only valid after a Next
// call that returned true.
func (it *ReverseIterator) Byte() byte {
	return it.view.AtUnchecked(it.i)
}

// Index returns the index of the current position within the view.
func (it *ReverseIterator) Index() int {
	return it.i
}
