package arenalist

// The element list is a circular doubly linked list threaded through arena
// slots. There is no sentinel: head is nilIndex when the list is empty, and
// a single element links to itself.

// tail returns the last element's slot, or nilIndex when empty.
func (a *arena[E]) tail() int {
	if a.head < 0 {
		return nilIndex
	}
	return a.nodes[a.head].prev
}

// nodeAt returns the slot holding the i-th element, walking from whichever
// end of the cycle is closer. i may equal size, in which case the walk wraps
// around to head. The caller checks that i is in [0, size].
func (a *arena[E]) nodeAt(i int) int {
	if a.size == 0 {
		return nilIndex
	}
	pos := a.head
	if i <= a.size/2 {
		for ; i > 0; i-- {
			pos = a.nodes[pos].next
		}
		return pos
	}
	for i = a.size - i; i > 0; i-- {
		pos = a.nodes[pos].prev
	}
	return pos
}

// link allocates e and, if the list is empty, makes it a self-referencing
// singleton. It reports whether the caller still has to splice the slot in.
func (a *arena[E]) link(pos int, e E) (int, bool) {
	i := a.allocate(e)
	if pos < 0 {
		a.nodes[i].prev = i
		a.nodes[i].next = i
		a.head = i
		return i, false
	}
	return i, true
}

// insertBefore links e immediately before pos and returns its slot. When
// pos is head the new element becomes head.
func (a *arena[E]) insertBefore(pos int, e E) int {
	i, splice := a.link(pos, e)
	if !splice {
		return i
	}
	prev := a.nodes[pos].prev
	a.nodes[i].prev = prev
	a.nodes[i].next = pos
	a.nodes[prev].next = i
	a.nodes[pos].prev = i
	if pos == a.head {
		a.head = i
	}
	return i
}

// insertAfter links e immediately after pos and returns its slot.
func (a *arena[E]) insertAfter(pos int, e E) int {
	i, splice := a.link(pos, e)
	if !splice {
		return i
	}
	next := a.nodes[pos].next
	a.nodes[i].prev = pos
	a.nodes[i].next = next
	a.nodes[next].prev = i
	a.nodes[pos].next = i
	return i
}

// unlink removes pos from the list and recycles its slot. It returns the
// slot that now occupies pos's logical position, or nilIndex if the list
// became empty.
func (a *arena[E]) unlink(pos int) int {
	next := a.nodes[pos].next
	if next == pos {
		a.head = nilIndex
		a.release(pos)
		return nilIndex
	}
	prev := a.nodes[pos].prev
	a.nodes[prev].next = next
	a.nodes[next].prev = prev
	if pos == a.head {
		a.head = next
	}
	a.release(pos)
	return next
}

// findForward scans from start towards stop following next links and
// returns the first slot whose element matches. start is inspected; stop is
// not, unless stop == start, which scans the whole cycle once.
func (a *arena[E]) findForward(start, stop int, match func(E) bool) int {
	if start < 0 {
		return nilIndex
	}
	pos := start
	for {
		if match(a.nodes[pos].elem) {
			return pos
		}
		pos = a.nodes[pos].next
		if pos == stop {
			return nilIndex
		}
	}
}

// findBackward is findForward following prev links.
func (a *arena[E]) findBackward(start, stop int, match func(E) bool) int {
	if start < 0 {
		return nilIndex
	}
	pos := start
	for {
		if match(a.nodes[pos].elem) {
			return pos
		}
		pos = a.nodes[pos].prev
		if pos == stop {
			return nilIndex
		}
	}
}

// indexOf returns the logical index of the first element matching, and
// its slot.
func (a *arena[E]) indexOf(match func(E) bool) (int, int) {
	pos := a.head
	for i := 0; i < a.size; i++ {
		if match(a.nodes[pos].elem) {
			return i, pos
		}
		pos = a.nodes[pos].next
	}
	return -1, nilIndex
}

// lastIndexOf is indexOf scanning from the tail.
func (a *arena[E]) lastIndexOf(match func(E) bool) (int, int) {
	pos := a.tail()
	for i := a.size - 1; i >= 0; i-- {
		if match(a.nodes[pos].elem) {
			return i, pos
		}
		pos = a.nodes[pos].prev
	}
	return -1, nilIndex
}
