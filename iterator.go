package arenalist

import (
	"errors"
	"iter"
)

// Iterator is a bidirectional cursor over a List. It sits between two
// elements: Next returns the one after the cursor and Previous the one
// before it.
//
// An Iterator is fail-fast. Once its list is structurally modified by
// anything other than the iterator's own Add and Remove, every further
// cursor operation returns ErrConcurrentModification. The check is best
// effort and does not make concurrent use safe.
type Iterator[E comparable] struct {
	l        *List[E]
	expected uint64
	last     int // slot returned by the last Next or Previous
	index    int // logical index of the element Next would return
	pos      int // slot at index; head when index == Len
}

// Iterator returns an iterator positioned before the first element.
func (l *List[E]) Iterator() *Iterator[E] {
	it, _ := l.ListIterator(0)
	return it
}

// ListIterator returns an iterator positioned before the element at index
// start. start may equal Len, positioning the iterator after the last
// element.
func (l *List[E]) ListIterator(start int) (*Iterator[E], error) {
	if err := checkPosition(start, l.a.size); err != nil {
		return nil, err
	}
	return &Iterator[E]{
		l:        l,
		expected: l.a.mods,
		last:     nilIndex,
		index:    start,
		pos:      l.a.nodeAt(start),
	}, nil
}

func (it *Iterator[E]) check() error {
	if it.l.a.mods != it.expected {
		return ErrConcurrentModification
	}
	return nil
}

// HasNext reports whether Next would return an element.
func (it *Iterator[E]) HasNext() bool { return it.index < it.l.a.size }

// HasPrevious reports whether Previous would return an element.
func (it *Iterator[E]) HasPrevious() bool { return it.index > 0 }

// NextIndex returns the index of the element Next would return.
func (it *Iterator[E]) NextIndex() int { return it.index }

// PreviousIndex returns the index of the element Previous would return.
func (it *Iterator[E]) PreviousIndex() int { return it.index - 1 }

// Next advances the cursor and returns the element it passed over.
func (it *Iterator[E]) Next() (e E, err error) {
	if err = it.check(); err != nil {
		return e, err
	}
	if it.index >= it.l.a.size {
		return e, ErrNoMoreElements
	}
	it.last = it.pos
	it.pos = it.l.a.nodes[it.pos].next
	it.index++
	return it.l.a.nodes[it.last].elem, nil
}

// Previous moves the cursor back and returns the element it passed over.
func (it *Iterator[E]) Previous() (e E, err error) {
	if err = it.check(); err != nil {
		return e, err
	}
	if it.index <= 0 {
		return e, ErrNoMoreElements
	}
	it.pos = it.l.a.nodes[it.pos].prev
	it.index--
	it.last = it.pos
	return it.l.a.nodes[it.pos].elem, nil
}

// Remove removes the element last returned by Next or Previous.
func (it *Iterator[E]) Remove() error {
	if err := it.check(); err != nil {
		return err
	}
	if it.last < 0 {
		return ErrIllegalState
	}
	a := &it.l.a
	next := a.unlink(it.last)
	switch {
	case a.size == 0:
		it.pos, it.index = nilIndex, 0
	case it.pos == it.last:
		// Previous left the cursor on the removed slot.
		it.pos = next
	default:
		it.index--
	}
	it.last = nilIndex
	it.expected = a.mods
	return nil
}

// Set replaces the element last returned by Next or Previous.
func (it *Iterator[E]) Set(e E) error {
	if err := it.check(); err != nil {
		return err
	}
	if it.last < 0 {
		return ErrIllegalState
	}
	it.l.a.nodes[it.last].elem = e
	return nil
}

// Add inserts e immediately before the cursor. A following Next is
// unaffected and a following Previous returns e.
func (it *Iterator[E]) Add(e E) error {
	if err := it.check(); err != nil {
		return err
	}
	a := &it.l.a
	a.ensure(a.size + 1)
	if it.index == a.size {
		a.insertAfter(a.tail(), e)
		if it.pos < 0 {
			it.pos = a.head
		}
	} else {
		a.insertBefore(it.pos, e)
	}
	it.index++
	it.last = nilIndex
	it.expected = a.mods
	return nil
}

// DescendingIterator walks a List from its last element to its first.
type DescendingIterator[E comparable] struct {
	it *Iterator[E]
}

// DescendingIterator returns an iterator positioned after the last element
// that moves towards the front.
func (l *List[E]) DescendingIterator() *DescendingIterator[E] {
	it, _ := l.ListIterator(l.a.size)
	return &DescendingIterator[E]{it: it}
}

// HasNext reports whether Next would return an element.
func (d *DescendingIterator[E]) HasNext() bool { return d.it.HasPrevious() }

// Next returns the next element towards the front of the list.
func (d *DescendingIterator[E]) Next() (E, error) { return d.it.Previous() }

// Remove removes the element last returned by Next.
func (d *DescendingIterator[E]) Remove() error { return d.it.Remove() }

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// Values returns an iterator over the elements in order. It panics with
// ErrConcurrentModification if the list is structurally modified during
// iteration.
func (l *List[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		it := l.Iterator()
		for {
			e, err := it.Next()
			if !more(err) || !yield(e) {
				return
			}
		}
	}
}

// All returns an iterator over index-value pairs in order, with the same
// fail-fast behavior as Values.
func (l *List[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		it := l.Iterator()
		for {
			i := it.NextIndex()
			e, err := it.Next()
			if !more(err) || !yield(i, e) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from the last element
// to the first, with the same fail-fast behavior as Values.
func (l *List[E]) Backward() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		it, _ := l.ListIterator(l.a.size)
		for {
			e, err := it.Previous()
			if !more(err) || !yield(it.NextIndex(), e) {
				return
			}
		}
	}
}

func more(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrNoMoreElements):
		return false
	default:
		panic(err)
	}
}
