package arenalist

import (
	"fmt"

	"go.uber.org/zap"
)

// List is a doubly linked list whose nodes live in a single growable array.
// It can be used as a list, a double-ended queue, or a stack.
//
// Elements are compared with ==. The zero value of E takes the place of an
// absent element, so a list of pointers can hold and find nil.
//
// A List must be created with New or From. It is not safe for concurrent
// use.
type List[E comparable] struct {
	a arena[E]
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// New returns an empty list with room for initialCapacity elements before
// its arena has to grow. initialCapacity must be positive.
func New[E comparable](initialCapacity int, opts ...Option) (*List[E], error) {
	if initialCapacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, initialCapacity)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.policy == nil {
		return nil, ErrNilPolicy
	}
	l := &List[E]{}
	l.a.init(initialCapacity, cfg.policy, cfg.log)
	return l, nil
}

// From returns a list holding the elements of seed in order. The arena starts
// at DefaultCapacity and grows at most once to fit seed.
func From[E comparable](seed []E, opts ...Option) (*List[E], error) {
	l, err := New[E](DefaultCapacity, opts...)
	if err != nil {
		return nil, err
	}
	l.AddAll(seed...)
	return l, nil
}

// Clone returns a shallow copy of l. The copy has its own arena, so
// structural changes to one list do not affect the other, but the elements
// themselves are copied by assignment.
func (l *List[E]) Clone() *List[E] {
	return &List[E]{a: l.a.clone()}
}

/*****************************************************************************
 * SIZE
 *****************************************************************************/

// Len returns the number of elements in the list, or 0 if l is nil.
func (l *List[E]) Len() int {
	if l == nil {
		return 0
	}
	return l.a.size
}

// Cap returns the number of slots in the list's arena.
func (l *List[E]) Cap() int { return l.a.capacity() }

// IsEmpty reports whether the list has no elements.
func (l *List[E]) IsEmpty() bool { return l.a.size == 0 }

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Add appends e to the end of the list.
func (l *List[E]) Add(e E) { l.AddLast(e) }

// AddFirst inserts e at the front of the list.
func (l *List[E]) AddFirst(e E) {
	l.a.ensure(l.a.size + 1)
	l.a.insertBefore(l.a.head, e)
}

// AddLast appends e to the end of the list.
func (l *List[E]) AddLast(e E) {
	l.a.ensure(l.a.size + 1)
	l.a.insertAfter(l.a.tail(), e)
}

// Offer appends e and reports success. A List is unbounded, so it always
// succeeds.
func (l *List[E]) Offer(e E) bool { return l.OfferLast(e) }

// OfferFirst inserts e at the front and returns true.
func (l *List[E]) OfferFirst(e E) bool {
	l.AddFirst(e)
	return true
}

// OfferLast appends e and returns true.
func (l *List[E]) OfferLast(e E) bool {
	l.AddLast(e)
	return true
}

// Push inserts e at the front of the list, making it the top of the stack.
func (l *List[E]) Push(e E) { l.AddFirst(e) }

// Pop removes and returns the top of the stack. It returns ErrEmpty if the
// list is empty.
func (l *List[E]) Pop() (E, error) { return l.RemoveFirst() }

// Remove removes and returns the first element. It returns ErrEmpty if the
// list is empty.
func (l *List[E]) Remove() (E, error) { return l.RemoveFirst() }

// RemoveFirst removes and returns the first element. It returns ErrEmpty if
// the list is empty.
func (l *List[E]) RemoveFirst() (e E, err error) {
	if l.a.size == 0 {
		return e, ErrEmpty
	}
	pos := l.a.head
	e = l.a.nodes[pos].elem
	l.a.unlink(pos)
	return e, nil
}

// RemoveLast removes and returns the last element. It returns ErrEmpty if
// the list is empty.
func (l *List[E]) RemoveLast() (e E, err error) {
	if l.a.size == 0 {
		return e, ErrEmpty
	}
	pos := l.a.tail()
	e = l.a.nodes[pos].elem
	l.a.unlink(pos)
	return e, nil
}

// Poll removes and returns the first element, or false if the list is
// empty.
func (l *List[E]) Poll() (E, bool) { return l.PollFirst() }

// PollFirst removes and returns the first element, or false if the list is
// empty.
func (l *List[E]) PollFirst() (E, bool) {
	e, err := l.RemoveFirst()
	return e, err == nil
}

// PollLast removes and returns the last element, or false if the list is
// empty.
func (l *List[E]) PollLast() (E, bool) {
	e, err := l.RemoveLast()
	return e, err == nil
}

// Element returns the first element without removing it. It returns
// ErrEmpty if the list is empty.
func (l *List[E]) Element() (E, error) { return l.GetFirst() }

// GetFirst returns the first element. It returns ErrEmpty if the list is
// empty.
func (l *List[E]) GetFirst() (e E, err error) {
	if l.a.size == 0 {
		return e, ErrEmpty
	}
	return l.a.nodes[l.a.head].elem, nil
}

// GetLast returns the last element. It returns ErrEmpty if the list is
// empty.
func (l *List[E]) GetLast() (e E, err error) {
	if l.a.size == 0 {
		return e, ErrEmpty
	}
	return l.a.nodes[l.a.tail()].elem, nil
}

// Peek returns the first element, or false if the list is empty.
func (l *List[E]) Peek() (E, bool) { return l.PeekFirst() }

// PeekFirst returns the first element, or false if the list is empty.
func (l *List[E]) PeekFirst() (E, bool) {
	e, err := l.GetFirst()
	return e, err == nil
}

// PeekLast returns the last element, or false if the list is empty.
func (l *List[E]) PeekLast() (E, bool) {
	e, err := l.GetLast()
	return e, err == nil
}

// RemoveValue removes the first occurrence of e and reports whether it was
// found.
func (l *List[E]) RemoveValue(e E) bool { return l.RemoveFirstOccurrence(e) }

// RemoveFirstOccurrence removes the first element equal to e and reports
// whether one was found.
func (l *List[E]) RemoveFirstOccurrence(e E) bool {
	pos := l.a.findForward(l.a.head, l.a.head, equal(e))
	if pos < 0 {
		return false
	}
	l.a.unlink(pos)
	return true
}

// RemoveLastOccurrence removes the last element equal to e and reports
// whether one was found.
func (l *List[E]) RemoveLastOccurrence(e E) bool {
	tail := l.a.tail()
	pos := l.a.findBackward(tail, tail, equal(e))
	if pos < 0 {
		return false
	}
	l.a.unlink(pos)
	return true
}

/*****************************************************************************
 * LIST API
 *****************************************************************************/

// Get returns the i-th element. It returns an *IndexError if i is out of
// range.
func (l *List[E]) Get(i int) (e E, err error) {
	if err = checkIndex(i, l.a.size); err != nil {
		return e, err
	}
	return l.a.nodes[l.a.nodeAt(i)].elem, nil
}

// Set replaces the i-th element with e and returns the element it replaced.
// Set is not a structural change, so it does not invalidate iterators.
func (l *List[E]) Set(i int, e E) (old E, err error) {
	if err = checkIndex(i, l.a.size); err != nil {
		return old, err
	}
	n := &l.a.nodes[l.a.nodeAt(i)]
	old, n.elem = n.elem, e
	return old, nil
}

// Insert inserts e at index i, shifting later elements back. i may equal
// Len, which appends.
func (l *List[E]) Insert(i int, e E) error {
	if err := checkPosition(i, l.a.size); err != nil {
		return err
	}
	l.a.ensure(l.a.size + 1)
	if i == l.a.size {
		l.a.insertAfter(l.a.tail(), e)
	} else {
		l.a.insertBefore(l.a.nodeAt(i), e)
	}
	return nil
}

// RemoveAt removes and returns the i-th element.
func (l *List[E]) RemoveAt(i int) (e E, err error) {
	if err = checkIndex(i, l.a.size); err != nil {
		return e, err
	}
	pos := l.a.nodeAt(i)
	e = l.a.nodes[pos].elem
	l.a.unlink(pos)
	return e, nil
}

// IndexOf returns the index of the first element equal to e, or -1.
func (l *List[E]) IndexOf(e E) int {
	i, _ := l.a.indexOf(equal(e))
	return i
}

// LastIndexOf returns the index of the last element equal to e, or -1.
func (l *List[E]) LastIndexOf(e E) int {
	i, _ := l.a.lastIndexOf(equal(e))
	return i
}

// IndexFunc returns the index of the first element satisfying f, or -1.
func (l *List[E]) IndexFunc(f func(E) bool) int {
	i, _ := l.a.indexOf(f)
	return i
}

// Contains reports whether e is in the list.
func (l *List[E]) Contains(e E) bool {
	return l.a.findForward(l.a.head, l.a.head, equal(e)) >= 0
}

// ContainsFunc reports whether any element satisfies f.
func (l *List[E]) ContainsFunc(f func(E) bool) bool {
	return l.a.findForward(l.a.head, l.a.head, f) >= 0
}

/*****************************************************************************
 * BULK API
 *****************************************************************************/

// ContainsAll reports whether every element of es is in the list.
func (l *List[E]) ContainsAll(es ...E) bool {
	if len(es) == 0 {
		return true
	}
	have := make(map[E]struct{}, l.a.size)
	for pos, n := l.a.head, l.a.size; n > 0; n-- {
		have[l.a.nodes[pos].elem] = struct{}{}
		pos = l.a.nodes[pos].next
	}
	for _, e := range es {
		if _, ok := have[e]; !ok {
			return false
		}
	}
	return true
}

// AddAll appends es in order. The arena grows at most once.
func (l *List[E]) AddAll(es ...E) {
	if len(es) == 0 {
		return
	}
	l.a.ensure(l.a.size + len(es))
	for _, e := range es {
		l.a.insertAfter(l.a.tail(), e)
	}
}

// InsertAll inserts es in order starting at index i. The arena grows at most
// once.
func (l *List[E]) InsertAll(i int, es ...E) error {
	if err := checkPosition(i, l.a.size); err != nil {
		return err
	}
	if len(es) == 0 {
		return nil
	}
	if i == l.a.size {
		l.AddAll(es...)
		return nil
	}
	l.a.ensure(l.a.size + len(es))
	pos := l.a.nodeAt(i)
	for _, e := range es {
		l.a.insertBefore(pos, e)
	}
	return nil
}

// RemoveAll removes every element that is equal to one of es and reports
// whether the list changed.
func (l *List[E]) RemoveAll(es ...E) bool {
	if len(es) == 0 || l.a.size == 0 {
		return false
	}
	drop := set(es)
	return l.filter(func(e E) bool {
		_, ok := drop[e]
		return ok
	})
}

// RetainAll removes every element that is not equal to one of es and
// reports whether the list changed.
func (l *List[E]) RetainAll(es ...E) bool {
	if l.a.size == 0 {
		return false
	}
	keep := set(es)
	return l.filter(func(e E) bool {
		_, ok := keep[e]
		return !ok
	})
}

// filter unlinks, in a single pass, every element for which drop is true.
func (l *List[E]) filter(drop func(E) bool) bool {
	changed := false
	for pos, n := l.a.head, l.a.size; n > 0; n-- {
		next := l.a.nodes[pos].next
		if drop(l.a.nodes[pos].elem) {
			l.a.unlink(pos)
			changed = true
		}
		pos = next
	}
	return changed
}

// Clear removes every element. The arena keeps its capacity.
func (l *List[E]) Clear() {
	n := l.a.size
	l.a.reset()
	l.a.log.Debug("list cleared", zap.Int("removed", n), zap.Int("capacity", l.a.capacity()))
}

/*****************************************************************************
 * CONVERSION
 *****************************************************************************/

// Slice returns the elements in order in a newly allocated slice.
func (l *List[E]) Slice() []E {
	s := make([]E, 0, l.a.size)
	for pos, n := l.a.head, l.a.size; n > 0; n-- {
		s = append(s, l.a.nodes[pos].elem)
		pos = l.a.nodes[pos].next
	}
	return s
}

// String formats the list like a slice.
func (l *List[E]) String() string {
	return fmt.Sprint(l.Slice())
}

// Equal reports whether l and other hold equal elements in the same order.
// Capacity and policy are ignored.
func (l *List[E]) Equal(other *List[E]) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l.a.size != other.a.size {
		return false
	}
	p, q := l.a.head, other.a.head
	for n := l.a.size; n > 0; n-- {
		if l.a.nodes[p].elem != other.a.nodes[q].elem {
			return false
		}
		p, q = l.a.nodes[p].next, other.a.nodes[q].next
	}
	return true
}

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

func equal[E comparable](e E) func(E) bool {
	return func(x E) bool { return x == e }
}

func set[E comparable](es []E) map[E]struct{} {
	m := make(map[E]struct{}, len(es))
	for _, e := range es {
		m[e] = struct{}{}
	}
	return m
}
