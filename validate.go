package arenalist

import "fmt"

// Validate walks the arena and checks the structural invariants of the
// list: every slot is either on the element cycle or on the free chain,
// the cycle is consistent in both directions and holds exactly Len
// elements, and free slots hold no element. It returns a descriptive error
// for the first violation found. Validate is O(Cap) and intended for tests
// and debugging.
func (l *List[E]) Validate() error {
	a := &l.a
	capacity := a.capacity()
	if a.size < 0 || a.size > capacity {
		return fmt.Errorf("size %d outside [0, %d]", a.size, capacity)
	}
	if (a.size == 0) != (a.head == nilIndex) {
		return fmt.Errorf("size %d inconsistent with head %d", a.size, a.head)
	}

	seen := make([]bool, capacity)
	inRange := func(i int) bool { return i >= 0 && i < capacity }

	pos := a.head
	for n := 0; n < a.size; n++ {
		if !inRange(pos) {
			return fmt.Errorf("element %d at slot %d out of range", n, pos)
		}
		if seen[pos] {
			return fmt.Errorf("element %d at slot %d visited twice", n, pos)
		}
		seen[pos] = true
		next := a.nodes[pos].next
		if !inRange(next) || a.nodes[next].prev != pos {
			return fmt.Errorf("slot %d: next %d does not link back", pos, next)
		}
		pos = next
	}
	if a.size > 0 && pos != a.head {
		return fmt.Errorf("cycle of %d elements does not return to head %d", a.size, a.head)
	}

	var zero E
	free := 0
	for pos = a.free; pos != nilIndex; pos = a.nodes[pos].next {
		if !inRange(pos) {
			return fmt.Errorf("free slot %d out of range", pos)
		}
		if seen[pos] {
			return fmt.Errorf("slot %d is both live and free, or free twice", pos)
		}
		if a.nodes[pos].elem != zero {
			return fmt.Errorf("free slot %d holds an element", pos)
		}
		seen[pos] = true
		free++
	}
	if free != capacity-a.size {
		return fmt.Errorf("free chain has %d slots, want %d", free, capacity-a.size)
	}
	return nil
}
