package arenalist

import (
	"go.uber.org/zap"

	"github.com/pavanmanishd/arenalist/expansion"
)

// DefaultCapacity is the initial capacity used by From.
const DefaultCapacity = 10

// nilIndex marks the absence of a slot: an empty list's head, an exhausted
// free chain, or an unlinked cursor.
const nilIndex = -1

// node is a single arena slot. For allocated slots prev and next thread the
// circular element list. For free slots only next is used and links the
// free chain.
type node[E any] struct {
	elem E
	prev int
	next int
}

// arena owns every slot of a list. Slots never move once allocated: growth
// copies them to the same indices in a larger array.
type arena[E any] struct {
	nodes  []node[E]
	size   int    // live slots
	head   int    // first element, or nilIndex when empty
	free   int    // free chain head, or nilIndex when full
	mods   uint64 // structural modification counter
	grows  int
	policy expansion.Policy
	log    *zap.Logger
}

// init allocates capacity slots and threads all of them onto the free chain.
func (a *arena[E]) init(capacity int, policy expansion.Policy, log *zap.Logger) {
	a.nodes = make([]node[E], capacity)
	a.policy = policy
	a.log = log
	a.size = 0
	a.head = nilIndex
	a.free = a.thread(0, capacity)
}

// thread links slots [from, to) into a singly linked chain and returns its
// first index. The last slot points at nilIndex.
func (a *arena[E]) thread(from, to int) int {
	if from >= to {
		return nilIndex
	}
	for i := from; i < to-1; i++ {
		a.nodes[i].next = i + 1
		a.nodes[i].prev = nilIndex
	}
	a.nodes[to-1].next = nilIndex
	a.nodes[to-1].prev = nilIndex
	return from
}

func (a *arena[E]) capacity() int { return len(a.nodes) }

// allocate pops a slot off the free chain and stores e in it. The caller
// must have ensured capacity and is responsible for linking the slot.
func (a *arena[E]) allocate(e E) int {
	i := a.free
	if i < 0 {
		panic("arenalist: allocate on a full arena")
	}
	a.free = a.nodes[i].next
	a.nodes[i].elem = e
	a.size++
	a.mods++
	return i
}

// release clears slot i and pushes it onto the free chain. The caller must
// already have unlinked it from the element list.
func (a *arena[E]) release(i int) {
	var zero E
	a.nodes[i].elem = zero
	a.nodes[i].prev = nilIndex
	a.nodes[i].next = a.free
	a.free = i
	a.size--
	a.mods++
}

// ensure grows the arena if it cannot hold min slots.
func (a *arena[E]) ensure(min int) {
	if min > a.capacity() {
		a.grow(min)
	}
}

// grow enlarges the backing array to the policy's next capacity. Existing
// slots keep their indices; the new slots are spliced in front of the free
// chain.
func (a *arena[E]) grow(min int) {
	old := a.capacity()
	n := a.policy.NextCapacity(old, min)
	if n < min {
		err := &expansion.ContractError{Policy: a.policy, Op: "NextCapacity", Length: min, Capacity: old, Result: n}
		a.log.Error("expansion policy violated its contract", zap.Error(err))
		panic(err)
	}
	a.nodes = expansion.Resize(a.nodes, old, n)

	first := a.thread(old, n)
	a.nodes[n-1].next = a.free
	a.free = first
	a.grows++

	a.log.Debug("arena grown",
		zap.Int("old_capacity", old),
		zap.Int("new_capacity", n),
		zap.Int("size", a.size))
}

// reset frees every slot at once, keeping the capacity.
func (a *arena[E]) reset() {
	clear(a.nodes)
	a.size = 0
	a.head = nilIndex
	a.free = a.thread(0, a.capacity())
	a.mods++
}

// clone returns a copy of the arena sharing no slots with a.
func (a *arena[E]) clone() arena[E] {
	c := *a
	c.nodes = make([]node[E], len(a.nodes))
	copy(c.nodes, a.nodes)
	c.mods = 0
	c.grows = 0
	return c
}
