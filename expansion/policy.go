// Package expansion implements capacity growth and shrink policies for
// array-backed structures.
//
// A Policy is a stateless strategy. It decides how many slots to allocate
// when a buffer runs out of room and how far to cut it back when most of it
// sits unused. The generic Expand, Shrink and Resize helpers apply a policy
// to any []T.
//
// Every policy must satisfy two obligations:
//
//   - NextCapacity(old, requested) >= requested
//   - length <= ShrinkCapacity(length, capacity) <= capacity
//
// The helpers check both and panic with a *ContractError when a policy
// breaks them.
package expansion

import "fmt"

// Policy computes new capacities for a growable buffer.
type Policy interface {
	// NextCapacity returns the capacity to allocate when a buffer of
	// oldCapacity slots must hold at least requested elements.
	NextCapacity(oldCapacity, requested int) int

	// NeedsShrink reports whether a buffer holding length elements in
	// capacity slots should be shrunk.
	NeedsShrink(length, capacity int) bool

	// ShrinkCapacity returns the capacity to shrink to.
	ShrinkCapacity(length, capacity int) int
}

// Default returns the policy used when none is configured.
func Default() Policy { return MemorySaving{} }

// Double grows to the next power of two.
type Double struct{}

func (Double) NextCapacity(_, requested int) int {
	c := 1
	for c < requested {
		c <<= 1
	}
	return c
}

func (Double) NeedsShrink(length, capacity int) bool {
	return length < capacity/3
}

func (Double) ShrinkCapacity(length, capacity int) int {
	return max(length, capacity/2)
}

func (Double) String() string { return "double" }

// JustFit allocates exactly what is requested and shrinks whenever there is
// slack.
type JustFit struct{}

func (JustFit) NextCapacity(_, requested int) int { return requested }

func (JustFit) NeedsShrink(length, capacity int) bool { return length < capacity }

func (JustFit) ShrinkCapacity(length, _ int) int { return length }

func (JustFit) String() string { return "justfit" }

// MemorySaving grows by roughly an eighth of the requested size plus a small
// constant. Growing one element at a time from zero yields the capacities
// 4, 8, 16, 25, 35, 46, 58, 72, 88, ...
type MemorySaving struct{}

func (MemorySaving) NextCapacity(_, requested int) int {
	pad := 6
	if requested < 9 {
		pad = 3
	}
	return requested>>3 + pad + requested
}

func (MemorySaving) NeedsShrink(length, capacity int) bool {
	return length < capacity/3
}

// ShrinkCapacity is clamped to capacity. For tiny buffers the growth
// formula's padding would otherwise exceed the current capacity.
func (p MemorySaving) ShrinkCapacity(length, capacity int) int {
	c := max(p.NextCapacity(capacity, length), p.NextCapacity(capacity, capacity/2))
	return max(length, min(c, capacity))
}

func (MemorySaving) String() string { return "memorysaving" }

// ContractError is the panic value raised when a Policy returns a capacity
// outside its contract. It signals a defect in the policy itself.
type ContractError struct {
	Policy   Policy
	Op       string
	Length   int
	Capacity int
	Result   int
}

func (e *ContractError) Error() string {
	switch e.Op {
	case "NextCapacity":
		return fmt.Sprintf("expansion: %T.NextCapacity(%d, %d) = %d, want >= %d",
			e.Policy, e.Capacity, e.Length, e.Result, e.Length)
	default:
		return fmt.Sprintf("expansion: %T.%s(%d, %d) = %d, want in [%d, %d]",
			e.Policy, e.Op, e.Length, e.Capacity, e.Result, e.Length, e.Capacity)
	}
}

// CheckedNext calls p.NextCapacity and panics with a *ContractError if the
// result cannot hold requested elements.
func CheckedNext(p Policy, oldCapacity, requested int) int {
	c := p.NextCapacity(oldCapacity, requested)
	if c < requested {
		panic(&ContractError{Policy: p, Op: "NextCapacity", Length: requested, Capacity: oldCapacity, Result: c})
	}
	return c
}

// CheckedShrink calls p.ShrinkCapacity and panics with a *ContractError if
// the result is outside [length, capacity].
func CheckedShrink(p Policy, length, capacity int) int {
	c := p.ShrinkCapacity(length, capacity)
	if c < length || c > capacity {
		panic(&ContractError{Policy: p, Op: "ShrinkCapacity", Length: length, Capacity: capacity, Result: c})
	}
	return c
}
