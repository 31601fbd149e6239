package expansion

// Expand returns a slice able to hold newLen elements. If old already has
// room it is returned unchanged. Otherwise a new slice of
// p.NextCapacity(len(old), newLen) slots is allocated and old[:oldLen] is
// copied into it.
func Expand[T any](p Policy, old []T, oldLen, newLen int) []T {
	if newLen <= len(old) {
		return old
	}
	buf := make([]T, CheckedNext(p, len(old), newLen))
	copy(buf, old[:oldLen])
	return buf
}

// Shrink returns a smaller copy of old holding its first length elements
// when p says the slack is worth reclaiming. Otherwise old is returned.
func Shrink[T any](p Policy, old []T, length int) []T {
	if !p.NeedsShrink(length, len(old)) {
		return old
	}
	c := CheckedShrink(p, length, len(old))
	if c == len(old) {
		return old
	}
	buf := make([]T, c)
	copy(buf, old[:length])
	return buf
}

// Resize reallocates old to exactly newLen slots, keeping the first
// min(oldLen, newLen) elements.
func Resize[T any](old []T, oldLen, newLen int) []T {
	buf := make([]T, newLen)
	copy(buf, old[:min(oldLen, newLen)])
	return buf
}

// Buffer is a growable slice whose capacity is managed by a Policy rather
// than by append's built-in doubling. The zero value uses Default().
type Buffer[T any] struct {
	p   Policy
	buf []T
	n   int
}

// NewBuffer returns an empty buffer with room for capacity elements.
func NewBuffer[T any](p Policy, capacity int) *Buffer[T] {
	if p == nil {
		p = Default()
	}
	return &Buffer[T]{p: p, buf: make([]T, max(capacity, 0))}
}

func (b *Buffer[T]) policy() Policy {
	if b.p == nil {
		b.p = Default()
	}
	return b.p
}

// Len returns the number of elements in the buffer.
func (b *Buffer[T]) Len() int { return b.n }

// Cap returns the number of allocated slots.
func (b *Buffer[T]) Cap() int { return len(b.buf) }

// Append adds vs to the end of the buffer, growing it at most once.
func (b *Buffer[T]) Append(vs ...T) {
	b.buf = Expand(b.policy(), b.buf, b.n, b.n+len(vs))
	b.n += copy(b.buf[b.n:], vs)
}

// At returns the i-th element. It panics if i is out of range.
func (b *Buffer[T]) At(i int) T {
	b.checkIndex(i)
	return b.buf[i]
}

// Set overwrites the i-th element. It panics if i is out of range.
func (b *Buffer[T]) Set(i int, v T) {
	b.checkIndex(i)
	b.buf[i] = v
}

// Truncate drops every element from index n on and shrinks the backing
// array if the policy asks for it.
func (b *Buffer[T]) Truncate(n int) {
	if n < 0 || n > b.n {
		panic("expansion: truncate out of range")
	}
	clear(b.buf[n:b.n])
	b.n = n
	b.buf = Shrink(b.policy(), b.buf, b.n)
}

// Slice returns the live elements. The result aliases the buffer.
func (b *Buffer[T]) Slice() []T { return b.buf[:b.n] }

func (b *Buffer[T]) checkIndex(i int) {
	if i < 0 || i >= b.n {
		panic("expansion: index out of range")
	}
}
