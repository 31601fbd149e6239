package arenalist

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a positional operation is given an
	// index outside the list. Index errors are reported as *IndexError,
	// which unwraps to this value.
	ErrIndexOutOfRange = errors.New("arenalist: index out of range")

	// ErrEmpty is returned when an element is requested from an empty list.
	ErrEmpty = errors.New("arenalist: list is empty")

	// ErrNoMoreElements is returned by an iterator stepped past either end.
	ErrNoMoreElements = errors.New("arenalist: no more elements")

	// ErrConcurrentModification is returned by an iterator whose list was
	// structurally modified by anything other than the iterator itself.
	ErrConcurrentModification = errors.New("arenalist: concurrent modification")

	// ErrIllegalState is returned by Iterator.Set and Iterator.Remove when no
	// element has been returned since the last structural change.
	ErrIllegalState = errors.New("arenalist: no current element")

	// ErrInvalidCapacity is returned when a list is created with a
	// non-positive capacity.
	ErrInvalidCapacity = errors.New("arenalist: capacity must be positive")

	// ErrNilPolicy is returned when WithPolicy is given a nil policy.
	ErrNilPolicy = errors.New("arenalist: nil expansion policy")
)

// IndexError records an out-of-range index and the list length at the time.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("arenalist: index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Index: i, Len: n}
	}
	return nil
}

// checkPosition accepts n as well, for insertions and cursors at the end.
func checkPosition(i, n int) error {
	if i < 0 || i > n {
		return &IndexError{Index: i, Len: n + 1}
	}
	return nil
}
