package arenalist

import (
	"fmt"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// FreeSlots returns the number of arena slots not holding an element.
func (l *List[E]) FreeSlots() int {
	return l.a.capacity() - l.a.size
}

// Grows returns how many times the arena has been reallocated.
func (l *List[E]) Grows() int {
	return l.a.grows
}

// Utilization returns the ratio of live elements to arena slots (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (l *List[E]) Utilization() float64 {
	capacity := l.a.capacity()
	if capacity == 0 {
		return 0
	}
	return float64(l.a.size) / float64(capacity)
}

// Footprint returns the size in bytes of the arena's slot array. Memory
// referenced by the elements is not counted.
func (l *List[E]) Footprint() uint64 {
	var n node[E]
	return uint64(unsafe.Sizeof(n)) * uint64(l.a.capacity())
}

// Metrics returns a snapshot of list statistics.
func (l *List[E]) Metrics() Metrics {
	return Metrics{
		Len:           l.a.size,
		Capacity:      l.a.capacity(),
		FreeSlots:     l.FreeSlots(),
		Grows:         l.a.grows,
		Modifications: l.a.mods,
		Utilization:   l.Utilization(),
		Footprint:     l.Footprint(),
	}
}

// Metrics contains statistical information about a list.
type Metrics struct {
	Len           int     // Live elements
	Capacity      int     // Arena slots
	FreeSlots     int     // Slots on the free chain
	Grows         int     // Arena reallocations
	Modifications uint64  // Structural modifications so far
	Utilization   float64 // Ratio of live elements to slots (0.0-1.0)
	Footprint     uint64  // Bytes held by the slot array
}

func (m Metrics) String() string {
	return fmt.Sprintf("len=%s cap=%s free=%s grows=%d util=%.2f%% footprint=%s",
		humanize.Comma(int64(m.Len)),
		humanize.Comma(int64(m.Capacity)),
		humanize.Comma(int64(m.FreeSlots)),
		m.Grows,
		m.Utilization*100,
		humanize.Bytes(m.Footprint))
}
