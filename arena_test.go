package arenalist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pavanmanishd/arenalist/expansion"
)

// brokenPolicy never leaves room for the last requested element.
type brokenPolicy struct{ expansion.JustFit }

func (brokenPolicy) NextCapacity(_, requested int) int { return requested - 1 }

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		opts     []Option
		err      error
	}{
		{"one slot", 1, nil, nil},
		{"custom capacity", 16, nil, nil},
		{"explicit policy", 4, []Option{WithPolicy(expansion.Double{})}, nil},
		{"nil logger", 4, []Option{WithLogger(nil)}, nil},
		{"zero capacity", 0, nil, ErrInvalidCapacity},
		{"negative capacity", -1, nil, ErrInvalidCapacity},
		{"nil policy", 4, []Option{WithPolicy(nil)}, ErrNilPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New[int](tt.capacity, tt.opts...)
			if tt.err != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.err), "got %v, want %v", err, tt.err)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.capacity, l.Cap())
			assert.Equal(t, 0, l.Len())
			assert.True(t, l.IsEmpty())
			assert.NoError(t, l.Validate())
		})
	}
}

func TestNewDefaultPolicy(t *testing.T) {
	l, err := New[int](1)
	require.NoError(t, err)
	assert.Equal(t, expansion.MemorySaving{}, l.a.policy)
}

func TestArenaFreeChain(t *testing.T) {
	l, err := New[int](4)
	require.NoError(t, err)

	var chain []int
	for i := l.a.free; i != nilIndex; i = l.a.nodes[i].next {
		chain = append(chain, i)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, chain)
	assert.Equal(t, nilIndex, l.a.head)
}

func TestArenaSlotReuse(t *testing.T) {
	l, err := New[string](2)
	require.NoError(t, err)

	l.AddLast("a")
	slot := l.a.head
	_, err = l.RemoveFirst()
	require.NoError(t, err)

	assert.Equal(t, slot, l.a.free, "released slot must head the free chain")
	assert.Equal(t, "", l.a.nodes[slot].elem, "released slot must drop its element")

	l.AddLast("b")
	assert.Equal(t, slot, l.a.head)
	assert.Equal(t, 2, l.Cap())
	assert.NoError(t, l.Validate())
}

func TestArenaGrowKeepsIndices(t *testing.T) {
	l, err := New[string](2, WithPolicy(expansion.JustFit{}))
	require.NoError(t, err)

	l.AddLast("a")
	l.AddLast("b")
	a, b := l.a.head, l.a.tail()

	l.AddLast("c")
	assert.Equal(t, expansion.JustFit{}.NextCapacity(2, 3), l.Cap())
	assert.Equal(t, 1, l.Grows())
	assert.Equal(t, "a", l.a.nodes[a].elem)
	assert.Equal(t, "b", l.a.nodes[b].elem)
	assert.Equal(t, a, l.a.head)
	assert.Equal(t, []string{"a", "b", "c"}, l.Slice())
	assert.NoError(t, l.Validate())
}

func TestArenaGrowSplicesFreeChain(t *testing.T) {
	l, err := New[int](4, WithPolicy(expansion.Double{}))
	require.NoError(t, err)

	l.AddAll(1, 2, 3, 4)
	_, err = l.RemoveFirst()
	require.NoError(t, err)
	assert.Equal(t, 0, l.a.free)

	l.AddAll(5, 6, 7)
	assert.Equal(t, 8, l.Cap())
	assert.Equal(t, 1, l.Grows())
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7}, l.Slice())

	// New slots are used first, the old free slot stays at the end.
	assert.Equal(t, 7, l.a.free)
	assert.Equal(t, 0, l.a.nodes[7].next)
	assert.NoError(t, l.Validate())
}

func TestArenaGrowLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l, err := New[int](1, WithPolicy(expansion.Double{}), WithLogger(zap.New(core)))
	require.NoError(t, err)

	l.AddAll(1, 2, 3)

	grown := logs.FilterMessage("arena grown").All()
	require.Len(t, grown, 1)
	fields := grown[0].ContextMap()
	assert.EqualValues(t, 1, fields["old_capacity"])
	assert.EqualValues(t, 4, fields["new_capacity"])
}

func TestArenaGrowContractViolation(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	l, err := New[int](1, WithPolicy(brokenPolicy{}), WithLogger(zap.New(core)))
	require.NoError(t, err)
	l.Add(1)

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		l.Add(2)
	}()

	cerr, ok := recovered.(*expansion.ContractError)
	require.True(t, ok, "panic value %T", recovered)
	assert.Equal(t, 2, cerr.Length)
	assert.Equal(t, 1, cerr.Result)
	assert.Equal(t, 1, logs.FilterMessage("expansion policy violated its contract").Len())

	// The failed grow leaves the list untouched.
	assert.Equal(t, []int{1}, l.Slice())
	assert.NoError(t, l.Validate())
}

func TestArenaReset(t *testing.T) {
	l, err := From([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})
	require.NoError(t, err)
	capacity := l.Cap()
	mods := l.a.mods

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, capacity, l.Cap())
	assert.Equal(t, capacity, l.FreeSlots())
	assert.Greater(t, l.a.mods, mods)
	assert.NoError(t, l.Validate())

	l.AddLast(42)
	assert.Equal(t, []int{42}, l.Slice())
}

func TestArenaClone(t *testing.T) {
	l, err := From([]int{1, 2, 3})
	require.NoError(t, err)

	c := l.Clone()
	assert.NotSame(t, &l.a.nodes[0], &c.a.nodes[0])
	assert.Equal(t, l.a.head, c.a.head)
	assert.Equal(t, l.a.free, c.a.free)
	assert.NoError(t, c.Validate())
}

func TestValidateDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(a *arena[int])
	}{
		{"broken back link", func(a *arena[int]) { a.nodes[a.nodes[a.head].next].prev = nilIndex }},
		{"size too large", func(a *arena[int]) { a.size++ }},
		{"element in free slot", func(a *arena[int]) { a.nodes[a.free].elem = 7 }},
		{"lost free slot", func(a *arena[int]) { a.free = a.nodes[a.free].next }},
		{"head without elements", func(a *arena[int]) { a.size = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New[int](8)
			require.NoError(t, err)
			l.AddAll(1, 2, 3)
			require.NoError(t, l.Validate())

			tt.corrupt(&l.a)
			assert.Error(t, l.Validate())
		})
	}
}
