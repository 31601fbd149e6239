package expansion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextCapacity(t *testing.T) {
	tests := []struct {
		name     string
		policy   Policy
		old, req int
		expected int
	}{
		{"double from zero", Double{}, 0, 5, 8},
		{"double exact power", Double{}, 4, 8, 8},
		{"double zero request", Double{}, 0, 0, 1},
		{"double ignores old", Double{}, 1000, 3, 4},
		{"justfit", JustFit{}, 0, 5, 5},
		{"justfit ignores old", JustFit{}, 64, 5, 5},
		{"memorysaving one", MemorySaving{}, 0, 1, 4},
		{"memorysaving five", MemorySaving{}, 0, 5, 8},
		{"memorysaving nine", MemorySaving{}, 0, 9, 16},
		{"memorysaving zero", MemorySaving{}, 0, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.policy.NextCapacity(tt.old, tt.req)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, tt.req)
		})
	}
}

func TestMemorySavingSequence(t *testing.T) {
	p := MemorySaving{}
	want := []int{4, 8, 16, 25, 35, 46, 58, 72, 88}

	c := 0
	var got []int
	for range want {
		c = p.NextCapacity(c, c+1)
		got = append(got, c)
	}
	assert.Equal(t, want, got)
}

func TestShrinkCapacity(t *testing.T) {
	tests := []struct {
		name     string
		policy   Policy
		length   int
		capacity int
		needs    bool
		expected int
	}{
		{"double below third", Double{}, 3, 12, true, 6},
		{"double at third", Double{}, 4, 12, false, 6},
		{"double keeps length", Double{}, 0, 2, false, 1},
		{"justfit slack", JustFit{}, 4, 10, true, 4},
		{"justfit full", JustFit{}, 10, 10, false, 10},
		{"memorysaving large", MemorySaving{}, 10, 100, true, 62},
		{"memorysaving clamped", MemorySaving{}, 0, 3, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.needs, tt.policy.NeedsShrink(tt.length, tt.capacity))
			got := tt.policy.ShrinkCapacity(tt.length, tt.capacity)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, tt.length)
			assert.LessOrEqual(t, got, tt.capacity)
		})
	}
}

func TestShrinkContractHolds(t *testing.T) {
	for _, p := range []Policy{Double{}, JustFit{}, MemorySaving{}} {
		for capacity := 0; capacity < 200; capacity++ {
			for length := 0; length <= capacity; length++ {
				if !p.NeedsShrink(length, capacity) {
					continue
				}
				require.NotPanics(t, func() { CheckedShrink(p, length, capacity) },
					"%T length=%d capacity=%d", p, length, capacity)
			}
		}
	}
}

func TestDefault(t *testing.T) {
	assert.Equal(t, MemorySaving{}, Default())
}

type shortPolicy struct{ JustFit }

func (shortPolicy) NextCapacity(_, requested int) int { return requested - 1 }

func (shortPolicy) ShrinkCapacity(length, capacity int) int { return capacity + 1 }

func TestContractViolation(t *testing.T) {
	t.Run("next", func(t *testing.T) {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(*ContractError)
			require.True(t, ok, "panic value %T", r)
			assert.Equal(t, "NextCapacity", err.Op)
			assert.Equal(t, 4, err.Result)
			assert.Contains(t, err.Error(), "want >= 5")
		}()
		CheckedNext(shortPolicy{}, 2, 5)
	})

	t.Run("shrink", func(t *testing.T) {
		defer func() {
			r := recover()
			err, ok := r.(*ContractError)
			require.True(t, ok, "panic value %T", r)
			assert.Equal(t, "ShrinkCapacity", err.Op)
			assert.Contains(t, err.Error(), "want in [1, 4]")
		}()
		CheckedShrink(shortPolicy{}, 1, 4)
	})
}
