package seqs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqkit/seqs"
)

func TestAtLeast(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		n     int
		want  bool
	}{
		{"ZeroAlwaysTrue", []int{}, 0, true},
		{"ZeroOnNonEmpty", []int{1, 2}, 0, true},
		{"NegativeAlwaysTrue", []int{}, -3, true},
		{"ExactCount", []int{1, 2, 3}, 3, true},
		{"OneShort", []int{1, 2}, 3, false},
		{"Plenty", []int{1, 2, 3, 4, 5}, 2, true},
		{"Empty", []int{}, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seqs.AtLeast(slices.Values(tt.input), tt.n))
		})
	}
}

func TestAtLeastShortCircuits(t *testing.T) {
	pulls := 0
	src := seqs.Do(slices.Values([]int{1, 2, 3, 4, 5}), func(int) { pulls++ })

	require.True(t, seqs.AtLeast(src, 2))
	assert.Equal(t, 2, pulls, "AtLeast must stop pulling once the count is reached")
}

func TestAtLeastInfiniteSource(t *testing.T) {
	// Terminates despite the endless source because it stops at n.
	endless := seqs.Cycle(slices.Values([]int{1, 2, 3}))
	assert.True(t, seqs.AtLeast(endless, 100))
}

func TestAtLeastFunc(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }
	input := slices.Values([]int{1, 2, 3, 4, 5, 6})

	assert.True(t, seqs.AtLeastFunc(input, 3, even))
	assert.False(t, seqs.AtLeastFunc(slices.Values([]int{1, 3, 5}), 1, even))
	assert.True(t, seqs.AtLeastFunc(slices.Values([]int{}), 0, even))
}

func TestAtLeastFuncStopsAtBound(t *testing.T) {
	checked := 0
	even := func(x int) bool { checked++; return x%2 == 0 }

	require.True(t, seqs.AtLeastFunc(slices.Values([]int{2, 4, 6, 8}), 2, even))
	assert.Equal(t, 2, checked)
}

func TestAtMost(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		n     int
		want  bool
	}{
		{"EmptyZero", []int{}, 0, true},
		{"NonEmptyZero", []int{1}, 0, false},
		{"Negative", []int{}, -1, false},
		{"ExactCount", []int{1, 2, 3}, 3, true},
		{"OneOver", []int{1, 2, 3, 4}, 3, false},
		{"WellUnder", []int{1}, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seqs.AtMost(slices.Values(tt.input), tt.n))
		})
	}
}

func TestAtMostStopsOnceDisproved(t *testing.T) {
	pulls := 0
	src := seqs.Do(slices.Values([]int{1, 2, 3, 4, 5, 6, 7}), func(int) { pulls++ })

	require.False(t, seqs.AtMost(src, 2))
	assert.Equal(t, 3, pulls, "AtMost needs exactly n+1 elements to disprove the bound")
}

func TestAtMostConfirmingRunsToEnd(t *testing.T) {
	pulls := 0
	src := seqs.Do(slices.Values([]int{1, 2, 3}), func(int) { pulls++ })

	require.True(t, seqs.AtMost(src, 5))
	assert.Equal(t, 3, pulls, "confirming the bound requires seeing the whole source")
}

func TestAtMostFunc(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }

	assert.True(t, seqs.AtMostFunc(slices.Values([]int{1, 2, 3, 4}), 2, even))
	assert.False(t, seqs.AtMostFunc(slices.Values([]int{2, 4, 6}), 2, even))
	assert.True(t, seqs.AtMostFunc(slices.Values([]int{1, 3}), 0, even))
}

func TestCountPredicatesValidateArgs(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }

	assert.Panics(t, func() { seqs.AtLeast[int](nil, 1) })
	assert.Panics(t, func() { seqs.AtMost[int](nil, 1) })
	assert.Panics(t, func() { seqs.AtLeastFunc(slices.Values([]int{1}), 1, nil) })
	assert.Panics(t, func() { seqs.AtMostFunc[int](nil, 1, even) })
}

// Property check against the naive definition.
func TestCountPredicatesAgreeWithCount(t *testing.T) {
	inputs := [][]int{{}, {1}, {1, 2}, {1, 2, 3, 4, 5}}
	for _, input := range inputs {
		for n := -1; n <= len(input)+2; n++ {
			atLeast := seqs.AtLeast(slices.Values(input), n)
			atMost := seqs.AtMost(slices.Values(input), n)
			assert.Equal(t, len(input) >= n, atLeast, "AtLeast(%v, %d)", input, n)
			assert.Equal(t, len(input) <= n, atMost, "AtMost(%v, %d)", input, n)
		}
	}
}
