package seqs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"seqkit/seqs"
)

func TestCycle(t *testing.T) {
	got := slices.Collect(seqs.Take(seqs.Cycle(slices.Values([]int{1, 2, 3})), 7))
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1}, got)
}

func TestCycleSingleElement(t *testing.T) {
	got := slices.Collect(seqs.Take(seqs.Cycle(slices.Values([]int{9})), 4))
	assert.Equal(t, []int{9, 9, 9, 9}, got)
}

func TestCycleEmptySource(t *testing.T) {
	// Must terminate instead of spinning through empty passes.
	got := slices.Collect(seqs.Cycle(slices.Values([]int{})))
	assert.Empty(t, got)
}

func TestCycleReopensSource(t *testing.T) {
	opens := 0
	src := func(yield func(int) bool) {
		opens++
		for _, v := range []int{1, 2} {
			if !yield(v) {
				return
			}
		}
	}

	got := slices.Collect(seqs.Take(seqs.Cycle(src), 5))
	assert.Equal(t, []int{1, 2, 1, 2, 1}, got)
	assert.Equal(t, 3, opens, "each repetition is a fresh pass over the source")
}

func TestRepeatEach(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		count int
		want  []int
	}{
		{"Twice", []int{1, 2, 3}, 2, []int{1, 1, 2, 2, 3, 3}},
		{"Thrice", []int{1, 2}, 3, []int{1, 1, 1, 2, 2, 2}},
		{"Once", []int{4, 5}, 1, []int{4, 5}},
		{"Empty", []int{}, 3, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(seqs.RepeatEach(slices.Values(tt.input), tt.count))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepeatEachSinglePass(t *testing.T) {
	pulls := 0
	src := seqs.Do(slices.Values([]int{1, 2}), func(int) { pulls++ })

	got := slices.Collect(seqs.RepeatEach(src, 3))
	assert.Equal(t, []int{1, 1, 1, 2, 2, 2}, got)
	assert.Equal(t, 2, pulls, "repeats come from the buffered element, not re-pulls")
}

func TestCycleValidatesArgs(t *testing.T) {
	assert.Panics(t, func() { seqs.Cycle[int](nil) })
	assert.Panics(t, func() { seqs.RepeatEach[int](nil, 2) })
	assert.Panics(t, func() { seqs.RepeatEach(slices.Values([]int{1}), 0) })
}
