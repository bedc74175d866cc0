package sliceutil_test

import (
	"testing"

	"seqkit/sliceutil"
)

func TestAtLeast(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		n     int
		want  bool
	}{
		{"Zero", []int{}, 0, true},
		{"Exact", []int{1, 2}, 2, true},
		{"Short", []int{1}, 2, false},
		{"Negative", nil, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sliceutil.AtLeast(tt.input, tt.n); got != tt.want {
				t.Errorf("AtLeast() = %v, want %v", got, tt.want)
			}
		})
	}
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
		{"Exact", []int{1, 2}, 2, true},
		{"Over", []int{1, 2, 3}, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sliceutil.AtMost(tt.input, tt.n); got != tt.want {
				t.Errorf("AtMost() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAtLeastFunc(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }
	input := []int{1, 2, 3, 4, 5, 6}

	if !sliceutil.AtLeastFunc(input, 3, even) {
		t.Error("expected at least 3 even elements")
	}
	if sliceutil.AtLeastFunc(input, 4, even) {
		t.Error("expected fewer than 4 even elements")
	}
}

func TestAtLeastFuncShortCircuits(t *testing.T) {
	checked := 0
	even := func(x int) bool { checked++; return x%2 == 0 }

	if !sliceutil.AtLeastFunc([]int{2, 4, 6, 8}, 2, even) {
		t.Fatal("expected true")
	}
	if checked != 2 {
		t.Errorf("predicate ran %d times, want 2", checked)
	}
}

func TestAtMostFunc(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }

	if !sliceutil.AtMostFunc([]int{1, 2, 3, 4}, 2, even) {
		t.Error("expected at most 2 even elements")
	}
	if sliceutil.AtMostFunc([]int{2, 4, 6}, 2, even) {
		t.Error("expected more than 2 even elements")
	}
	if sliceutil.AtMostFunc([]int{1}, -1, even) {
		t.Error("negative bound can never hold")
	}
}
