package seqs

import "iter"

// Cycle repeats the elements of seq forever: a, b, c, a, b, c, ...
//
// Each repetition ranges over seq again, so seq must support repeated
// independent enumeration (e.g. slices.Values, or any restartable
// generator). A single-pass source yields one usable pass and then
// whatever its exhausted state produces — do not Cycle those.
//
// The result never terminates on its own for a non-empty source; bound it
// with Take, Clump, or an early break. An empty source yields an empty
// sequence rather than spinning.
func Cycle[T any](seq iter.Seq[T]) iter.Seq[T] {
	if seq == nil {
		panic("seqs.Cycle: seq must not be nil")
	}
	return func(yield func(T) bool) {
		for {
			yielded := false
			for v := range seq {
				yielded = true
				if !yield(v) {
					return
				}
			}
			if !yielded {
				return
			}
		}
	}
}

// RepeatEach yields every element of seq count times consecutively before
// moving on: a, a, b, b for count=2. Lazy, single pass over seq.
//
// RepeatEach panics if seq is nil or count < 1.
func RepeatEach[T any](seq iter.Seq[T], count int) iter.Seq[T] {
	if seq == nil {
		panic("seqs.RepeatEach: seq must not be nil")
	}
	if count < 1 {
		panic("seqs.RepeatEach: count must be at least 1")
	}
	return func(yield func(T) bool) {
		for v := range seq {
			for i := 0; i < count; i++ {
				if !yield(v) {
					return
				}
			}
		}
	}
}
