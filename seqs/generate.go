package seqs

import "iter"

// Range yields the integers from start towards end (exclusive) in
// increments of step. A zero step yields nothing; a negative step counts
// down.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Repeat yields value count times. A count <= 0 yields nothing.
func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}
}

// Iterate yields start, step(start), step(step(start)), ... — exactly
// count elements. The step function is applied lazily, between pulls, and
// runs exactly count-1 times for a fully consumed sequence.
//
// Iterate panics if step is nil or count < 0.
func Iterate[T any](start T, count int, step func(T) T) iter.Seq[T] {
	if step == nil {
		panic("seqs.Iterate: step must not be nil")
	}
	if count < 0 {
		panic("seqs.Iterate: count must not be negative")
	}
	return func(yield func(T) bool) {
		v := start
		for i := 0; i < count; i++ {
			if i > 0 {
				v = step(v)
			}
			if !yield(v) {
				return
			}
		}
	}
}
