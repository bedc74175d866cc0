package seqs

import "iter"

// Do taps seq: each time the consumer pulls an element, action runs for
// that element first, then the element is yielded unchanged. The action
// runs exactly once per pulled element and never ahead of the consumer —
// elements the consumer does not pull are never touched.
//
// Useful for logging, counters, and other side effects mid-pipeline.
func Do[T any](seq iter.Seq[T], action func(T)) iter.Seq[T] {
	if seq == nil {
		panic("seqs.Do: seq must not be nil")
	}
	if action == nil {
		panic("seqs.Do: action must not be nil")
	}
	return func(yield func(T) bool) {
		for v := range seq {
			action(v)
			if !yield(v) {
				return
			}
		}
	}
}

// DoIndexed is Do with the element's zero-based position passed to the
// action.
func DoIndexed[T any](seq iter.Seq[T], action func(int, T)) iter.Seq[T] {
	if seq == nil {
		panic("seqs.DoIndexed: seq must not be nil")
	}
	if action == nil {
		panic("seqs.DoIndexed: action must not be nil")
	}
	return func(yield func(T) bool) {
		index := 0
		for v := range seq {
			action(index, v)
			if !yield(v) {
				return
			}
			index++
		}
	}
}
