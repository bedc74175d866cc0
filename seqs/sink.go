package seqs

import "iter"

// First returns the first element of seq, pulling exactly one element.
// The second result is false for an empty sequence.
func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// Last consumes seq and returns its final element.
// The second result is false for an empty sequence.
func Last[T any](seq iter.Seq[T]) (T, bool) {
	var last T
	found := false
	for v := range seq {
		last = v
		found = true
	}
	return last, found
}

// Count consumes seq and returns the number of elements it yielded.
func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// Only returns the sole element of seq, or the zero value and false when
// seq is empty or has more than one element. It pulls at most two
// elements, so it is safe on infinite sequences.
func Only[T any](seq iter.Seq[T]) (T, bool) {
	var only T
	count := 0
	for v := range seq {
		count++
		if count > 1 {
			var zero T
			return zero, false
		}
		only = v
	}
	if count == 1 {
		return only, true
	}
	var zero T
	return zero, false
}
