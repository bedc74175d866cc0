package seqs

import "iter"

// Pairwise combines each adjacent pair of source elements: for input
// x0, x1, x2, ... it yields combine(x0,x1), combine(x1,x2), ...
// The second argument of each call is the element as it came from the
// source, and it becomes the first argument of the next call — there is
// no accumulation. A source with one element or none yields nothing.
//
// Lazy, single pass, buffers exactly one prior element.
func Pairwise[T, R any](seq iter.Seq[T], combine func(prev, cur T) R) iter.Seq[R] {
	if seq == nil {
		panic("seqs.Pairwise: seq must not be nil")
	}
	if combine == nil {
		panic("seqs.Pairwise: combine must not be nil")
	}
	return func(yield func(R) bool) {
		var prev T
		first := true
		for v := range seq {
			if first {
				prev = v
				first = false
				continue
			}
			if !yield(combine(prev, v)) {
				return
			}
			prev = v
		}
	}
}

// Scan yields the running left fold of seq, starting from its first
// element: x0, combine(x0,x1), combine(combine(x0,x1),x2), ...
// The output has exactly as many elements as the input; the first output
// is the first input unchanged. An empty source yields nothing.
//
// Lazy, single pass, buffers exactly the current accumulator.
func Scan[T any](seq iter.Seq[T], combine func(acc, cur T) T) iter.Seq[T] {
	if seq == nil {
		panic("seqs.Scan: seq must not be nil")
	}
	if combine == nil {
		panic("seqs.Scan: combine must not be nil")
	}
	return func(yield func(T) bool) {
		var acc T
		first := true
		for v := range seq {
			if first {
				acc = v
				first = false
			} else {
				acc = combine(acc, v)
			}
			if !yield(acc) {
				return
			}
		}
	}
}

// ScanFrom is Scan with an explicit seed: it yields
// combine(initial,x0), combine(combine(initial,x0),x1), ... — one output
// per input element, the seed itself is not yielded.
func ScanFrom[T, R any](seq iter.Seq[T], initial R, combine func(acc R, cur T) R) iter.Seq[R] {
	if seq == nil {
		panic("seqs.ScanFrom: seq must not be nil")
	}
	if combine == nil {
		panic("seqs.ScanFrom: combine must not be nil")
	}
	return func(yield func(R) bool) {
		acc := initial
		for v := range seq {
			acc = combine(acc, v)
			if !yield(acc) {
				return
			}
		}
	}
}
