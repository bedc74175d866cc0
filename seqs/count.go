package seqs

import "iter"

// AtLeast reports whether seq yields at least n elements.
//
// It stops pulling the moment the running count reaches n, so it is safe
// on infinite sequences for any finite n. For n <= 0 it returns true
// without enumerating at all.
//
// When the source is a slice, prefer sliceutil.AtLeast, which answers from
// len without touching elements.
func AtLeast[T any](seq iter.Seq[T], n int) bool {
	if seq == nil {
		panic("seqs.AtLeast: seq must not be nil")
	}
	if n <= 0 {
		return true
	}
	count := 0
	for range seq {
		count++
		if count >= n {
			return true
		}
	}
	return false
}

// AtLeastFunc reports whether seq yields at least n elements satisfying
// predicate. It stops pulling once n satisfying elements have been seen.
func AtLeastFunc[T any](seq iter.Seq[T], n int, predicate func(T) bool) bool {
	if seq == nil {
		panic("seqs.AtLeastFunc: seq must not be nil")
	}
	if predicate == nil {
		panic("seqs.AtLeastFunc: predicate must not be nil")
	}
	if n <= 0 {
		return true
	}
	count := 0
	for v := range seq {
		if predicate(v) {
			count++
			if count >= n {
				return true
			}
		}
	}
	return false
}

// AtMost reports whether seq yields at most n elements.
//
// It stops pulling as soon as the count exceeds n (the bound is disproved
// after n+1 elements); confirming the bound requires running the source to
// exhaustion. For n < 0 it returns false without enumerating.
//
// When the source is a slice, prefer sliceutil.AtMost.
func AtMost[T any](seq iter.Seq[T], n int) bool {
	if seq == nil {
		panic("seqs.AtMost: seq must not be nil")
	}
	if n < 0 {
		return false
	}
	count := 0
	for range seq {
		count++
		if count > n {
			return false
		}
	}
	return true
}

// AtMostFunc reports whether seq yields at most n elements satisfying
// predicate. Like AtMost, it stops pulling once the bound is disproved.
func AtMostFunc[T any](seq iter.Seq[T], n int, predicate func(T) bool) bool {
	if seq == nil {
		panic("seqs.AtMostFunc: seq must not be nil")
	}
	if predicate == nil {
		panic("seqs.AtMostFunc: predicate must not be nil")
	}
	if n < 0 {
		return false
	}
	count := 0
	for v := range seq {
		if predicate(v) {
			count++
			if count > n {
				return false
			}
		}
	}
	return true
}
