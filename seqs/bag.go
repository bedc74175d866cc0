package seqs

import (
	"iter"
	"slices"
)

// BagEqual reports whether a and b contain the same multiset of elements:
// order is ignored, duplicates are counted.
//
// Both cursors advance in lockstep, one element per side per step, and
// matched pairs cancel immediately, so memory grows with the running
// imbalance between the two sides rather than with their full length. The
// sequences may have different (and unknown) lengths.
func BagEqual[T comparable](a, b iter.Seq[T]) bool {
	if a == nil || b == nil {
		panic("seqs.BagEqual: both sequences must not be nil")
	}

	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()

	// Signed multiset: positive counts are surplus from a, negative from b.
	// Entries are deleted the moment they reach zero, so emptiness of the
	// map is exactly "no unmatched element on either side".
	pending := make(map[T]int)

	for {
		va, okA := nextA()
		vb, okB := nextB()
		if !okA && !okB {
			break
		}
		if okA {
			if pending[va]++; pending[va] == 0 {
				delete(pending, va)
			}
		}
		if okB {
			if pending[vb]--; pending[vb] == 0 {
				delete(pending, vb)
			}
		}
	}
	return len(pending) == 0
}

// BagEqualFunc is BagEqual with a caller-supplied equality comparer. It is
// the variant to use for element types without a usable == (or where ==
// is not the equality you want).
//
// Because an arbitrary comparer carries no hash, unmatched elements are
// held in two linear-scan buffers; each new element from one side first
// tries to cancel against the other side's buffer. Cost is O(n*imbalance)
// comparer calls in the worst case.
func BagEqualFunc[T any](a, b iter.Seq[T], eq func(T, T) bool) bool {
	if a == nil || b == nil {
		panic("seqs.BagEqualFunc: both sequences must not be nil")
	}
	if eq == nil {
		panic("seqs.BagEqualFunc: eq must not be nil")
	}

	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()

	// Unmatched leftovers per side. Invariant: no element of pendingA
	// matches any element of pendingB, because matches are removed the
	// step they appear.
	var pendingA, pendingB []T

	for {
		va, okA := nextA()
		vb, okB := nextB()
		if !okA && !okB {
			break
		}
		if okA {
			if i := indexEq(pendingB, va, eq); i >= 0 {
				pendingB = slices.Delete(pendingB, i, i+1)
			} else {
				pendingA = append(pendingA, va)
			}
		}
		if okB {
			// pendingA may already hold va from this same step; a matching
			// vb cancels it right here.
			if i := indexEq(pendingA, vb, eq); i >= 0 {
				pendingA = slices.Delete(pendingA, i, i+1)
			} else {
				pendingB = append(pendingB, vb)
			}
		}
	}
	return len(pendingA) == 0 && len(pendingB) == 0
}

func indexEq[T any](buf []T, target T, eq func(T, T) bool) int {
	for i, v := range buf {
		if eq(v, target) {
			return i
		}
	}
	return -1
}
