package sliceutil

// AtLeast reports whether collection has at least n elements.
// Answered from len in O(1) — no element is touched, which is the variant
// to reach for when the source is already materialized.
func AtLeast[T any](collection []T, n int) bool {
	return len(collection) >= n
}

// AtMost reports whether collection has at most n elements. O(1).
func AtMost[T any](collection []T, n int) bool {
	return len(collection) <= n
}

// AtLeastFunc reports whether at least n elements satisfy the predicate.
// It stops scanning once n satisfying elements have been found.
func AtLeastFunc[T any](collection []T, n int, predicate func(T) bool) bool {
	if predicate == nil {
		panic("sliceutil.AtLeastFunc: predicate must not be nil")
	}
	if n <= 0 {
		return true
	}
	if len(collection) < n {
		return false
	}
	_ = collection[len(collection)-1] // BCE hint
	count := 0
	for _, v := range collection {
		if predicate(v) {
			count++
			if count >= n {
				return true
			}
		}
	}
	return false
}

// AtMostFunc reports whether at most n elements satisfy the predicate.
// It stops scanning as soon as the bound is disproved.
func AtMostFunc[T any](collection []T, n int, predicate func(T) bool) bool {
	if predicate == nil {
		panic("sliceutil.AtMostFunc: predicate must not be nil")
	}
	if n < 0 {
		return false
	}
	if len(collection) <= n {
		return true
	}
	_ = collection[len(collection)-1]
	count := 0
	for _, v := range collection {
		if predicate(v) {
			count++
			if count > n {
				return false
			}
		}
	}
	return true
}
