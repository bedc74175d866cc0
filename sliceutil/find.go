package sliceutil

// Contains checks if the target element exists in the collection.
// Works for comparable types.
func Contains[T comparable](collection []T, target T) bool {
	if len(collection) == 0 {
		return false
	}
	_ = collection[len(collection)-1] // BCE hint
	for _, v := range collection {
		if v == target {
			return true
		}
	}
	return false
}

// ContainsFunc checks if any element satisfies the predicate.
// Useful for non-comparable types or custom matching logic.
func ContainsFunc[T any](collection []T, predicate func(T) bool) bool {
	if len(collection) == 0 {
		return false
	}
	_ = collection[len(collection)-1]
	for _, item := range collection {
		if predicate(item) {
			return true
		}
	}
	return false
}

// Find searches for the first element that satisfies the predicate.
// Returns the element and true if found, otherwise the zero value and false.
func Find[T any](collection []T, predicate func(T) bool) (T, bool) {
	var target T
	if len(collection) == 0 {
		return target, false
	}
	_ = collection[len(collection)-1]
	for _, v := range collection {
		if predicate(v) {
			return v, true
		}
	}
	return target, false
}

// IndexOfFunc returns the index of the first element equal to target under
// the supplied comparer, or -1 if no element matches.
func IndexOfFunc[T any](collection []T, target T, eq func(T, T) bool) int {
	if eq == nil {
		panic("sliceutil.IndexOfFunc: eq must not be nil")
	}
	if len(collection) == 0 {
		return -1
	}
	_ = collection[len(collection)-1]
	for i, v := range collection {
		if eq(v, target) {
			return i
		}
	}
	return -1
}

// RemoveFirstFunc removes the first element equal to target under the
// supplied comparer, shifting the rest left in place. It returns the
// shortened slice and whether anything was removed.
func RemoveFirstFunc[T any](collection []T, target T, eq func(T, T) bool) ([]T, bool) {
	i := IndexOfFunc(collection, target, eq)
	if i < 0 {
		return collection, false
	}
	copy(collection[i:], collection[i+1:])
	// clear the vacated tail slot so it can be GCed
	clear(collection[len(collection)-1:])
	return collection[:len(collection)-1], true
}
