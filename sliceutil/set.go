package sliceutil

// EmptyIfNil returns collection, or an empty non-nil slice when collection
// is nil. Handy before encoding or handing a slice to code that
// distinguishes nil from empty.
func EmptyIfNil[T any](collection []T) []T {
	if collection == nil {
		return []T{}
	}
	return collection
}

// ToSet collects the elements of collection into a membership set.
// Duplicates collapse; order is lost.
func ToSet[T comparable](collection []T) map[T]struct{} {
	set := make(map[T]struct{}, len(collection))
	if len(collection) == 0 {
		return set
	}
	_ = collection[len(collection)-1] // BCE hint
	for _, v := range collection {
		set[v] = struct{}{}
	}
	return set
}
