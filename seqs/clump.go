package seqs

import "iter"

// Clump groups consecutive elements of seq into slices of the given size,
// lazily, yielding each group as it fills. If the source runs out
// mid-group, the final short group (1..size-1 elements) is yielded once.
// A finite source of length l produces exactly ceil(l/size) groups.
//
// Every yielded group has its own backing array: callers may retain a
// group while later ones are being filled without it being overwritten.
//
// Clump panics if seq is nil or size < 1.
func Clump[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	if seq == nil {
		panic("seqs.Clump: seq must not be nil")
	}
	if size < 1 {
		panic("seqs.Clump: size must be at least 1")
	}
	return func(yield func([]T) bool) {
		group := make([]T, 0, size)
		for v := range seq {
			group = append(group, v)
			if len(group) == size {
				if !yield(group) {
					return
				}
				group = make([]T, 0, size)
			}
		}
		if len(group) > 0 {
			yield(group)
		}
	}
}
