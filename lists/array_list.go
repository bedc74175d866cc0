package lists

import (
	"fmt"
	"iter"
	"slices"
)

var ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")

// ArrayList is a growable, randomly indexable buffer. It is the owned
// materialization target for lazy sequences: Collect drains an iter.Seq
// into a fresh list, after which elements can be revisited freely —
// something a single-pass sequence cannot offer.
//
// Not safe for concurrent use.
type ArrayList[T any] struct {
	data []T
}

// NewArrayList returns an empty list with the given initial capacity.
func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{data: make([]T, 0, initialCapacity)}
}

// Collect drains seq into a new list. The list owns its storage; the
// sequence is consumed exactly once.
func Collect[T any](seq iter.Seq[T]) *ArrayList[T] {
	if seq == nil {
		panic("lists.Collect: seq must not be nil")
	}
	l := &ArrayList[T]{}
	for v := range seq {
		l.data = append(l.data, v)
	}
	return l
}

// Add appends one or more elements to the end of the list.
func (l *ArrayList[T]) Add(values ...T) {
	l.data = append(l.data, values...)
}

// AddRange appends every element of seq to the end of the list,
// consuming seq in a single pass.
func (l *ArrayList[T]) AddRange(seq iter.Seq[T]) {
	if seq == nil {
		panic("lists.ArrayList.AddRange: seq must not be nil")
	}
	l.data = slices.AppendSeq(l.data, seq)
}

// Insert inserts value at index, shifting later elements right.
func (l *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(l.data) {
		return ErrIndexOutOfBounds
	}
	var zero T
	l.data = append(l.data, zero)
	copy(l.data[index+1:], l.data[index:])
	l.data[index] = value
	return nil
}

// Get retrieves the element at index.
func (l *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(l.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return l.data[index], nil
}

// Set replaces the element at index.
func (l *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(l.data) {
		return ErrIndexOutOfBounds
	}
	l.data[index] = value
	return nil
}

// Remove removes and returns the element at index.
func (l *ArrayList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= len(l.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	removed := l.data[index]
	copy(l.data[index:], l.data[index+1:])
	// clear the vacated slot, let it be GCed
	clear(l.data[len(l.data)-1:])
	l.data = l.data[:len(l.data)-1]
	return removed, nil
}

// IndexOf returns the index of the first element equal to value under the
// supplied comparer, or -1.
func (l *ArrayList[T]) IndexOf(value T, eq func(T, T) bool) int {
	if eq == nil {
		panic("lists.ArrayList.IndexOf: eq must not be nil")
	}
	for i, v := range l.data {
		if eq(v, value) {
			return i
		}
	}
	return -1
}

// RemoveFirst removes the first element equal to value under the supplied
// comparer. It reports whether an element was removed.
func (l *ArrayList[T]) RemoveFirst(value T, eq func(T, T) bool) bool {
	i := l.IndexOf(value, eq)
	if i < 0 {
		return false
	}
	_, err := l.Remove(i)
	return err == nil
}

// Size returns the current number of elements.
func (l *ArrayList[T]) Size() int {
	return len(l.data)
}

// IsEmpty checks if the list is empty.
func (l *ArrayList[T]) IsEmpty() bool {
	return len(l.data) == 0
}

// Clear removes all elements and releases them for GC, keeping capacity.
func (l *ArrayList[T]) Clear() {
	clear(l.data)
	l.data = l.data[:0]
}

// Slice returns a copy of the list's contents.
func (l *ArrayList[T]) Slice() []T {
	return slices.Clone(l.data)
}

// Values returns a restartable sequence over the list. Unlike an arbitrary
// iter.Seq, it may be enumerated any number of times, so it is a safe
// source for seqs.Cycle.
func (l *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(l.data)
}

// All returns an index/value sequence over the list.
func (l *ArrayList[T]) All() iter.Seq2[int, T] {
	return slices.All(l.data)
}

// String implements fmt.Stringer for easier debugging.
func (l *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", l.data)
}
