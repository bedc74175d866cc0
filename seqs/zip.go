package seqs

import "iter"

// The Zip family combines N aligned sequences elementwise through an
// N-ary combiner, yielding one result per position. The combined sequence
// ends at the first position where any source is exhausted. Cursors
// advance in strict argument order each step, and the exhaustion check
// short-circuits: once an earlier source comes up empty, later sources are
// not pulled for that step (or ever again).
//
// The first source is ranged directly; the rest are held as iter.Pull
// cursors that are stopped when the consumer stops, so partial
// consumption never leaks a cursor.

// Zip2 combines two sequences elementwise.
// It panics if any source or the combiner is nil.
func Zip2[T1, T2, R any](s1 iter.Seq[T1], s2 iter.Seq[T2], combine func(T1, T2) R) iter.Seq[R] {
	if s1 == nil || s2 == nil {
		panic("seqs.Zip2: sources must not be nil")
	}
	if combine == nil {
		panic("seqs.Zip2: combine must not be nil")
	}
	return func(yield func(R) bool) {
		next2, stop2 := iter.Pull(s2)
		defer stop2()

		for v1 := range s1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(combine(v1, v2)) {
				return
			}
		}
	}
}

// Zip3 combines three sequences elementwise.
// It panics if any source or the combiner is nil.
func Zip3[T1, T2, T3, R any](
	s1 iter.Seq[T1],
	s2 iter.Seq[T2],
	s3 iter.Seq[T3],
	combine func(T1, T2, T3) R,
) iter.Seq[R] {
	if s1 == nil || s2 == nil || s3 == nil {
		panic("seqs.Zip3: sources must not be nil")
	}
	if combine == nil {
		panic("seqs.Zip3: combine must not be nil")
	}
	return func(yield func(R) bool) {
		next2, stop2 := iter.Pull(s2)
		defer stop2()
		next3, stop3 := iter.Pull(s3)
		defer stop3()

		for v1 := range s1 {
			v2, ok := next2()
			if !ok {
				return
			}
			v3, ok := next3()
			if !ok {
				return
			}
			if !yield(combine(v1, v2, v3)) {
				return
			}
		}
	}
}

// Zip4 combines four sequences elementwise.
// It panics if any source or the combiner is nil.
func Zip4[T1, T2, T3, T4, R any](
	s1 iter.Seq[T1],
	s2 iter.Seq[T2],
	s3 iter.Seq[T3],
	s4 iter.Seq[T4],
	combine func(T1, T2, T3, T4) R,
) iter.Seq[R] {
	if s1 == nil || s2 == nil || s3 == nil || s4 == nil {
		panic("seqs.Zip4: sources must not be nil")
	}
	if combine == nil {
		panic("seqs.Zip4: combine must not be nil")
	}
	return func(yield func(R) bool) {
		next2, stop2 := iter.Pull(s2)
		defer stop2()
		next3, stop3 := iter.Pull(s3)
		defer stop3()
		next4, stop4 := iter.Pull(s4)
		defer stop4()

		for v1 := range s1 {
			v2, ok := next2()
			if !ok {
				return
			}
			v3, ok := next3()
			if !ok {
				return
			}
			v4, ok := next4()
			if !ok {
				return
			}
			if !yield(combine(v1, v2, v3, v4)) {
				return
			}
		}
	}
}

// Zip5 combines five sequences elementwise.
// It panics if any source or the combiner is nil.
func Zip5[T1, T2, T3, T4, T5, R any](
	s1 iter.Seq[T1],
	s2 iter.Seq[T2],
	s3 iter.Seq[T3],
	s4 iter.Seq[T4],
	s5 iter.Seq[T5],
	combine func(T1, T2, T3, T4, T5) R,
) iter.Seq[R] {
	if s1 == nil || s2 == nil || s3 == nil || s4 == nil || s5 == nil {
		panic("seqs.Zip5: sources must not be nil")
	}
	if combine == nil {
		panic("seqs.Zip5: combine must not be nil")
	}
	return func(yield func(R) bool) {
		next2, stop2 := iter.Pull(s2)
		defer stop2()
		next3, stop3 := iter.Pull(s3)
		defer stop3()
		next4, stop4 := iter.Pull(s4)
		defer stop4()
		next5, stop5 := iter.Pull(s5)
		defer stop5()

		for v1 := range s1 {
			v2, ok := next2()
			if !ok {
				return
			}
			v3, ok := next3()
			if !ok {
				return
			}
			v4, ok := next4()
			if !ok {
				return
			}
			v5, ok := next5()
			if !ok {
				return
			}
			if !yield(combine(v1, v2, v3, v4, v5)) {
				return
			}
		}
	}
}

// Zip6 combines six sequences elementwise.
// It panics if any source or the combiner is nil.
func Zip6[T1, T2, T3, T4, T5, T6, R any](
	s1 iter.Seq[T1],
	s2 iter.Seq[T2],
	s3 iter.Seq[T3],
	s4 iter.Seq[T4],
	s5 iter.Seq[T5],
	s6 iter.Seq[T6],
	combine func(T1, T2, T3, T4, T5, T6) R,
) iter.Seq[R] {
	if s1 == nil || s2 == nil || s3 == nil || s4 == nil || s5 == nil || s6 == nil {
		panic("seqs.Zip6: sources must not be nil")
	}
	if combine == nil {
		panic("seqs.Zip6: combine must not be nil")
	}
	return func(yield func(R) bool) {
		next2, stop2 := iter.Pull(s2)
		defer stop2()
		next3, stop3 := iter.Pull(s3)
		defer stop3()
		next4, stop4 := iter.Pull(s4)
		defer stop4()
		next5, stop5 := iter.Pull(s5)
		defer stop5()
		next6, stop6 := iter.Pull(s6)
		defer stop6()

		for v1 := range s1 {
			v2, ok := next2()
			if !ok {
				return
			}
			v3, ok := next3()
			if !ok {
				return
			}
			v4, ok := next4()
			if !ok {
				return
			}
			v5, ok := next5()
			if !ok {
				return
			}
			v6, ok := next6()
			if !ok {
				return
			}
			if !yield(combine(v1, v2, v3, v4, v5, v6)) {
				return
			}
		}
	}
}
