/*
Package seqs provides lazy operators and eager predicates for Go 1.23+
iterators (iter.Seq).

It includes:

  - **Counting Predicates**: [AtLeast], [AtMost] and their predicate-taking
    variants, which prove a count bound while pulling as few elements as
    possible. Safe to use on infinite sequences for the bound they prove.
  - **Bag Equality**: [BagEqual] and [BagEqualFunc] compare two sequences
    as multisets, ignoring order but counting duplicates.
  - **Grouping and Repetition**: [Clump], [Cycle], [RepeatEach].
  - **Accumulation**: [Pairwise], [Scan], [ScanFrom].
  - **Multi-Source Combination**: [Zip2] through [Zip6].
  - **Generation**: [Range], [Repeat], [Iterate].
  - **Flow Control**: [Take], [Skip], [TakeWhile], [DropWhile].
  - **Taps**: [Do] and [DoIndexed] for side effects at pull time.
  - **Sinks**: [First], [Last], [Count], [Only].

# Laziness

Every function returning an iter.Seq is lazy: constructing the result
performs no element access and invokes no caller-supplied function. Work
happens one step at a time, only when the consumer pulls. Argument
validation is the single exception — a nil sequence, nil function, or an
out-of-range count panics at construction, before any enumeration.

# Resources

Operators that drive more than one cursor ([Zip3], [BagEqual], ...) open
their extra cursors with iter.Pull and stop them via defer, so the cursors
are released whether the consumer exhausts the sequence, abandons it early,
or a caller-supplied function panics mid-pull.

# Errors

There are no error returns. Invalid arguments panic at construction;
panics raised by predicates, combiners, and actions propagate to the
consumer at the exact pull that triggered them.

The package is single-threaded: no sequence or in-progress enumeration may
be shared across goroutines without external synchronization.
*/
package seqs
