package skiplist

import "errors"

// ErrConcurrentModification is reported by an iterator whose list was
// structurally mutated after the iterator was created.
var ErrConcurrentModification = errors.New("skiplist: concurrent modification during iteration")

// RangeHint is the three-way answer a classifier gives RangeWith for a
// value: before the wanted range, inside it, or past it.
type RangeHint int

const (
	SmallerThanRange RangeHint = iota
	InRange
	LargerThanRange
)

// Iterator walks every value in ascending order. Iterators are lazy and
// single-pass; request a new one to iterate again.
//
//	it := sl.IterAll()
//	for it.Next() {
//		v := it.Value()
//		// ...
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator[T any] struct {
	sl      *SkipList[T]
	current *node[T]
	gen     uint64
	err     error
}

// IterAll returns an iterator over the whole list. A call to Next is
// required before the first Value.
func (sl *SkipList[T]) IterAll() *Iterator[T] {
	return &Iterator[T]{sl: sl, current: sl.header, gen: sl.gen}
}

// Next advances to the next value, reporting whether one exists. It
// returns false and records ErrConcurrentModification if the list was
// mutated since the iterator was created.
func (it *Iterator[T]) Next() bool {
	if it.err != nil || it.current == nil {
		return false
	}
	if it.gen != it.sl.gen {
		it.err = ErrConcurrentModification
		return false
	}
	it.current = it.current.links[0].next
	return it.current != nil
}

// Value returns the value at the current position. Calling it before
// Next has returned true is a contract violation.
func (it *Iterator[T]) Value() T {
	return it.current.value
}

// Err reports why iteration stopped early, if it did.
func (it *Iterator[T]) Err() error {
	return it.err
}

// RangeIterator yields the values v with lo <= v <= hi, both bounds
// inclusive, in ascending order. The first candidate is located in
// O(log n); each step after that is O(1).
type RangeIterator[T any] struct {
	sl      *SkipList[T]
	current *node[T]
	lo, hi  T
	gen     uint64
	seeked  bool
	done    bool
	err     error
}

// Range returns an iterator over the values between lo and hi inclusive.
// An empty interval (lo > hi) yields nothing.
func (sl *SkipList[T]) Range(lo, hi T) *RangeIterator[T] {
	return &RangeIterator[T]{sl: sl, lo: lo, hi: hi, gen: sl.gen}
}

// Next advances to the next in-bounds value, reporting whether one
// exists.
func (r *RangeIterator[T]) Next() bool {
	if r.err != nil || r.done {
		return false
	}
	if r.gen != r.sl.gen {
		r.err = ErrConcurrentModification
		return false
	}
	if !r.seeked {
		r.seeked = true
		r.current = r.sl.findPredecessor(r.lo)
	}
	next := r.current.links[0].next
	if next == nil || r.sl.compare(next.value, r.hi) > 0 {
		r.done = true
		r.current = nil
		return false
	}
	r.current = next
	return true
}

// Value returns the value at the current position. Valid only after
// Next has returned true.
func (r *RangeIterator[T]) Value() T {
	return r.current.value
}

// Err reports why iteration stopped early, if it did.
func (r *RangeIterator[T]) Err() error {
	return r.err
}

// RangeWithIterator yields the values a classifier places InRange, in
// ascending order. The classifier must be monotonic with respect to the
// stored order: every SmallerThanRange value sorts before every InRange
// value, which sorts before every LargerThanRange value. A classifier
// that breaks this yields an undefined (but finite, non-corrupting)
// sequence.
type RangeWithIterator[T any] struct {
	sl       *SkipList[T]
	classify func(T) RangeHint
	current  *node[T]
	gen      uint64
	seeked   bool
	done     bool
	err      error
}

// RangeWith returns an iterator guided by classify. Reaching the range
// costs O(log n) descent steps, each calling classify once; traversing k
// matches costs O(k).
func (sl *SkipList[T]) RangeWith(classify func(T) RangeHint) *RangeWithIterator[T] {
	return &RangeWithIterator[T]{sl: sl, classify: classify, gen: sl.gen}
}

// seek descends towards the last node classified SmallerThanRange: at
// each level it skips ahead while the next value is below the range,
// then drops a level. Afterwards current's level-0 successor is the
// first candidate.
func (w *RangeWithIterator[T]) seek() {
	current := w.sl.header
	for i := w.sl.level; i >= 0; i-- {
		for {
			next := current.links[i].next
			if next == nil || w.classify(next.value) != SmallerThanRange {
				break
			}
			current = next
		}
	}
	w.current = current
}

// Next advances to the next value inside the range, reporting whether
// one exists. The first node classified past the range ends iteration
// without being yielded.
func (w *RangeWithIterator[T]) Next() bool {
	if w.err != nil || w.done {
		return false
	}
	if w.gen != w.sl.gen {
		w.err = ErrConcurrentModification
		return false
	}
	if !w.seeked {
		w.seeked = true
		w.seek()
	}
	next := w.current.links[0].next
	if next == nil || w.classify(next.value) != InRange {
		w.done = true
		w.current = nil
		return false
	}
	w.current = next
	return true
}

// Value returns the value at the current position. Valid only after
// Next has returned true.
func (w *RangeWithIterator[T]) Value() T {
	return w.current.value
}

// Err reports why iteration stopped early, if it did.
func (w *RangeWithIterator[T]) Err() error {
	return w.err
}
