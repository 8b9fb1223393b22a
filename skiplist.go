// Package skiplist implements an ordered, indexable container backed by
// a probabilistic skip list. It supports O(log n) expected search,
// insertion, removal and rank queries, plus lazy ascending iteration
// over the whole list, a bounded range, or a caller-classified range.
//
// Duplicate values are allowed: the list is a multiset, and values that
// compare equal keep their insertion order.
//
// The list performs no internal locking. One mutator, or any number of
// readers, may be active at a time; iterators detect mutation underneath
// them and report ErrConcurrentModification through their Err method.
package skiplist

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Comparator compares two values. It returns a negative number if a < b,
// zero if a == b, and a positive number if a > b. It must describe a
// total order over every value stored in the same list; feeding values
// it cannot order is a precondition violation with undefined placement.
type Comparator[T any] func(a, b T) int

// SkipList is an ordered multiset of values. The zero value is not
// usable; construct one with New, NewWithComparator or NewFromSlice.
type SkipList[T any] struct {
	header  *node[T] // sentinel row; never holds a value
	level   int      // index of the highest active level
	length  int
	gen     uint64 // bumped by every structural mutation
	compare Comparator[T]
	sampler *heightSampler
	alloc   nodeAllocator[T]

	// scratch for locate; mutators only, so concurrent readers never
	// touch it.
	update []*node[T]
	ranks  []int

	src      rand.Source
	arenaCap int
}

// Option configures a SkipList at construction time.
type Option[T any] func(*SkipList[T])

// WithRandSource makes tower heights come from src instead of the
// process-wide default. Supplying a seeded source yields a reproducible
// structure.
func WithRandSource[T any](src rand.Source) Option[T] {
	return func(sl *SkipList[T]) {
		sl.src = src
	}
}

// WithArena allocates nodes from a slab arena with the given initial
// capacity in nodes, instead of the default sync.Pool. Removed nodes go
// to the arena's free list; the backing store never shrinks.
func WithArena[T any](capacity int) Option[T] {
	return func(sl *SkipList[T]) {
		if capacity > 0 {
			sl.arenaCap = capacity
		}
	}
}

// New creates an empty list for value types ordered by cmp.Compare.
func New[T cmp.Ordered](opts ...Option[T]) *SkipList[T] {
	return NewWithComparator(cmp.Compare[T], opts...)
}

// NewWithComparator creates an empty list ordered by a caller-supplied
// comparator. The comparator must not be nil.
func NewWithComparator[T any](compare Comparator[T], opts ...Option[T]) *SkipList[T] {
	if compare == nil {
		panic("skiplist: comparator cannot be nil")
	}
	sl := &SkipList[T]{
		header:  &node[T]{links: make([]link[T], MaxLevel)},
		compare: compare,
		update:  make([]*node[T], MaxLevel),
		ranks:   make([]int, MaxLevel),
	}
	for _, opt := range opts {
		opt(sl)
	}
	sl.sampler = newHeightSampler(sl.src)
	if sl.arenaCap > 0 {
		sl.alloc = newArena[T](sl.arenaCap)
	} else {
		sl.alloc = newPoolAllocator[T]()
	}
	return sl
}

// NewFromSlice builds a list containing every value in the slice, by
// repeated insertion. O(n log n).
func NewFromSlice[T cmp.Ordered](values []T, opts ...Option[T]) *SkipList[T] {
	sl := New[T](opts...)
	for _, v := range values {
		sl.Insert(v)
	}
	return sl
}

// Len returns the number of stored values.
func (sl *SkipList[T]) Len() int {
	return sl.length
}

// IsEmpty reports whether the list holds no values.
func (sl *SkipList[T]) IsEmpty() bool {
	return sl.length == 0
}

// Height returns the wall height: the number of active levels, at least
// 1 even when the list is empty.
func (sl *SkipList[T]) Height() int {
	return sl.level + 1
}

// locate runs the shared descent: starting at the wall height, advance
// along each level while the next value sorts before target, then drop a
// level. It records the last node visited before every descent in
// sl.update and the rank walked so far in sl.ranks. With afterEqual set
// the walk also passes values equal to target, so a new duplicate lands
// after the existing equal run and insertion order stays stable.
func (sl *SkipList[T]) locate(target T, afterEqual bool) {
	current := sl.header
	for i := sl.level; i >= 0; i-- {
		if i == sl.level {
			sl.ranks[i] = 0
		} else {
			sl.ranks[i] = sl.ranks[i+1]
		}
		for {
			next := current.links[i].next
			if next == nil {
				break
			}
			c := sl.compare(next.value, target)
			if c > 0 || (c == 0 && !afterEqual) {
				break
			}
			sl.ranks[i] += current.links[i].span
			current = next
		}
		sl.update[i] = current
	}
}

// findPredecessor returns the last node whose value sorts strictly
// before target (the header when no such node exists). Read-only: safe
// for concurrent readers.
func (sl *SkipList[T]) findPredecessor(target T) *node[T] {
	current := sl.header
	for i := sl.level; i >= 0; i-- {
		for {
			next := current.links[i].next
			if next == nil || sl.compare(next.value, target) >= 0 {
				break
			}
			current = next
		}
	}
	return current
}

// Insert adds value to the list. Equal values accumulate; the newest one
// sits after the older ones. O(log n) expected.
func (sl *SkipList[T]) Insert(value T) {
	sl.locate(value, true)

	h := sl.sampler.sample()
	if h-1 > sl.level {
		// Raise the wall: new top levels descend straight from the
		// header, whose edge at those levels spans the whole list.
		for i := sl.level + 1; i < h; i++ {
			sl.update[i] = sl.header
			sl.ranks[i] = 0
			sl.header.links[i].span = sl.length
		}
		sl.level = h - 1
	}

	n := sl.alloc.get()
	n.grow(h)
	n.value = value

	for i := 0; i < h; i++ {
		prev := sl.update[i]
		n.links[i].next = prev.links[i].next
		prev.links[i].next = n

		// reach is the level-0 distance from prev to the new node.
		reach := (sl.ranks[0] - sl.ranks[i]) + 1
		n.links[i].span = prev.links[i].span - (reach - 1)
		prev.links[i].span = reach
	}

	// Levels above the new tower now skip one more element.
	for i := h; i <= sl.level; i++ {
		sl.update[i].links[i].span++
	}

	sl.length++
	sl.gen++
	sl.checkInvariants()
}

// Remove deletes the first stored occurrence of value. It returns false,
// not an error, when the value is absent. O(log n) expected.
func (sl *SkipList[T]) Remove(value T) bool {
	sl.locate(value, false)
	target := sl.update[0].links[0].next
	if target == nil || sl.compare(target.value, value) != 0 {
		return false
	}
	sl.unlink(target)
	sl.gen++
	sl.checkInvariants()
	return true
}

// unlink splices target out of every level it occupies, using the update
// path produced by the caller, then releases the node. The node is only
// handed back to the allocator after all levels are rewritten, so no
// partial removal is ever observable.
func (sl *SkipList[T]) unlink(target *node[T]) {
	for i := 0; i <= sl.level; i++ {
		prev := sl.update[i]
		if prev.links[i].next == target {
			prev.links[i].span += target.links[i].span - 1
			prev.links[i].next = target.links[i].next
		} else if prev.links[i].next != nil {
			// The path jumps over target at this level; its edge now
			// skips one element fewer.
			prev.links[i].span--
		}
	}
	for sl.level > 0 && sl.header.links[sl.level].next == nil {
		sl.level--
	}
	sl.length--
	sl.alloc.put(target)
}

// Contains reports whether at least one stored value compares equal to
// value. O(log n) expected.
func (sl *SkipList[T]) Contains(value T) bool {
	next := sl.findPredecessor(value).links[0].next
	return next != nil && sl.compare(next.value, value) == 0
}

// Clear removes every value, leaving only the sentinels. With an arena
// allocator the arena is reset in place; with the default pool a fresh
// pool replaces the old one so its nodes become collectable.
func (sl *SkipList[T]) Clear() {
	sl.level = 0
	sl.length = 0
	clear(sl.header.links)
	if _, ok := sl.alloc.(*arena[T]); ok {
		sl.alloc.reset()
	} else {
		sl.alloc = newPoolAllocator[T]()
	}
	sl.gen++
}

// Equal reports whether both lists hold the same multiset of values
// under the receiver's comparator. O(n).
func (sl *SkipList[T]) Equal(other *SkipList[T]) bool {
	if other == nil || sl.length != other.length {
		return false
	}
	a := sl.header.links[0].next
	b := other.header.links[0].next
	for a != nil && b != nil {
		if sl.compare(a.value, b.value) != 0 {
			return false
		}
		a = a.links[0].next
		b = b.links[0].next
	}
	return a == nil && b == nil
}

// String renders the structure for diagnostics: the wall height, then
// one line per active level from highest to lowest, each bounded by the
// NegInf and PosInf sentinels. Output grows with the list; meant for
// tests and debugging, not hot paths.
func (sl *SkipList[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "SkipList(wall_height: %d)\n", sl.level+1)
	for i := sl.level; i >= 0; i-- {
		b.WriteString("NegInf")
		for n := sl.header.links[i].next; n != nil; n = n.links[i].next {
			fmt.Fprintf(&b, " -> %v", n.value)
		}
		b.WriteString(" -> PosInf\n")
	}
	return b.String()
}
