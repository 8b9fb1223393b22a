package skiplist

// arena allocates node records out of large typed slabs and keeps a free
// list of removed nodes. Freed nodes are recycled instead of returned to
// the garbage collector, and the backing store never shrinks: memory is
// only reclaimed wholesale when the arena is reset. This trades a little
// retained memory for allocation-free steady-state mutation.
type arena[T any] struct {
	slabs    [][]node[T]
	slab     int // slab currently being carved
	next     int // next unused record in that slab
	free     []*node[T]
	slabSize int // size of the next slab to allocate
}

const minArenaCapacity = 64

func newArena[T any](capacity int) *arena[T] {
	if capacity < minArenaCapacity {
		capacity = minArenaCapacity
	}
	return &arena[T]{
		slabs:    [][]node[T]{make([]node[T], capacity)},
		slabSize: capacity,
	}
}

// get hands out a recycled node when one is available, otherwise carves
// a fresh record from the current slab, growing by doubling when the
// slab is exhausted.
func (a *arena[T]) get() *node[T] {
	if n := len(a.free); n > 0 {
		nd := a.free[n-1]
		a.free[n-1] = nil
		a.free = a.free[:n-1]
		return nd
	}
	if a.next == len(a.slabs[a.slab]) {
		if a.slab+1 == len(a.slabs) {
			a.slabSize *= 2
			a.slabs = append(a.slabs, make([]node[T], a.slabSize))
		}
		a.slab++
		a.next = 0
	}
	nd := &a.slabs[a.slab][a.next]
	a.next++
	return nd
}

func (a *arena[T]) put(n *node[T]) {
	n.reset()
	a.free = append(a.free, n)
}

// reset makes every record available again. Callers must have dropped
// all references into the arena first.
func (a *arena[T]) reset() {
	for i := range a.slabs {
		clear(a.slabs[i])
	}
	a.slab, a.next = 0, 0
	clear(a.free)
	a.free = a.free[:0]
}
