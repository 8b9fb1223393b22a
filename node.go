package skiplist

import "sync"

// link is one forward edge of a node's tower. span is the number of
// level-0 elements this edge steps over, counting the destination, so
// that summed spans along any path from the header equal a node's rank
// plus one. A nil next means the edge runs to the tail sentinel; spans
// on tail edges are never consulted.
type link[T any] struct {
	next *node[T]
	span int
}

// node owns one value and its tower of forward links. The tower height
// is drawn once at insertion and never changes afterwards.
type node[T any] struct {
	value T
	links []link[T]
}

// reset clears the node so an allocator can hand it out again. The links
// backing array is kept so reinsertion at a similar height allocates
// nothing.
func (n *node[T]) reset() {
	var zero T
	n.value = zero
	clear(n.links)
}

// grow resizes the tower to height h, reusing the backing array when it
// is large enough.
func (n *node[T]) grow(h int) {
	if cap(n.links) < h {
		n.links = make([]link[T], h)
		return
	}
	n.links = n.links[:h]
	clear(n.links)
}

// nodeAllocator abstracts where node records come from, so the list can
// run on a sync.Pool or on a slab arena without the core caring.
type nodeAllocator[T any] interface {
	get() *node[T]
	put(*node[T])
	reset()
}

// poolAllocator recycles nodes through a sync.Pool. It is the default
// allocator.
type poolAllocator[T any] struct {
	pool sync.Pool
}

func newPoolAllocator[T any]() *poolAllocator[T] {
	return &poolAllocator[T]{
		pool: sync.Pool{
			New: func() any { return &node[T]{} },
		},
	}
}

func (p *poolAllocator[T]) get() *node[T] {
	return p.pool.Get().(*node[T])
}

func (p *poolAllocator[T]) put(n *node[T]) {
	n.reset()
	p.pool.Put(n)
}

func (p *poolAllocator[T]) reset() {
	// A sync.Pool cannot be emptied in place; Clear replaces the whole
	// allocator instead so the old nodes become collectable.
}
