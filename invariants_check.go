//go:build skiplistcheck

package skiplist

import "fmt"

// checkInvariants walks the whole structure and panics on the first
// violation. It runs after every mutation when the skiplistcheck build
// tag is set, turning subtle corruption into an immediate failure. Cost
// is O(n) per mutation, so the tag is for tests and debugging only.
func (sl *SkipList[T]) checkInvariants() {
	if sl.level < 0 || sl.level >= MaxLevel {
		panic(fmt.Sprintf("skiplist: wall height %d out of bounds", sl.level+1))
	}

	// Level 0 owns every element: ordered, and as long as reported.
	pos := make(map[*node[T]]int, sl.length)
	count := 0
	for n := sl.header.links[0].next; n != nil; n = n.links[0].next {
		pos[n] = count
		if next := n.links[0].next; next != nil && sl.compare(n.value, next.value) > 0 {
			panic(fmt.Sprintf("skiplist: level 0 out of order at rank %d", count))
		}
		count++
	}
	if count != sl.length {
		panic(fmt.Sprintf("skiplist: level 0 holds %d elements, length says %d", count, sl.length))
	}

	// Every non-tail edge's span must equal the level-0 distance it
	// covers, and towers must be contiguous from level 0 up.
	pos[sl.header] = -1
	for i := 0; i <= sl.level; i++ {
		for n := sl.header; n != nil; n = n.links[i].next {
			if n != sl.header {
				if len(n.links) <= i {
					panic(fmt.Sprintf("skiplist: node at rank %d linked above its height", pos[n]))
				}
				if _, ok := pos[n]; !ok {
					panic(fmt.Sprintf("skiplist: level %d reaches a node missing from level 0", i))
				}
			}
			next := n.links[i].next
			if next == nil {
				continue
			}
			if got, want := n.links[i].span, pos[next]-pos[n]; got != want {
				panic(fmt.Sprintf("skiplist: level %d span %d, level-0 distance %d", i, got, want))
			}
		}
	}
}
