package skiplist

// IndexOf returns the zero-based rank of the first stored occurrence of
// value, or false when it is absent. Spans are accumulated during the
// descent, so no scan over level 0 happens. O(log n) expected.
func (sl *SkipList[T]) IndexOf(value T) (int, bool) {
	rank := 0
	current := sl.header
	for i := sl.level; i >= 0; i-- {
		for {
			next := current.links[i].next
			if next == nil || sl.compare(next.value, value) >= 0 {
				break
			}
			rank += current.links[i].span
			current = next
		}
	}
	next := current.links[0].next
	if next != nil && sl.compare(next.value, value) == 0 {
		return rank, true
	}
	return 0, false
}

// AtIndex returns the value at rank i in sorted order, or false when i
// is outside [0, Len()). O(log n) expected.
func (sl *SkipList[T]) AtIndex(i int) (T, bool) {
	var zero T
	if i < 0 || i >= sl.length {
		return zero, false
	}
	// The header sits at rank -1; advance while the jump lands at or
	// before the wanted rank.
	traversed := -1
	current := sl.header
	for lvl := sl.level; lvl >= 0; lvl-- {
		for current.links[lvl].next != nil && traversed+current.links[lvl].span <= i {
			traversed += current.links[lvl].span
			current = current.links[lvl].next
		}
	}
	return current.value, true
}
