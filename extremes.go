package skiplist

// PopFront removes and returns the smallest value, or false when the
// list is empty. The update path is the header at every level, so only
// span fixups cost anything beyond the level-0 rewrite.
func (sl *SkipList[T]) PopFront() (T, bool) {
	var zero T
	if sl.length == 0 {
		return zero, false
	}
	target := sl.header.links[0].next
	value := target.value
	for i := 0; i <= sl.level; i++ {
		sl.update[i] = sl.header
	}
	sl.unlink(target)
	sl.gen++
	sl.checkInvariants()
	return value, true
}

// PopBack removes and returns the largest value, or false when the list
// is empty. O(log n) expected.
func (sl *SkipList[T]) PopBack() (T, bool) {
	var zero T
	if sl.length == 0 {
		return zero, false
	}
	target := sl.pathToLast()
	value := target.value
	sl.unlink(target)
	sl.gen++
	sl.checkInvariants()
	return value, true
}

// pathToLast fills sl.update with the predecessor chain of the last
// node and returns that node. Walking by node identity rather than by
// value keeps the removal stable when the tail is a run of duplicates.
func (sl *SkipList[T]) pathToLast() *node[T] {
	last := sl.header
	for i := sl.level; i >= 0; i-- {
		for last.links[i].next != nil {
			last = last.links[i].next
		}
	}
	current := sl.header
	for i := sl.level; i >= 0; i-- {
		for current.links[i].next != nil && current.links[i].next != last {
			current = current.links[i].next
		}
		sl.update[i] = current
	}
	return last
}

// PopMin removes the k smallest values and returns them in ascending
// (removal) order. Fewer than k values yields all of them; k <= 0 yields
// nil. O(k log n).
func (sl *SkipList[T]) PopMin(k int) []T {
	if k <= 0 || sl.length == 0 {
		return nil
	}
	if k > sl.length {
		k = sl.length
	}
	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		v, _ := sl.PopFront()
		out = append(out, v)
	}
	return out
}

// PopMax removes the k largest values and returns them in descending
// (removal) order. Fewer than k values yields all of them; k <= 0 yields
// nil. O(k log n).
func (sl *SkipList[T]) PopMax(k int) []T {
	if k <= 0 || sl.length == 0 {
		return nil
	}
	if k > sl.length {
		k = sl.length
	}
	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		v, _ := sl.PopBack()
		out = append(out, v)
	}
	return out
}
