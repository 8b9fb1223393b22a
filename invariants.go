//go:build !skiplistcheck

package skiplist

// checkInvariants is compiled away in normal builds. Build with the
// skiplistcheck tag to verify structural invariants after every
// mutation.
func (sl *SkipList[T]) checkInvariants() {}
