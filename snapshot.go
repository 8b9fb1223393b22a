package skiplist

import (
	"cmp"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Snapshot encodes the ascending value sequence as a CBOR array. The
// core contributes nothing but its ordered traversal; all format
// knowledge lives here.
func (sl *SkipList[T]) Snapshot() ([]byte, error) {
	values := make([]T, 0, sl.length)
	it := sl.IterAll()
	for it.Next() {
		values = append(values, it.Value())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	data, err := cbor.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("skiplist: encode snapshot: %w", err)
	}
	return data, nil
}

// RestoreSnapshot decodes a Snapshot payload and bulk-constructs a new
// list from it. Restoring a snapshot taken from an equal list yields an
// equal list, whatever tower heights the sampler deals out.
func RestoreSnapshot[T cmp.Ordered](data []byte, opts ...Option[T]) (*SkipList[T], error) {
	var values []T
	if err := cbor.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("skiplist: decode snapshot: %w", err)
	}
	return NewFromSlice(values, opts...), nil
}
