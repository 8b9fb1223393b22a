package skiplist

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaRecyclesRemovedNodes(t *testing.T) {
	a := newArena[int](minArenaCapacity)
	n1 := a.get()
	n1.grow(3)
	n1.value = 7
	a.put(n1)

	n2 := a.get()
	require.Same(t, n1, n2)
	require.Equal(t, 0, n2.value) // reset cleared it
	require.Equal(t, 3, cap(n2.links))
}

func TestArenaGrowsBeyondInitialCapacity(t *testing.T) {
	a := newArena[int](minArenaCapacity)
	seen := make(map[*node[int]]bool)
	for i := 0; i < minArenaCapacity*5; i++ {
		n := a.get()
		require.False(t, seen[n], "arena handed out the same record twice")
		seen[n] = true
	}
}

func TestArenaReset(t *testing.T) {
	a := newArena[int](minArenaCapacity)
	for i := 0; i < minArenaCapacity*3; i++ {
		n := a.get()
		n.grow(1)
		n.value = i
	}
	a.reset()
	n := a.get()
	require.Equal(t, 0, n.value)
	require.Empty(t, n.links)
}

// Heavy churn against the arena allocator: the free list must keep the
// working set bounded without ever corrupting the list.
func TestArenaBackedListChurn(t *testing.T) {
	sl := New[int](
		WithRandSource[int](rand.NewPCG(50, 50)),
		WithArena[int](128),
	)
	for round := 0; round < 20; round++ {
		for i := 0; i < 500; i++ {
			sl.Insert(i)
		}
		for i := 0; i < 500; i++ {
			require.True(t, sl.Remove(i))
		}
	}
	require.True(t, sl.IsEmpty())

	for i := 0; i < 100; i++ {
		sl.Insert(i)
	}
	require.Equal(t, 100, sl.Len())
	got := collect[int](t, sl.IterAll())
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func TestArenaClampsTinyCapacity(t *testing.T) {
	a := newArena[int](1)
	require.Equal(t, minArenaCapacity, len(a.slabs[0]))
}
