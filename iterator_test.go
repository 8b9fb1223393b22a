package skiplist

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterAllAscending(t *testing.T) {
	for _, setup := range testSetups[int]() {
		t.Run(setup.name, func(t *testing.T) {
			sl := setup.new(20)
			for _, v := range []int{10, 30, 50, 5, 0, 3} {
				sl.Insert(v)
			}
			require.Equal(t, []int{0, 3, 5, 10, 30, 50}, collect[int](t, sl.IterAll()))
		})
	}
}

func TestIteratorSinglePass(t *testing.T) {
	sl := NewFromSlice([]int{1, 2}, WithRandSource[int](rand.NewPCG(1, 1)))
	it := sl.IterAll()
	for it.Next() {
	}
	// An exhausted iterator stays exhausted.
	require.False(t, it.Next())
	require.NoError(t, it.Err())
}

func TestRangeInclusiveBounds(t *testing.T) {
	for _, setup := range testSetups[int]() {
		t.Run(setup.name, func(t *testing.T) {
			sl := setup.new(21)
			for i := 0; i <= 500; i++ {
				sl.Insert(i)
			}
			got := collect[int](t, sl.Range(200, 400))
			require.Len(t, got, 201)
			for i, v := range got {
				require.Equal(t, 200+i, v)
			}
		})
	}
}

func TestRangeOutside(t *testing.T) {
	sl := New[int](WithRandSource[int](rand.NewPCG(22, 22)))
	for i := 20; i < 30; i++ {
		sl.Insert(i)
	}
	require.Empty(t, collect[int](t, sl.Range(0, 19)))
	require.Empty(t, collect[int](t, sl.Range(30, 32)))
	require.Empty(t, collect[int](t, sl.Range(25, 21))) // inverted interval
	require.Empty(t, collect[int](t, New[int]().Range(50, 100)))
}

func TestRangeMatchesBruteForce(t *testing.T) {
	for _, setup := range testSetups[int]() {
		t.Run(setup.name, func(t *testing.T) {
			sl := setup.new(23)
			rng := rand.New(rand.NewPCG(5, 55))
			var values []int
			for i := 0; i < 500; i++ {
				v := int(rng.Uint64() % 300)
				values = append(values, v)
				sl.Insert(v)
			}
			sort.Ints(values)
			for trial := 0; trial < 50; trial++ {
				lo := int(rng.Uint64() % 300)
				hi := lo + int(rng.Uint64()%100)
				var want []int
				for _, v := range values {
					if lo <= v && v <= hi {
						want = append(want, v)
					}
				}
				got := collect[int](t, sl.Range(lo, hi))
				require.Equal(t, want, got, "range [%d, %d]", lo, hi)
			}
		})
	}
}

func boundsClassifier(lo, hi int) func(int) RangeHint {
	return func(v int) RangeHint {
		switch {
		case v < lo:
			return SmallerThanRange
		case v > hi:
			return LargerThanRange
		default:
			return InRange
		}
	}
}

func TestRangeWithMatchesRange(t *testing.T) {
	for _, setup := range testSetups[int]() {
		t.Run(setup.name, func(t *testing.T) {
			sl := setup.new(24)
			rng := rand.New(rand.NewPCG(6, 66))
			for i := 0; i < 400; i++ {
				sl.Insert(int(rng.Uint64() % 250))
			}
			for trial := 0; trial < 30; trial++ {
				lo := int(rng.Uint64() % 250)
				hi := lo + int(rng.Uint64()%80)
				want := collect[int](t, sl.Range(lo, hi))
				got := collect[int](t, sl.RangeWith(boundsClassifier(lo, hi)))
				require.Equal(t, want, got, "classified range [%d, %d]", lo, hi)
			}
		})
	}
}

func TestRangeWithAllAndNone(t *testing.T) {
	sl := NewFromSlice([]int{0, 1, 2, 3, 4, 5}, WithRandSource[int](rand.NewPCG(25, 25)))

	all := collect[int](t, sl.RangeWith(func(int) RangeHint { return InRange }))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, all)

	require.Empty(t, collect[int](t, sl.RangeWith(func(int) RangeHint { return SmallerThanRange })))
	require.Empty(t, collect[int](t, sl.RangeWith(func(int) RangeHint { return LargerThanRange })))

	mid := collect[int](t, sl.RangeWith(boundsClassifier(2, 4)))
	require.Equal(t, []int{2, 3, 4}, mid)
}

// A classifier that answers at random violates the monotonicity
// precondition; the iterator's output is undefined but it must finish
// and leave the structure intact.
func TestRangeWithPathologicalClassifier(t *testing.T) {
	sl := NewFromSlice([]int{0, 1, 2, 3, 4, 5}, WithRandSource[int](rand.NewPCG(26, 26)))
	rng := rand.New(rand.NewPCG(27, 27))
	it := sl.RangeWith(func(int) RangeHint {
		return RangeHint(rng.Uint64() % 3)
	})
	steps := 0
	for it.Next() {
		steps++
		require.LessOrEqual(t, steps, sl.Len())
	}
	require.NoError(t, it.Err())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, collect[int](t, sl.IterAll()))
}

func TestIteratorDetectsMutation(t *testing.T) {
	for _, setup := range testSetups[int]() {
		t.Run(setup.name, func(t *testing.T) {
			sl := setup.new(28)
			for i := 0; i < 10; i++ {
				sl.Insert(i)
			}

			it := sl.IterAll()
			require.True(t, it.Next())
			sl.Insert(100)
			require.False(t, it.Next())
			require.ErrorIs(t, it.Err(), ErrConcurrentModification)

			r := sl.Range(0, 5)
			require.True(t, r.Next())
			require.True(t, sl.Remove(100))
			require.False(t, r.Next())
			require.ErrorIs(t, r.Err(), ErrConcurrentModification)

			w := sl.RangeWith(boundsClassifier(0, 5))
			require.True(t, w.Next())
			sl.PopFront()
			require.False(t, w.Next())
			require.ErrorIs(t, w.Err(), ErrConcurrentModification)
		})
	}
}

func TestIteratorUnaffectedByLaterIterators(t *testing.T) {
	sl := NewFromSlice([]int{1, 2, 3}, WithRandSource[int](rand.NewPCG(29, 29)))
	a := sl.IterAll()
	b := sl.IterAll()
	require.Equal(t, []int{1, 2, 3}, collect[int](t, a))
	require.Equal(t, []int{1, 2, 3}, collect[int](t, b))
}
