package obtree

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPropertyOrderedIteration is P1: iterating yields entries sorted by
// key, and length equals the number of distinct keys.
func TestPropertyOrderedIteration(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	m := NewOrdered[int, int]()
	seen := map[int]bool{}
	for i := 0; i < 3000; i++ {
		k := rng.IntN(10000)
		m.Insert(k, k*2)
		seen[k] = true
	}
	require.Equal(t, len(seen), m.Len())

	it := m.Keys()
	prev, havePrev := 0, false
	count := 0
	for {
		k, ok := it.Next()
		if !ok {
			break
		}
		if havePrev {
			require.Less(t, prev, k)
		}
		prev, havePrev = k, true
		count++
	}
	require.Equal(t, len(seen), count)
}

// TestPropertyInsertThenGet is P2.
func TestPropertyInsertThenGet(t *testing.T) {
	m := NewOrdered[int, string]()
	m.Insert(42, "hello")
	v, ok := m.Get(42)
	require.True(t, ok)
	require.Equal(t, "hello", v)
	require.True(t, m.ContainsKey(42))
}

// TestPropertyInsertIsIdempotentOnKey is P3.
func TestPropertyInsertIsIdempotentOnKey(t *testing.T) {
	m := NewOrdered[int, int]()
	m.Insert(7, 1)
	before := m.Len()
	m.Insert(7, 2)
	require.Equal(t, before, m.Len())
	v, _ := m.Get(7)
	require.Equal(t, 2, v)
}

// TestPropertyRankRoundTrips is P4.
func TestPropertyRankRoundTrips(t *testing.T) {
	m := NewOrdered[int, int]()
	for i := 0; i < 1500; i++ {
		m.Insert(i*3, i)
	}
	for r := 0; r < m.Len(); r++ {
		k, ok := m.GetKeyByIndex(r)
		require.True(t, ok)
		gotRank, ok := m.RankOfKey(k)
		require.True(t, ok)
		require.Equal(t, r, gotRank)
	}
}

// TestPropertyRemoveThenMiss is P5.
func TestPropertyRemoveThenMiss(t *testing.T) {
	m := NewOrdered[int, int]()
	for i := 0; i < 1000; i++ {
		m.Insert(i, i)
	}
	before := m.Len()
	_, ok := m.Remove(500)
	require.True(t, ok)
	require.Equal(t, before-1, m.Len())
	_, ok = m.Get(500)
	require.False(t, ok)

	_, ok = m.Remove(500)
	require.False(t, ok)
	require.Equal(t, before-1, m.Len())
}

// TestPropertySplitOffByKeyPartitions is P6.
func TestPropertySplitOffByKeyPartitions(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	m := NewOrdered[int, int]()
	keys := rng.Perm(2500)
	for _, k := range keys {
		m.Insert(k, k)
	}
	before := m.Len()
	cut := 1234
	right := m.SplitOff(cut)

	require.Equal(t, before, m.Len()+right.Len())
	for _, k := range keys {
		if k >= cut {
			require.True(t, right.ContainsKey(k))
			require.False(t, m.ContainsKey(k))
		} else {
			require.True(t, m.ContainsKey(k))
			require.False(t, right.ContainsKey(k))
		}
	}
}

// TestPropertySplitOffByIndexMovesTail is P7.
func TestPropertySplitOffByIndexMovesTail(t *testing.T) {
	m := NewOrdered[int, int]()
	for i := 0; i < 777; i++ {
		m.Insert(i, i)
	}
	before := m.Len()
	r := 300
	right := m.SplitOffByIndex(r)

	require.Equal(t, before-r, right.Len())
	require.Equal(t, r, m.Len())
	for i := 0; i < r; i++ {
		require.True(t, m.ContainsKey(i))
	}
	for i := r; i < before; i++ {
		require.True(t, right.ContainsKey(i))
	}
}

// TestPropertyInvariantsHoldAfterMutation is P8: a randomized sequence of
// inserts, removes, and splits never leaves the tree in a state that
// violates the structural invariants.
func TestPropertyInvariantsHoldAfterMutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	m := NewOrdered[int, int]()
	live := map[int]bool{}

	for i := 0; i < 6000; i++ {
		switch rng.IntN(10) {
		case 0, 1, 2, 3, 4:
			k := rng.IntN(3000)
			m.Insert(k, k)
			live[k] = true
		case 5, 6, 7:
			if m.Len() == 0 {
				continue
			}
			r := rng.IntN(m.Len())
			k, _ := m.GetKeyByIndex(r)
			m.Remove(k)
			delete(live, k)
		default:
			if m.Len() == 0 {
				continue
			}
			cut := rng.IntN(3000)
			right := m.SplitOff(cut)
			it := right.Keys()
			for {
				k, ok := it.Next()
				if !ok {
					break
				}
				m.Insert(k, k)
			}
		}
		require.NoError(t, m.checkInvariants())
	}

	require.Equal(t, len(live), m.Len())
	for k := range live {
		require.True(t, m.ContainsKey(k))
	}
}
