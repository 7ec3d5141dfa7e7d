package obtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetBasics(t *testing.T) {
	s := NewSetOrdered[int]()
	require.True(t, s.Insert(5))
	require.False(t, s.Insert(5))
	require.True(t, s.Contains(5))
	require.Equal(t, 1, s.Len())

	require.True(t, s.Insert(1))
	require.True(t, s.Insert(9))
	r, ok := s.RankOf(5)
	require.True(t, ok)
	require.Equal(t, 1, r)

	first, ok := s.First()
	require.True(t, ok)
	require.Equal(t, 1, first)

	last, ok := s.Last()
	require.True(t, ok)
	require.Equal(t, 9, last)

	require.True(t, s.Remove(5))
	require.False(t, s.Remove(5))
	require.Equal(t, 2, s.Len())
}

func TestSetSplitOffAndClone(t *testing.T) {
	s := NewSetOrdered[int]()
	for _, k := range []int{1, 2, 13, 17, 41} {
		s.Insert(k)
	}
	right := s.SplitOff(13)
	require.Equal(t, 2, s.Len())
	require.Equal(t, 3, right.Len())

	clone := s.Clone()
	clone.Insert(999)
	require.False(t, s.Contains(999))
	require.True(t, clone.Contains(999))
}

func TestSetIter(t *testing.T) {
	s := NewSetOrdered[int]()
	for _, k := range []int{5, 1, 3} {
		s.Insert(k)
	}
	it := s.Iter()
	var got []int
	for {
		k, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, k)
	}
	require.Equal(t, []int{1, 3, 5}, got)
}
