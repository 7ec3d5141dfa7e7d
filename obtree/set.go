package obtree

import "cmp"

// Set is an ordered collection of distinct keys, implemented as a thin
// wrapper over Map[K, struct{}] so it shares the same O(log n) key- and
// rank-based operations. The zero value is not usable; construct one with
// NewSet, NewSetOrdered, or NewSetFunc.
type Set[K any] struct {
	m *Map[K, struct{}]
}

// NewSet builds an empty Set ordered by cmp.
func NewSet[K any](cmp func(a, b K) int) *Set[K] {
	return &Set[K]{m: New[K, struct{}](cmp)}
}

// NewSetOrdered builds an empty Set for any cmp.Ordered key type.
func NewSetOrdered[K cmp.Ordered]() *Set[K] {
	return &Set[K]{m: NewOrdered[K, struct{}]()}
}

// NewSetFunc is an alias for NewSet, kept for readability at call sites that
// want to emphasize a hand-written comparator.
func NewSetFunc[K any](cmp func(a, b K) int) *Set[K] {
	return NewSet(cmp)
}

// Clear empties s in place.
func (s *Set[K]) Clear() { s.m.Clear() }

// Len returns the number of keys in s.
func (s *Set[K]) Len() int { return s.m.Len() }

// IsEmpty reports whether s holds no keys.
func (s *Set[K]) IsEmpty() bool { return s.m.IsEmpty() }

// Contains reports whether key is a member of s.
func (s *Set[K]) Contains(key K) bool { return s.m.ContainsKey(key) }

// ContainsIndex reports whether rank r names a valid member of s.
func (s *Set[K]) ContainsIndex(r int) bool { return s.m.ContainsIndex(r) }

// GetByIndex returns the key at 0-based rank r.
func (s *Set[K]) GetByIndex(r int) (K, bool) { return s.m.GetKeyByIndex(r) }

// RankOf returns key's 0-based position in s's order.
func (s *Set[K]) RankOf(key K) (int, bool) { return s.m.RankOfKey(key) }

// First returns the smallest key in s.
func (s *Set[K]) First() (K, bool) { return s.m.FirstKey() }

// Last returns the largest key in s.
func (s *Set[K]) Last() (K, bool) { return s.m.LastKey() }

// Insert adds key to s, reporting whether it was new.
func (s *Set[K]) Insert(key K) bool { return s.m.Insert(key, struct{}{}) }

// Remove deletes key from s, reporting whether it was present.
func (s *Set[K]) Remove(key K) bool {
	_, ok := s.m.Remove(key)
	return ok
}

// RemoveByIndex deletes the key at rank r, returning it.
func (s *Set[K]) RemoveByIndex(r int) (K, bool) {
	k, _, ok := s.m.RemoveByIndex(r)
	return k, ok
}

// SplitOff splits s in place at cut: every key less than cut remains in s,
// and a new Set holding every key >= cut is returned.
func (s *Set[K]) SplitOff(cut K) *Set[K] {
	return &Set[K]{m: s.m.SplitOff(cut)}
}

// SplitOffByIndex splits s in place at rank r: s keeps ranks [0, r) and the
// returned Set holds ranks [r, Len()).
func (s *Set[K]) SplitOffByIndex(r int) *Set[K] {
	return &Set[K]{m: s.m.SplitOffByIndex(r)}
}

// Clone returns a deep copy of s.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{m: s.m.Clone()}
}
