// Package obtree implements an ordered map and ordered set backed by an
// augmented B-tree (internal/augbtree): every lookup or mutation by key runs
// in O(log n), and so does every lookup or mutation by rank, because each
// child edge in the tree carries the size of the subtree below it.
//
// Keys are compared with an explicit three-way comparator rather than the
// built-in < operator, so types with no natural ordering — a fixed-size
// byte array compared lexicographically, say — work the same way numeric or
// string keys do. Use NewOrdered for any cmp.Ordered key type, or NewFunc to
// supply a comparator directly.
package obtree

import "github.com/harudb/obtree/internal/augbtree"

// Map is an ordered key/value container. The zero value is not usable;
// construct one with New, NewOrdered, or NewFunc. A Map is not safe for
// concurrent use without external synchronization.
type Map[K, V any] struct {
	root *augbtree.Node[K, V]
	cmp  augbtree.CompareFunc[K]
	n    int
}

// New builds an empty Map ordered by cmp.
func New[K, V any](cmp func(a, b K) int) *Map[K, V] {
	return &Map[K, V]{
		root: augbtree.NewRoot[K, V](),
		cmp:  augbtree.CompareFunc[K](cmp),
	}
}

// NewFunc is an alias for New kept for readability at call sites that want
// to emphasize a hand-written comparator, such as lexicographic comparison
// of a fixed-size byte array key.
func NewFunc[K, V any](cmp func(a, b K) int) *Map[K, V] {
	return New[K, V](cmp)
}

// Clear empties m in place, discarding every entry.
func (m *Map[K, V]) Clear() {
	m.root = augbtree.NewRoot[K, V]()
	m.n = 0
}

// Len returns the number of entries stored in m.
func (m *Map[K, V]) Len() int { return m.n }

// IsEmpty reports whether m holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.n == 0 }

// ContainsKey reports whether key is present in m.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.root.Search(m.cmp, key)
	return ok
}

// ContainsIndex reports whether rank r names a valid entry in m.
func (m *Map[K, V]) ContainsIndex(r int) bool {
	return r >= 0 && r < m.n
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.root.Search(m.cmp, key)
}

// GetMut returns a pointer to the value stored for key, so the caller can
// modify it in place without a second lookup.
func (m *Map[K, V]) GetMut(key K) (*V, bool) {
	return m.root.SearchMut(m.cmp, key)
}

// GetKeyValue returns the stored key (not necessarily == the argument under
// looser equality relations key types may define outside cmp) and value.
func (m *Map[K, V]) GetKeyValue(key K) (K, V, bool) {
	r, ok := m.root.RankOf(m.cmp, key)
	if !ok {
		var zk K
		var zv V
		return zk, zv, false
	}
	return m.root.SearchByIndex(r)
}

// GetByIndex returns the value at 0-based rank r in key order.
func (m *Map[K, V]) GetByIndex(r int) (V, bool) {
	_, v, ok := m.root.SearchByIndex(r)
	return v, ok
}

// GetMutByIndex returns a pointer to the value at rank r.
func (m *Map[K, V]) GetMutByIndex(r int) (*V, bool) {
	k, _, ok := m.root.SearchByIndex(r)
	if !ok {
		return nil, false
	}
	return m.root.SearchMut(m.cmp, k)
}

// GetKeyByIndex returns the key at rank r.
func (m *Map[K, V]) GetKeyByIndex(r int) (K, bool) {
	k, _, ok := m.root.SearchByIndex(r)
	return k, ok
}

// GetKeyValueByIndex returns the key/value pair at rank r.
func (m *Map[K, V]) GetKeyValueByIndex(r int) (K, V, bool) {
	return m.root.SearchByIndex(r)
}

// RankOfKey returns key's 0-based position in m's key order.
func (m *Map[K, V]) RankOfKey(key K) (int, bool) {
	return m.root.RankOf(m.cmp, key)
}

// FirstKey returns the smallest key in m.
func (m *Map[K, V]) FirstKey() (K, bool) {
	k, _, ok := m.root.First()
	return k, ok
}

// FirstValue returns the value stored for the smallest key in m.
func (m *Map[K, V]) FirstValue() (V, bool) {
	_, v, ok := m.root.First()
	return v, ok
}

// FirstKeyValue returns the smallest key and its value.
func (m *Map[K, V]) FirstKeyValue() (K, V, bool) {
	return m.root.First()
}

// LastKey returns the largest key in m.
func (m *Map[K, V]) LastKey() (K, bool) {
	k, _, ok := m.root.Last()
	return k, ok
}

// LastValue returns the value stored for the largest key in m.
func (m *Map[K, V]) LastValue() (V, bool) {
	_, v, ok := m.root.Last()
	return v, ok
}

// LastKeyValue returns the largest key and its value.
func (m *Map[K, V]) LastKeyValue() (K, V, bool) {
	return m.root.Last()
}

// Insert inserts key/val, overwriting any existing value for key. It
// reports whether key was new.
func (m *Map[K, V]) Insert(key K, val V) bool {
	newRoot, inserted := augbtree.InsertRoot(m.root, m.cmp, key, val)
	m.root = newRoot
	if inserted {
		m.n++
	}
	return inserted
}

// Remove deletes key from m, returning the value it held.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	newRoot, v, ok := augbtree.RemoveRoot(m.root, m.cmp, key)
	m.root = newRoot
	if !ok {
		return v, false
	}
	m.n--
	return v, true
}

// RemoveByIndex deletes the entry at rank r, returning its key and value.
func (m *Map[K, V]) RemoveByIndex(r int) (K, V, bool) {
	key, ok := m.GetKeyByIndex(r)
	if !ok {
		var zk K
		var zv V
		return zk, zv, false
	}
	newRoot, v, _ := augbtree.RemoveRoot(m.root, m.cmp, key)
	m.root = newRoot
	m.n--
	return key, v, true
}

// Replace overwrites the value stored for an existing key, returning the
// value it replaced. Unlike Insert, it never creates a new entry.
func (m *Map[K, V]) Replace(key K, val V) (V, bool) {
	return m.root.Replace(m.cmp, key, val)
}

// ReplaceByIndex overwrites the value at rank r, returning the value it
// replaced.
func (m *Map[K, V]) ReplaceByIndex(r int, val V) (V, bool) {
	key, ok := m.GetKeyByIndex(r)
	if !ok {
		var zero V
		return zero, false
	}
	return m.root.Replace(m.cmp, key, val)
}

// SplitOff splits m in place at cut: every entry with a key less than cut
// remains in m, and a new Map holding every entry with a key >= cut is
// returned.
func (m *Map[K, V]) SplitOff(cut K) *Map[K, V] {
	right := m.root.SplitOffByKey(m.cmp, cut)
	m.root = augbtree.CollapseRoot(m.root)
	out := &Map[K, V]{cmp: m.cmp}
	if right == nil {
		out.root = augbtree.NewRoot[K, V]()
	} else {
		out.root = right
		out.n = right.Size()
	}
	m.n -= out.n
	return out
}

// SplitOffByIndex splits m in place at rank r: m keeps ranks [0, r) and the
// returned Map holds ranks [r, Len()).
func (m *Map[K, V]) SplitOffByIndex(r int) *Map[K, V] {
	right := m.root.SplitOffByIndex(r)
	m.root = augbtree.CollapseRoot(m.root)
	out := &Map[K, V]{cmp: m.cmp}
	if right == nil {
		out.root = augbtree.NewRoot[K, V]()
	} else {
		out.root = right
		out.n = right.Size()
	}
	m.n -= out.n
	return out
}

// Clone returns a deep copy of m that shares no mutable state with it.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := &Map[K, V]{cmp: m.cmp, n: m.n}
	out.root = augbtree.CloneNode(m.root)
	return out
}

// checkInvariants walks m's tree asserting the structural invariants
// internal/augbtree maintains. It exists for tests; production code never
// calls it.
func (m *Map[K, V]) checkInvariants() error {
	return augbtree.CheckInvariants(m.root, m.cmp, true)
}
