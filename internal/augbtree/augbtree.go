// Package augbtree implements the order-statistic B-tree that backs the
// public obtree.Map and obtree.Set types: a B-tree whose child edges carry
// subtree-size counters, so that lookup-by-key and lookup-by-rank both run
// in O(log n) without a secondary index.
//
// Nodes are generic over any key type K plus an explicit three-way
// comparator (negative/zero/positive), rather than a cmp.Ordered
// constraint, so that keys with no natural < operator (fixed-size byte
// arrays compared lexicographically, for instance) are supported the same
// way numeric or string keys are.
package augbtree

// KeyArray is the maximum number of entries a node holds (the reference
// fan-out constant); a node may also hold up to KeyArray+1 child edges.
const KeyArray = 13

// minKeys is the floor every non-root node settles at after a remove.
const minKeys = KeyArray / 2

// CompareFunc reports whether a sorts before (negative), equal to (zero),
// or after (positive) b.
type CompareFunc[K any] func(a, b K) int

// Edge owns exactly one child node plus the number of entries reachable
// through it. The counter must be kept in sync with the child's actual
// size by every mutating path — either incrementally (+1/-1 along an
// insert/remove ancestor chain) or by a full recompute from the child's
// size() after a structural change (split, merge, borrow, split-off).
type Edge[K, V any] struct {
	child *Node[K, V]
	count int
}

// Node is a single B-tree node: up to KeyArray key/value slots in sorted
// order, and — for internal nodes — up to KeyArray+1 child edges. leaf is
// true exactly when edges is empty.
type Node[K, V any] struct {
	keys  []K
	vals  []V
	edges []Edge[K, V]
	leaf  bool
}

func newLeaf[K, V any]() *Node[K, V] {
	return &Node[K, V]{
		keys: make([]K, 0, KeyArray+1),
		vals: make([]V, 0, KeyArray+1),
		leaf: true,
	}
}

func newInternal[K, V any]() *Node[K, V] {
	return &Node[K, V]{
		keys:  make([]K, 0, KeyArray+1),
		vals:  make([]V, 0, KeyArray+1),
		edges: make([]Edge[K, V], 0, KeyArray+2),
	}
}

func newEmptyLike[K, V any](like *Node[K, V]) *Node[K, V] {
	if like.leaf {
		return newLeaf[K, V]()
	}
	return newInternal[K, V]()
}

// NewRoot returns a fresh, empty root node (a leaf with zero entries).
func NewRoot[K, V any]() *Node[K, V] {
	return newLeaf[K, V]()
}

// IsLeaf reports whether n has no children.
func (n *Node[K, V]) IsLeaf() bool { return n.leaf }

// NumEntries returns the number of occupied entry slots in n (not its
// subtree).
func (n *Node[K, V]) NumEntries() int { return len(n.keys) }

// size returns the number of entries in the subtree rooted at n: n's own
// entries plus every child edge's counter. It never recurses past n's
// direct children, so it is cheap (O(KeyArray)) even though it reports the
// whole subtree's size — the counters it sums are themselves kept accurate
// by every mutating path.
func (n *Node[K, V]) size() int {
	s := len(n.keys)
	for i := range n.edges {
		s += n.edges[i].count
	}
	return s
}

// Size is the exported form of size, used by the Map façade after a
// split-off to learn the returned subtree's entry count.
func (n *Node[K, V]) Size() int { return n.size() }

// locate performs a binary search for key among n's occupied entries. It
// returns the index of the first entry whose key is >= key (equivalently,
// the edge index to descend through if key is absent), and whether that
// entry is an exact match.
func (n *Node[K, V]) locate(cmp CompareFunc[K], key K) (int, bool) {
	lo, hi := 0, len(n.keys)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(n.keys[mid], key) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(n.keys) && cmp(n.keys[lo], key) == 0 {
		return lo, true
	}
	return lo, false
}

func insertAt[T any](s []T, idx int, v T) []T {
	var zero T
	s = append(s, zero)
	copy(s[idx+1:], s[idx:])
	s[idx] = v
	return s
}

func removeAt[T any](s []T, idx int) []T {
	copy(s[idx:], s[idx+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1]
}

// collapseChain replaces an internal node that holds zero entries and a
// single edge with that edge's child, repeatedly, until n is either a leaf
// or holds at least one entry. This is the "empty-root collapse" spec.md
// calls for: it shrinks tree height by one level every time it fires, and
// is the only way a non-leaf node is ever allowed to carry zero entries.
func collapseChain[K, V any](n *Node[K, V]) *Node[K, V] {
	for !n.leaf && len(n.keys) == 0 && len(n.edges) == 1 {
		n = n.edges[0].child
	}
	return n
}
