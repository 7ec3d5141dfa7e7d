package obtree

import "cmp"

// NewOrdered builds an empty Map whose keys are compared with cmp.Compare,
// for any K satisfying the standard library's cmp.Ordered constraint. Reach
// for NewFunc instead when K has no natural < operator — a fixed-size byte
// array compared lexicographically, for instance.
func NewOrdered[K cmp.Ordered, V any]() *Map[K, V] {
	return New[K, V](cmp.Compare[K])
}
