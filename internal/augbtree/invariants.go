package augbtree

import "fmt"

// CheckInvariants walks the subtree rooted at n and returns a descriptive
// error the moment it finds I1 (ordering), I2 (uniform leaf depth), I3
// (leaf flag matches empty edges), I5 (edge counters match child size), or
// I7 (slots occupy a packed prefix) violated. isRoot relaxes the occupancy
// floor I4 imposes on non-root nodes. It exists for tests: production code
// never calls it on a hot path.
func CheckInvariants[K, V any](n *Node[K, V], cmp CompareFunc[K], isRoot bool) error {
	_, err := checkNode(n, cmp, isRoot, -1)
	return err
}

func checkNode[K, V any](n *Node[K, V], cmp CompareFunc[K], isRoot bool, depth int) (int, error) {
	if len(n.keys) != len(n.vals) {
		return 0, fmt.Errorf("node has %d keys but %d values", len(n.keys), len(n.vals))
	}
	if n.leaf != (len(n.edges) == 0) {
		return 0, fmt.Errorf("I3 violated: leaf=%v but len(edges)=%d", n.leaf, len(n.edges))
	}
	if !n.leaf && len(n.edges) != len(n.keys)+1 {
		return 0, fmt.Errorf("I7 violated: internal node has %d keys but %d edges", len(n.keys), len(n.edges))
	}
	if !isRoot {
		if len(n.keys) > KeyArray {
			return 0, fmt.Errorf("I4 violated: node has %d keys, max %d", len(n.keys), KeyArray)
		}
		if n.leaf && len(n.keys) > 0 && len(n.keys) < minKeys {
			// A genuinely empty leaf (0 keys) is the documented split-off
			// placeholder exception, not an underflow; anything between 1
			// and the floor is a real I4 violation.
			return 0, fmt.Errorf("I4 violated: non-root leaf has %d keys, floor %d", len(n.keys), minKeys)
		}
	}
	for i := 1; i < len(n.keys); i++ {
		if cmp(n.keys[i-1], n.keys[i]) >= 0 {
			return 0, fmt.Errorf("I1 violated: keys[%d] >= keys[%d]", i-1, i)
		}
	}

	if n.leaf {
		return depth + 1, nil
	}

	leafDepth := -1
	for i := range n.edges {
		child := n.edges[i].child
		d, err := checkNode(child, cmp, false, depth+1)
		if err != nil {
			return 0, err
		}
		if leafDepth == -1 {
			leafDepth = d
		} else if leafDepth != d {
			return 0, fmt.Errorf("I2 violated: leaves at depth %d and %d", leafDepth, d)
		}
		if got, want := n.edges[i].count, child.size(); got != want {
			return 0, fmt.Errorf("I5 violated: edge %d counter=%d, actual child size=%d", i, got, want)
		}
		if i > 0 {
			if cmp(n.keys[i-1], firstKey(child)) >= 0 {
				return 0, fmt.Errorf("I1 violated: keys[%d] >= min key of child %d", i-1, i)
			}
		}
		if i < len(n.keys) {
			if cmp(lastKey(child), n.keys[i]) >= 0 {
				return 0, fmt.Errorf("I1 violated: max key of child %d >= keys[%d]", i, i)
			}
		}
	}
	return leafDepth, nil
}

func firstKey[K, V any](n *Node[K, V]) K {
	cur := n
	for !cur.leaf {
		cur = cur.edges[0].child
	}
	return cur.keys[0]
}

func lastKey[K, V any](n *Node[K, V]) K {
	cur := n
	for !cur.leaf {
		cur = cur.edges[len(cur.edges)-1].child
	}
	return cur.keys[len(cur.keys)-1]
}
