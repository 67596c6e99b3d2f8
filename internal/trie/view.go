package trie

// View is a read-only cursor positioned on one trie node. Views borrow from
// the trie and must not outlive it. The position is carried as the edge that
// leads to the node; no edge means the root. Descending never allocates or
// mutates, so many views may traverse one trie concurrently.
type View[K comparable, V any] struct {
	trie    *Trie[K, V]
	in      edge[K]
	hasEdge bool
}

// View returns a read-only cursor at the root.
func (t *Trie[K, V]) View() View[K, V] {
	return View[K, V]{trie: t}
}

// Value returns the value held at the current position, if it is a leaf.
func (v View[K, V]) Value() (V, bool) {
	var zero V
	if !v.hasEdge {
		if v.trie.trivial {
			return v.trie.root, true
		}
		return zero, false
	}
	tgt, ok := v.trie.edges[v.in]
	if !ok || !tgt.leaf {
		return zero, false
	}
	return tgt.value, true
}

// node resolves the current position to a branch id. It reports false when
// the position is a leaf or does not exist, since nothing can be reached
// from there.
func (v View[K, V]) node() (nodeID, bool) {
	if !v.hasEdge {
		if v.trie.trivial {
			return 0, false
		}
		return 0, true
	}
	tgt, ok := v.trie.edges[v.in]
	if !ok || tgt.leaf {
		return 0, false
	}
	return tgt.branch, true
}

// Descend follows key to a child node. It reports false when no such edge
// exists.
func (v View[K, V]) Descend(key K) (View[K, V], bool) {
	id, ok := v.node()
	if !ok {
		return View[K, V]{}, false
	}
	in := edge[K]{from: id, key: key}
	if _, ok := v.trie.edges[in]; !ok {
		return View[K, V]{}, false
	}
	return View[K, V]{trie: v.trie, in: in, hasEdge: true}, true
}

// Edges lists the outgoing edge keys of the current node in insertion
// order. A leaf has none.
func (v View[K, V]) Edges() []K {
	id, ok := v.node()
	if !ok {
		return nil
	}
	return v.trie.out[id]
}

// MutView is a mutating cursor over the same substrate as View. It shares
// the descend-by-key step but may create absent edges as it goes. Unlike
// View it may hover over a not-yet-created edge; the edge is materialized by
// the next DescendOrCreate or by SetValue.
type MutView[K comparable, V any] struct {
	trie    *Trie[K, V]
	in      edge[K]
	hasEdge bool
}

// MutView returns a mutating cursor at the root.
func (t *Trie[K, V]) MutView() MutView[K, V] {
	return MutView[K, V]{trie: t}
}

// Value returns the value held at the current position, if it is a leaf.
func (v MutView[K, V]) Value() (V, bool) {
	ro := View[K, V]{trie: v.trie, in: v.in, hasEdge: v.hasEdge}
	return ro.Value()
}

// DescendOrCreate follows key to a child node, creating an intermediate
// branch for the current position first if it does not exist yet. It
// reports false when the current position is a leaf or the trie is trivial,
// since extending past a value would violate the prefix-free invariant.
func (v MutView[K, V]) DescendOrCreate(key K) (MutView[K, V], bool) {
	t := v.trie
	if t.trivial {
		return MutView[K, V]{}, false
	}

	var id nodeID
	if v.hasEdge {
		tgt, ok := t.edges[v.in]
		switch {
		case !ok:
			id = t.nextID
			t.nextID++
			t.edges[v.in] = target[V]{branch: id}
			t.out[v.in.from] = append(t.out[v.in.from], v.in.key)
		case tgt.leaf:
			return MutView[K, V]{}, false
		default:
			id = tgt.branch
		}
	}
	return MutView[K, V]{trie: t, in: edge[K]{from: id, key: key}, hasEdge: true}, true
}

// SetValue creates or overwrites a leaf at the current position. It reports
// false when the position is a branch with children, or when it is the root
// of a non-empty trie, either of which would break the prefix-free
// invariant. Setting the root of an empty trie makes the trie trivial.
func (v MutView[K, V]) SetValue(value V) bool {
	t := v.trie
	if !v.hasEdge {
		if t.trivial {
			t.root = value
			return true
		}
		if len(t.edges) > 0 {
			return false
		}
		t.trivial = true
		t.root = value
		return true
	}
	if t.trivial {
		return false
	}

	tgt, ok := t.edges[v.in]
	if ok && !tgt.leaf {
		return false
	}
	if !ok {
		t.out[v.in.from] = append(t.out[v.in.from], v.in.key)
	}
	t.edges[v.in] = target[V]{leaf: true, value: value}
	return true
}
