// Package trie implements a prefix-free trie: a mapping from key sequences
// to values in which no stored path may be a strict prefix of another.
//
// All nodes live in a single flat map keyed by (origin node id, edge key)
// rather than in a linked node graph. Nodes are referenced by unsigned
// integer ids allocated monotonically, with the root fixed at id 0. This
// arena-style layout avoids parent/child pointer cycles, keeps related data
// contiguous, and lets read-path lookups build their map key from borrowed
// data without cloning anything.
package trie

// nodeID identifies a branch node. The root is always 0; leaves carry no id
// because no edge ever originates from a leaf.
type nodeID uint32

// edge uniquely identifies the node it points to, by naming the node it
// leaves and the key followed to get there.
type edge[K comparable] struct {
	from nodeID
	key  K
}

// target is what an edge points at: either an internal branch (by id) or a
// leaf holding a value. A target is never both, which is what keeps the trie
// prefix-free.
type target[V any] struct {
	leaf   bool
	branch nodeID
	value  V
}

// Trie is a prefix-free mapping from sequences of K to values of V.
//
// The degenerate case where the empty path itself holds a value is carried
// as the trivial flag: since the empty path is a prefix of every other path,
// a trivial trie can hold nothing else, and a non-empty trie rejects the
// empty path. That is an enforced invariant, not a convention.
type Trie[K comparable, V any] struct {
	edges   map[edge[K]]target[V]
	out     map[nodeID][]K // outgoing edge keys per branch, in insertion order
	nextID  nodeID
	trivial bool
	root    V
}

// New returns an empty Trie.
func New[K comparable, V any]() *Trie[K, V] {
	return &Trie[K, V]{
		edges: make(map[edge[K]]target[V]),
		out:   make(map[nodeID][]K),
		// 0 is reserved for the root
		nextID: 1,
	}
}

// Len reports the number of stored paths.
func (t *Trie[K, V]) Len() int {
	if t.trivial {
		return 1
	}
	n := 0
	for _, tgt := range t.edges {
		if tgt.leaf {
			n++
		}
	}
	return n
}

// Insert stores value at the given path. It reports false, leaving the trie
// unchanged, when the path conflicts with the prefix-free invariant: the
// path is a prefix of a stored path, a stored path is a prefix of it, or the
// path already holds a value.
func (t *Trie[K, V]) Insert(path []K, value V) bool {
	if len(path) == 0 {
		if t.trivial || len(t.edges) > 0 {
			return false
		}
		t.trivial = true
		t.root = value
		return true
	}

	view := t.MutView()
	ok := true
	for _, key := range path {
		view, ok = view.DescendOrCreate(key)
		if !ok {
			return false
		}
	}
	if _, exists := view.Value(); exists {
		return false
	}
	return view.SetValue(value)
}

// Get returns the value stored at exactly the given path. It reports false
// when the path does not exist or stops at a branch.
func (t *Trie[K, V]) Get(path []K) (V, bool) {
	view := t.View()
	ok := true
	for _, key := range path {
		view, ok = view.Descend(key)
		if !ok {
			var zero V
			return zero, false
		}
	}
	return view.Value()
}
