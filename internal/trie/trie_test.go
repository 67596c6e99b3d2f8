package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertGet(t *testing.T) {
	tr := New[string, string]()

	require.True(t, tr.Insert([]string{"a", "a", "a"}, "A"))

	got, ok := tr.Get([]string{"a", "a", "a"})
	require.True(t, ok)
	assert.Equal(t, "A", got)
}

func TestInsertInsertGet(t *testing.T) {
	tr := New[string, string]()

	require.True(t, tr.Insert([]string{"a", "a", "a"}, "A"))
	require.True(t, tr.Insert([]string{"b", "b", "b"}, "B"))

	gotA, ok := tr.Get([]string{"a", "a", "a"})
	require.True(t, ok)
	assert.Equal(t, "A", gotA)

	gotB, ok := tr.Get([]string{"b", "b", "b"})
	require.True(t, ok)
	assert.Equal(t, "B", gotB)

	assert.Equal(t, 2, tr.Len())
}

func TestGetMisses(t *testing.T) {
	tr := New[string, int]()
	require.True(t, tr.Insert([]string{"a", "b", "c"}, 1))

	tests := []struct {
		name string
		path []string
	}{
		{name: "unknown path", path: []string{"x"}},
		{name: "stops at a branch", path: []string{"a", "b"}},
		{name: "past a leaf", path: []string{"a", "b", "c", "d"}},
		{name: "empty path on non-trivial trie", path: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tr.Get(tt.path)
			assert.False(t, ok)
		})
	}
}

func TestPrefixFreeRejection(t *testing.T) {
	t.Run("longer after shorter", func(t *testing.T) {
		tr := New[string, int]()
		require.True(t, tr.Insert([]string{"a"}, 1))
		assert.False(t, tr.Insert([]string{"a", "b"}, 2))
	})

	t.Run("shorter after longer", func(t *testing.T) {
		tr := New[string, int]()
		require.True(t, tr.Insert([]string{"a", "b"}, 1))
		assert.False(t, tr.Insert([]string{"a"}, 2))
	})

	t.Run("duplicate path", func(t *testing.T) {
		tr := New[string, int]()
		require.True(t, tr.Insert([]string{"a", "b"}, 1))
		assert.False(t, tr.Insert([]string{"a", "b"}, 2))

		// the original value survives the failed insert
		got, ok := tr.Get([]string{"a", "b"})
		require.True(t, ok)
		assert.Equal(t, 1, got)
	})

	t.Run("siblings are fine", func(t *testing.T) {
		tr := New[string, int]()
		require.True(t, tr.Insert([]string{"a", "b"}, 1))
		assert.True(t, tr.Insert([]string{"a", "c", "d"}, 2))
	})
}

func TestTrivialTrie(t *testing.T) {
	t.Run("empty path into empty trie", func(t *testing.T) {
		tr := New[string, int]()
		require.True(t, tr.Insert(nil, 42))

		got, ok := tr.Get(nil)
		require.True(t, ok)
		assert.Equal(t, 42, got)
		assert.Equal(t, 1, tr.Len())

		// the empty path is a prefix of everything, so nothing else fits
		assert.False(t, tr.Insert([]string{"a"}, 1))
	})

	t.Run("empty path into non-empty trie", func(t *testing.T) {
		tr := New[string, int]()
		require.True(t, tr.Insert([]string{"a"}, 1))
		assert.False(t, tr.Insert(nil, 42))
	})
}

func TestViewTraversal(t *testing.T) {
	tr := New[string, string]()
	require.True(t, tr.Insert([]string{"a", "b"}, "ab"))
	require.True(t, tr.Insert([]string{"a", "c"}, "ac"))

	root := tr.View()
	_, ok := root.Value()
	assert.False(t, ok, "root of a non-trivial trie has no value")
	assert.Equal(t, []string{"a"}, root.Edges())

	down, ok := root.Descend("a")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "c"}, down.Edges(), "edges keep insertion order")

	leaf, ok := down.Descend("b")
	require.True(t, ok)
	got, ok := leaf.Value()
	require.True(t, ok)
	assert.Equal(t, "ab", got)
	assert.Nil(t, leaf.Edges(), "a leaf has no outgoing edges")

	_, ok = down.Descend("x")
	assert.False(t, ok)

	_, ok = leaf.Descend("b")
	assert.False(t, ok, "cannot descend past a leaf")
}

func TestMutViewInvariants(t *testing.T) {
	tr := New[string, int]()
	require.True(t, tr.Insert([]string{"a", "b"}, 1))

	t.Run("set value on a branch fails", func(t *testing.T) {
		view, ok := tr.MutView().DescendOrCreate("a")
		require.True(t, ok)
		assert.False(t, view.SetValue(9))
	})

	t.Run("descend past a leaf fails", func(t *testing.T) {
		view, ok := tr.MutView().DescendOrCreate("a")
		require.True(t, ok)
		view, ok = view.DescendOrCreate("b")
		require.True(t, ok)
		_, ok = view.DescendOrCreate("c")
		assert.False(t, ok)
	})

	t.Run("set value on root of non-empty trie fails", func(t *testing.T) {
		assert.False(t, tr.MutView().SetValue(9))
	})
}
