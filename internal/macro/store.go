package macro

import (
	"github.com/kylebrw/slang/internal/trie"
)

// Macro is the value stored at a pattern's trie leaf.
type Macro struct {
	Name     string
	Template Template
}

// Store keeps loaded macros in a prefix-free trie keyed by pattern items.
// Patterns are prefix-free over item kinds, not captured values: two
// different literals are two different edges, while every TokenVar is the
// same edge regardless of what it eventually captures.
//
// A Store is built once, before any expansion, and is read-only afterwards;
// concurrent expansion passes may share it.
type Store struct {
	trie *trie.Trie[EdgeLabel, Macro]

	// interned block inner patterns, addressed by EdgeLabel.Index
	blocks []blockPattern
	ids    map[string]int

	// loaded label paths, kept to name the other side of a conflict
	loaded []loadedPattern
}

type blockPattern struct {
	delim Delim
	inner []PatternItem
}

type loadedPattern struct {
	name   string
	labels []EdgeLabel
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		trie: trie.New[EdgeLabel, Macro](),
		ids:  make(map[string]int),
	}
}

// Add loads one definition, returning a ConflictError when its pattern
// violates the prefix-free invariant against an already loaded macro.
func (s *Store) Add(def Definition) error {
	if len(def.Pattern) == 0 {
		// an empty pattern would match everywhere and consume nothing
		return &ParseError{Fragment: def.Name, Msg: "macro pattern must not be empty"}
	}

	labels := make([]EdgeLabel, len(def.Pattern))
	for i, item := range def.Pattern {
		labels[i] = s.label(item)
	}

	if ok := s.trie.Insert(labels, Macro{Name: def.Name, Template: def.Template}); !ok {
		return &ConflictError{Name: def.Name, Existing: s.conflictWith(labels)}
	}
	s.loaded = append(s.loaded, loadedPattern{name: def.Name, labels: labels})
	return nil
}

// Len reports the number of loaded macros.
func (s *Store) Len() int {
	return len(s.loaded)
}

// Root returns a read view of the pattern trie positioned at its root.
func (s *Store) Root() trie.View[EdgeLabel, Macro] {
	return s.trie.View()
}

// Inner returns the interned inner pattern for a block edge label. A nil
// result leaves the block's contents unconstrained.
func (s *Store) Inner(id int) []PatternItem {
	if id < 0 || id >= len(s.blocks) {
		return nil
	}
	return s.blocks[id].inner
}

// label converts a pattern item to its comparable trie-edge form, interning
// block inner patterns so structurally equal blocks share an edge.
func (s *Store) label(item PatternItem) EdgeLabel {
	if item.Kind != KindBlock {
		return EdgeLabel{Kind: item.Kind, Lit: item.Lit, Index: item.Index}
	}

	enc := item.Delim.Open() + " " + encodePattern(item.Inner)
	id, ok := s.ids[enc]
	if !ok {
		id = len(s.blocks)
		s.blocks = append(s.blocks, blockPattern{delim: item.Delim, inner: item.Inner})
		s.ids[enc] = id
	}
	return EdgeLabel{Kind: KindBlock, Index: id, Delim: item.Delim}
}

// conflictWith names the loaded macro whose label path is a prefix of
// labels, or of which labels is a prefix.
func (s *Store) conflictWith(labels []EdgeLabel) string {
	for _, p := range s.loaded {
		if isPrefix(p.labels, labels) || isPrefix(labels, p.labels) {
			return p.name
		}
	}
	return ""
}

func isPrefix(short, long []EdgeLabel) bool {
	if len(short) > len(long) {
		return false
	}
	for i, l := range short {
		if long[i] != l {
			return false
		}
	}
	return true
}
