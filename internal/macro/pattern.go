// Package macro holds the pattern/template model for macro definitions, the
// definition-source parsers, and the Store that keeps loaded macros in a
// prefix-free trie keyed by pattern items.
package macro

import (
	"fmt"
	"strings"
)

// ItemKind discriminates the pattern item sum type.
type ItemKind int

const (
	// KindMatchToken requires a literal token value verbatim.
	KindMatchToken ItemKind = iota
	// KindTokenVar captures exactly one token as a new positional variable.
	KindTokenVar
	// KindMatchTokenVar requires the current token to equal an earlier
	// capture (a back-reference).
	KindMatchTokenVar
	// KindSequenceVar captures one or more contiguous tokens as a new
	// positional variable.
	KindSequenceVar
	// KindBlock requires a balanced bracket group and captures its whole
	// span as a new positional variable.
	KindBlock
)

// Delim identifies a bracket pair for block patterns by its opening
// character: '(', '[' or '{'.
type Delim byte

const (
	DelimParen   Delim = '('
	DelimBracket Delim = '['
	DelimBrace   Delim = '{'
)

// Open returns the opening bracket as a token value.
func (d Delim) Open() string {
	return string(byte(d))
}

// Close returns the closing bracket as a token value.
func (d Delim) Close() string {
	switch d {
	case DelimParen:
		return ")"
	case DelimBracket:
		return "]"
	case DelimBrace:
		return "}"
	}
	return ""
}

// PatternItem is one step of a macro pattern. Kind selects which of the
// remaining fields are meaningful.
type PatternItem struct {
	Kind  ItemKind
	Lit   string        // KindMatchToken: the required literal token value
	Index int           // KindMatchTokenVar: the referenced capture index
	Delim Delim         // KindBlock: the bracket kind
	Inner []PatternItem // KindBlock: inner pattern; nil leaves contents unconstrained
}

// MatchToken returns a literal-token pattern item.
func MatchToken(value string) PatternItem {
	return PatternItem{Kind: KindMatchToken, Lit: value}
}

// TokenVar returns a single-token capture item.
func TokenVar() PatternItem {
	return PatternItem{Kind: KindTokenVar}
}

// MatchTokenVar returns a back-reference item against capture index.
func MatchTokenVar(index int) PatternItem {
	return PatternItem{Kind: KindMatchTokenVar, Index: index}
}

// SequenceVar returns a multi-token capture item.
func SequenceVar() PatternItem {
	return PatternItem{Kind: KindSequenceVar}
}

// Block returns a bracketed-group item. A nil inner pattern accepts any
// balanced contents.
func Block(delim Delim, inner ...PatternItem) PatternItem {
	return PatternItem{Kind: KindBlock, Delim: delim, Inner: inner}
}

// String renders the item in the canonical form used for interning and
// diagnostics, e.g. `tok(foo)`, `var`, `ref(1)`, `seq`, `block({ tok(x))`.
func (p PatternItem) String() string {
	switch p.Kind {
	case KindMatchToken:
		return fmt.Sprintf("tok(%s)", p.Lit)
	case KindTokenVar:
		return "var"
	case KindMatchTokenVar:
		return fmt.Sprintf("ref(%d)", p.Index)
	case KindSequenceVar:
		return "seq"
	case KindBlock:
		return fmt.Sprintf("block(%s %s)", p.Delim.Open(), encodePattern(p.Inner))
	}
	return "unknown"
}

// encodePattern renders a pattern in canonical form. Structurally equal
// patterns always encode identically, which is what block interning relies
// on.
func encodePattern(items []PatternItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return strings.Join(parts, " ")
}

// EdgeLabel is the comparable trie-edge form of a PatternItem. Block inner
// patterns are interned by the Store, so two structurally equal blocks carry
// the same Index and therefore map onto one edge.
type EdgeLabel struct {
	Kind  ItemKind
	Lit   string // KindMatchToken literal
	Index int    // back-reference index, or interned block id
	Delim Delim  // KindBlock bracket kind
}
