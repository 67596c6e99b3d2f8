// Package expander walks a token stream against a macro store's pattern
// trie, matching with capture, back-reference and block semantics, and
// renders the matched templates. Expansion is a single left-to-right pass:
// unmatched tokens pass through verbatim and rendered output is never
// re-tokenized or re-matched.
package expander

import (
	"strings"

	"github.com/kylebrw/slang/internal/macro"
	"github.com/kylebrw/slang/internal/tokenizer"
	"github.com/kylebrw/slang/internal/trie"
)

// Expander expands one token stream against a built Store. The store is
// read-only here, so one store may serve many Expanders concurrently as long
// as each works its own token stream.
type Expander struct {
	store *macro.Store
}

// New returns an Expander over store.
func New(store *macro.Store) *Expander {
	return &Expander{store: store}
}

// Expand rewrites tokens left to right. At each position it tries to match a
// stored macro pattern; on success the macro's template is rendered and
// expansion continues after the consumed span, otherwise the single first
// token is emitted unchanged, suffix included, and matching restarts at the
// next token.
func (e *Expander) Expand(tokens []tokenizer.Token) string {
	var out strings.Builder
	i := 0
	for i < len(tokens) {
		end, m, caps, ok := e.matchAt(tokens, i)
		if !ok {
			out.WriteString(tokens[i].Value)
			out.WriteString(tokens[i].Suffix)
			i++
			continue
		}
		render(&out, m.Template, caps)
		// keep the whitespace that followed the consumed span
		out.WriteString(tokens[end-1].Suffix)
		i = end
	}
	return out.String()
}

// capture is one positional variable: the span of input tokens it covers.
type capture struct {
	toks []tokenizer.Token
}

// text renders the captured span verbatim, internal suffixes included but
// the trailing suffix dropped (it belongs to whatever follows the capture).
func (c capture) text() string {
	var b strings.Builder
	for i, t := range c.toks {
		b.WriteString(t.Value)
		if i < len(c.toks)-1 {
			b.WriteString(t.Suffix)
		}
	}
	return b.String()
}

// matchAt attempts a full pattern match starting at position pos. On success
// it returns the position just past the consumed span, the matched macro and
// its captures.
func (e *Expander) matchAt(toks []tokenizer.Token, pos int) (int, macro.Macro, []capture, bool) {
	return e.walk(e.store.Root(), toks, pos, nil)
}

// walk advances the trie view across the token stream. At every node it
// either stops at a leaf or commits to the single highest-priority eligible
// edge: exact literal, then back-reference, then block, then token variable,
// then sequence variable. Only the sequence variable backtracks internally,
// over its own run length.
func (e *Expander) walk(view trie.View[macro.EdgeLabel, macro.Macro], toks []tokenizer.Token, pos int, caps []capture) (int, macro.Macro, []capture, bool) {
	if m, ok := view.Value(); ok {
		return pos, m, caps, true
	}

	label, ok := e.pick(view, toks, pos, caps)
	if !ok {
		return 0, macro.Macro{}, nil, false
	}
	next, _ := view.Descend(label)

	switch label.Kind {
	case macro.KindMatchToken, macro.KindMatchTokenVar:
		return e.walk(next, toks, pos+1, caps)

	case macro.KindTokenVar:
		return e.walk(next, toks, pos+1, snoc(caps, capture{toks[pos : pos+1]}))

	case macro.KindBlock:
		// pick already verified the close exists
		closeAt := findClose(toks, pos, label.Delim)
		blockCaps := caps
		if inner := e.store.Inner(label.Index); inner != nil {
			c, ok := e.matchExact(inner, toks[pos+1:closeAt], caps)
			if !ok {
				return 0, macro.Macro{}, nil, false
			}
			blockCaps = c
		}
		blockCaps = snoc(blockCaps, capture{toks[pos : closeAt+1]})
		return e.walk(next, toks, closeAt+1, blockCaps)

	case macro.KindSequenceVar:
		// greedy: longest run first, shrink until the rest of the pattern
		// matches what follows
		for run := len(toks) - pos; run >= 1; run-- {
			end, m, c, ok := e.walk(next, toks, pos+run, snoc(caps, capture{toks[pos : pos+run]}))
			if ok {
				return end, m, c, true
			}
		}
		return 0, macro.Macro{}, nil, false
	}

	return 0, macro.Macro{}, nil, false
}

// pick selects the highest-priority eligible outgoing edge at the current
// view for the current token, or reports that none is eligible.
func (e *Expander) pick(view trie.View[macro.EdgeLabel, macro.Macro], toks []tokenizer.Token, pos int, caps []capture) (macro.EdgeLabel, bool) {
	if pos >= len(toks) {
		return macro.EdgeLabel{}, false
	}
	cur := toks[pos].Value
	labels := view.Edges()

	for _, l := range labels {
		if l.Kind == macro.KindMatchToken && l.Lit == cur {
			return l, true
		}
	}

	backref, haveBackref := macro.EdgeLabel{}, false
	for _, l := range labels {
		if l.Kind != macro.KindMatchTokenVar || l.Index >= len(caps) {
			continue
		}
		if caps[l.Index].text() != cur {
			continue
		}
		if !haveBackref || l.Index < backref.Index {
			backref, haveBackref = l, true
		}
	}
	if haveBackref {
		return backref, true
	}

	for _, l := range labels {
		if l.Kind == macro.KindBlock && cur == l.Delim.Open() && findClose(toks, pos, l.Delim) >= 0 {
			return l, true
		}
	}

	for _, l := range labels {
		if l.Kind == macro.KindTokenVar {
			return l, true
		}
	}
	for _, l := range labels {
		if l.Kind == macro.KindSequenceVar {
			return l, true
		}
	}
	return macro.EdgeLabel{}, false
}

// matchExact matches a fixed pattern-item sequence against a token slice
// that must be consumed completely. It is the recursive matcher for block
// inner patterns.
func (e *Expander) matchExact(items []macro.PatternItem, toks []tokenizer.Token, caps []capture) ([]capture, bool) {
	if len(items) == 0 {
		if len(toks) == 0 {
			return caps, true
		}
		return nil, false
	}

	item := items[0]
	switch item.Kind {
	case macro.KindMatchToken:
		if len(toks) == 0 || toks[0].Value != item.Lit {
			return nil, false
		}
		return e.matchExact(items[1:], toks[1:], caps)

	case macro.KindMatchTokenVar:
		if len(toks) == 0 || item.Index >= len(caps) || caps[item.Index].text() != toks[0].Value {
			return nil, false
		}
		return e.matchExact(items[1:], toks[1:], caps)

	case macro.KindTokenVar:
		if len(toks) == 0 {
			return nil, false
		}
		return e.matchExact(items[1:], toks[1:], snoc(caps, capture{toks[:1]}))

	case macro.KindSequenceVar:
		for run := len(toks); run >= 1; run-- {
			if c, ok := e.matchExact(items[1:], toks[run:], snoc(caps, capture{toks[:run]})); ok {
				return c, true
			}
		}
		return nil, false

	case macro.KindBlock:
		if len(toks) == 0 || toks[0].Value != item.Delim.Open() {
			return nil, false
		}
		closeAt := findClose(toks, 0, item.Delim)
		if closeAt < 0 {
			return nil, false
		}
		blockCaps := caps
		if item.Inner != nil {
			c, ok := e.matchExact(item.Inner, toks[1:closeAt], caps)
			if !ok {
				return nil, false
			}
			blockCaps = c
		}
		blockCaps = snoc(blockCaps, capture{toks[:closeAt+1]})
		return e.matchExact(items[1:], toks[closeAt+1:], blockCaps)
	}
	return nil, false
}

// findClose returns the index of the closing bracket matching the opener at
// open, counting depth for that one delimiter kind only; other bracket kinds
// pass through uninterpreted. It returns -1 when the group never closes.
func findClose(toks []tokenizer.Token, open int, d macro.Delim) int {
	depth := 0
	for i := open; i < len(toks); i++ {
		switch toks[i].Value {
		case d.Open():
			depth++
		case d.Close():
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// render writes the template, substituting each variable reference with the
// literal captured span.
func render(b *strings.Builder, tmpl macro.Template, caps []capture) {
	for _, item := range tmpl {
		if item.IsVar {
			if item.Var < len(caps) {
				b.WriteString(caps[item.Var].text())
			}
			continue
		}
		b.WriteString(item.Text)
	}
}

// snoc appends to a fresh slice so sibling backtracking branches never share
// capture storage.
func snoc(caps []capture, c capture) []capture {
	out := make([]capture, len(caps)+1)
	copy(out, caps)
	out[len(caps)] = c
	return out
}
