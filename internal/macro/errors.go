package macro

import "fmt"

// ParseError reports a malformed macro definition. Fragment is the offending
// source text and Offset a byte position inside it.
type ParseError struct {
	Fragment string
	Offset   int
	Msg      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed macro definition %q at offset %d: %s", e.Fragment, e.Offset, e.Msg)
}

// ConflictError reports a macro whose pattern violates the prefix-free
// invariant against one already loaded.
type ConflictError struct {
	Name     string
	Existing string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("macro %q conflicts with already loaded macro %q: patterns overlap as prefixes", e.Name, e.Existing)
}

// UnmatchedBlockError reports an opening bracket in a definition pattern
// with no matching close.
type UnmatchedBlockError struct {
	Fragment string
	Offset   int
}

func (e *UnmatchedBlockError) Error() string {
	return fmt.Sprintf("unmatched block open in %q at offset %d", e.Fragment, e.Offset)
}
