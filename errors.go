package slang

import "github.com/kylebrw/slang/internal/macro"

// The build-time error kinds, aliased here so callers outside the module can
// match them with errors.As. Expansion itself never fails.
type (
	// ParseError reports a malformed macro definition.
	ParseError = macro.ParseError
	// ConflictError reports a macro whose pattern violates the prefix-free
	// invariant against one already loaded.
	ConflictError = macro.ConflictError
	// UnmatchedBlockError reports an opening bracket in a definition
	// pattern with no matching close.
	UnmatchedBlockError = macro.UnmatchedBlockError
)
