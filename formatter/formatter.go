// Package formatter renders macro build failures for terminal output.
package formatter

import (
	"errors"
	"strings"

	"github.com/fatih/color"

	"github.com/kylebrw/slang"
)

var (
	errorStyle    = color.New(color.FgRed, color.Bold)
	nameStyle     = color.New(color.FgYellow, color.Bold)
	fragmentStyle = color.New(color.FgCyan)
	caretStyle    = color.New(color.FgGreen, color.Bold)
)

// FormatBuildError renders a failure from building a macro store: a
// definition parse error with its offending fragment and a caret at the
// offset, a pattern conflict naming both macros, or an unmatched block. Any
// other error falls back to its message.
func FormatBuildError(err error) string {
	var parseErr *slang.ParseError
	if errors.As(err, &parseErr) {
		return formatFragment("definition parse error", parseErr.Msg, parseErr.Fragment, parseErr.Offset)
	}

	var conflictErr *slang.ConflictError
	if errors.As(err, &conflictErr) {
		var b strings.Builder
		b.WriteString(errorStyle.Sprint("pattern conflict: "))
		b.WriteString("macro ")
		b.WriteString(nameStyle.Sprintf("%q", conflictErr.Name))
		b.WriteString(" overlaps macro ")
		b.WriteString(nameStyle.Sprintf("%q", conflictErr.Existing))
		b.WriteString("\nno stored pattern may be a prefix of another\n")
		return b.String()
	}

	var blockErr *slang.UnmatchedBlockError
	if errors.As(err, &blockErr) {
		return formatFragment("unmatched block", "opening bracket is never closed", blockErr.Fragment, blockErr.Offset)
	}

	return errorStyle.Sprint("error: ") + err.Error() + "\n"
}

func formatFragment(kind, msg, fragment string, offset int) string {
	var b strings.Builder
	b.WriteString(errorStyle.Sprint(kind + ": "))
	b.WriteString(msg)
	b.WriteString("\n  ")
	b.WriteString(fragmentStyle.Sprint(fragment))
	b.WriteString("\n")
	if offset >= 0 && offset <= len(fragment) {
		b.WriteString("  ")
		b.WriteString(strings.Repeat(" ", offset))
		b.WriteString(caretStyle.Sprint("^"))
		b.WriteString("\n")
	}
	return b.String()
}
