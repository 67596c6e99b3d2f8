package formatter

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylebrw/slang"
)

func init() {
	color.NoColor = true
}

func TestFormatParseError(t *testing.T) {
	err := &slang.ParseError{Fragment: "f(a", Offset: 3, Msg: "missing closing parenthesis"}

	out := FormatBuildError(err)
	assert.Contains(t, out, "definition parse error: missing closing parenthesis")
	assert.Contains(t, out, "f(a")

	// caret sits under the offset
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "     ^", lines[2])
}

func TestFormatConflictError(t *testing.T) {
	err := &slang.ConflictError{Name: "f", Existing: "g"}

	out := FormatBuildError(err)
	assert.Contains(t, out, "pattern conflict")
	assert.Contains(t, out, `"f"`)
	assert.Contains(t, out, `"g"`)
}

func TestFormatUnmatchedBlockError(t *testing.T) {
	err := &slang.UnmatchedBlockError{Fragment: "loop {", Offset: 5}

	out := FormatBuildError(err)
	assert.Contains(t, out, "unmatched block")
	assert.Contains(t, out, "loop {")
}

func TestFormatWrappedError(t *testing.T) {
	// errors wrapped with file context still format by kind
	wrapped := fmt.Errorf("macros.slang: %w", &slang.ParseError{Fragment: "x", Offset: 0, Msg: "bad"})
	out := FormatBuildError(wrapped)
	assert.Contains(t, out, "definition parse error: bad")
}

func TestFormatUnknownError(t *testing.T) {
	out := FormatBuildError(errors.New("boom"))
	assert.Contains(t, out, "error: boom")
}
