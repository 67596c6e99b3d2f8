package macro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylebrw/slang/internal/tokenizer"
)

func TestParseDefinition(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantName    string
		wantPattern []PatternItem
		wantTmpl    Template
	}{
		{
			name:        "simple substitution",
			line:        "pi = 3.14159",
			wantName:    "pi",
			wantPattern: []PatternItem{MatchToken("pi")},
			wantTmpl:    Template{Text("3.14159")},
		},
		{
			name:     "function style",
			line:     "add(a, b) = :[a] + :[b]",
			wantName: "add",
			wantPattern: []PatternItem{
				MatchToken("add"),
				MatchToken("("),
				TokenVar(),
				MatchToken(","),
				TokenVar(),
				MatchToken(")"),
			},
			wantTmpl: Template{Var(0), Text(" + "), Var(1)},
		},
		{
			name:     "empty parameter list",
			line:     "now() = 1234",
			wantName: "now",
			wantPattern: []PatternItem{
				MatchToken("now"),
				MatchToken("("),
				MatchToken(")"),
			},
			wantTmpl: Template{Text("1234")},
		},
		{
			name:     "repeated parameter is a back-reference",
			line:     "same(a, a) = :[a]",
			wantName: "same",
			wantPattern: []PatternItem{
				MatchToken("same"),
				MatchToken("("),
				TokenVar(),
				MatchToken(","),
				MatchTokenVar(0),
				MatchToken(")"),
			},
			wantTmpl: Template{Var(0)},
		},
		{
			name:     "plus suffix makes a sequence variable",
			line:     "wrap(xs+) = <:[xs]>",
			wantName: "wrap",
			wantPattern: []PatternItem{
				MatchToken("wrap"),
				MatchToken("("),
				SequenceVar(),
				MatchToken(")"),
			},
			wantTmpl: Template{Text("<"), Var(0), Text(">")},
		},
		{
			name:     "block style",
			line:     "unless { ... } = if not :[body]",
			wantName: "unless",
			wantPattern: []PatternItem{
				MatchToken("unless"),
				Block(DelimBrace),
			},
			wantTmpl: Template{Text("if not "), Var(0)},
		},
		{
			name:        "template may hold an equals sign",
			line:        "is = a = b",
			wantName:    "is",
			wantPattern: []PatternItem{MatchToken("is")},
			wantTmpl:    Template{Text("a = b")},
		},
	}

	tk := tokenizer.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := ParseDefinition(tt.line, tk)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, def.Name)
			assert.Equal(t, tt.wantPattern, def.Pattern)
			assert.Equal(t, tt.wantTmpl, def.Template)
		})
	}
}

func TestParseDefinitionErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "missing equals", line: "pi 3.14"},
		{name: "missing name", line: "= x"},
		{name: "singleton name", line: ", = x"},
		{name: "unterminated parameter list", line: "f(a, b = x"},
		{name: "bad parameter separator", line: "f(a b) = x"},
		{name: "tokens after parameter list", line: "f(a) b = x"},
		{name: "unknown placeholder", line: "f(a) = :[b]"},
		{name: "unterminated placeholder", line: "f(a) = :[a"},
		{name: "unexpected token after name", line: "f [a] = x"},
	}

	tk := tokenizer.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefinition(tt.line, tk)
			require.Error(t, err)

			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseDefinitionUnmatchedBlock(t *testing.T) {
	tk := tokenizer.Default()

	_, err := ParseDefinition("unless { ... = x", tk)
	require.Error(t, err)

	var blockErr *UnmatchedBlockError
	require.ErrorAs(t, err, &blockErr)
	assert.Equal(t, "unless { ... = x", blockErr.Fragment)
}

func TestParseDefinitions(t *testing.T) {
	src := `
# arithmetic helpers
add(a, b) = :[a] + :[b]

pi = 3.14159
`
	tk := tokenizer.Default()
	defs, err := ParseDefinitions(src, tk)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "add", defs[0].Name)
	assert.Equal(t, "pi", defs[1].Name)
}
