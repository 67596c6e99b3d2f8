package macro

import (
	"strings"

	"github.com/kylebrw/slang/internal/tokenizer"
)

// ParseDefinitions parses one macro-definition source. Each non-blank line
// holds one definition of the form `lhs = rhs`; lines starting with '#' are
// comments. The left-hand side is one of three forms:
//
//	name                     simple substitution
//	name(p1, p2, ...)        function style; parameters capture one token each
//	name { ... }             block style; the braces capture a balanced group
//
// The right-hand side is the output template; captured values are referenced
// with the placeholder syntax `:[name]`. A block-style macro's captured span
// is referenced as `:[body]`. In a parameter list, repeating a name turns
// the later occurrence into a back-reference, and a trailing '+' makes the
// parameter capture a sequence of one or more tokens.
func ParseDefinitions(src string, tk *tokenizer.Tokenizer) ([]Definition, error) {
	var defs []Definition
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		def, err := ParseDefinition(trimmed, tk)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// ParseDefinition parses a single `lhs = rhs` definition line.
func ParseDefinition(line string, tk *tokenizer.Tokenizer) (Definition, error) {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return Definition{}, &ParseError{Fragment: line, Offset: len(line), Msg: "missing '=' between pattern and template"}
	}
	lhs := line[:eq]
	rhs := strings.TrimSpace(line[eq+1:])

	pattern, vars, err := parsePatternSource(lhs, line, tk)
	if err != nil {
		return Definition{}, err
	}

	tmpl, err := parseTemplate(rhs, vars)
	if err != nil {
		return Definition{}, err
	}

	return Definition{Name: pattern[0].Lit, Pattern: pattern, Template: tmpl}, nil
}

// parsePatternSource parses the left-hand side of a definition into pattern
// items plus the placeholder-name to capture-index table for the template.
func parsePatternSource(lhs, line string, tk *tokenizer.Tokenizer) ([]PatternItem, map[string]int, error) {
	toks := tk.Tokenize(lhs)
	if len(toks) == 0 || toks[0].Value == "" {
		return nil, nil, &ParseError{Fragment: line, Offset: 0, Msg: "missing macro name"}
	}
	name := toks[0].Value
	if len(name) == 1 && strings.ContainsAny(name, tokenizer.DefaultSingletons) {
		return nil, nil, &ParseError{Fragment: line, Offset: 0, Msg: "macro name must not be a singleton character"}
	}

	pattern := []PatternItem{MatchToken(name)}
	vars := make(map[string]int)

	if len(toks) == 1 {
		return pattern, vars, nil
	}

	switch toks[1].Value {
	case "(":
		rest, err := parseParamList(toks[2:], line, &pattern, vars)
		if err != nil {
			return nil, nil, err
		}
		if len(rest) != 0 {
			return nil, nil, &ParseError{Fragment: line, Offset: len(lhs), Msg: "unexpected tokens after parameter list"}
		}
		return pattern, vars, nil

	case "{":
		if err := checkBalancedBraces(toks[1:], line); err != nil {
			return nil, nil, err
		}
		pattern = append(pattern, Block(DelimBrace))
		// the whole brace group is capture 0
		vars[BlockPlaceholder] = 0
		return pattern, vars, nil

	default:
		return nil, nil, &ParseError{Fragment: line, Offset: strings.Index(line, toks[1].Value), Msg: "expected '(' or '{' after macro name"}
	}
}

// BlockPlaceholder is the reserved template placeholder that names the span
// captured by a block-style macro's brace group.
const BlockPlaceholder = "body"

// parseParamList consumes `p1, p2, ...)` and appends the corresponding
// pattern items. The parens and commas become literal items, so the
// invocation is matched with its punctuation verbatim.
func parseParamList(toks []tokenizer.Token, line string, pattern *[]PatternItem, vars map[string]int) ([]tokenizer.Token, error) {
	captures := 0

	if len(toks) > 0 && toks[0].Value == ")" {
		*pattern = append(*pattern, MatchToken("("), MatchToken(")"))
		return toks[1:], nil
	}

	*pattern = append(*pattern, MatchToken("("))
	for {
		if len(toks) == 0 {
			return nil, &ParseError{Fragment: line, Offset: len(line), Msg: "unterminated parameter list"}
		}
		name := toks[0].Value
		seq := strings.HasSuffix(name, "+")
		if seq {
			name = strings.TrimSuffix(name, "+")
		}
		if name == "" || (len(name) == 1 && strings.ContainsAny(name, tokenizer.DefaultSingletons)) {
			return nil, &ParseError{Fragment: line, Offset: strings.Index(line, toks[0].Value), Msg: "invalid parameter name"}
		}

		if idx, seen := vars[name]; seen {
			// a repeated parameter is a back-reference, not a new capture
			*pattern = append(*pattern, MatchTokenVar(idx))
		} else if seq {
			*pattern = append(*pattern, SequenceVar())
			vars[name] = captures
			captures++
		} else {
			*pattern = append(*pattern, TokenVar())
			vars[name] = captures
			captures++
		}
		toks = toks[1:]

		if len(toks) == 0 {
			return nil, &ParseError{Fragment: line, Offset: len(line), Msg: "unterminated parameter list"}
		}
		switch toks[0].Value {
		case ",":
			*pattern = append(*pattern, MatchToken(","))
			toks = toks[1:]
		case ")":
			*pattern = append(*pattern, MatchToken(")"))
			return toks[1:], nil
		default:
			return nil, &ParseError{Fragment: line, Offset: strings.Index(line, toks[0].Value), Msg: "expected ',' or ')' in parameter list"}
		}
	}
}

// checkBalancedBraces verifies that a block-style left-hand side closes its
// opening brace and ends there. The contents between the braces are not
// interpreted; the block matches any balanced group at invocation time.
func checkBalancedBraces(toks []tokenizer.Token, line string) error {
	depth := 0
	for i, t := range toks {
		switch t.Value {
		case "{":
			depth++
		case "}":
			depth--
			if depth == 0 {
				if i != len(toks)-1 {
					return &ParseError{Fragment: line, Offset: strings.LastIndexByte(line, '}'), Msg: "unexpected tokens after block"}
				}
				return nil
			}
		}
	}
	return &UnmatchedBlockError{Fragment: line, Offset: strings.IndexByte(line, '{')}
}

// parseTemplate scans the template text for `:[name]` placeholders and
// resolves them to capture indices. Everything else is literal text.
func parseTemplate(text string, vars map[string]int) (Template, error) {
	var tmpl Template
	start := 0
	i := 0
	for i < len(text) {
		if text[i] != ':' || i+1 >= len(text) || text[i+1] != '[' {
			i++
			continue
		}
		end := strings.IndexByte(text[i+2:], ']')
		if end < 0 {
			return nil, &ParseError{Fragment: text, Offset: i, Msg: "unterminated placeholder"}
		}
		name := text[i+2 : i+2+end]
		idx, ok := vars[name]
		if !ok {
			return nil, &ParseError{Fragment: text, Offset: i, Msg: "unknown placeholder :[" + name + "]"}
		}
		if i > start {
			tmpl = append(tmpl, Text(text[start:i]))
		}
		tmpl = append(tmpl, Var(idx))
		i += 2 + end + 1
		start = i
	}
	if start < len(text) {
		tmpl = append(tmpl, Text(text[start:]))
	}
	return tmpl, nil
}
