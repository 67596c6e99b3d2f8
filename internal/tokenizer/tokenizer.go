// Package tokenizer splits raw text into tokens that carry their trailing
// whitespace, so the original input can be reconstructed from the token
// stream without loss.
package tokenizer

// Token is one unit of input. Value holds the significant text (a word, an
// operator, or a single singleton character) and Suffix holds the run of
// separator characters that immediately follows it. Both are slices of the
// original input: concatenating Value and Suffix of every token in order
// reproduces the input exactly.
type Token struct {
	Value  string
	Suffix string
}

// DefaultSingletons are the characters that always form their own token,
// even with no surrounding separators.
const DefaultSingletons = "()[]{},:;"

// DefaultSeparators are the characters absorbed into token suffixes.
const DefaultSeparators = " \t\r\n"

// Tokenizer splits text according to two character classes: singletons are
// always isolated into one-character tokens, separators are never part of a
// value and always absorbed into the preceding token's suffix. Everything
// else accumulates into the current value.
type Tokenizer struct {
	singletons map[byte]bool
	separators map[byte]bool
}

// New returns a Tokenizer for the given singleton and separator sets. Both
// sets are byte sets; multi-byte runes always accumulate into values.
func New(singletons, separators string) *Tokenizer {
	t := &Tokenizer{
		singletons: make(map[byte]bool, len(singletons)),
		separators: make(map[byte]bool, len(separators)),
	}
	for i := 0; i < len(singletons); i++ {
		t.singletons[singletons[i]] = true
	}
	for i := 0; i < len(separators); i++ {
		t.separators[separators[i]] = true
	}
	return t
}

// Default returns a Tokenizer with the default singleton and separator sets.
func Default() *Tokenizer {
	return New(DefaultSingletons, DefaultSeparators)
}

// Tokenize splits input into its full token sequence. It consumes the whole
// input, produces zero tokens for empty input, and keeps no state between
// calls.
func (t *Tokenizer) Tokenize(input string) []Token {
	var tokens []Token
	for {
		tok, rest := t.readToken(input)
		if tok.Value == "" && tok.Suffix == "" {
			break
		}
		tokens = append(tokens, tok)
		input = rest
	}
	return tokens
}

// readToken reads one value and its trailing separator run from the front of
// input. Both parts may be empty only at end of input.
func (t *Tokenizer) readToken(input string) (Token, string) {
	valueEnd := 0
	if len(input) > 0 {
		switch c := input[0]; {
		case t.separators[c]:
			// empty value, the separator run becomes the suffix
		case t.singletons[c]:
			valueEnd = 1
		default:
			valueEnd = 1
			for valueEnd < len(input) && !t.singletons[input[valueEnd]] && !t.separators[input[valueEnd]] {
				valueEnd++
			}
		}
	}

	suffixEnd := valueEnd
	for suffixEnd < len(input) && t.separators[input[suffixEnd]] {
		suffixEnd++
	}

	tok := Token{
		Value:  input[:valueEnd],
		Suffix: input[valueEnd:suffixEnd],
	}
	return tok, input[suffixEnd:]
}
