// Package slang is a text macro-expansion engine. Macro definitions map
// token patterns to output templates; expansion rewrites an input token
// stream in a single left-to-right pass, substituting matched patterns and
// passing everything else through verbatim.
package slang

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kylebrw/slang/internal/expander"
	"github.com/kylebrw/slang/internal/macro"
	"github.com/kylebrw/slang/internal/tokenizer"
)

// MacroStore holds a built set of macros plus the tokenizer configuration
// used to read them. It is built once from definition sources and read-only
// afterwards; concurrent expansion passes may share one store.
type MacroStore struct {
	store     *macro.Store
	tokenizer *tokenizer.Tokenizer
}

// BuildMacroStore parses every definition source (the plain-text `lhs = rhs`
// line format) and loads the result. It fails on the first malformed
// definition or pattern conflict, naming the offending macro.
func BuildMacroStore(sources []string) (*MacroStore, error) {
	ms := &MacroStore{
		store:     macro.NewStore(),
		tokenizer: tokenizer.Default(),
	}
	for _, src := range sources {
		defs, err := macro.ParseDefinitions(src, ms.tokenizer)
		if err != nil {
			return nil, err
		}
		if err := ms.add(defs); err != nil {
			return nil, err
		}
	}
	return ms, nil
}

// LoadMacroFiles builds a store from macro definition files. Files with a
// .yaml or .yml extension are decoded as YAML macro sets; everything else is
// read as the plain-text line format.
func LoadMacroFiles(paths ...string) (*MacroStore, error) {
	ms := &MacroStore{
		store:     macro.NewStore(),
		tokenizer: tokenizer.Default(),
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading macro file: %w", err)
		}

		var defs []macro.Definition
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			defs, err = macro.ParseSetFile(data, ms.tokenizer)
		default:
			defs, err = macro.ParseDefinitions(string(data), ms.tokenizer)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := ms.add(defs); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return ms, nil
}

func (ms *MacroStore) add(defs []macro.Definition) error {
	for _, def := range defs {
		if err := ms.store.Add(def); err != nil {
			return err
		}
	}
	return nil
}

// Len reports the number of loaded macros.
func (ms *MacroStore) Len() int {
	return ms.store.Len()
}

// Expand rewrites input against the store. It never fails: token sequences
// matching no macro are emitted unchanged, whitespace included.
func Expand(input string, store *MacroStore) string {
	tokens := store.tokenizer.Tokenize(input)
	return expander.New(store.store).Expand(tokens)
}
