package macro

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kylebrw/slang/internal/tokenizer"
)

// SetEntry is one macro in a YAML macro-set file. Pattern is the definition
// left-hand side (`add(a, b)`) and Template the output text; Name is
// informational and defaults to the pattern's macro name.
type SetEntry struct {
	Name     string `yaml:"name,omitempty"`
	Pattern  string `yaml:"pattern"`
	Template string `yaml:"template"`
}

// SetFile is the on-disk form of a YAML macro set:
//
//	macros:
//	  - name: add
//	    pattern: add(a, b)
//	    template: ":[a] + :[b]"
type SetFile struct {
	Macros []SetEntry `yaml:"macros"`
}

// ParseSetFile decodes a YAML macro set and parses every entry into a
// Definition.
func ParseSetFile(data []byte, tk *tokenizer.Tokenizer) ([]Definition, error) {
	var set SetFile
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("decoding macro set: %w", err)
	}

	defs := make([]Definition, 0, len(set.Macros))
	for _, entry := range set.Macros {
		pattern, vars, err := parsePatternSource(entry.Pattern, entry.Pattern, tk)
		if err != nil {
			return nil, err
		}
		tmpl, err := parseTemplate(entry.Template, vars)
		if err != nil {
			return nil, err
		}
		defs = append(defs, Definition{Name: pattern[0].Lit, Pattern: pattern, Template: tmpl})
	}
	return defs, nil
}
