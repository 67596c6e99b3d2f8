package macro

// TemplateItem is either literal output text or a reference to a captured
// variable by its positional index.
type TemplateItem struct {
	Var   int
	Text  string
	IsVar bool
}

// Text returns a literal template item.
func Text(data string) TemplateItem {
	return TemplateItem{Text: data}
}

// Var returns a variable-reference template item.
func Var(index int) TemplateItem {
	return TemplateItem{Var: index, IsVar: true}
}

// Template is the ordered output recipe of a macro. Variable references are
// rendered as the verbatim input slice the variable captured, internal
// whitespace included.
type Template []TemplateItem

// Definition pairs a macro's matching pattern with its output template. The
// pattern always begins with a MatchToken naming the macro.
type Definition struct {
	Name     string
	Pattern  []PatternItem
	Template Template
}
