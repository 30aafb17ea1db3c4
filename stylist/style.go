package stylist

import "fmt"

// Style identifies one supported case convention. The set is closed: every
// style is defined by a per-word casing rule for the first word, a casing
// rule for subsequent words, and a join separator, dispatched through a
// table rather than runtime polymorphism.
type Style int

const (
	// StyleCamel is camelCase: first word lowercased, subsequent words
	// capitalized, no separator.
	StyleCamel Style = iota

	// StylePascal is PascalCase: every word capitalized, no separator.
	StylePascal

	// StyleSnake is snake_case: every word lowercased, joined with "_".
	StyleSnake

	// StyleKebab is kebab-case: every word lowercased, joined with "-".
	StyleKebab

	// StyleTrain is Train-Case: every word capitalized, joined with "-".
	StyleTrain

	// StyleConstant is CONSTANT_CASE: every word uppercased, joined with "_".
	StyleConstant

	// StyleSentence is Sentence case: first word capitalized, subsequent
	// words lowercased, joined with " ".
	StyleSentence

	// StyleTitle is Title Case: every word capitalized, joined with " ".
	StyleTitle

	// StyleLower is lower case: every word lowercased, joined with " ".
	StyleLower

	// StyleUpper is UPPER CASE: every word uppercased, joined with " ".
	StyleUpper
)

// rule is the rendering policy carried by a style.
type rule struct {
	first     casing
	rest      casing
	separator string
}

// styleRules maps each style to its rendering policy. Indexed by Style.
var styleRules = [...]rule{
	StyleCamel:    {casingLower, casingCapitalize, ""},
	StylePascal:   {casingCapitalize, casingCapitalize, ""},
	StyleSnake:    {casingLower, casingLower, "_"},
	StyleKebab:    {casingLower, casingLower, "-"},
	StyleTrain:    {casingCapitalize, casingCapitalize, "-"},
	StyleConstant: {casingUpper, casingUpper, "_"},
	StyleSentence: {casingCapitalize, casingLower, " "},
	StyleTitle:    {casingCapitalize, casingCapitalize, " "},
	StyleLower:    {casingLower, casingLower, " "},
	StyleUpper:    {casingUpper, casingUpper, " "},
}

// styleNames maps each style to its short name, used by ParseStyle, the CLI,
// and the MCP tools. Indexed by Style.
var styleNames = [...]string{
	StyleCamel:    "camel",
	StylePascal:   "pascal",
	StyleSnake:    "snake",
	StyleKebab:    "kebab",
	StyleTrain:    "train",
	StyleConstant: "constant",
	StyleSentence: "sentence",
	StyleTitle:    "title",
	StyleLower:    "lower",
	StyleUpper:    "upper",
}

// displayNames maps each style to the conventional rendering of its own
// name. Indexed by Style.
var displayNames = [...]string{
	StyleCamel:    "camelCase",
	StylePascal:   "PascalCase",
	StyleSnake:    "snake_case",
	StyleKebab:    "kebab-case",
	StyleTrain:    "Train-Case",
	StyleConstant: "CONSTANT_CASE",
	StyleSentence: "Sentence case",
	StyleTitle:    "Title Case",
	StyleLower:    "lower case",
	StyleUpper:    "UPPER CASE",
}

// String returns the short name of a style (e.g. "camel", "snake").
func (s Style) String() string {
	if s.valid() {
		return styleNames[s]
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// DisplayName returns the conventional rendering of the style's own name
// (e.g. "camelCase", "snake_case").
func (s Style) DisplayName() string {
	if s.valid() {
		return displayNames[s]
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// Separator returns the literal string joined between rendered words.
func (s Style) Separator() string {
	if s.valid() {
		return styleRules[s].separator
	}
	return ""
}

func (s Style) valid() bool {
	return s >= StyleCamel && s <= StyleUpper
}

// Styles returns all supported styles in declaration order.
func Styles() []Style {
	return []Style{
		StyleCamel, StylePascal, StyleSnake, StyleKebab, StyleTrain,
		StyleConstant, StyleSentence, StyleTitle, StyleLower, StyleUpper,
	}
}

// StyleNames returns the short names of all supported styles in declaration
// order, for use in usage and error messages.
func StyleNames() []string {
	styles := Styles()
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.String()
	}
	return names
}

// ParseStyle resolves a short style name (e.g. "camel", "snake") to its
// Style. Unknown names are the only error this package produces.
func ParseStyle(name string) (Style, error) {
	for _, s := range Styles() {
		if styleNames[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("stylist: unknown style %q: must be one of: %v", name, StyleNames())
}
