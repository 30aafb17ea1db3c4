package stylist

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// casing is a per-word letter transformation.
type casing int

const (
	casingLower casing = iota
	casingUpper
	casingCapitalize
)

// caser builds the x/text caser implementing this casing rule. Casers are
// stateful and not safe for concurrent use, so one is built per Render call
// rather than shared at package level.
func (c casing) caser() cases.Caser {
	switch c {
	case casingUpper:
		return cases.Upper(language.Und)
	case casingCapitalize:
		// Title maps the first letter to its Unicode title case and
		// lowercases the remainder.
		return cases.Title(language.Und)
	default:
		return cases.Lower(language.Und)
	}
}

// Render joins words under the style's casing and separator rules. The first
// word uses the style's first-word casing, subsequent words the rest-word
// casing. An empty sequence renders to "" for every style.
func Render(words []string, style Style) string {
	if len(words) == 0 || !style.valid() {
		return ""
	}

	r := styleRules[style]
	first := r.first.caser()
	rest := r.rest.caser()

	var b strings.Builder
	for i, word := range words {
		if i == 0 {
			b.WriteString(first.String(word))
			continue
		}
		b.WriteString(r.separator)
		b.WriteString(rest.String(word))
	}
	return b.String()
}
