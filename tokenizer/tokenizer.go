package tokenizer

import (
	"strings"
	"unicode"
)

// runeClass is the character classification driving word boundaries.
// Every rune falls into exactly one class, so tokenization is total.
type runeClass int

const (
	classSeparator runeClass = iota
	classLower
	classUpper
	classDigit
)

// isMark reports whether r is a combining mark. Marks carry no class of
// their own: they extend whatever rune they follow, so tokenization keeps
// them attached to the current word. Full Unicode case mapping can produce
// them mid-word (lowercasing İ yields "i" plus a combining dot), and
// splitting there would break round-tripping of rendered output.
func isMark(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Mc)
}

// classOf classifies a single rune. Title-case runes count as uppercase.
// Uncased letters (Han, kana, etc.) count as lowercase so they form words
// instead of being dropped as separators.
func classOf(r rune) runeClass {
	switch {
	case unicode.IsUpper(r) || unicode.IsTitle(r):
		return classUpper
	case unicode.IsLetter(r):
		return classLower
	case unicode.IsDigit(r):
		return classDigit
	default:
		return classSeparator
	}
}

// nextClass returns the class of the first non-mark rune after index i, or
// classSeparator when none remains. Used for the one-rune acronym lookahead.
func nextClass(runes []rune, i int) runeClass {
	for j := i + 1; j < len(runes); j++ {
		if !isMark(runes[j]) {
			return classOf(runes[j])
		}
	}
	return classSeparator
}

// Tokenize splits input into an ordered sequence of words.
//
// The input is scanned left to right, with a boundary introduced:
//
//   - at every separator rune (the separator is dropped, never emitted)
//   - between a lowercase letter and an uppercase letter ("helloWorld")
//   - between a letter and a digit in either direction ("abc123")
//   - before the last uppercase letter of an uppercase run that is followed
//     by a lowercase letter ("HTTPServer" splits as "HTTP", "Server")
//
// Combining marks never introduce a boundary: a mark stays attached to the
// word of the rune it follows (a leading mark with no word to extend is
// dropped). Full Unicode case mapping can emit marks mid-word, and word
// sequences produced from rendered output must tokenize identically.
//
// No word in the result is empty and none contains a separator rune. Inputs
// with no letters or digits, including the empty string, yield a nil slice.
func Tokenize(input string) []string {
	if input == "" {
		return nil
	}

	runes := []rune(input)
	var words []string
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}

	prev := classSeparator
	for i, r := range runes {
		if isMark(r) {
			// A mark inherits the class of the rune it extends; a mark
			// with no word to attach to is dropped like a separator.
			if word.Len() > 0 {
				word.WriteRune(r)
			}
			continue
		}

		cls := classOf(r)
		if cls == classSeparator {
			flush()
			prev = cls
			continue
		}

		if word.Len() > 0 {
			switch {
			case cls != prev && !(prev == classUpper && cls == classLower):
				// Covers lower→upper and letter↔digit transitions. An
				// upper→lower transition continues the word ("Hello").
				flush()
			case cls == classUpper && prev == classUpper && nextClass(runes, i) == classLower:
				// Acronym boundary: the last uppercase letter of a run
				// belongs to the following lowercase word.
				flush()
			}
		}

		word.WriteRune(r)
		prev = cls
	}
	flush()

	return words
}
