package stylist

import "github.com/calebmer/inflections/tokenizer"

// Convert renders input in this style: the input is tokenized and the words
// re-joined under the style's rules. Total for any Unicode input.
func (s Style) Convert(input string) string {
	return Render(tokenizer.Tokenize(input), s)
}

// Matches reports whether input is already rendered in this style, defined
// as exact round-trip equality: Convert(input) == input. The empty string
// matches every style.
func (s Style) Matches(input string) bool {
	return s.Convert(input) == input
}

// MatchingStyles returns every style that input already conforms to, in
// declaration order. The empty string matches all styles; a string like
// "hello" matches several (camel, snake, kebab, lower).
func MatchingStyles(input string) []Style {
	var matched []Style
	for _, s := range Styles() {
		if s.Matches(input) {
			matched = append(matched, s)
		}
	}
	return matched
}

// ToCamelCase converts any case into camelCase.
//
//	ToCamelCase("Hello World") // "helloWorld"
//	ToCamelCase("HELLO_WORLD") // "helloWorld"
func ToCamelCase(input string) string { return StyleCamel.Convert(input) }

// IsCamelCase checks whether a string is camelCase.
func IsCamelCase(input string) bool { return StyleCamel.Matches(input) }

// ToPascalCase converts any case into PascalCase.
//
//	ToPascalCase("hello world") // "HelloWorld"
func ToPascalCase(input string) string { return StylePascal.Convert(input) }

// IsPascalCase checks whether a string is PascalCase.
func IsPascalCase(input string) bool { return StylePascal.Matches(input) }

// ToSnakeCase converts any case into snake_case.
//
//	ToSnakeCase("Hello World") // "hello_world"
func ToSnakeCase(input string) string { return StyleSnake.Convert(input) }

// IsSnakeCase checks whether a string is snake_case.
func IsSnakeCase(input string) bool { return StyleSnake.Matches(input) }

// ToKebabCase converts any case into kebab-case.
//
//	ToKebabCase("Hello World") // "hello-world"
func ToKebabCase(input string) string { return StyleKebab.Convert(input) }

// IsKebabCase checks whether a string is kebab-case.
func IsKebabCase(input string) bool { return StyleKebab.Matches(input) }

// ToTrainCase converts any case into Train-Case.
//
//	ToTrainCase("hello world") // "Hello-World"
func ToTrainCase(input string) string { return StyleTrain.Convert(input) }

// IsTrainCase checks whether a string is Train-Case.
func IsTrainCase(input string) bool { return StyleTrain.Matches(input) }

// ToConstantCase converts any case into CONSTANT_CASE.
//
//	ToConstantCase("Hello World") // "HELLO_WORLD"
func ToConstantCase(input string) string { return StyleConstant.Convert(input) }

// IsConstantCase checks whether a string is CONSTANT_CASE.
func IsConstantCase(input string) bool { return StyleConstant.Matches(input) }

// ToSentenceCase converts any case into Sentence case.
//
//	ToSentenceCase("helloWorld") // "Hello world"
func ToSentenceCase(input string) string { return StyleSentence.Convert(input) }

// IsSentenceCase checks whether a string is Sentence case.
func IsSentenceCase(input string) bool { return StyleSentence.Matches(input) }

// ToTitleCase converts any case into Title Case.
//
//	ToTitleCase("hello world") // "Hello World"
func ToTitleCase(input string) string { return StyleTitle.Convert(input) }

// IsTitleCase checks whether a string is Title Case.
func IsTitleCase(input string) bool { return StyleTitle.Matches(input) }

// ToLowerCase converts any case into lower case words.
//
//	ToLowerCase("HelloWorld") // "hello world"
func ToLowerCase(input string) string { return StyleLower.Convert(input) }

// IsLowerCase checks whether a string is lower case words.
func IsLowerCase(input string) bool { return StyleLower.Matches(input) }

// ToUpperCase converts any case into UPPER CASE words.
//
//	ToUpperCase("helloWorld") // "HELLO WORLD"
func ToUpperCase(input string) string { return StyleUpper.Convert(input) }

// IsUpperCase checks whether a string is UPPER CASE words.
func IsUpperCase(input string) bool { return StyleUpper.Matches(input) }
