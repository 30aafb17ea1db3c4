// Package stylist renders word sequences into case conventions and
// classifies strings as already belonging to a convention.
//
// A Style pairs a per-word casing rule (applied differently to the first
// word and to subsequent words) with a join separator. Rendering joins the
// words of a sequence under those rules; classification is round-trip
// equality: a string matches a style exactly when converting it to that
// style leaves it unchanged.
//
//	stylist.ToCamelCase("Hello World")      // "helloWorld"
//	stylist.ToConstantCase("helloWorld")    // "HELLO_WORLD"
//	stylist.IsSnakeCase("hello_world")      // true
//	stylist.StyleKebab.Convert("Hello World") // "hello-world"
//
// Acronyms do not survive conversion: capitalizing a word lowercases its
// remainder, so "HTTPServer" becomes "httpServer" in camel case and
// "parseURL" becomes "ParseUrl" in Pascal case. Conversion normalizes
// every word to the target casing rule rather than preserving runs of
// uppercase from the input.
//
// All operations are pure and total. The only error in the package is
// ParseStyle rejecting an unknown style name.
package stylist
