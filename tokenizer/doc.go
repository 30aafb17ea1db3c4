// Package tokenizer splits strings into their component words.
//
// A word is a maximal run of letters or digits that belongs to one semantic
// unit under the boundary rules: separator characters (anything that is not a
// letter or digit) end the current word and are dropped, a lowercase to
// uppercase transition starts a new word, letter/digit transitions start a
// new word, and a run of uppercase letters followed by a lowercase letter is
// split so the final uppercase letter begins the following word.
//
//	tokenizer.Tokenize("HTTPServer")        // ["HTTP", "Server"]
//	tokenizer.Tokenize("version2Release")   // ["version", "2", "Release"]
//	tokenizer.Tokenize("Hello---World__Foo") // ["Hello", "World", "Foo"]
//
// Tokenize is total: it never fails, for any Unicode input. The tokenizer has
// no knowledge of target case conventions; rendering a word sequence into a
// convention is the job of the stylist package.
package tokenizer
