// Package inflections provides utilities for converting strings between
// common identifier and naming conventions, and for classifying strings as
// already belonging to a convention.
//
// Supported conventions: "lower case", "UPPER CASE", "Sentence case",
// "Title Case", "camelCase", "PascalCase", "kebab-case", "Train-Case",
// "snake_case", and "CONSTANT_CASE".
//
// # Overview
//
// The library consists of two primary packages:
//
//   - tokenizer: Split arbitrary strings into their component words
//   - stylist: Render word sequences in a target convention and classify strings
//
// Every conversion shares a single word-boundary algorithm: the input is
// split into words on case transitions, letter/digit transitions, and
// separator characters, then re-joined with the target convention's casing
// and separator. Classification is derived from rendering: a string is in a
// given convention exactly when converting it to that convention is a no-op.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/calebmer/inflections
//
// # Quick Start
//
// Convert a string with the per-style entry points:
//
//	import "github.com/calebmer/inflections/stylist"
//
//	stylist.ToCamelCase("Hello World") // "helloWorld"
//	stylist.ToSnakeCase("Hello World") // "hello_world"
//	stylist.IsTitleCase("Hello World") // true
//
// Or drive conversions by style value for data-driven callers:
//
//	style, err := stylist.ParseStyle("kebab")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	style.Convert("Hello World") // "hello-world"
//
// Callers building custom conventions can use the tokenizer directly:
//
//	import "github.com/calebmer/inflections/tokenizer"
//
//	tokenizer.Tokenize("HTTPServer2Go") // ["HTTP", "Server", "2", "Go"]
//
// # Command Line
//
// The inflect command exposes the library on the command line and as an
// MCP (Model Context Protocol) server:
//
//	inflect convert -t snake "Hello World"
//	echo "userProfileID" | inflect words -
//	inflect mcp
//
// All operations are pure, deterministic, and total: conversion and
// classification never fail for any Unicode input, and the packages hold no
// shared state, so concurrent use requires no synchronization.
package inflections
