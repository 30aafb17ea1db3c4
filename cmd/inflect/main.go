package main

import (
	"fmt"
	"os"

	"github.com/calebmer/inflections"
	"github.com/calebmer/inflections/cmd/inflect/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("inflect v%s\n", inflections.Version())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := commands.HandleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "is":
		if err := commands.HandleIs(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "words":
		if err := commands.HandleWords(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "styles":
		if err := commands.HandleStyles(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists every command suggestCommand may propose.
var knownCommands = []string{"convert", "is", "words", "styles", "mcp", "version", "help"}

// suggestCommand returns the closest known command within an edit distance
// of 2, or "" when nothing is close enough to be a likely typo.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`inflect - String Case Conversion Tools

Usage:
  inflect <command> [options]

Commands:
  convert     Convert text to a target case style
  is          Check whether text is already in a case style
  words       Split text into its component words
  styles      List the supported case styles
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  inflect convert -t snake "Hello World"
  inflect convert -t camel http_server_config
  inflect is -t kebab "hello-world"
  inflect words HTTPServer2Go
  inflect styles -format json
  cat identifiers.txt | inflect convert -t constant -

Run 'inflect <command> --help' for more information on a command.`)
}
