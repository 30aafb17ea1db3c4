package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/calebmer/inflections/tokenizer"
)

// WordsFlags contains flags for the words command
type WordsFlags struct {
	Format string
}

// wordsOutput is the structured output of the words command for one input.
type wordsOutput struct {
	Input string   `json:"input" yaml:"input"`
	Count int      `json:"count" yaml:"count"`
	Words []string `json:"words" yaml:"words"`
}

// SetupWordsFlags creates and configures a FlagSet for the words command.
// Returns the FlagSet and a WordsFlags struct with bound flag variables.
func SetupWordsFlags() (*flag.FlagSet, *WordsFlags) {
	fs := flag.NewFlagSet("words", flag.ContinueOnError)
	flags := &WordsFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: inflect words [flags] <text|->\n\n")
		Writef(output, "Split text into its component words.\n\n")
		Writef(output, "Words are split on case transitions, letter/digit transitions, and\n")
		Writef(output, "separator characters (punctuation, whitespace, underscores, hyphens).\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  inflect words HTTPServer2Go\n")
		Writef(output, "  inflect words -format json \"Hello---World__Foo\"\n")
		Writef(output, "  echo userProfileID | inflect words -\n")
	}

	return fs, flags
}

// HandleWords executes the words command
func HandleWords(args []string) error {
	fs, flags := SetupWordsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		fs.Usage()
		return err
	}

	inputs, err := ReadInputs(fs.Args(), os.Stdin)
	if err != nil {
		fs.Usage()
		return err
	}

	for _, input := range inputs {
		words := tokenizer.Tokenize(input)
		if flags.Format == FormatText {
			fmt.Println(strings.Join(words, " "))
			continue
		}
		out := wordsOutput{Input: input, Count: len(words), Words: words}
		if err := OutputStructured(out, flags.Format); err != nil {
			return err
		}
	}
	return nil
}
