package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/calebmer/inflections/stylist"
)

// IsFlags contains flags for the is command
type IsFlags struct {
	Target string
}

// SetupIsFlags creates and configures a FlagSet for the is command.
// Returns the FlagSet and an IsFlags struct with bound flag variables.
func SetupIsFlags() (*flag.FlagSet, *IsFlags) {
	fs := flag.NewFlagSet("is", flag.ContinueOnError)
	flags := &IsFlags{}

	fs.StringVar(&flags.Target, "t", "", "case style to check against (default: list all matching styles)")
	fs.StringVar(&flags.Target, "target", "", "case style to check against (default: list all matching styles)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: inflect is [flags] <text|->\n\n")
		Writef(output, "Check whether text is already in a case style.\n\n")
		Writef(output, "Without -t, lists every style the text matches.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nStyles:\n")
		Writef(output, "  %s\n", strings.Join(stylist.StyleNames(), ", "))
		Writef(output, "\nExamples:\n")
		Writef(output, "  inflect is -t kebab \"hello-world\"\n")
		Writef(output, "  inflect is \"hello_world\"\n")
		Writef(output, "  cat identifiers.txt | inflect is -t camel -\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Classification successful (classification itself cannot fail)\n")
		Writef(output, "  1    Usage error (unknown style)\n")
	}

	return fs, flags
}

// HandleIs executes the is command
func HandleIs(args []string) error {
	fs, flags := SetupIsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	inputs, err := ReadInputs(fs.Args(), os.Stdin)
	if err != nil {
		fs.Usage()
		return err
	}

	if flags.Target == "" {
		for _, input := range inputs {
			var names []string
			for _, s := range stylist.MatchingStyles(input) {
				names = append(names, s.String())
			}
			fmt.Println(strings.Join(names, " "))
		}
		return nil
	}

	style, err := stylist.ParseStyle(flags.Target)
	if err != nil {
		return err
	}

	for _, input := range inputs {
		fmt.Println(style.Matches(input))
	}
	return nil
}
