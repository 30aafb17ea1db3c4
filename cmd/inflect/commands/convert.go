package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/calebmer/inflections/stylist"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Target string
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Target, "t", "", "target case style (required)")
	fs.StringVar(&flags.Target, "target", "", "target case style (required)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: inflect convert [flags] <text|->\n\n")
		Writef(output, "Convert text to a target case style.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nStyles:\n")
		Writef(output, "  %s\n", strings.Join(stylist.StyleNames(), ", "))
		Writef(output, "\nExamples:\n")
		Writef(output, "  inflect convert -t snake \"Hello World\"\n")
		Writef(output, "  inflect convert -t camel http_server_config\n")
		Writef(output, "  cat identifiers.txt | inflect convert -t constant -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' (or no argument) to convert each line of stdin\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Conversion successful (conversion itself cannot fail)\n")
		Writef(output, "  1    Usage error (missing or unknown style)\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Target == "" {
		fs.Usage()
		return fmt.Errorf("convert command requires a target style (-t)")
	}

	style, err := stylist.ParseStyle(flags.Target)
	if err != nil {
		return err
	}

	inputs, err := ReadInputs(fs.Args(), os.Stdin)
	if err != nil {
		fs.Usage()
		return err
	}

	for _, input := range inputs {
		fmt.Println(style.Convert(input))
	}
	return nil
}
