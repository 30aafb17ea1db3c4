package commands

import (
	"errors"
	"flag"
	"os"

	"github.com/calebmer/inflections/stylist"
)

// StylesFlags contains flags for the styles command
type StylesFlags struct {
	Format string
}

// styleInfo is one row of the styles listing.
type styleInfo struct {
	Name        string `json:"name" yaml:"name"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	Separator   string `json:"separator" yaml:"separator"`
	Example     string `json:"example" yaml:"example"`
}

// styleExampleInput is rendered per style in the listing so the shape of
// each convention is visible at a glance.
const styleExampleInput = "hello world example"

// SetupStylesFlags creates and configures a FlagSet for the styles command.
// Returns the FlagSet and a StylesFlags struct with bound flag variables.
func SetupStylesFlags() (*flag.FlagSet, *StylesFlags) {
	fs := flag.NewFlagSet("styles", flag.ContinueOnError)
	flags := &StylesFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: inflect styles [flags]\n\n")
		Writef(output, "List the supported case styles with an example rendering of each.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  inflect styles\n")
		Writef(output, "  inflect styles -format yaml\n")
	}

	return fs, flags
}

// HandleStyles executes the styles command
func HandleStyles(args []string) error {
	fs, flags := SetupStylesFlags()

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

	infos := make([]styleInfo, 0, len(stylist.Styles()))
	for _, s := range stylist.Styles() {
		infos = append(infos, styleInfo{
			Name:        s.String(),
			DisplayName: s.DisplayName(),
			Separator:   s.Separator(),
			Example:     s.Convert(styleExampleInput),
		})
	}

	if flags.Format != FormatText {
		return OutputStructured(infos, flags.Format)
	}

	for _, info := range infos {
		Writef(os.Stdout, "%-10s %-15s %s\n", info.Name, info.DisplayName, info.Example)
	}
	return nil
}
