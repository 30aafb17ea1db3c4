package commands

import (
	"testing"

	"github.com/calebmer/inflections/stylist"
)

func TestSetupStylesFlags(t *testing.T) {
	fs, flags := SetupStylesFlags()

	if flags.Format != FormatText {
		t.Errorf("expected Format '%s' by default, got '%s'", FormatText, flags.Format)
	}

	if err := fs.Parse([]string{"-format", "yaml"}); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if flags.Format != FormatYAML {
		t.Errorf("expected Format 'yaml', got '%s'", flags.Format)
	}
}

func TestHandleStyles(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON, FormatYAML} {
		if err := HandleStyles([]string{"-format", format}); err != nil {
			t.Errorf("HandleStyles(%s) = %v, want nil", format, err)
		}
	}
}

func TestHandleStyles_InvalidFormat(t *testing.T) {
	if err := HandleStyles([]string{"-format", "csv"}); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestHandleStyles_Help(t *testing.T) {
	if err := HandleStyles([]string{"--help"}); err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

// TestStyleExampleMatchesItself pins the examples shown by the styles
// listing: each style's example must classify as that style.
func TestStyleExampleMatchesItself(t *testing.T) {
	for _, s := range stylist.Styles() {
		example := s.Convert(styleExampleInput)
		if !s.Matches(example) {
			t.Errorf("style %s: example %q should match its own style", s, example)
		}
	}
}
