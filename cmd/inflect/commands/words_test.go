package commands

import (
	"testing"
)

func TestSetupWordsFlags(t *testing.T) {
	fs, flags := SetupWordsFlags()

	t.Run("default values", func(t *testing.T) {
		if flags.Format != FormatText {
			t.Errorf("expected Format '%s' by default, got '%s'", FormatText, flags.Format)
		}
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-format", "json", "HTTPServer"}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		if flags.Format != FormatJSON {
			t.Errorf("expected Format 'json', got '%s'", flags.Format)
		}
		if fs.Arg(0) != "HTTPServer" {
			t.Errorf("expected text arg 'HTTPServer', got '%s'", fs.Arg(0))
		}
	})
}

func TestHandleWords_InvalidFormat(t *testing.T) {
	err := HandleWords([]string{"-format", "xml", "hello"})
	if err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestHandleWords_Help(t *testing.T) {
	err := HandleWords([]string{"--help"})
	if err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleWords_Text(t *testing.T) {
	err := HandleWords([]string{"HTTPServer2Go"})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHandleWords_JSON(t *testing.T) {
	err := HandleWords([]string{"-format", "json", "Hello---World__Foo"})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHandleWords_YAML(t *testing.T) {
	err := HandleWords([]string{"-format", "yaml", "version2Release"})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
