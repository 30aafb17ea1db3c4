package commands

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON, FormatYAML} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("ValidateOutputFormat(%q) = %v, want nil", format, err)
		}
	}
	for _, format := range []string{"", "xml", "TEXT"} {
		if err := ValidateOutputFormat(format); err == nil {
			t.Errorf("ValidateOutputFormat(%q) should fail", format)
		}
	}
}

func TestOutputStructured_InvalidFormat(t *testing.T) {
	if err := OutputStructured(map[string]string{"a": "b"}, FormatText); err == nil {
		t.Error("OutputStructured with text format should fail")
	}
}

func TestReadInputs_Argument(t *testing.T) {
	got, err := ReadInputs([]string{"Hello World"}, strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Hello World"}) {
		t.Errorf("ReadInputs = %v, want [Hello World]", got)
	}
}

func TestReadInputs_Stdin(t *testing.T) {
	stdin := strings.NewReader("one\ntwoWords\n\nfour_words_here_now\n")
	got, err := ReadInputs([]string{"-"}, stdin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"one", "twoWords", "", "four_words_here_now"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadInputs = %v, want %v", got, want)
	}
}

func TestReadInputs_NoArgsReadsStdin(t *testing.T) {
	got, err := ReadInputs(nil, strings.NewReader("solo"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"solo"}) {
		t.Errorf("ReadInputs = %v, want [solo]", got)
	}
}

func TestReadInputs_TooManyArgs(t *testing.T) {
	if _, err := ReadInputs([]string{"a", "b"}, strings.NewReader("")); err == nil {
		t.Error("expected error for multiple positional arguments")
	}
}

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Hello, %s!", "World")
	if got := buf.String(); got != "Hello, World!" {
		t.Errorf("Writef() = %q, want %q", got, "Hello, World!")
	}
}
