package domain

import (
	"strings"
	"testing"
)

func TestParseProcessingMode(t *testing.T) {
	t.Parallel()

	cases := map[string]ProcessingMode{
		"caption": ModeCaption,
		"name":    ModeRename,
		"rename":  ModeRename,
	}
	for name, want := range cases {
		got, err := ParseProcessingMode(name)
		if err != nil {
			t.Fatalf("ParseProcessingMode(%q) returned error: %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseProcessingMode(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := ParseProcessingMode("describe"); err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
}

func TestPromptDependsOnMode(t *testing.T) {
	t.Parallel()

	if !strings.Contains(ModeCaption.Prompt(), "visible text") {
		t.Fatal("caption prompt must ask for visible text")
	}
	if !strings.Contains(ModeRename.Prompt(), "without extension") {
		t.Fatal("rename prompt must ask for a name without extension")
	}
}
