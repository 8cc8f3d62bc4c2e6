package domain

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"Chrome Security Settings!!", "chrome-security-settings"},
		{"chrome-security-settings", "chrome-security-settings"},
		{`"vscode-python-debugger"`, "vscode-python-debugger"},
		{"`terminal-git-status`", "terminal-git-status"},
		{"terminal_git  status", "terminal-git-status"},
		{"--leading and trailing--", "leading-and-trailing"},
		{"chrome-settings.png", "chrome-settings"},
		{"Café Menü Übersicht", "cafe-menu-ubersicht"},
		{"excel-q3-2024\nThis screenshot shows a spreadsheet.", "excel-q3-2024"},
		{"", "untitled"},
		{"!!!", "untitled"},
		{"日本語", "untitled"},
	}
	for _, c := range cases {
		if got := Slugify(c.input, DefaultMaxSlugLength); got != c.want {
			t.Fatalf("Slugify(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestSlugifyTruncatesAtHyphen(t *testing.T) {
	t.Parallel()

	got := Slugify("alpha beta gamma delta", 13)
	if got != "alpha-beta" {
		t.Fatalf("unexpected truncated slug: %q", got)
	}
	if got := Slugify("alpha beta gamma", 10); got != "alpha-beta" {
		t.Fatalf("a word ending exactly at the limit must be kept, got %q", got)
	}

	long := strings.Repeat("a", 50)
	if got := Slugify(long, 10); got != strings.Repeat("a", 10) {
		t.Fatalf("unexpected truncated slug without hyphens: %q", got)
	}
	if got := Slugify(long, 0); got != long {
		t.Fatalf("a non-positive limit must not truncate, got %q", got)
	}
}
