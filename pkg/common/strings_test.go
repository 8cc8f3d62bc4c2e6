package common

import "testing"

func TestFirstNonEmptyLine(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                            "",
		"one":                         "one",
		"\n\n  chrome-settings  \nbla": "chrome-settings",
		" \t\n":                       "",
	}
	for input, want := range cases {
		if got := FirstNonEmptyLine(input); got != want {
			t.Fatalf("FirstNonEmptyLine(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestRemoveQuotesIfAny(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		`"hello"`:   "hello",
		`'hello'`:   "hello",
		"`hello`":   "hello",
		` "hello" `: "hello",
		`"hello`:    `"hello`,
		`"`:         `"`,
		`""`:        "",
		`"'a'"`:     "'a'",
	}
	for input, want := range cases {
		if got := RemoveQuotesIfAny(input); got != want {
			t.Fatalf("RemoveQuotesIfAny(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestIsImageFormat(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"a.png", "a.PNG", "a.jpg", "a.jpeg", "a.gif", "a.webp", "a.bmp", "a.tiff", "a.TIF"} {
		if !IsImageFormat(name) {
			t.Fatalf("expected %q to be an image", name)
		}
	}
	for _, name := range []string{"a.txt", "a", "png", "a.png.bak", "a.heic"} {
		if IsImageFormat(name) {
			t.Fatalf("expected %q not to be an image", name)
		}
	}
}

func TestTrimImageExtension(t *testing.T) {
	t.Parallel()

	if got := TrimImageExtension("chrome-settings.PNG"); got != "chrome-settings" {
		t.Fatalf("unexpected trim result: %q", got)
	}
	if got := TrimImageExtension("version-1.2"); got != "version-1.2" {
		t.Fatalf("non-image extension must be kept, got %q", got)
	}
}
