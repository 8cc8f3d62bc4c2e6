package common

import "strings"

// IsStringInSlice returns true if string `str` is found in `slice`.
func IsStringInSlice(str string, slice []string) bool {
	for _, s := range slice {
		if str == s {
			return true
		}
	}
	return false
}

// FirstNonEmptyLine returns the first line of `str` which isn't blank, trimmed. Models often add explanations
// after the actual answer, which we're not interested in.
func FirstNonEmptyLine(str string) string {
	for _, line := range strings.Split(str, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
