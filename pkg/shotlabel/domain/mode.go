package domain

import "fmt"

// ProcessingMode what to do with the text generated for an image. Fixed for the whole run.
type ProcessingMode int

const (
	// ModeCaption writes the description into a sibling .txt file
	ModeCaption = ProcessingMode(iota)
	// ModeRename renames the image after a short description of it
	ModeRename
)

// ParseProcessingMode accepts the names used on the command line.
func ParseProcessingMode(name string) (ProcessingMode, error) {
	switch name {
	case "caption":
		return ModeCaption, nil
	case "name", "rename":
		return ModeRename, nil
	}
	return 0, fmt.Errorf("unknown mode %q (expected \"caption\" or \"name\")", name)
}

func (m ProcessingMode) String() string {
	switch m {
	case ModeCaption:
		return "caption"
	case ModeRename:
		return "name"
	}
	return fmt.Sprintf("ProcessingMode(%d)", int(m))
}

// Verb is used in progress messages.
func (m ProcessingMode) Verb() string {
	if m == ModeRename {
		return "renaming"
	}
	return "captioning"
}
