package domain

// CaptionWriter persists a caption next to the image.
type CaptionWriter interface {
	// WriteCaption writes `text` to a file with the same name as the image and a .txt extension, overwriting
	// any previous caption. Returns the caption path; failures are reported as *WriteError.
	WriteCaption(task ImageTask, text string) (string, error)
}

// Renamer renames an image after its slug.
type Renamer interface {
	// Rename moves the image to `slug` plus its original extension, adding a counter suffix if that name is taken.
	// Returns the new path and whether anything was renamed: a slug matching the current name is a no-op.
	// Failures are reported as *RenameError.
	Rename(task ImageTask, slug string) (string, bool, error)
}
