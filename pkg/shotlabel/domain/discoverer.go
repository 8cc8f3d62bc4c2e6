package domain

// Discoverer finds the images to process in a directory.
type Discoverer interface {
	// Discover returns the matching images sorted by file name. Fails with ErrDirectoryNotFound if `dir` isn't
	// an existing directory; no matches isn't an error.
	Discover(dir string) ([]ImageTask, error)
}
