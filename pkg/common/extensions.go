package common

import (
	"path/filepath"
	"strings"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tiff", ".tif"}

// IsImageFormat reports whether the path ends with a supported image extension. The comparison ignores case.
func IsImageFormat(path string) bool {
	return IsStringInSlice(strings.ToLower(filepath.Ext(path)), imageExtensions)
}

// TrimImageExtension removes a trailing image extension (".png", ".JPG" etc.) if there's one.
func TrimImageExtension(name string) string {
	if IsImageFormat(name) {
		return name[:len(name)-len(filepath.Ext(name))]
	}
	return name
}
