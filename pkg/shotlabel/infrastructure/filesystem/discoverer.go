package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"kgeyst.com/shotlabel/pkg/common"
	"kgeyst.com/shotlabel/pkg/shotlabel/domain"
)

const screenshotMarker = "screenshot"

// For example, "Screenshot 2025-11-16 at 18.23.47"
var macOSScreenshotPattern = regexp.MustCompile(`(?i)^Screenshot \d{4}-\d{2}-\d{2} at \d{2}\.\d{2}\.\d{2}`)

type discoverer struct {
	macOSScreenshotsOnly bool
}

func NewDiscoverer(config *common.Config) domain.Discoverer {
	return &discoverer{
		macOSScreenshotsOnly: config.GetBoolOrDefault(domain.ConfigKeyMacOSScreenshotsOnly, false),
	}
}

func (d *discoverer) Discover(dir string) ([]domain.ImageTask, error) {
	absDir, err := ResolvePath(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDirectoryNotFound, dir, err)
	}
	info, err := os.Stat(absDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDirectoryNotFound, absDir)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", absDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrDirectoryNotFound, absDir)
	}
	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", absDir, err)
	}
	var names []string
	for _, entry := range entries {
		if !isRegularFile(absDir, entry) {
			continue
		}
		if d.matches(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	tasks := make([]domain.ImageTask, 0, len(names))
	for _, name := range names {
		tasks = append(tasks, domain.NewImageTask(filepath.Join(absDir, name)))
	}
	return tasks, nil
}

// isRegularFile follows symlinks, so a link to an image counts as the image.
func isRegularFile(dir string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}

func (d *discoverer) matches(name string) bool {
	if !common.IsImageFormat(name) {
		return false
	}
	if d.macOSScreenshotsOnly {
		return macOSScreenshotPattern.MatchString(name)
	}
	return strings.Contains(strings.ToLower(name), screenshotMarker)
}

// ResolvePath expands a leading "~" and makes the path absolute.
func ResolvePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}
