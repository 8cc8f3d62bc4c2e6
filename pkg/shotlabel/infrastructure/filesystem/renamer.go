package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kgeyst.com/shotlabel/pkg/shotlabel/domain"
)

const maxCounter = 1000

var errNoFreeName = fmt.Errorf("no free file name after %d attempts", maxCounter)

type renamer struct{}

func NewRenamer() domain.Renamer {
	return renamer{}
}

func (renamer) Rename(task domain.ImageTask, slug string) (string, bool, error) {
	if slug == "" {
		return "", false, &domain.RenameError{From: task.Path, Err: errors.New("empty file name")}
	}
	target := slug + task.Ext
	// Case-insensitive, so that case-insensitive file systems (macOS, Windows) don't see a "rename" to the same file.
	if strings.EqualFold(target, task.Name) {
		return task.Path, false, nil
	}
	dir := task.Dir()
	taken, err := listNamesFolded(dir)
	if err != nil {
		return "", false, &domain.RenameError{From: task.Path, Err: err}
	}
	name, err := freeName(slug, task.Ext, dir, taken)
	if err != nil {
		return "", false, &domain.RenameError{From: task.Path, To: filepath.Join(dir, target), Err: err}
	}
	newPath := filepath.Join(dir, name)
	err = os.Rename(task.Path, newPath)
	if err != nil {
		return "", false, &domain.RenameError{From: task.Path, To: newPath, Err: err}
	}
	return newPath, true, nil
}

// freeName returns slug+ext, or slug-1+ext, slug-2+ext etc., whichever is the first that doesn't collide.
func freeName(slug, ext, dir string, taken map[string]bool) (string, error) {
	name := slug + ext
	for counter := 1; counter <= maxCounter; counter++ {
		if !isTaken(dir, name, taken) {
			return name, nil
		}
		name = fmt.Sprintf("%s-%d%s", slug, counter, ext)
	}
	if !isTaken(dir, name, taken) {
		return name, nil
	}
	return "", errNoFreeName
}

func isTaken(dir, name string, taken map[string]bool) bool {
	if taken[strings.ToLower(name)] {
		return true
	}
	_, err := os.Lstat(filepath.Join(dir, name))
	return err == nil
}

func listNamesFolded(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	result := make(map[string]bool, len(entries))
	for _, entry := range entries {
		result[strings.ToLower(entry.Name())] = true
	}
	return result, nil
}
