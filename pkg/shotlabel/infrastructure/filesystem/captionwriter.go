package filesystem

import (
	"os"
	"path/filepath"

	"kgeyst.com/shotlabel/pkg/shotlabel/domain"
)

const captionExtension = ".txt"

type captionWriter struct{}

func NewCaptionWriter() domain.CaptionWriter {
	return captionWriter{}
}

func (captionWriter) WriteCaption(task domain.ImageTask, text string) (string, error) {
	path := filepath.Join(task.Dir(), task.Stem()+captionExtension)
	err := os.WriteFile(path, []byte(text), 0644)
	if err != nil {
		return "", &domain.WriteError{Path: path, Err: err}
	}
	return path, nil
}
