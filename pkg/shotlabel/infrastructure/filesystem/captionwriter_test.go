package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"kgeyst.com/shotlabel/pkg/shotlabel/domain"
)

func TestWriteCaptionOverwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "screenshot-01.png", "screenshot-01.txt")
	task := domain.NewImageTask(filepath.Join(dir, "screenshot-01.png"))
	writer := NewCaptionWriter()

	for i := 0; i < 2; i++ {
		path, err := writer.WriteCaption(task, "A terminal window showing a build log")
		if err != nil {
			t.Fatalf("write caption returned error: %v", err)
		}
		if path != filepath.Join(dir, "screenshot-01.txt") {
			t.Fatalf("unexpected caption path %q", path)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read caption: %v", err)
		}
		if string(content) != "A terminal window showing a build log" {
			t.Fatalf("unexpected caption content %q", content)
		}
	}
}

func TestWriteCaptionError(t *testing.T) {
	t.Parallel()

	task := domain.NewImageTask(filepath.Join(t.TempDir(), "missing-dir", "screenshot.png"))
	_, err := NewCaptionWriter().WriteCaption(task, "text")
	var writeErr *domain.WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected *WriteError, got %v", err)
	}
}
