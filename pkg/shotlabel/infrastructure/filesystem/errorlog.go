package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"kgeyst.com/shotlabel/pkg/shotlabel/domain"
)

const ErrorLogFileName = "error_log.txt"

type errorLog struct {
	path string
}

// NewErrorLog appends failures to error_log.txt in `dir`. The file is created on the first failure and is never
// truncated, so entries of previous runs are kept.
func NewErrorLog(dir string) domain.ErrorLog {
	return &errorLog{
		path: filepath.Join(dir, ErrorLogFileName),
	}
}

func (e *errorLog) Path() string {
	return e.path
}

func (e *errorLog) LogFailure(entry domain.ErrorLogEntry) error {
	line := fmt.Sprintf("%s | %s | %s\n",
		entry.Time.Format(time.RFC3339),
		removeNewLines(entry.ImagePath),
		removeNewLines(entry.Message),
	)
	file, err := os.OpenFile(e.path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()
	_, err = file.WriteString(line)
	if err != nil {
		return err
	}
	return file.Sync()
}

// One entry per line.
var newLineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func removeNewLines(str string) string {
	return newLineReplacer.Replace(str)
}
