package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"kgeyst.com/shotlabel/pkg/shotlabel/domain"
)

const choicePrompt = "  Enter your choice (1/2/3): "

// LineReader is satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
}

type failurePrompt struct {
	reader LineReader
	out    io.Writer
}

// NewFailurePrompt asks the user what to do with a task which failed all its attempts: stop, retry or skip it.
// A closed input (Ctrl+C, Ctrl+D) stops the run.
func NewFailurePrompt(reader LineReader, out io.Writer) domain.FailureHandler {
	return &failurePrompt{
		reader: reader,
		out:    out,
	}
}

// NewReadlineFailurePrompt is NewFailurePrompt reading from the terminal. Call the returned function to release it.
func NewReadlineFailurePrompt() (domain.FailureHandler, func() error, error) {
	rl, err := readline.New(choicePrompt)
	if err != nil {
		return nil, nil, err
	}
	return NewFailurePrompt(rl, os.Stdout), rl.Close, nil
}

func (f *failurePrompt) HandleFailure(task domain.ImageTask, err *domain.RetryError) domain.FailureDecision {
	f.printf("\n  ⚠ File '%s' failed after %d attempts.\n", task.Name, err.Attempts)
	f.printf("  What would you like to do?\n")
	f.printf("  1. Stop and exit\n")
	f.printf("  2. Return to %d tries loop (retry)\n", err.Attempts)
	f.printf("  3. Step-over this file (skip to next)\n")
	for {
		line, readErr := f.reader.Readline()
		if readErr != nil { // io.EOF, readline.ErrInterrupt
			f.printf("\n  Interrupted. Exiting...\n")
			return domain.DecisionStop
		}
		switch strings.TrimSpace(line) {
		case "1":
			return domain.DecisionStop
		case "2":
			return domain.DecisionRetry
		case "3":
			f.printf("  ⊘ Skipping file: %s\n", task.Name)
			return domain.DecisionSkip
		default:
			f.printf("  Invalid choice. Please enter 1, 2, or 3.\n")
		}
	}
}

func (f *failurePrompt) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(f.out, format, args...)
}
