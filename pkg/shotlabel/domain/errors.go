package domain

import (
	"errors"
	"fmt"
)

// ErrDirectoryNotFound the target directory doesn't exist or isn't a directory. Fatal for the run.
var ErrDirectoryNotFound = errors.New("directory not found")

// InferenceError the inference service couldn't produce a response. Retryable.
type InferenceError struct {
	// Op what was being done, e.g. "POST http://localhost:11434/api/generate"
	Op string
	// StatusCode the HTTP status, 0 if the request never got a response
	StatusCode int
	Err        error
}

func (e *InferenceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("inference failed: %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("inference failed: %s: %v", e.Op, e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

// RetryError all attempts for a task were used up.
type RetryError struct {
	Path     string
	Attempts int
	// Err the error of the last attempt
	Err error
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *RetryError) Unwrap() error {
	return e.Err
}

// SkipError a task was given up on after its retries were exhausted, and the run goes on.
type SkipError struct {
	// Attempts the total across all retry rounds
	Attempts int
	Err      *RetryError
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("Skipped after %d failed attempts. Last error: %v", e.Attempts, e.Err.Err)
}

func (e *SkipError) Unwrap() error {
	return e.Err
}

// WriteError a caption file couldn't be written. Terminal for the task.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// RenameError an image couldn't be renamed. Terminal for the task.
type RenameError struct {
	From string
	To   string
	Err  error
}

func (e *RenameError) Error() string {
	if e.To == "" {
		return fmt.Sprintf("failed to rename %s: %v", e.From, e.Err)
	}
	return fmt.Sprintf("failed to rename %s to %s: %v", e.From, e.To, e.Err)
}

func (e *RenameError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether another attempt could succeed.
func IsRetryable(err error) bool {
	var inferenceErr *InferenceError
	return errors.As(err, &inferenceErr)
}
