package domain

import "time"

// ErrorLogEntry a single failure record. Append-only.
type ErrorLogEntry struct {
	Time      time.Time
	ImagePath string
	Message   string
}

// ErrorLog records failures in the target directory so that they survive the run.
type ErrorLog interface {
	LogFailure(entry ErrorLogEntry) error
	// Path where the entries end up, for user-facing messages
	Path() string
}

// ErrorLogFactory opens the error log for the target directory. Called once per run.
type ErrorLogFactory func(dir string) ErrorLog
