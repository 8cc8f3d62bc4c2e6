package domain

import (
	"path/filepath"
	"strings"
)

// ImageTask a single image file found by the Discoverer. Immutable.
type ImageTask struct {
	// Path the absolute path to the image
	Path string
	// Name the file name without the directory, e.g. "Screenshot 1.png"
	Name string
	// Ext the extension with the dot, in its original case, e.g. ".PNG"
	Ext string
}

func NewImageTask(path string) ImageTask {
	name := filepath.Base(path)
	return ImageTask{
		Path: path,
		Name: name,
		Ext:  filepath.Ext(name),
	}
}

// Dir the directory the image is in.
func (t ImageTask) Dir() string {
	return filepath.Dir(t.Path)
}

// Stem the file name without the extension.
func (t ImageTask) Stem() string {
	return strings.TrimSuffix(t.Name, t.Ext)
}

// Outcome how processing of a single task ended.
type Outcome int

const (
	// OutcomeCaptioned a caption file was written
	OutcomeCaptioned = Outcome(iota)
	// OutcomeRenamed the image was renamed
	OutcomeRenamed
	// OutcomeUnchanged the generated name matched the current one, so nothing was done
	OutcomeUnchanged
	// OutcomeFailed the task failed and the failure was logged
	OutcomeFailed
	// OutcomeSkipped the task was never attempted because the run was stopped before it
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCaptioned:
		return "captioned"
	case OutcomeRenamed:
		return "renamed"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeFailed:
		return "failed"
	case OutcomeSkipped:
		return "skipped"
	}
	return "unknown"
}

// TaskResult the result of processing a single ImageTask. Failures are values, not panics: the pipeline
// inspects Err explicitly and moves on to the next task.
type TaskResult struct {
	Task    ImageTask
	Outcome Outcome
	// OutputPath the caption file or the new image path; empty on failure
	OutputPath string
	// Attempts how many inference calls were made in total
	Attempts int
	Err      error
}

// RunSummary what happened during a whole run, in the order the tasks were processed.
type RunSummary struct {
	Results []TaskResult
	// Stopped the run was stopped early on the user's request
	Stopped bool
}

func (s *RunSummary) Total() int {
	return len(s.Results)
}

func (s *RunSummary) Count(outcome Outcome) int {
	count := 0
	for _, result := range s.Results {
		if result.Outcome == outcome {
			count++
		}
	}
	return count
}

// Succeeded the number of tasks which produced an output (or needed none).
func (s *RunSummary) Succeeded() int {
	return s.Count(OutcomeCaptioned) + s.Count(OutcomeRenamed) + s.Count(OutcomeUnchanged)
}

func (s *RunSummary) Failed() int {
	return s.Count(OutcomeFailed)
}
