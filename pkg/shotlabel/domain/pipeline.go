package domain

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"kgeyst.com/shotlabel/pkg/common"
)

// RunOptions the parameters of a single run. Passed explicitly instead of being read from globals.
type RunOptions struct {
	Dir   string
	Mode  ProcessingMode
	Host  string
	Model string
}

// Pipeline is the main orchestrator: it discovers images, asks the vision model about each one in turn and persists
// the result. A single task's failure is logged and never stops the run, unless the FailureHandler says so.
type Pipeline struct {
	discoverer      Discoverer
	visionModel     VisionModel
	captionWriter   CaptionWriter
	renamer         Renamer
	errorLogFactory ErrorLogFactory
	failureHandler  FailureHandler
	retrier         *Retrier
	logger          common.Logger
	maxSlugLength   int
}

func NewPipeline(
	discoverer Discoverer,
	visionModel VisionModel,
	captionWriter CaptionWriter,
	renamer Renamer,
	errorLogFactory ErrorLogFactory,
	failureHandler FailureHandler,
	retrier *Retrier,
	config *common.Config,
	logger common.Logger,
) *Pipeline {
	if failureHandler == nil {
		failureHandler = NewSkipFailureHandler()
	}
	return &Pipeline{
		discoverer:      discoverer,
		visionModel:     visionModel,
		captionWriter:   captionWriter,
		renamer:         renamer,
		errorLogFactory: errorLogFactory,
		failureHandler:  failureHandler,
		retrier:         retrier,
		logger:          logger,
		maxSlugLength:   config.GetIntOrDefault(ConfigKeyMaxSlugLength, DefaultMaxSlugLength),
	}
}

// Run processes every discovered image of `options.Dir` sequentially. Fails only if discovery fails; the outcome
// of each task is reported in the returned summary.
func (p *Pipeline) Run(options RunOptions) (*RunSummary, error) {
	tasks, err := p.discoverer.Discover(options.Dir)
	if err != nil {
		return nil, err
	}
	summary := &RunSummary{}
	if len(tasks) == 0 {
		p.logger.Log(fmt.Sprintf("No screenshot images found in '%s'.", options.Dir))
		return summary, nil
	}
	errorLog := p.errorLogFactory(tasks[0].Dir())
	p.logger.Log(fmt.Sprintf("Found %d image(s) to process.", len(tasks)))
	p.logger.Log(fmt.Sprintf("Mode: %s (%s)", options.Mode, options.Mode.Verb()))
	p.logger.Log(fmt.Sprintf("Using model: %s", options.Model))
	p.logger.Log(fmt.Sprintf("Using Ollama host: %s\n", options.Host))
	for i, task := range tasks {
		p.logger.Log(fmt.Sprintf("[%d/%d] Processing: %s", i+1, len(tasks), task.Name))
		result, stop := p.processTask(task, options, errorLog)
		summary.Results = append(summary.Results, result)
		if stop {
			p.logger.Log("\nStopping processing as requested.")
			summary.Stopped = true
			for _, skipped := range tasks[i+1:] {
				summary.Results = append(summary.Results, TaskResult{Task: skipped, Outcome: OutcomeSkipped})
			}
			break
		}
	}
	p.logger.Log(fmt.Sprintf("\nProcessing complete: %d succeeded, %d failed.", summary.Succeeded(), summary.Failed()))
	if summary.Failed() > 0 {
		p.logger.Log(fmt.Sprintf("Errors logged to: %s", errorLog.Path()))
	}
	return summary, nil
}

// processTask returns true as the second value if the run should stop after this task.
func (p *Pipeline) processTask(task ImageTask, options RunOptions, errorLog ErrorLog) (TaskResult, bool) {
	result := TaskResult{Task: task}
	text, attempts, stop, err := p.generate(task, options)
	result.Attempts = attempts
	if err != nil {
		return p.fail(result, err, errorLog), stop
	}
	switch options.Mode {
	case ModeRename:
		slug := Slugify(text, p.maxSlugLength)
		newPath, changed, err := p.renamer.Rename(task, slug)
		if err != nil {
			return p.fail(result, err, errorLog), false
		}
		result.OutputPath = newPath
		if !changed {
			result.Outcome = OutcomeUnchanged
			p.logger.Log(fmt.Sprintf("  ⊘ Filename unchanged, skipping: %s", task.Name))
		} else {
			result.Outcome = OutcomeRenamed
			p.logger.Log(fmt.Sprintf("  ✓ Renamed to: %s", filepath.Base(newPath)))
		}
	default:
		captionPath, err := p.captionWriter.WriteCaption(task, text)
		if err != nil {
			return p.fail(result, err, errorLog), false
		}
		result.OutputPath = captionPath
		result.Outcome = OutcomeCaptioned
		p.logger.Log(fmt.Sprintf("  ✓ Caption saved to: %s", filepath.Base(captionPath)))
	}
	return result, false
}

// generate asks the model about the image, in rounds of retries, until it succeeds or the failure handler
// gives up on the task. Returns the total number of attempts and whether the run should stop.
func (p *Pipeline) generate(task ImageTask, options RunOptions) (string, int, bool, error) {
	imageBytes, err := os.ReadFile(task.Path)
	if err != nil {
		return "", 0, false, fmt.Errorf("read image: %w", err)
	}
	imageBase64 := base64.StdEncoding.EncodeToString(imageBytes)
	prompt := options.Mode.Prompt()
	totalAttempts := 0
	for {
		text, attempts, err := p.retrier.Do(task, func() (string, error) {
			return p.visionModel.Infer(InferenceRequest{
				ImageBase64: imageBase64,
				Prompt:      prompt,
				Model:       options.Model,
				Host:        options.Host,
				RequestID:   uuid.NewString(),
			})
		})
		totalAttempts += attempts
		if err == nil {
			return text, totalAttempts, false, nil
		}
		var retryErr *RetryError
		if !errors.As(err, &retryErr) {
			return "", totalAttempts, false, err
		}
		switch p.failureHandler.HandleFailure(task, retryErr) {
		case DecisionRetry:
			p.logger.Log(fmt.Sprintf("  Retrying with %d attempts...", p.retrier.MaxAttempts()))
			continue
		case DecisionStop:
			return "", totalAttempts, true, err
		default:
			return "", totalAttempts, false, &SkipError{Attempts: totalAttempts, Err: retryErr}
		}
	}
}

func (p *Pipeline) fail(result TaskResult, err error, errorLog ErrorLog) TaskResult {
	result.Outcome = OutcomeFailed
	result.Err = err
	p.logger.Log(fmt.Sprintf("  ✗ %s: %v", result.Task.Name, err))
	logErr := errorLog.LogFailure(ErrorLogEntry{
		Time:      time.Now(),
		ImagePath: result.Task.Path,
		Message:   err.Error(),
	})
	if logErr != nil {
		p.logger.Log(fmt.Sprintf("failed to write the error log: %v", logErr))
	}
	return result
}
