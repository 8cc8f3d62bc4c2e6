package domain

// FailureDecision what to do with a task whose attempts are used up.
type FailureDecision int

const (
	// DecisionSkip log the failure and continue with the next task
	DecisionSkip = FailureDecision(iota)
	// DecisionRetry try another full round of attempts
	DecisionRetry
	// DecisionStop log the failure and stop the whole run
	DecisionStop
)

// FailureHandler decides what happens after a task exhausted all its attempts.
type FailureHandler interface {
	HandleFailure(task ImageTask, err *RetryError) FailureDecision
}

type skipFailureHandler struct{}

// NewSkipFailureHandler never stops the run: every failed task is logged and skipped.
func NewSkipFailureHandler() FailureHandler {
	return skipFailureHandler{}
}

func (skipFailureHandler) HandleFailure(ImageTask, *RetryError) FailureDecision {
	return DecisionSkip
}
