package domain

import (
	"fmt"
	"time"

	"kgeyst.com/shotlabel/pkg/common"
)

const (
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 5 * time.Second
)

// Sleeper blocks the current goroutine for the given duration. Replaced in tests.
type Sleeper func(time.Duration)

// Retrier calls a function up to maxAttempts times with a fixed delay between attempts. The delay is constant,
// not exponential: a local inference service is either up or it isn't.
type Retrier struct {
	maxAttempts int
	delay       time.Duration
	sleep       Sleeper
	logger      common.Logger
}

func NewRetrier(config *common.Config, logger common.Logger) *Retrier {
	return NewRetrierWithSettings(
		config.GetIntOrDefault(ConfigKeyMaxAttempts, DefaultMaxAttempts),
		config.GetDurationOrDefault(ConfigKeyRetryDelay, DefaultRetryDelay),
		time.Sleep,
		logger,
	)
}

func NewRetrierWithSettings(maxAttempts int, delay time.Duration, sleep Sleeper, logger common.Logger) *Retrier {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Retrier{
		maxAttempts: maxAttempts,
		delay:       delay,
		sleep:       sleep,
		logger:      logger,
	}
}

func (r *Retrier) MaxAttempts() int {
	return r.maxAttempts
}

// Do runs `attempt` until it succeeds, fails with a non-retryable error (see IsRetryable), or runs out of attempts.
// Returns the number of attempts made. Running out of attempts is reported as *RetryError which carries the task's path
// and the last error; non-retryable errors are returned as is.
func (r *Retrier) Do(task ImageTask, attempt func() (string, error)) (string, int, error) {
	var lastErr error
	for i := 1; i <= r.maxAttempts; i++ {
		text, err := attempt()
		if err == nil {
			return text, i, nil
		}
		if !IsRetryable(err) {
			return "", i, err
		}
		lastErr = err
		if i < r.maxAttempts {
			r.logger.Log(fmt.Sprintf("  ⚠ Attempt %d failed, waiting %s before retry... (%v)", i, r.delay, err))
			r.sleep(r.delay)
		} else {
			r.logger.Log(fmt.Sprintf("  ✗ Failed after %d attempts: %v", r.maxAttempts, err))
		}
	}
	return "", r.maxAttempts, &RetryError{
		Path:     task.Path,
		Attempts: r.maxAttempts,
		Err:      lastErr,
	}
}
