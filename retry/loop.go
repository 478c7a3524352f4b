package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	telegram_errors "github.com/python-telegram-bot/python-telegram-bot-sub007/errors"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/logger"
)

const (
	// Extra wait added on top of the server-mandated flood cool-down.
	floodSlack = 500 * time.Millisecond

	// First backoff step after a generic failure when the current
	// interval is zero.
	transientBase = 1 * time.Second

	// Backoff ceiling for generic failures.
	maxBackoff = 30 * time.Second
)

// ErrInvalidLoopConfig is returned by Run before any invocation when
// the option combination cannot terminate: a loop that repeats after
// success needs an unlimited retry budget.
var ErrInvalidLoopConfig = errors.New(
	"retry: WithRepeatOnSuccess requires an unlimited retry budget (max retries < 0)",
)

// Action is one poll attempt. It must respect ctx and return one of
// the error shapes understood by errors.Classify.
type Action func(ctx context.Context) error

type loopConfig struct {
	interval        time.Duration
	maxRetries      int
	repeatOnSuccess bool
	onError         func(error)
	isRunning       func() bool
	logger          logger.Logger

	// sleep is swapped out in tests to observe the backoff schedule.
	// It returns false when ctx was cancelled before the wait ended.
	sleep func(ctx context.Context, d time.Duration) bool
}

func defaultLoopConfig() loopConfig {
	return loopConfig{
		interval:        0,
		maxRetries:      -1,
		repeatOnSuccess: false,
		isRunning:       func() bool { return true },
		logger:          &logger.Noop{},
		sleep:           sleepCtx,
	}
}

type LoopOption func(c *loopConfig)

// WithInterval sets the baseline wait between successful invocations.
// The interval is restored after every success; failures move it
// according to the backoff policy instead.
func WithInterval(d time.Duration) LoopOption {
	return func(c *loopConfig) {
		c.interval = d
	}
}

// WithMaxRetries bounds the retry budget. A negative value retries
// indefinitely, zero allows a single attempt, n allows n+1 attempts
// in total.
func WithMaxRetries(n int) LoopOption {
	return func(c *loopConfig) {
		c.maxRetries = n
	}
}

// WithRepeatOnSuccess keeps the loop going after a successful
// invocation instead of returning. Incompatible with a non-negative
// retry budget.
func WithRepeatOnSuccess() LoopOption {
	return func(c *loopConfig) {
		c.repeatOnSuccess = true
	}
}

// WithOnError registers a callback invoked with every generic
// (non-flood, non-timeout, non-fatal) failure before the retry is
// scheduled. A panic inside the callback aborts the loop and is
// surfaced to the caller as an error.
func WithOnError(fn func(error)) LoopOption {
	return func(c *loopConfig) {
		c.onError = fn
	}
}

// WithIsRunning supplies a predicate checked before every invocation;
// the loop returns normally as soon as it reports false.
func WithIsRunning(fn func() bool) LoopOption {
	return func(c *loopConfig) {
		if fn != nil {
			c.isRunning = fn
		}
	}
}

func WithLoopLogger(log logger.Logger) LoopOption {
	return func(c *loopConfig) {
		c.logger = log
	}
}

// Loop repeatedly invokes an Action, applying a classification-based
// retry policy:
//
//   - success: interval and retry count reset; the loop returns
//     unless configured to repeat
//   - flood control: wait exactly what the server mandated plus a
//     small slack
//   - timeout: retry immediately, the attempt did no useful work
//   - fatal auth: return the error at once, retrying cannot help
//   - anything else: exponential backoff, 1s growing 1.5x up to 30s
//
// Cancelling ctx stops the loop quietly, racing any in-flight
// invocation instead of waiting for it to come back.
type Loop struct {
	config loopConfig
}

func NewLoop(opts ...LoopOption) *Loop {
	config := defaultLoopConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Loop{config}
}

// Run drives the loop until it terminates. name labels the loop in
// logs and has no other effect.
//
// The returned error is nil on clean termination (success without
// repeat, cancellation, or isRunning turning false); otherwise it is
// the fatal-auth error, the failure that exhausted the retry budget,
// or the error callback's own panic.
func (l *Loop) Run(ctx context.Context, name string, action Action) error {
	cfg := l.config
	if cfg.repeatOnSuccess && cfg.maxRetries >= 0 {
		return ErrInvalidLoopConfig
	}
	if ctx == nil {
		ctx = context.Background()
	}

	interval := cfg.interval
	retries := 0

	for cfg.isRunning() {
		err, stopped := invoke(ctx, action)
		if stopped {
			cfg.logger.Debugf("retry.Loop: %s cancelled", name)
			return nil
		}

		if err == nil {
			if !cfg.repeatOnSuccess {
				return nil
			}
			interval = cfg.interval
			retries = 0
		} else {
			// The budget is judged on the count before this failure
			// is added: attempt n+1 happens only if n < maxRetries.
			exhausted := cfg.maxRetries >= 0 && retries >= cfg.maxRetries

			switch telegram_errors.Classify(err) {
			case telegram_errors.KindFatalAuth:
				cfg.logger.Errorf("retry.Loop: %s aborting, auth failure: %v", name, err)
				return err

			case telegram_errors.KindFloodControl:
				if exhausted {
					return err
				}
				wait, _ := telegram_errors.RetryAfter(err)
				interval = wait + floodSlack
				cfg.logger.Infof(
					"retry.Loop: %s hit flood control, waiting %v. error=%v",
					name, interval, err,
				)

			case telegram_errors.KindTimeout:
				if exhausted {
					return err
				}
				interval = 0
				cfg.logger.Debugf("retry.Loop: %s timed out, retrying now", name)

			default:
				if cbErr := notify(cfg.onError, err); cbErr != nil {
					cfg.logger.Errorf("retry.Loop: %s aborting, %v", name, cbErr)
					return cbErr
				}
				if exhausted {
					return err
				}
				if interval == 0 {
					interval = transientBase
				} else {
					interval = interval * 3 / 2
					if interval > maxBackoff {
						interval = maxBackoff
					}
				}
				cfg.logger.Warnf(
					"retry.Loop: %s failed, retrying in %v. retries=%d, error=%v",
					name, interval, retries, err,
				)
			}
			retries++
		}

		if interval > 0 {
			if !cfg.sleep(ctx, interval) {
				cfg.logger.Debugf("retry.Loop: %s cancelled while sleeping", name)
				return nil
			}
		}
	}
	return nil
}

// invoke races one action invocation against ctx. If ctx wins, the
// in-flight invocation is abandoned: its goroutine finishes into a
// buffered channel nobody reads, and whatever it returns is dropped.
func invoke(ctx context.Context, action Action) (err error, stopped bool) {
	if ctx.Err() != nil {
		return nil, true
	}

	done := make(chan error, 1)
	go func() {
		done <- action(ctx)
	}()

	select {
	case err = <-done:
		if ctx.Err() != nil {
			// Cancelled while the result was in flight. Treat it the
			// same as losing the race.
			return nil, true
		}
		return err, false
	case <-ctx.Done():
		return nil, true
	}
}

func notify(onError func(error), err error) (cbErr error) {
	if onError == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			cbErr = fmt.Errorf("retry: error callback panicked: %v", r)
		}
	}()
	onError(err)
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
