package poller

import (
	"time"

	"github.com/python-telegram-bot/python-telegram-bot-sub007/logger"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/retry"
)

const (
	DefaultPollTimeout = 10 * time.Second
	DefaultLimit       = 100
	DefaultBufferSize  = 100

	// Attempts for the pre-polling webhook cleanup call.
	webhookCleanupAttempts = 3
)

type pollerConfig struct {
	// pollInterval is the pause between successful getUpdates calls.
	// Zero means the next long poll starts immediately, which is the
	// usual mode since getUpdates itself blocks server-side.
	pollInterval time.Duration

	// pollTimeout is how long the server may hold a getUpdates call
	// open. Sent to the API in whole seconds.
	pollTimeout time.Duration

	// limit caps the batch size per getUpdates call (1-100).
	limit int

	// allowedUpdates restricts which update kinds the server sends.
	// Empty keeps the server-side default.
	allowedUpdates []string

	// startOffset seeds the offset tracker, letting a caller resume
	// from a persisted position.
	startOffset int64

	// bufferSize is the capacity of the updates channel.
	bufferSize int

	// webhookCleanup removes an active webhook before polling starts.
	// getUpdates is rejected while a webhook is set, so this defaults
	// to on.
	webhookCleanup bool

	// dropPending discards updates accumulated while the bot was
	// offline during webhook cleanup.
	dropPending bool

	// onError receives every transient getUpdates failure.
	onError func(error)

	retry  retry.Retry
	logger logger.Logger
}

func defaultPollerConfig() pollerConfig {
	return pollerConfig{
		pollInterval:   0,
		pollTimeout:    DefaultPollTimeout,
		limit:          DefaultLimit,
		bufferSize:     DefaultBufferSize,
		webhookCleanup: true,
		retry:          retry.NewExponentialRetry(),
		logger:         &logger.Noop{},
	}
}

type Option func(c *pollerConfig)

func WithPollInterval(d time.Duration) Option {
	return func(c *pollerConfig) {
		if d >= 0 {
			c.pollInterval = d
		}
	}
}

func WithPollTimeout(d time.Duration) Option {
	return func(c *pollerConfig) {
		if d >= 0 {
			c.pollTimeout = d
		}
	}
}

func WithLimit(n int) Option {
	return func(c *pollerConfig) {
		if n > 0 {
			c.limit = n
		}
	}
}

func WithAllowedUpdates(kinds ...string) Option {
	return func(c *pollerConfig) {
		c.allowedUpdates = kinds
	}
}

func WithStartOffset(offset int64) Option {
	return func(c *pollerConfig) {
		c.startOffset = offset
	}
}

func WithBufferSize(n int) Option {
	return func(c *pollerConfig) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

func WithWebhookCleanup(enabled bool) Option {
	return func(c *pollerConfig) {
		c.webhookCleanup = enabled
	}
}

func WithDropPendingUpdates(drop bool) Option {
	return func(c *pollerConfig) {
		c.dropPending = drop
	}
}

// WithOnError registers a callback for transient polling failures.
// Fatal failures are not reported here; they stop the poller and are
// exposed through Err.
func WithOnError(fn func(error)) Option {
	return func(c *pollerConfig) {
		c.onError = fn
	}
}

// WithRetry overrides the strategy used for the bounded pre-polling
// calls (webhook cleanup). The polling cadence itself is driven by
// retry.Loop and is not affected.
func WithRetry(r retry.Retry) Option {
	return func(c *pollerConfig) {
		if r != nil {
			c.retry = r
		}
	}
}

func WithLogger(log logger.Logger) Option {
	return func(c *pollerConfig) {
		if log != nil {
			c.logger = log
		}
	}
}
