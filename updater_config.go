package telegram_go

import (
	"time"

	"github.com/python-telegram-bot/python-telegram-bot-sub007/logger"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/poller"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/retry"
)

type updaterConfig struct {
	// pollInterval is the pause between successful getUpdates calls
	// (maps to poller.WithPollInterval)
	// default: 0 (the next long poll starts immediately)
	pollInterval time.Duration

	// pollTimeout is the server-side long-poll window
	// (maps to poller.WithPollTimeout)
	// default: 10 seconds
	pollTimeout time.Duration

	// limit caps the number of updates per getUpdates call, 1-100
	// (maps to poller.WithLimit)
	// default: 100
	limit int

	// allowedUpdates restricts which update kinds the server sends
	// (maps to poller.WithAllowedUpdates)
	// default: nil (server-side default set)
	allowedUpdates []string

	// startOffset resumes polling from a persisted offset
	// (maps to poller.WithStartOffset)
	// default: 0
	startOffset int64

	// bufferSize is the capacity of the updates channel
	// (maps to poller.WithBufferSize)
	// default: 100
	bufferSize int

	// webhookCleanup deletes an active webhook before polling starts,
	// since getUpdates is rejected while a webhook is set
	// (maps to poller.WithWebhookCleanup)
	// default: true
	webhookCleanup bool

	// dropPending discards updates accumulated while the bot was
	// offline, applied during webhook cleanup
	// (maps to poller.WithDropPendingUpdates)
	// default: false
	dropPending bool

	// onError receives every transient getUpdates failure; fatal
	// failures stop the updater and surface through Err
	// (maps to poller.WithOnError)
	// default: nil
	onError func(error)

	// retry configures the strategy for bounded pre-polling calls
	// (maps to poller.WithRetry)
	// default: retry.NewExponentialRetry()
	retry retry.Retry

	// logger provides logging for the polling loop
	// (maps to poller.WithLogger)
	// default: logger.Noop
	logger logger.Logger
}

func defaultUpdaterConfig() updaterConfig {
	return updaterConfig{
		pollInterval:   0,
		pollTimeout:    poller.DefaultPollTimeout,
		limit:          poller.DefaultLimit,
		bufferSize:     poller.DefaultBufferSize,
		webhookCleanup: true,
		dropPending:    false,
		retry:          retry.NewExponentialRetry(),
		logger:         logger.Noop{},
	}
}

type UpdaterConfigOption func(c *updaterConfig)

func WithUpdaterPollInterval(interval time.Duration) UpdaterConfigOption {
	return func(c *updaterConfig) {
		c.pollInterval = interval
	}
}

func WithUpdaterPollTimeout(timeout time.Duration) UpdaterConfigOption {
	return func(c *updaterConfig) {
		c.pollTimeout = timeout
	}
}

func WithUpdaterLimit(limit int) UpdaterConfigOption {
	return func(c *updaterConfig) {
		c.limit = limit
	}
}

func WithUpdaterAllowedUpdates(kinds ...string) UpdaterConfigOption {
	return func(c *updaterConfig) {
		c.allowedUpdates = kinds
	}
}

func WithUpdaterStartOffset(offset int64) UpdaterConfigOption {
	return func(c *updaterConfig) {
		c.startOffset = offset
	}
}

func WithUpdaterBufferSize(bufferSize int) UpdaterConfigOption {
	return func(c *updaterConfig) {
		c.bufferSize = bufferSize
	}
}

func WithUpdaterWebhookCleanup(enabled bool) UpdaterConfigOption {
	return func(c *updaterConfig) {
		c.webhookCleanup = enabled
	}
}

func WithUpdaterDropPendingUpdates(drop bool) UpdaterConfigOption {
	return func(c *updaterConfig) {
		c.dropPending = drop
	}
}

func WithUpdaterOnError(fn func(error)) UpdaterConfigOption {
	return func(c *updaterConfig) {
		c.onError = fn
	}
}

func WithUpdaterRetry(retry retry.Retry) UpdaterConfigOption {
	return func(c *updaterConfig) {
		c.retry = retry
	}
}

func WithUpdaterLogger(logger logger.Logger) UpdaterConfigOption {
	return func(c *updaterConfig) {
		c.logger = logger
	}
}
