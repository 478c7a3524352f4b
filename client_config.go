package telegram_go

import (
	"net/http"
	"time"

	"github.com/python-telegram-bot/python-telegram-bot-sub007/api"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/logger"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/rate"
)

type config struct {
	// transport specifies the HTTP transport mechanism
	// for making requests.
	// It's useful for mocking or if customers
	// want to add extra logging, headers, etc.
	// default: http.DefaultTransport
	transport http.RoundTripper

	// timeout sets the maximum duration for HTTP requests
	// before they are cancelled.
	// Must exceed the long-poll timeout passed to getUpdates,
	// otherwise the client gives up before the server answers.
	// default: 65 seconds
	timeout time.Duration

	// baseUrl points the client at an alternative API server,
	// e.g. a locally hosted Bot API instance or a test server
	// default: https://api.telegram.org
	baseUrl string

	// logger provides logging functionality for all internal
	// client operations
	// default: logger.Noop
	logger logger.Logger

	// limiter throttles outgoing requests to stay under
	// Telegram's flood limits
	// default: rate.NoopLimiter
	limiter rate.Limiter
}

func defaultConfig() *config {
	return &config{
		transport: http.DefaultTransport,
		timeout:   65 * time.Second,
		baseUrl:   api.DefaultBaseUrl,
		logger:    logger.Noop{},
		limiter:   &rate.NoopLimiter{},
	}
}

type ConfigOption func(c *config)

func WithTransport(transport http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithBaseUrl(baseUrl string) ConfigOption {
	return func(c *config) {
		c.baseUrl = baseUrl
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}

func WithRateLimiter(limiter rate.Limiter) ConfigOption {
	return func(c *config) {
		c.limiter = limiter
	}
}
