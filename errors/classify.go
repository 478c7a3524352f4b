package errors

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

// Kind is the retry classification of an error coming out of a
// Bot API call. Every error maps to exactly one Kind; the retry
// loop dispatches on it once per failure instead of matching on
// concrete error types at every call site.
type Kind int

const (
	// KindTransient covers every failure with no special handling:
	// retryable with exponential backoff.
	KindTransient Kind = iota

	// KindTimeout means the poll exceeded its own time budget.
	// Retryable with no extra delay.
	KindTimeout

	// KindFloodControl means the server demanded a cool-down via
	// retry_after. Retryable after the mandated wait.
	KindFloodControl

	// KindFatalAuth means the bot token is invalid. Never retryable.
	KindFatalAuth
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindFloodControl:
		return "flood-control"
	case KindFatalAuth:
		return "fatal-auth"
	default:
		return "transient"
	}
}

// Classify maps an error to its retry Kind.
//
// The Bot API reports an invalid token as 401 Unauthorized, or as
// 404 Not Found when the token is malformed enough to break the URL.
// Flood control is 429 with parameters.retry_after. A 403 Forbidden
// (bot blocked or kicked from a chat) is deliberately NOT fatal: it
// is scoped to one chat, not to the session, so it classifies as
// transient like any other operation error.
func Classify(err error) Kind {
	if err == nil {
		return KindTransient
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}

	var apiErr *ApiError
	if errors.As(err, &apiErr) && apiErr != nil {
		switch statusCode(apiErr) {
		case http.StatusUnauthorized, http.StatusNotFound:
			return KindFatalAuth
		case http.StatusTooManyRequests:
			return KindFloodControl
		}
	}

	return KindTransient
}

// RetryAfter extracts the server-mandated wait from a flood-control
// error. The second return is false when the error carries no wait,
// in which case the caller falls back to its own backoff policy.
func RetryAfter(err error) (time.Duration, bool) {
	var provider interface{ RetryAfter() time.Duration }
	if !errors.As(err, &provider) {
		return 0, false
	}
	wait := provider.RetryAfter()
	if wait <= 0 {
		return 0, false
	}
	return wait, true
}

func statusCode(e *ApiError) int {
	// Telegram mirrors the HTTP status in error_code; trust the
	// envelope first since some proxies rewrite the HTTP layer.
	if e.ErrorCode != 0 {
		return e.ErrorCode
	}
	return e.HttpStatusCode
}
