package rate

import "net/http"

// Limiter controls request rates to the Telegram Bot API.
//
// The Limiter interface provides rate limiting functionality to prevent
// tripping Telegram's server-side flood control (HTTP 429 with a
// mandatory retry_after). Implementations can use different strategies
// such as:
//   - Token bucket algorithm
//   - Fixed window counting
//   - Sliding window counting
//
// Telegram enforces roughly 30 messages per second across all chats
// for a single bot, with tighter per-chat limits on top. The Limit
// method is called before each request and should block until the
// request is allowed to proceed. The implementation can use the
// request information (method, path, etc.) to apply different rate
// limits for different endpoints.
type Limiter interface {
	// Limit applies rate limiting to the given request. This method
	// should block if necessary to maintain the desired request rate.
	Limit(req *http.Request)
}
