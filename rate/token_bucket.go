package rate

import (
	"net/http"

	"golang.org/x/time/rate"
)

const (
	// Telegram's documented global limit for bots.
	DefaultMessagesPerSecond = 30
	DefaultBurst             = 30
)

type tokenBucket struct {
	limiter *rate.Limiter
}

var _ Limiter = &tokenBucket{}

// NewTokenBucket returns a Limiter backed by a token bucket.
// perSecond is the sustained request rate, burst the bucket size.
// Zero or negative values fall back to Telegram's documented
// 30 requests per second.
func NewTokenBucket(perSecond float64, burst int) Limiter {
	if perSecond <= 0 {
		perSecond = DefaultMessagesPerSecond
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &tokenBucket{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (t *tokenBucket) Limit(req *http.Request) {
	// Wait respects the request context, so a cancelled caller is
	// not held hostage by an empty bucket.
	_ = t.limiter.Wait(req.Context())
}
