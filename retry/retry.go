package retry

// Retry provides a standardized interface for implementing retry logic
// with different strategies. It allows operations to be retried, with configurable retry
// policies such as exponential backoff, maximum attempts, and custom delay strategies.
//
// The interface is used throughout the Telegram client for handling transient failures in:
// - One-shot API requests that may fail due to network issues
// - Pre-polling housekeeping such as deleting a stale webhook
//
// For the long-poll getUpdates cadence, which needs classification-aware
// backoff and cooperative cancellation, see Loop in this package.
//
// Usage Example:
//
//	retry := retry.NewExponentialRetry(
//	    retry.WithInitialDuration(100*time.Millisecond),
//	    retry.WithLogger(myLogger),
//	)
//
//	err := retry.Do(3, "delete-webhook", func(attempt int) (error, retry.ExitStrategy) {
//	    ok, err := updates.DeleteWebhook(ctx, req)
//	    if err != nil {
//	        if isRetriableError(err) {
//	            return err, retry.Continue  // Retry this error
//	        }
//	        return err, retry.StopNow     // Don't retry this error
//	    }
//	    return nil, retry.StopNow         // Success, stop retrying
//	})
//
// The RetriableFn function receives the current attempt number (0-based) and returns
// an error and an ExitStrategy. The ExitStrategy determines whether to continue
// retrying (Continue) or stop immediately (StopNow), regardless of remaining attempts.
//
// NOTE: if attempts is 0, the fn is never called.
type Retry interface {
	Do(attempts int, fnName string, fn RetriableFn) error
}

type RetriableFn func(attempt int) (error, ExitStrategy)

type ExitStrategy bool

var StopNow ExitStrategy = true
var Continue ExitStrategy = false
