package logger

// Logger provides a standardized logging interface for the Telegram
// Bot API client. It defines methods for different log levels
// (Debug, Info, Warn, Error) to enable consistent logging throughout
// the client library. This interface allows users to plug in their
// preferred logging implementation (e.g., glog, logrus, zap, standard log)
// or use the provided Noop logger to disable logging entirely.
//
// The logger is used throughout the client for:
// - API request/response debugging
// - Long-poll loop status and retry attempt tracking
// - Connection and transport issues
//
// Usage Example:
//
//	// Using with a custom logger implementation
//	client := telegram_go.NewClient(token, telegram_go.WithLogger(myLogger))
//
//	// Using with the update poller
//	p := poller.New(client.Updates(), poller.WithLogger(myLogger))
//
//	// Disable logging entirely
//	client := telegram_go.NewClient(token, telegram_go.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
