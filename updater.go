package telegram_go

import (
	"github.com/python-telegram-bot/python-telegram-bot-sub007/poller"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/types"
)

// Updater is the convenience facade over poller.Poller, wired to a
// Client. It hides the poller options behind root-level ones so the
// common case stays a two-liner:
//
//	client := telegram_go.NewClient(token)
//	updater := telegram_go.NewUpdater(client)
//	updater.Start()
//	for update := range updater.Updates() {
//	    // handle update
//	}
type Updater struct {
	config updaterConfig
	client *Client
	poller *poller.Poller
}

func NewUpdater(client *Client, opts ...UpdaterConfigOption) *Updater {
	uConfig := defaultUpdaterConfig()
	for _, o := range opts {
		o(&uConfig)
	}

	pOpts := []poller.Option{
		poller.WithPollInterval(uConfig.pollInterval),
		poller.WithPollTimeout(uConfig.pollTimeout),
		poller.WithLimit(uConfig.limit),
		poller.WithStartOffset(uConfig.startOffset),
		poller.WithBufferSize(uConfig.bufferSize),
		poller.WithWebhookCleanup(uConfig.webhookCleanup),
		poller.WithDropPendingUpdates(uConfig.dropPending),
		poller.WithRetry(uConfig.retry),
		poller.WithLogger(uConfig.logger),
	}
	if len(uConfig.allowedUpdates) > 0 {
		pOpts = append(pOpts, poller.WithAllowedUpdates(uConfig.allowedUpdates...))
	}
	if uConfig.onError != nil {
		pOpts = append(pOpts, poller.WithOnError(uConfig.onError))
	}

	return &Updater{
		config: uConfig,
		client: client,
		poller: poller.New(client.Updates(), pOpts...),
	}
}

// Start begins long polling. Idempotent.
func (u *Updater) Start() {
	u.poller.Start()
}

// Stop cancels polling and waits for the updates channel to close.
// Idempotent.
func (u *Updater) Stop() {
	u.poller.Stop()
}

// Updates returns the channel of incoming updates. Valid after Start;
// closed when polling ends.
func (u *Updater) Updates() <-chan types.Update {
	return u.poller.Updates()
}

// Offset is the next update id to be requested. Persist it and pass
// it back via WithUpdaterStartOffset to resume without update loss.
func (u *Updater) Offset() int64 {
	return u.poller.Offset()
}

// Err reports why polling stopped, nil after a clean Stop.
func (u *Updater) Err() error {
	return u.poller.Err()
}
