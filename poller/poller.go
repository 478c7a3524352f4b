package poller

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	telegram_errors "github.com/python-telegram-bot/python-telegram-bot-sub007/errors"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/retry"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/types"
)

// UpdateSource is the slice of the Bot API the poller needs. It is
// satisfied by *api.Updates and by fakes in tests.
type UpdateSource interface {
	Get(ctx context.Context, req types.GetUpdatesRequest) ([]types.Update, error)
	DeleteWebhook(ctx context.Context, req types.DeleteWebhookRequest) (bool, error)
}

// Poller long-polls getUpdates and forwards every fetched update, in
// order, to the channel returned by Updates. It owns the offset
// bookkeeping: a batch is acknowledged to the server (by requesting
// the next offset) only after the whole batch has been handed off,
// so a crash between fetch and handoff re-delivers rather than
// loses updates.
//
// Usage Example:
//
//	p := poller.New(client.Updates(),
//	    poller.WithPollTimeout(30*time.Second),
//	    poller.WithOnError(func(err error) { log.Println(err) }),
//	)
//	p.Start()
//	for update := range p.Updates() {
//	    // handle update
//	}
//	if err := p.Err(); err != nil {
//	    // polling stopped on a fatal error (e.g. invalid token)
//	}
//	p.Stop()
type Poller struct {
	source  UpdateSource
	config  pollerConfig
	offset  *offset
	updates chan types.Update

	group   errgroup.Group
	cancel  context.CancelFunc
	active  atomic.Bool
	mu      sync.Mutex
	running bool

	errMu   sync.Mutex
	loopErr error
}

func New(source UpdateSource, opts ...Option) *Poller {
	config := defaultPollerConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Poller{
		source: source,
		config: config,
		offset: newOffset(config.startOffset),
	}
}

// Start launches the polling goroutine. It is idempotent: calling
// Start on a running poller has no effect.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.updates = make(chan types.Update, p.config.bufferSize)
	p.setErr(nil)
	p.active.Store(true)

	p.group.Go(func() error {
		p.run(ctx)
		return nil
	})
	p.running = true
}

// Stop cancels polling and waits for the in-flight iteration to be
// abandoned and the updates channel to close. Idempotent.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}

	p.active.Store(false)
	p.cancel()
	if err := p.group.Wait(); err != nil {
		p.config.logger.Errorf("poller: failed to wait for polling goroutine: %v", err)
	}
	p.running = false
	p.config.logger.Debugf("poller: stopped")
}

// Updates returns the channel carrying fetched updates. The channel
// is created by Start and closed when polling ends, whether by Stop
// or by a fatal error; check Err after it closes.
func (p *Poller) Updates() <-chan types.Update {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.updates
}

// Offset reports the next update id the poller will request. Callers
// that want to survive restarts persist this and feed it back through
// WithStartOffset.
func (p *Poller) Offset() int64 {
	return p.offset.Next()
}

// Err reports why polling stopped, nil for a clean Stop.
func (p *Poller) Err() error {
	p.errMu.Lock()
	defer p.errMu.Unlock()
	return p.loopErr
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.updates)

	if p.config.webhookCleanup {
		if err := p.deleteWebhook(ctx); err != nil {
			p.config.logger.Errorf("poller: webhook cleanup failed: %v", err)
			p.setErr(err)
			return
		}
	}

	loop := retry.NewLoop(
		retry.WithRepeatOnSuccess(),
		retry.WithInterval(p.config.pollInterval),
		retry.WithIsRunning(p.active.Load),
		retry.WithOnError(p.config.onError),
		retry.WithLoopLogger(p.config.logger),
	)

	err := loop.Run(ctx, "getUpdates", p.pollOnce)
	if err != nil {
		p.config.logger.Errorf("poller: polling stopped: %v", err)
		p.setErr(err)
	}
}

// pollOnce performs one getUpdates round trip and hands the batch to
// the consumer. The offset advances only after the last update of
// the batch has been accepted by the channel.
func (p *Poller) pollOnce(ctx context.Context) error {
	batch, err := p.source.Get(ctx, types.GetUpdatesRequest{
		Offset:         p.offset.Next(),
		Limit:          p.config.limit,
		Timeout:        int(p.config.pollTimeout.Seconds()),
		AllowedUpdates: p.config.allowedUpdates,
	})
	if err != nil {
		return err
	}
	if len(batch) == 0 {
		return nil
	}

	p.config.logger.Debugf("poller: received %d update(s)", len(batch))
	for _, u := range batch {
		select {
		case p.updates <- u:
		case <-ctx.Done():
			// Handoff interrupted: the offset stays put and the whole
			// batch is re-fetched on the next session.
			return nil
		}
	}
	p.offset.Advance(batch)
	return nil
}

func (p *Poller) deleteWebhook(ctx context.Context) error {
	return p.config.retry.Do(
		webhookCleanupAttempts,
		"poller.deleteWebhook",
		func(attempt int) (error, retry.ExitStrategy) {
			_, err := p.source.DeleteWebhook(ctx, types.DeleteWebhookRequest{
				DropPendingUpdates: p.config.dropPending,
			})
			if err == nil {
				return nil, retry.StopNow
			}
			if telegram_errors.Classify(err) == telegram_errors.KindFatalAuth {
				return err, retry.StopNow
			}
			return err, retry.Continue
		},
	)
}

func (p *Poller) setErr(err error) {
	p.errMu.Lock()
	defer p.errMu.Unlock()
	p.loopErr = err
}
