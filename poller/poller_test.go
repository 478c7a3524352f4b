package poller

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	telegram_errors "github.com/python-telegram-bot/python-telegram-bot-sub007/errors"
	"github.com/python-telegram-bot/python-telegram-bot-sub007/types"
)

func Test_Poller_forwards_updates_in_order(t *testing.T) {
	src := newFakeSource(
		step{batch: updates(1, 2)},
		step{batch: updates(3)},
	)
	p := New(src, WithWebhookCleanup(false))
	p.Start()
	defer p.Stop()

	var got []int64
	for i := 0; i < 3; i++ {
		got = append(got, receive(t, p.Updates()).UpdateId)
	}
	assert.Equal(t, []int64{1, 2, 3}, got)
	require.Eventually(t, func() bool {
		return p.Offset() == 4
	}, 5*time.Second, 10*time.Millisecond)
}

func Test_Poller_requests_next_offset_after_handoff(t *testing.T) {
	src := newFakeSource(
		step{batch: updates(5, 6)},
		step{batch: updates(7)},
	)
	p := New(src, WithWebhookCleanup(false))
	p.Start()

	for i := 0; i < 3; i++ {
		receive(t, p.Updates())
	}
	p.Stop()

	reqs := src.requests()
	require.GreaterOrEqual(t, len(reqs), 2)
	assert.EqualValues(t, 0, reqs[0].Offset)
	assert.EqualValues(t, 7, reqs[1].Offset)
	if len(reqs) > 2 {
		assert.EqualValues(t, 8, reqs[2].Offset)
	}
}

func Test_Poller_start_offset_resumes(t *testing.T) {
	src := newFakeSource(step{batch: updates(101)})
	p := New(src,
		WithWebhookCleanup(false),
		WithStartOffset(100),
	)
	p.Start()
	receive(t, p.Updates())
	p.Stop()

	reqs := src.requests()
	require.NotEmpty(t, reqs)
	assert.EqualValues(t, 100, reqs[0].Offset)
	assert.EqualValues(t, 102, p.Offset())
}

func Test_Poller_empty_batch_keeps_offset(t *testing.T) {
	src := newFakeSource(
		step{batch: nil},
		step{batch: updates(1)},
	)
	p := New(src, WithWebhookCleanup(false))
	p.Start()
	receive(t, p.Updates())
	p.Stop()

	reqs := src.requests()
	require.GreaterOrEqual(t, len(reqs), 2)
	assert.EqualValues(t, 0, reqs[0].Offset)
	assert.EqualValues(t, 0, reqs[1].Offset)
}

func Test_Poller_transient_error_reported_and_survived(t *testing.T) {
	src := newFakeSource(
		step{err: fmt.Errorf("connection reset")},
		step{batch: updates(1)},
	)
	var reported []error
	var mu sync.Mutex

	p := New(src,
		WithWebhookCleanup(false),
		WithOnError(func(err error) {
			mu.Lock()
			defer mu.Unlock()
			reported = append(reported, err)
		}),
	)
	p.Start()
	defer p.Stop()

	u := receive(t, p.Updates())
	assert.EqualValues(t, 1, u.UpdateId)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, reported, 1)
	assert.Contains(t, reported[0].Error(), "connection reset")
}

func Test_Poller_fatal_auth_stops_polling(t *testing.T) {
	src := newFakeSource(
		step{err: &telegram_errors.ApiError{
			Type:           telegram_errors.TYPE_API,
			HttpStatusCode: 401,
			ErrorCode:      401,
			Description:    "Unauthorized",
		}},
	)
	p := New(src, WithWebhookCleanup(false))
	p.Start()
	defer p.Stop()

	// A fatal error closes the updates channel without delivering
	// anything.
	select {
	case _, ok := <-p.Updates():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("updates channel never closed after fatal error")
	}

	require.Error(t, p.Err())
	assert.Equal(t, telegram_errors.KindFatalAuth, telegram_errors.Classify(p.Err()))
	assert.Equal(t, 1, src.getCalls())
}

func Test_Poller_webhook_cleanup_runs_before_polling(t *testing.T) {
	src := newFakeSource(step{batch: updates(1)})
	p := New(src, WithDropPendingUpdates(true))
	p.Start()
	receive(t, p.Updates())
	p.Stop()

	assert.Equal(t, 1, src.deleteCalls())
	assert.True(t, src.lastDeleteDrop())
}

func Test_Poller_webhook_cleanup_disabled(t *testing.T) {
	src := newFakeSource(step{batch: updates(1)})
	p := New(src, WithWebhookCleanup(false))
	p.Start()
	receive(t, p.Updates())
	p.Stop()

	assert.Equal(t, 0, src.deleteCalls())
}

func Test_Poller_webhook_cleanup_fatal_error_aborts(t *testing.T) {
	src := newFakeSource(step{batch: updates(1)})
	src.failDelete(&telegram_errors.ApiError{
		Type:           telegram_errors.TYPE_API,
		HttpStatusCode: 401,
		ErrorCode:      401,
	})
	p := New(src)
	p.Start()
	defer p.Stop()

	select {
	case _, ok := <-p.Updates():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("updates channel never closed")
	}
	assert.Error(t, p.Err())
	assert.Equal(t, 0, src.getCalls(), "polling must not start after failed cleanup")
}

func Test_Poller_start_stop_idempotent(t *testing.T) {
	src := newFakeSource()
	p := New(src, WithWebhookCleanup(false))

	p.Start()
	p.Start()
	p.Stop()
	p.Stop()

	// Restart works and produces a fresh channel.
	p.Start()
	ch := p.Updates()
	assert.NotNil(t, ch)
	p.Stop()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel must be closed after Stop")
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}

func Test_Poller_stop_interrupts_long_poll(t *testing.T) {
	src := newFakeSource() // no steps: Get blocks until ctx fires
	p := New(src, WithWebhookCleanup(false))
	p.Start()

	time.Sleep(50 * time.Millisecond)
	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop blocked on an in-flight long poll")
	}
	assert.NoError(t, p.Err())
}

type step struct {
	batch []types.Update
	err   error
}

// fakeSource serves scripted getUpdates responses, then blocks like
// an idle long poll.
type fakeSource struct {
	mu        sync.Mutex
	steps     []step
	reqs      []types.GetUpdatesRequest
	deletes   int
	deleteReq types.DeleteWebhookRequest
	deleteErr error
}

var _ UpdateSource = &fakeSource{}

func newFakeSource(steps ...step) *fakeSource {
	return &fakeSource{steps: steps}
}

func (f *fakeSource) Get(ctx context.Context, req types.GetUpdatesRequest) ([]types.Update, error) {
	f.mu.Lock()
	f.reqs = append(f.reqs, req)
	var s *step
	if len(f.steps) > 0 {
		s = &f.steps[0]
		f.steps = f.steps[1:]
	}
	f.mu.Unlock()

	if s == nil {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.batch, s.err
}

func (f *fakeSource) DeleteWebhook(_ context.Context, req types.DeleteWebhookRequest) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	f.deleteReq = req
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	return true, nil
}

func (f *fakeSource) failDelete(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteErr = err
}

func (f *fakeSource) requests() []types.GetUpdatesRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]types.GetUpdatesRequest(nil), f.reqs...)
}

func (f *fakeSource) getCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reqs)
}

func (f *fakeSource) deleteCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deletes
}

func (f *fakeSource) lastDeleteDrop() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deleteReq.DropPendingUpdates
}

func updates(ids ...int64) []types.Update {
	var batch []types.Update
	for _, id := range ids {
		batch = append(batch, types.Update{UpdateId: id})
	}
	return batch
}

func receive(t *testing.T, ch <-chan types.Update) types.Update {
	t.Helper()
	select {
	case u, ok := <-ch:
		require.True(t, ok, "updates channel closed unexpectedly")
		return u
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for an update")
		return types.Update{}
	}
}
