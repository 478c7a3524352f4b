package poller

import (
	"sync/atomic"

	"github.com/python-telegram-bot/python-telegram-bot-sub007/types"
)

// offset tracks the next update id to request from getUpdates.
// It only ever moves forward, and only after the batch that proved
// the ids were seen has been handed off. Reads are safe from other
// goroutines so callers can snapshot it for persistence.
type offset struct {
	next atomic.Int64
}

func newOffset(start int64) *offset {
	o := &offset{}
	o.next.Store(start)
	return o
}

func (o *offset) Next() int64 {
	return o.next.Load()
}

// Advance moves the offset past the highest update id in the batch.
// An empty batch leaves it unchanged; a batch of already-seen ids
// never moves it backwards.
func (o *offset) Advance(batch []types.Update) {
	var max int64
	for _, u := range batch {
		if u.UpdateId > max {
			max = u.UpdateId
		}
	}
	if max == 0 {
		return
	}
	for {
		cur := o.next.Load()
		if max+1 <= cur {
			return
		}
		if o.next.CompareAndSwap(cur, max+1) {
			return
		}
	}
}
