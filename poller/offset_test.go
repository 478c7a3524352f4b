package poller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/python-telegram-bot/python-telegram-bot-sub007/types"
)

func Test_Offset_starts_at_seed(t *testing.T) {
	assert.EqualValues(t, 0, newOffset(0).Next())
	assert.EqualValues(t, 42, newOffset(42).Next())
}

func Test_Offset_advance_past_highest_id(t *testing.T) {
	o := newOffset(0)
	o.Advance([]types.Update{
		{UpdateId: 3},
		{UpdateId: 7},
		{UpdateId: 5},
	})
	assert.EqualValues(t, 8, o.Next())
}

func Test_Offset_empty_batch_is_noop(t *testing.T) {
	o := newOffset(10)
	o.Advance(nil)
	o.Advance([]types.Update{})
	assert.EqualValues(t, 10, o.Next())
}

func Test_Offset_never_decreases(t *testing.T) {
	o := newOffset(0)
	o.Advance([]types.Update{{UpdateId: 9}})
	assert.EqualValues(t, 10, o.Next())

	// A stale batch with lower ids must not move it back.
	o.Advance([]types.Update{{UpdateId: 4}})
	assert.EqualValues(t, 10, o.Next())
}

func Test_Offset_monotonic_across_batches(t *testing.T) {
	o := newOffset(0)
	prev := o.Next()
	for _, batch := range [][]types.Update{
		{{UpdateId: 1}, {UpdateId: 2}},
		{{UpdateId: 3}},
		{},
		{{UpdateId: 4}, {UpdateId: 5}, {UpdateId: 6}},
	} {
		o.Advance(batch)
		assert.GreaterOrEqual(t, o.Next(), prev)
		prev = o.Next()
	}
	assert.EqualValues(t, 7, o.Next())
}
