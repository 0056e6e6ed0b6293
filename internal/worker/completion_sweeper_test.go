package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingCompleter struct {
	calls atomic.Int64
}

func (c *countingCompleter) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	c.calls.Add(1)
	return 0, nil
}

func TestCompletionSweeper_SweepsImmediatelyAndStops(t *testing.T) {
	completer := &countingCompleter{}
	sweeper := NewCompletionSweeper(completer, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return completer.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}

func TestCompletionSweeper_TicksOnInterval(t *testing.T) {
	completer := &countingCompleter{}
	sweeper := NewCompletionSweeper(completer, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweeper.Run(ctx)

	assert.Eventually(t, func() bool {
		return completer.calls.Load() >= 3
	}, 2*time.Second, 10*time.Millisecond)
}
