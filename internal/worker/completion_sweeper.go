package worker

import (
	"context"
	"log"
	"time"
)

// BookingCompleter is implemented by the booking repository.
type BookingCompleter interface {
	CompleteElapsed(ctx context.Context, now time.Time) (int64, error)
}

// CompletionSweeper periodically promotes Upcoming bookings whose check-out
// date has passed to Completed. The status lifecycle has no caller-driven
// path to Completed, so this sweep is the only writer of that state.
type CompletionSweeper struct {
	bookings BookingCompleter
	interval time.Duration
}

func NewCompletionSweeper(bookings BookingCompleter, interval time.Duration) *CompletionSweeper {
	return &CompletionSweeper{
		bookings: bookings,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled. One sweep runs immediately so a
// restart does not leave elapsed bookings Upcoming for a full interval.
func (s *CompletionSweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("completion sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *CompletionSweeper) sweep(ctx context.Context) {
	start := time.Now()
	completed, err := s.bookings.CompleteElapsed(ctx, start)
	if err != nil {
		log.Printf("completion_sweep_error error=%q", err.Error())
		return
	}
	if completed > 0 {
		log.Printf("completion_sweep completed=%d latency=%s", completed, time.Since(start))
	}
}
