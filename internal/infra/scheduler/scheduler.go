package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// IntervalSleeper blocks between polling cycles for a fixed delay.
type IntervalSleeper struct{}

func NewIntervalSleeper() *IntervalSleeper {
	return &IntervalSleeper{}
}

// Sleep waits for Delay(interval) or until ctx is done, whichever comes first.
func (s *IntervalSleeper) Sleep(ctx context.Context, interval time.Duration) error {
	timer := time.NewTimer(Delay(interval))
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Delay is the wait of an "@every interval" constant-delay schedule: whole-second
// intervals are kept as is, fractions are dropped and anything under a second becomes one.
// It does not depend on the current time.
func Delay(interval time.Duration) time.Duration {
	return cron.Every(interval).Delay
}
