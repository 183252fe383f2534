package dispatcher

import (
	"context"
	"time"
)

// DefaultInterval is the pause between two consecutive sends.
const DefaultInterval = time.Second

// Pacer spaces out consecutive sends to stay under relay rate limits.
type Pacer interface {
	Pause(ctx context.Context) error
}

// FixedPacer waits the same interval on every call, regardless of how the
// previous send went.
type FixedPacer struct {
	interval time.Duration
}

// NewFixedPacer creates a pacer with the given interval.
func NewFixedPacer(interval time.Duration) *FixedPacer {
	return &FixedPacer{interval: interval}
}

// DefaultPacer returns a pacer using DefaultInterval.
func DefaultPacer() *FixedPacer {
	return NewFixedPacer(DefaultInterval)
}

// Interval returns the configured pause.
func (p *FixedPacer) Interval() time.Duration {
	return p.interval
}

// Pause blocks for the interval or until ctx is done.
func (p *FixedPacer) Pause(ctx context.Context) error {
	if p.interval <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(p.interval)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
