package checkout

import (
	"context"
	"time"
)

// Clock abstracts the simulated payment latency so tests can run the timed
// stages without sleeping.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type nopClock struct{}

// NopClock returns immediately; used in tests.
func NopClock() Clock {
	return nopClock{}
}

func (nopClock) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
