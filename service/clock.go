package service

import (
	"context"
	"time"
)

type realClock struct{}

// NewClock returns a Clock backed by the wall clock.
func NewClock() Clock {
	return realClock{}
}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
