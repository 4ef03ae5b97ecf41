package pipeline

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter caps the number of output lines per second
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a new output limiter
func NewLimiter(linesPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 1
	}

	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(linesPerSecond), burst),
	}
}

// Wait blocks until the next line may be written
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a line may be written now without waiting
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

// Burst returns the configured burst size
func (l *Limiter) Burst() int {
	return l.limiter.Burst()
}
