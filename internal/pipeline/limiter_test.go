package pipeline

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	if l := NewLimiter(10, 5); l.Burst() != 5 {
		t.Errorf("expected burst 5, got %d", l.Burst())
	}
	if l := NewLimiter(10, 0); l.Burst() != 1 {
		t.Errorf("expected default burst 1, got %d", l.Burst())
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := limiter.Wait(ctx); err != nil {
			t.Fatalf("wait failed: %v", err)
		}
	}

	// Burst of 1 at 100/s: the 2nd and 3rd waits take ~10ms each
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("expected throttling, took %v", elapsed)
	}
}

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(1, 1)
	if !limiter.Allow() {
		t.Error("expected first line to be allowed")
	}
	if limiter.Allow() {
		t.Error("expected second line to be throttled")
	}
}
