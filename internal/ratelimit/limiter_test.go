package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestWaitSpacesRequests(t *testing.T) {
	hl := NewHostLimiter(100, 1, 0)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := hl.Wait(context.Background(), "https://understat.com/match/1"); err != nil {
			t.Fatalf("wait %d: %v", i, err)
		}
	}
	// 100 rps with burst 1 means the second and third waits pay ~10ms each.
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("3 waits finished in %v, expected spacing", elapsed)
	}
}

func TestWaitPerHost(t *testing.T) {
	hl := NewHostLimiter(1, 1, 0)

	start := time.Now()
	if err := hl.Wait(context.Background(), "https://a.example.com/"); err != nil {
		t.Fatal(err)
	}
	if err := hl.Wait(context.Background(), "https://b.example.com/"); err != nil {
		t.Fatal(err)
	}
	// Different hosts draw from different buckets, so neither should block.
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("cross-host waits took %v", elapsed)
	}
}

func TestWaitCancelled(t *testing.T) {
	hl := NewHostLimiter(0.001, 1, 0)
	if err := hl.Wait(context.Background(), "https://understat.com/"); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := hl.Wait(ctx, "https://understat.com/"); err == nil {
		t.Fatal("expected a context error for an exhausted bucket")
	}
}

func TestWaitInvalidURL(t *testing.T) {
	hl := NewHostLimiter(1, 1, 0)
	if err := hl.Wait(context.Background(), "::bad::"); err != nil {
		t.Fatalf("invalid URL should pass through, got %v", err)
	}
}
