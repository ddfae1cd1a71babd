package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDelay(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		want     time.Duration
	}{
		{"retry period", 600 * time.Second, 600 * time.Second},
		{"one second", time.Second, time.Second},
		{"sub-second interval", 10 * time.Millisecond, time.Second},
		{"fraction dropped", 1500 * time.Millisecond, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Delay(tt.interval); got != tt.want {
				t.Errorf("Delay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSleepReturnsOnCancel(t *testing.T) {
	s := NewIntervalSleeper()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := s.Sleep(ctx, 600*time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Sleep() = %v, want context.Canceled", err)
	}
	if time.Since(start) > time.Second {
		t.Errorf("Sleep did not return promptly after cancel")
	}
}

func TestSleepWaitsFullInterval(t *testing.T) {
	s := NewIntervalSleeper()

	start := time.Now()
	if err := s.Sleep(context.Background(), time.Second); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	if elapsed := time.Since(start); elapsed < time.Second {
		t.Errorf("Sleep took %v, want at least 1s", elapsed)
	}
}
