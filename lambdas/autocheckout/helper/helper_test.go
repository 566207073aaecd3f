package helper

import (
	"testing"
	"time"
)

func TestCloseAfterElapsed(t *testing.T) {
	now := time.Date(2025, 3, 10, 22, 30, 0, 0, time.UTC)

	closeAt, err := CloseAfter("2025-03-10T09:00:00Z", 12, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closeAt == nil {
		t.Fatal("expected session to close")
	}

	want := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)
	if !closeAt.Equal(want) {
		t.Errorf("expected close at %v, got %v", want, closeAt)
	}
}

func TestCloseAfterStillOpen(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	closeAt, err := CloseAfter("2025-03-10T09:00:00Z", 12, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closeAt != nil {
		t.Errorf("expected session to stay open, got close at %v", closeAt)
	}
}

func TestCloseAfterExactDeadline(t *testing.T) {
	now := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)

	closeAt, err := CloseAfter("2025-03-10T09:00:00Z", 12, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closeAt == nil {
		t.Fatal("expected session to close at the deadline")
	}
	if !closeAt.Equal(now) {
		t.Errorf("expected close at %v, got %v", now, closeAt)
	}
}

func TestCloseAfterMalformedCheckIn(t *testing.T) {
	now := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)

	if _, err := CloseAfter("not-a-timestamp", 12, now); err == nil {
		t.Fatal("expected error for malformed check-in")
	}
}

func TestCloseAfterInvalidWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)

	if _, err := CloseAfter("2025-03-10T09:00:00Z", 0, now); err == nil {
		t.Fatal("expected error for zero window")
	}
}
