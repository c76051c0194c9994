package ids

import (
	"testing"
	"time"
)

func TestNewIsMonotonicWithinMillisecond(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	prev := New(now)
	for i := 0; i < 100; i++ {
		next := New(now)
		if next <= prev {
			t.Fatalf("expected %s > %s", next, prev)
		}
		prev = next
	}
}

func TestValid(t *testing.T) {
	if !Valid(New(time.Now())) {
		t.Fatal("expected generated id to be valid")
	}
	if Valid("not-a-ulid") {
		t.Fatal("expected garbage to be invalid")
	}
}
