package kit

import (
	"strconv"
	"testing"
	"time"
)

func TestIPRateLimiter_SweepsIdleClients(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(5, time.Minute)
	l.now = func() time.Time { return now }

	for i := range 50 {
		if !l.Allow("10.0.0." + strconv.Itoa(i)) {
			t.Fatalf("client %d rejected", i)
		}
	}
	if n := l.Len(); n != 50 {
		t.Fatalf("tracked=%d want=50", n)
	}

	now = now.Add(2 * time.Minute)
	if !l.Allow("192.0.2.1") {
		t.Fatalf("fresh client rejected")
	}
	if n := l.Len(); n != 1 {
		t.Fatalf("tracked after sweep=%d want=1", n)
	}
}

func TestIPRateLimiter_WindowSlides(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = now.Add(30 * time.Second)
	l.Allow("a")
	if l.Allow("a") {
		t.Fatalf("third hit inside window allowed")
	}

	now = now.Add(31 * time.Second)
	if !l.Allow("a") {
		t.Fatalf("hit after oldest expired rejected")
	}
}
