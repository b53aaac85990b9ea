package ratelimit

import (
	"testing"
	"time"
)

func TestNewLimiter_panicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty rate map")
		}
	}()
	NewLimiter(nil)
}

func TestNewLimiter_panicsOnNonMonotonic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on non-monotonic rates")
		}
	}()
	NewLimiter(map[time.Duration]int{
		time.Second: 10,
		time.Minute: 5,
	})
}

func TestLimiter_nilAlwaysAllows(t *testing.T) {
	var l *Limiter
	for i := 0; i < 5; i++ {
		if _, ok := l.Allow("x"); !ok {
			t.Fatal("nil Limiter must always allow")
		}
	}
}

func TestLimiter_allowsUpToLimitThenRejects(t *testing.T) {
	l := NewLimiter(map[time.Duration]int{time.Minute: 3})

	for i := 0; i < 3; i++ {
		if _, ok := l.Allow("cat"); !ok {
			t.Fatalf("event %d should have been allowed", i)
		}
	}

	next, ok := l.Allow("cat")
	if ok {
		t.Fatal("4th event within the window should have been rejected")
	}
	if !next.After(time.Now()) {
		t.Fatal("next should report a future time")
	}
}

func TestLimiter_categoriesAreIndependent(t *testing.T) {
	l := NewLimiter(map[time.Duration]int{time.Minute: 1})

	if _, ok := l.Allow("a"); !ok {
		t.Fatal("first event for category a should be allowed")
	}
	if _, ok := l.Allow("b"); !ok {
		t.Fatal("first event for category b should be allowed independently of a")
	}
	if _, ok := l.Allow("a"); ok {
		t.Fatal("second event for category a should be rejected")
	}
}
