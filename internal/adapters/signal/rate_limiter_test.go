package signal

import (
	"testing"
	"time"
)

func TestConnRateLimiterWindow(t *testing.T) {
	rl := NewConnRateLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !rl.Allow("c1") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if rl.Allow("c1") {
		t.Fatal("attempt over the limit should be blocked")
	}
	if !rl.Allow("c2") {
		t.Fatal("other connections have their own window")
	}
}

func TestConnRateLimiterSlides(t *testing.T) {
	rl := NewConnRateLimiter(2, 10*time.Millisecond)
	rl.Allow("c1")
	rl.Allow("c1")
	if rl.Allow("c1") {
		t.Fatal("window should be full")
	}
	time.Sleep(15 * time.Millisecond)
	if !rl.Allow("c1") {
		t.Fatal("window should have slid past old attempts")
	}
}

func TestConnRateLimiterForget(t *testing.T) {
	rl := NewConnRateLimiter(1, time.Minute)
	rl.Allow("c1")
	if rl.Allow("c1") {
		t.Fatal("window should be full")
	}
	rl.Forget("c1")
	if !rl.Allow("c1") {
		t.Fatal("forgotten connection starts a fresh window")
	}
}

func TestConnRateLimiterDisabled(t *testing.T) {
	rl := NewConnRateLimiter(0, time.Minute)
	for i := 0; i < 100; i++ {
		if !rl.Allow("c1") {
			t.Fatal("zero limit disables throttling")
		}
	}
}
