package limiter

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
)

// TestRedisLimiter_BasicRateLimit tests basic rate limiting against a mock Redis
func TestRedisLimiter_BasicRateLimit(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	limiter, err := NewRedisLimiter(mr.Addr(), "", 0, 3)
	if err != nil {
		t.Fatalf("failed to create Redis limiter: %v", err)
	}
	defer limiter.Close()

	ip := "192.168.1.1"

	// First 3 requests of the window should be allowed
	for i := 0; i < 3; i++ {
		if !limiter.Allow(ip) {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	// 4th request in the same window should be blocked
	if limiter.Allow(ip) {
		t.Error("Request 4 should be rate limited")
	}
}

// TestRedisLimiter_PerIPIsolation tests that different IPs have separate counters
func TestRedisLimiter_PerIPIsolation(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	limiter, err := NewRedisLimiter(mr.Addr(), "", 0, 2)
	if err != nil {
		t.Fatalf("failed to create Redis limiter: %v", err)
	}
	defer limiter.Close()

	// Use up the limit for IP1
	for i := 0; i < 2; i++ {
		if !limiter.Allow("192.168.1.1") {
			t.Errorf("Request %d for IP1 should be allowed", i+1)
		}
	}
	if limiter.Allow("192.168.1.1") {
		t.Error("IP1 should be rate limited")
	}

	// IP2 has its own counter
	if !limiter.Allow("192.168.1.2") {
		t.Error("IP2 should still be allowed")
	}
}

// TestRedisLimiter_ConnectionFailure tests connection errors
func TestRedisLimiter_ConnectionFailure(t *testing.T) {
	_, err := NewRedisLimiter("invalid:9999", "", 0, 10)
	if err == nil {
		t.Error("expected connection error, got nil")
	}
}

// TestRedisLimiter_FailOpen tests that Redis errors allow the request
func TestRedisLimiter_FailOpen(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	limiter, err := NewRedisLimiter(mr.Addr(), "", 0, 1)
	if err != nil {
		t.Fatalf("failed to create Redis limiter: %v", err)
	}
	defer limiter.Close()

	// Kill the server: the limiter should fail open rather than block traffic
	mr.Close()

	if !limiter.Allow("192.168.1.1") {
		t.Error("expected request to be allowed when Redis is unreachable")
	}
}
