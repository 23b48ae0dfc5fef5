package ratelimit

import (
	"testing"
	"time"
)

func TestLimiter_Allow(t *testing.T) {
	limiter := New(Config{
		TriggersPerMinute: 3,
	})

	userID := int64(12345)

	for i := 0; i < 3; i++ {
		if !limiter.Allow(userID) {
			t.Errorf("Trigger %d should be allowed", i+1)
		}
	}

	if limiter.Allow(userID) {
		t.Error("Fourth trigger should be blocked due to rate limit")
	}
}

func TestLimiter_DifferentUsers(t *testing.T) {
	limiter := New(Config{
		TriggersPerMinute: 1,
	})

	user1 := int64(111)
	user2 := int64(222)

	if !limiter.Allow(user1) {
		t.Error("User1 first trigger should be allowed")
	}

	if !limiter.Allow(user2) {
		t.Error("User2 first trigger should be allowed")
	}

	if limiter.Allow(user1) {
		t.Error("User1 second trigger should be blocked")
	}

	if limiter.Allow(user2) {
		t.Error("User2 second trigger should be blocked")
	}
}

func TestLimiter_ResetTime(t *testing.T) {
	limiter := New(Config{
		TriggersPerMinute: 1,
	})

	userID := int64(12345)

	before := time.Now()
	limiter.Allow(userID)

	resetTime := limiter.ResetTime(userID)

	expectedReset := before.Add(time.Minute)
	tolerance := 2 * time.Second

	if resetTime.Before(expectedReset.Add(-tolerance)) || resetTime.After(expectedReset.Add(tolerance)) {
		t.Errorf("ResetTime() = %v, expected around %v", resetTime, expectedReset)
	}
}

func TestLimiter_DefaultConfig(t *testing.T) {
	limiter := New(Config{
		TriggersPerMinute: 0,
	})

	userID := int64(12345)

	for i := 0; i < 10; i++ {
		if !limiter.Allow(userID) {
			t.Errorf("Trigger %d should be allowed with default config", i+1)
		}
	}

	// 11th should be blocked
	if limiter.Allow(userID) {
		t.Error("11th trigger should be blocked")
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := New(Config{
		TriggersPerMinute: 100,
	})

	done := make(chan bool)
	userID := int64(12345)

	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 20; j++ {
				limiter.Allow(userID)
			}
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	if limiter.Allow(userID) {
		t.Error("Trigger should be blocked after the window is exhausted concurrently")
	}
}
