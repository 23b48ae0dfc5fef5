package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a per-user sliding-window limiter for new trigger messages.
// Answers to pending questions are not counted; only session starts are.
type Limiter struct {
	mu       sync.Mutex
	triggers map[int64][]time.Time
	limit    int
	window   time.Duration
}

type Config struct {
	TriggersPerMinute int
}

func New(cfg Config) *Limiter {
	limit := cfg.TriggersPerMinute
	if limit <= 0 {
		limit = 10
	}

	l := &Limiter{
		triggers: make(map[int64][]time.Time),
		limit:    limit,
		window:   time.Minute,
	}
	go l.cleanup()
	return l
}

func (l *Limiter) Allow(userID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-l.window)

	old := l.triggers[userID]
	fresh := old[:0] // reuse underlying array
	for _, t := range old {
		if t.After(cutoff) {
			fresh = append(fresh, t)
		}
	}

	if len(fresh) >= l.limit {
		l.triggers[userID] = fresh
		return false
	}

	l.triggers[userID] = append(fresh, now)
	return true
}

// ResetTime reports when the oldest counted trigger leaves the window.
func (l *Limiter) ResetTime(userID int64) time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.triggers[userID]
	if len(ts) == 0 {
		return time.Now()
	}

	oldest := ts[0]
	for _, t := range ts[1:] {
		if t.Before(oldest) {
			oldest = t
		}
	}
	return oldest.Add(l.window)
}

func (l *Limiter) cleanup() {
	tick := time.NewTicker(5 * time.Minute)
	for range tick.C {
		l.mu.Lock()
		cutoff := time.Now().Add(-l.window)

		for uid, ts := range l.triggers {
			var fresh []time.Time
			for _, t := range ts {
				if t.After(cutoff) {
					fresh = append(fresh, t)
				}
			}
			if len(fresh) == 0 {
				delete(l.triggers, uid)
			} else {
				l.triggers[uid] = fresh
			}
		}
		l.mu.Unlock()
	}
}
