package ratelimit

import (
	"context"
	"sync"
	"time"
)

var _ Limiter = (*LocalSlidingWindowLimiter)(nil)

// LocalSlidingWindowLimiter 单进程部署时使用，配额只在进程内共享
type LocalSlidingWindowLimiter struct {
	interval time.Duration
	rate     int
	now      func() time.Time

	mu      sync.Mutex
	windows map[string][]time.Time
}

func NewLocalSlidingWindowLimiter(interval time.Duration, rate int) *LocalSlidingWindowLimiter {
	return &LocalSlidingWindowLimiter{
		interval: interval,
		rate:     rate,
		now:      time.Now,
		windows:  make(map[string][]time.Time),
	}
}

func (l *LocalSlidingWindowLimiter) Limit(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	start := now.Add(-l.interval)
	window := l.windows[key]
	// 时间戳是递增的，丢掉窗口之外的前缀即可
	i := 0
	for i < len(window) && !window[i].After(start) {
		i++
	}
	window = window[i:]
	if len(window) >= l.rate {
		l.windows[key] = window
		return true, nil
	}
	l.windows[key] = append(window, now)
	return false, nil
}
