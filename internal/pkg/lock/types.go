package lock

import (
	"context"
	"time"
)

// Locker 对某一组投放目标加排他锁，保证同一个广告组同时只被一个任务操作
type Locker interface {
	// TryLock 抢不到锁时立刻返回 errs.ErrTargetLocked
	TryLock(ctx context.Context, keys []string, ttl time.Duration) (Held, error)
}

// Held 已经持有的锁
type Held interface {
	Unlock(ctx context.Context) error
}
