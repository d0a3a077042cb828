package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gitee.com/flycash/searchad-automation/internal/errs"
)

var _ Locker = (*LocalLocker)(nil)

// LocalLocker 单进程部署时使用，没有 Redis 也能互斥
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[string]struct{})}
}

func (l *LocalLocker) TryLock(_ context.Context, keys []string, _ time.Duration) (Held, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, key := range keys {
		if _, ok := l.held[key]; ok {
			return nil, fmt.Errorf("%w: %s", errs.ErrTargetLocked, key)
		}
	}
	for _, key := range keys {
		l.held[key] = struct{}{}
	}
	return &localHeld{parent: l, keys: keys}, nil
}

type localHeld struct {
	parent *LocalLocker
	keys   []string
	once   sync.Once
}

func (h *localHeld) Unlock(context.Context) error {
	h.once.Do(func() {
		h.parent.mu.Lock()
		defer h.parent.mu.Unlock()
		for _, key := range h.keys {
			delete(h.parent.held, key)
		}
	})
	return nil
}
