package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gitee.com/flycash/searchad-automation/internal/errs"
	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
)

const defaultTimeout = time.Second * 3

var _ Locker = (*DLocker)(nil)

// DLocker 基于分布式锁，多个进程之间也不会重复操作同一个广告组
type DLocker struct {
	client  dlock.Client
	prefix  string
	lockTTL time.Duration
	logger  *elog.Component
}

func NewDLocker(client dlock.Client) *DLocker {
	return &DLocker{
		client: client,
		prefix: "searchad:target:",
		// 抢锁本身的等待上限，超过即认为被别人持有
		lockTTL: time.Second,
		logger:  elog.DefaultLogger.With(elog.String("component", "DLocker")),
	}
}

func (d *DLocker) TryLock(ctx context.Context, keys []string, ttl time.Duration) (Held, error) {
	h := &dheld{
		logger: d.logger,
		ttl:    ttl,
		stop:   make(chan struct{}),
	}
	for _, key := range keys {
		l, err := d.client.NewLock(ctx, d.prefix+key, ttl)
		if err != nil {
			h.release()
			return nil, fmt.Errorf("初始化分布式锁失败 %w", err)
		}
		lockCtx, cancel := context.WithTimeout(ctx, d.lockTTL)
		err = l.Lock(lockCtx)
		cancel()
		if err != nil {
			h.release()
			return nil, fmt.Errorf("%w: %s", errs.ErrTargetLocked, key)
		}
		h.locks = append(h.locks, l)
	}
	go h.refreshLoop()
	return h, nil
}

type dheld struct {
	locks  []dlock.Lock
	ttl    time.Duration
	logger *elog.Component
	stop   chan struct{}
	once   sync.Once
}

// refreshLoop 在 ttl 的一半时续约，任务运行多久锁就持有多久
func (h *dheld) refreshLoop() {
	ticker := time.NewTicker(h.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-h.stop:
			return
		case <-ticker.C:
			for _, l := range h.locks {
				ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
				err := l.Refresh(ctx)
				cancel()
				if err != nil {
					h.logger.Error("分布式锁续约失败", elog.FieldErr(err))
				}
			}
		}
	}
}

func (h *dheld) Unlock(ctx context.Context) error {
	var err error
	h.once.Do(func() {
		close(h.stop)
		err = h.unlockAll(ctx)
	})
	return err
}

// release 抢锁中途失败时释放已经拿到的锁
func (h *dheld) release() {
	// 此时 ctx 可能已经被取消，但仍需尝试解锁
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	_ = h.unlockAll(ctx)
}

func (h *dheld) unlockAll(ctx context.Context) error {
	var firstErr error
	for _, l := range h.locks {
		if err := l.Unlock(ctx); err != nil {
			h.logger.Error("释放分布式锁失败", elog.FieldErr(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
