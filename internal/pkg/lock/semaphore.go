package lock

import (
	"context"
	"sync"

	"gitee.com/flycash/searchad-automation/internal/errs"
)

// Semaphore 控制同时运行的任务数量
type Semaphore interface {
	Acquire(ctx context.Context) error
	Release(ctx context.Context) error
}

type resourceSemaphore struct {
	maxCount int
	curCount int
	mu       *sync.Mutex
}

func (r *resourceSemaphore) Acquire(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.curCount >= r.maxCount {
		return errs.ErrTooManyWorkers
	}
	r.curCount++
	return nil
}

func (r *resourceSemaphore) Release(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.curCount > 0 {
		r.curCount--
	}
	return nil
}

func NewSemaphore(maxCount int) Semaphore {
	return &resourceSemaphore{
		maxCount: maxCount,
		mu:       &sync.Mutex{},
	}
}
