package lock

import (
	"sync"
	"testing"
	"time"

	"gitee.com/flycash/searchad-automation/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker(t *testing.T) {
	t.Parallel()
	l := NewLocalLocker()
	ctx := t.Context()

	held, err := l.TryLock(ctx, []string{"grp-1", "grp-2"}, time.Minute)
	require.NoError(t, err)

	// 只要有一个重叠就不能拿到
	_, err = l.TryLock(ctx, []string{"grp-3", "grp-2"}, time.Minute)
	assert.ErrorIs(t, err, errs.ErrTargetLocked)

	// 失败的抢锁不能留下残留
	other, err := l.TryLock(ctx, []string{"grp-3"}, time.Minute)
	require.NoError(t, err)
	require.NoError(t, other.Unlock(ctx))

	require.NoError(t, held.Unlock(ctx))
	// 重复释放没有副作用
	require.NoError(t, held.Unlock(ctx))

	again, err := l.TryLock(ctx, []string{"grp-2"}, time.Minute)
	require.NoError(t, err)
	require.NoError(t, again.Unlock(ctx))
}

func TestSemaphore_ConcurrentOverLimit(t *testing.T) {
	t.Parallel()
	r := NewSemaphore(3)
	var wg sync.WaitGroup
	errCh := make(chan error, 5)

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- r.Acquire(t.Context())
		}()
	}

	wg.Wait()
	close(errCh)

	errorCount := 0
	for err := range errCh {
		if err != nil {
			assert.ErrorIs(t, err, errs.ErrTooManyWorkers)
			errorCount++
		}
	}
	assert.Equal(t, 2, errorCount)
}

func TestSemaphore_ReleaseThenAcquire(t *testing.T) {
	t.Parallel()
	r := NewSemaphore(1)
	ctx := t.Context()

	require.NoError(t, r.Acquire(ctx))
	assert.Error(t, r.Acquire(ctx))
	require.NoError(t, r.Release(ctx))
	assert.NoError(t, r.Acquire(ctx))
}
