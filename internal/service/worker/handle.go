package worker

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

const defaultEventBuffer = 256

// Worker 一个正在运行或者已经结束的任务。
// 事件通道在终态 Result 之后关闭
type Worker interface {
	ID() uint64
	Kind() domain.RunKind
	Start(ctx context.Context)
	Stop()
	Events() <-chan Event
	State() domain.RunState
	// Done 任务结束后关闭
	Done() <-chan struct{}
}

var _ Worker = (*Handle)(nil)

// Handle 在独立的 goroutine 里执行 Job，通过事件通道和外部通信
type Handle struct {
	id      uint64
	job     Job
	events  chan Event
	done    chan struct{}
	state   atomic.Value
	started time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	once   sync.Once
	result Result
}

func NewHandle(id uint64, job Job) *Handle {
	h := &Handle{
		id:     id,
		job:    job,
		events: make(chan Event, defaultEventBuffer),
		done:   make(chan struct{}),
	}
	h.state.Store(domain.RunStateIdle)
	return h
}

func (h *Handle) ID() uint64 {
	return h.id
}

func (h *Handle) Kind() domain.RunKind {
	return h.job.Kind()
}

func (h *Handle) State() domain.RunState {
	return h.state.Load().(domain.RunState)
}

func (h *Handle) Events() <-chan Event {
	return h.events
}

func (h *Handle) Done() <-chan struct{} {
	return h.done
}

func (h *Handle) StartedAt() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.started
}

// Result 任务结束之前返回零值
func (h *Handle) Result() Result {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.result
}

// Start 只有第一次调用生效
func (h *Handle) Start(ctx context.Context) {
	h.once.Do(func() {
		ctx, cancel := context.WithCancel(ctx)
		h.mu.Lock()
		h.cancel = cancel
		h.started = time.Now()
		h.mu.Unlock()
		go h.run(ctx, cancel)
	})
}

// Stop 协作式停止，任务会在下一个检查点退出
func (h *Handle) Stop() {
	h.mu.Lock()
	cancel := h.cancel
	h.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (h *Handle) run(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()
	h.Emit(StateChange{State: domain.RunStateRunning})
	res := h.safeRun(ctx)

	final := domain.RunStateFinished
	if ctx.Err() != nil {
		final = domain.RunStateStopped
	}
	h.Emit(StateChange{State: final})
	h.mu.Lock()
	h.result = res
	h.mu.Unlock()
	h.events <- res
	close(h.events)
	close(h.done)
}

// safeRun 任务 panic 时转换成带错误信息的终态，不影响其他任务
func (h *Handle) safeRun(ctx context.Context) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			elog.DefaultLogger.Error("任务异常退出",
				elog.Any("id", h.id),
				elog.String("kind", string(h.job.Kind())),
				elog.Any("panic", r),
				elog.String("stack", string(debug.Stack())))
			res = Result{Error: fmt.Sprintf("任务异常退出: %v", r)}
		}
	}()
	return h.job.Run(ctx, h)
}

// Emit 实现 Sink，状态变化同时更新 State
func (h *Handle) Emit(evt Event) {
	if sc, ok := evt.(StateChange); ok {
		h.state.Store(sc.State)
	}
	h.events <- evt
}
