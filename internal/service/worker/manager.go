package worker

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/errs"
	"gitee.com/flycash/searchad-automation/internal/pkg/lock"
	"gitee.com/flycash/searchad-automation/internal/service/credential"
	"gitee.com/flycash/searchad-automation/internal/service/searchad"
	"github.com/ecodeclub/ekit/syncx"
	"github.com/gotomicro/ego/core/elog"
	"github.com/sony/sonyflake"
	"golang.org/x/sync/errgroup"
)

const watchBuffer = 64

// Info 任务的对外视图
type Info struct {
	ID        uint64          `json:"id,string"`
	Kind      domain.RunKind  `json:"kind"`
	State     domain.RunState `json:"state"`
	StartedAt time.Time       `json:"startedAt"`
	Success   int             `json:"success"`
	Failure   int             `json:"failure"`
}

// Subscriber 订阅所有任务的事件，在任务的事件泵里被同步调用
type Subscriber interface {
	Handle(ctx context.Context, info Info, evt Event)
}

type SubscriberFunc func(ctx context.Context, info Info, evt Event)

func (f SubscriberFunc) Handle(ctx context.Context, info Info, evt Event) {
	f(ctx, info, evt)
}

// Connector 用一份凭证快照构造广告 API 客户端
type Connector func(creds domain.Credentials) searchad.Client

// Request 启动任务的请求
type Request struct {
	Kind domain.RunKind
	// LockKeys 任务要独占的投放目标，一般是广告组 ID
	LockKeys []string
	Build    func(client searchad.Client) (Job, error)
}

type Config struct {
	MaxWorkers int           `yaml:"maxWorkers"`
	LockTTL    time.Duration `yaml:"lockTTL"`
}

// Manager 管理所有任务的生命周期
type Manager struct {
	ids         *sonyflake.Sonyflake
	sem         lock.Semaphore
	locker      lock.Locker
	creds       *credential.Store
	connect     Connector
	subscribers []Subscriber
	lockTTL     time.Duration

	workers syncx.Map[uint64, *entry]
	logger  *elog.Component
}

func NewManager(
	ids *sonyflake.Sonyflake,
	cfg Config,
	locker lock.Locker,
	creds *credential.Store,
	connect Connector,
	subscribers ...Subscriber,
) *Manager {
	ttl := cfg.LockTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Manager{
		ids:         ids,
		sem:         lock.NewSemaphore(cfg.MaxWorkers),
		locker:      locker,
		creds:       creds,
		connect:     connect,
		subscribers: subscribers,
		lockTTL:     ttl,
		logger:      elog.DefaultLogger.With(elog.String("component", "WorkerManager")),
	}
}

type entry struct {
	handle *Handle
	// finished 事件泵退出并且释放完资源之后关闭
	finished chan struct{}

	mu       sync.Mutex
	watchers map[int]chan Event
	nextID   int
	closed   bool
}

func (e *entry) info() Info {
	res := e.handle.Result()
	return Info{
		ID:        e.handle.ID(),
		Kind:      e.handle.Kind(),
		State:     e.handle.State(),
		StartedAt: e.handle.StartedAt(),
		Success:   res.Success,
		Failure:   res.Failure,
	}
}

// broadcast 慢的观察者会丢事件，但不会拖慢任务
func (e *entry) broadcast(evt Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, ch := range e.watchers {
		select {
		case ch <- evt:
		default:
		}
	}
}

func (e *entry) close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	for id, ch := range e.watchers {
		close(ch)
		delete(e.watchers, id)
	}
}

// Start 启动一个任务。
// 并发数超限返回 errs.ErrTooManyWorkers，目标被占用返回 errs.ErrTargetLocked
func (m *Manager) Start(ctx context.Context, req Request) (Info, error) {
	if req.Build == nil {
		return Info{}, fmt.Errorf("%w: 缺少任务构造函数", errs.ErrInvalidParameter)
	}
	if err := m.sem.Acquire(ctx); err != nil {
		return Info{}, err
	}
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
	cleanups = append(cleanups, func() { _ = m.sem.Release(context.Background()) })

	if len(req.LockKeys) > 0 {
		held, err := m.locker.TryLock(ctx, req.LockKeys, m.lockTTL)
		if err != nil {
			cleanup()
			return Info{}, err
		}
		cleanups = append(cleanups, func() {
			if er := held.Unlock(context.Background()); er != nil {
				m.logger.Error("释放目标锁失败", elog.FieldErr(er))
			}
		})
	}

	creds, release := m.creds.Acquire()
	cleanups = append(cleanups, release)
	if !creds.Valid() {
		cleanup()
		return Info{}, fmt.Errorf("%w: 未设置广告 API 凭证", errs.ErrNotConfigured)
	}

	job, err := req.Build(m.connect(creds))
	if err != nil {
		cleanup()
		return Info{}, err
	}
	id, err := m.ids.NextID()
	if err != nil {
		cleanup()
		return Info{}, fmt.Errorf("生成任务ID失败: %w", err)
	}

	e := &entry{
		handle:   NewHandle(id, job),
		finished: make(chan struct{}),
		watchers: make(map[int]chan Event),
	}
	m.workers.Store(id, e)
	go m.pump(e, cleanup)
	// 任务的生命周期不跟随发起请求的 ctx
	e.handle.Start(context.WithoutCancel(ctx))
	m.logger.Info("任务已启动",
		elog.Any("id", id),
		elog.String("kind", string(job.Kind())),
		elog.String("accessKey", creds.Masked()))
	return e.info(), nil
}

func (m *Manager) pump(e *entry, cleanup func()) {
	ctx := context.Background()
	for evt := range e.handle.Events() {
		info := e.info()
		for _, sub := range m.subscribers {
			sub.Handle(ctx, info, evt)
		}
		e.broadcast(evt)
	}
	e.close()
	cleanup()
	close(e.finished)
	info := e.info()
	m.logger.Info("任务已结束",
		elog.Any("id", info.ID),
		elog.String("state", string(info.State)),
		elog.Int("success", info.Success),
		elog.Int("failure", info.Failure))
}

func (m *Manager) Stop(id uint64) error {
	e, ok := m.workers.Load(id)
	if !ok {
		return fmt.Errorf("%w: %d", errs.ErrWorkerNotFound, id)
	}
	e.handle.Stop()
	return nil
}

func (m *Manager) Get(id uint64) (Info, error) {
	e, ok := m.workers.Load(id)
	if !ok {
		return Info{}, fmt.Errorf("%w: %d", errs.ErrWorkerNotFound, id)
	}
	return e.info(), nil
}

// List 按启动时间排序
func (m *Manager) List() []Info {
	var res []Info
	m.workers.Range(func(_ uint64, e *entry) bool {
		res = append(res, e.info())
		return true
	})
	sort.Slice(res, func(i, j int) bool {
		return res[i].StartedAt.Before(res[j].StartedAt)
	})
	return res
}

// Watch 订阅单个任务后续的事件，任务结束后通道关闭
func (m *Manager) Watch(id uint64) (<-chan Event, func(), error) {
	e, ok := m.workers.Load(id)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %d", errs.ErrWorkerNotFound, id)
	}
	ch := make(chan Event, watchBuffer)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		close(ch)
		return ch, func() {}, nil
	}
	wid := e.nextID
	e.nextID++
	e.watchers[wid] = ch
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			if c, ok := e.watchers[wid]; ok {
				close(c)
				delete(e.watchers, wid)
			}
		})
	}
	return ch, cancel, nil
}

// Summary 在线状态上报用的简短描述
func (m *Manager) Summary() string {
	counts := make(map[domain.RunKind]int)
	total := 0
	m.workers.Range(func(_ uint64, e *entry) bool {
		if !e.handle.State().Terminal() {
			counts[e.handle.Kind()]++
			total++
		}
		return true
	})
	if total == 0 {
		return "空闲"
	}
	return fmt.Sprintf("运行中任务 %d 个 (调价 %d, 统一出价 %d, 扩展 %d, 复制素材 %d)",
		total, counts[domain.RunKindBid], counts[domain.RunKindLevel], counts[domain.RunKindExpand], counts[domain.RunKindClone])
}

// Shutdown 停止所有任务并等待退出，ctx 到期时返回 ctx 的错误
func (m *Manager) Shutdown(ctx context.Context) error {
	var eg errgroup.Group
	m.workers.Range(func(_ uint64, e *entry) bool {
		e.handle.Stop()
		eg.Go(func() error {
			select {
			case <-e.finished:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		return true
	})
	return eg.Wait()
}
