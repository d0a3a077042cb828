package journal

import (
	"context"
	"sync"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/repository"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"github.com/gotomicro/ego/core/elog"
)

const defaultBatchSize = 100

var _ worker.Subscriber = (*Journal)(nil)

// Journal 把任务状态和出价变更落库。
// 写库失败只记录日志，不影响任务本身
type Journal struct {
	repo      repository.RunRepository
	batchSize int

	mu      sync.Mutex
	pending map[uint64][]domain.BidChange
	logger  *elog.Component
}

func NewJournal(repo repository.RunRepository) *Journal {
	return &Journal{
		repo:      repo,
		batchSize: defaultBatchSize,
		pending:   make(map[uint64][]domain.BidChange),
		logger:    elog.DefaultLogger.With(elog.String("component", "RunJournal")),
	}
}

func (j *Journal) Handle(ctx context.Context, info worker.Info, evt worker.Event) {
	switch e := evt.(type) {
	case worker.StateChange:
		// 终态在 Result 里和计数一起保存
		if e.State.Terminal() {
			return
		}
		j.saveRun(ctx, info, domain.Run{State: e.State})
	case worker.BidChange:
		change := e.BidChange
		change.RunID = info.ID
		j.mu.Lock()
		j.pending[info.ID] = append(j.pending[info.ID], change)
		full := len(j.pending[info.ID]) >= j.batchSize
		j.mu.Unlock()
		if full {
			j.flush(ctx, info.ID)
		}
	case worker.Result:
		j.flush(ctx, info.ID)
		j.saveRun(ctx, info, domain.Run{
			State:   info.State,
			Success: e.Success,
			Failure: e.Failure,
			Error:   e.Error,
		})
	}
}

func (j *Journal) flush(ctx context.Context, runID uint64) {
	j.mu.Lock()
	changes := j.pending[runID]
	delete(j.pending, runID)
	j.mu.Unlock()
	if len(changes) == 0 {
		return
	}
	if err := j.repo.AddBidChanges(ctx, changes); err != nil {
		j.logger.Error("保存出价变更失败",
			elog.Any("runID", runID),
			elog.Int("count", len(changes)),
			elog.FieldErr(err))
	}
}

func (j *Journal) saveRun(ctx context.Context, info worker.Info, run domain.Run) {
	run.ID = info.ID
	run.Kind = info.Kind
	if !info.StartedAt.IsZero() {
		run.Ctime = info.StartedAt.UnixMilli()
	}
	if err := j.repo.SaveRun(ctx, run); err != nil {
		j.logger.Error("保存任务状态失败",
			elog.Any("runID", info.ID),
			elog.String("state", string(run.State)),
			elog.FieldErr(err))
	}
}
