package repository

import (
	"context"
	"time"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./run.go -destination=./mocks/run.mock.go -package=repomocks -typed RunRepository
type RunRepository interface {
	SaveRun(ctx context.Context, run domain.Run) error
	AddBidChanges(ctx context.Context, changes []domain.BidChange) error
	ListRuns(ctx context.Context, offset, limit int) ([]domain.Run, error)
	FindBidChanges(ctx context.Context, runID uint64, limit int) ([]domain.BidChange, error)
}

type runRepository struct {
	dao dao.RunDAO
}

func NewRunRepository(d dao.RunDAO) RunRepository {
	return &runRepository{dao: d}
}

func (r *runRepository) SaveRun(ctx context.Context, run domain.Run) error {
	return r.dao.Save(ctx, dao.AutomationRun{
		ID:      run.ID,
		Kind:    string(run.Kind),
		State:   string(run.State),
		Success: run.Success,
		Failure: run.Failure,
		Error:   run.Error,
		Ctime:   run.Ctime,
		Utime:   run.Utime,
	})
}

func (r *runRepository) AddBidChanges(ctx context.Context, changes []domain.BidChange) error {
	return r.dao.AddBidChanges(ctx, slice.Map(changes, func(_ int, src domain.BidChange) dao.BidChange {
		var ctime int64
		if !src.Time.IsZero() {
			ctime = src.Time.UnixMilli()
		}
		return dao.BidChange{
			RunID:     src.RunID,
			AdGroupID: src.AdGroupID,
			KeywordID: src.KeywordID,
			Keyword:   src.Keyword,
			OldBid:    src.OldBid,
			NewBid:    src.NewBid,
			Rank:      src.Rank,
			Reason:    src.Reason,
			Ctime:     ctime,
		}
	}))
}

func (r *runRepository) ListRuns(ctx context.Context, offset, limit int) ([]domain.Run, error) {
	runs, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(runs, func(_ int, src dao.AutomationRun) domain.Run {
		return domain.Run{
			ID:      src.ID,
			Kind:    domain.RunKind(src.Kind),
			State:   domain.RunState(src.State),
			Success: src.Success,
			Failure: src.Failure,
			Error:   src.Error,
			Ctime:   src.Ctime,
			Utime:   src.Utime,
		}
	}), nil
}

func (r *runRepository) FindBidChanges(ctx context.Context, runID uint64, limit int) ([]domain.BidChange, error) {
	changes, err := r.dao.FindBidChanges(ctx, runID, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(changes, func(_ int, src dao.BidChange) domain.BidChange {
		return domain.BidChange{
			RunID:     src.RunID,
			AdGroupID: src.AdGroupID,
			KeywordID: src.KeywordID,
			Keyword:   src.Keyword,
			OldBid:    src.OldBid,
			NewBid:    src.NewBid,
			Rank:      src.Rank,
			Reason:    src.Reason,
			Time:      time.UnixMilli(src.Ctime),
		}
	}), nil
}
