package bidding

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/pkg/pacing"
	"gitee.com/flycash/searchad-automation/internal/service/searchad"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var _ worker.Job = (*Controller)(nil)

type ControllerOptions struct {
	// Loop 为 false 时只执行一轮
	Loop bool
	// Interval 两轮之间的等待时间
	Interval time.Duration
	// DateRange 统计时间范围，零值表示当天
	DateRange domain.DateRange
}

// Controller 按目标排名循环调价
type Controller struct {
	client  searchad.Client
	targets []domain.BidTarget
	opts    ControllerOptions
	policy  pacing.Policy
	logger  *elog.Component
	now     func() time.Time
}

func NewController(client searchad.Client, targets []domain.BidTarget, opts ControllerOptions, policy pacing.Policy) *Controller {
	return &Controller{
		client:  client,
		targets: targets,
		opts:    opts,
		policy:  policy,
		logger:  elog.DefaultLogger.With(elog.String("component", "BidController")),
		now:     time.Now,
	}
}

func (c *Controller) Kind() domain.RunKind {
	return domain.RunKindBid
}

type pendingBid struct {
	keyword domain.Keyword
	change  domain.BidChange
}

// cycleStats 跨轮次累计
type cycleStats struct {
	success int
	failure int
}

func (c *Controller) Run(ctx context.Context, sink worker.Sink) worker.Result {
	var stats cycleStats
	for cycle := 1; ; cycle++ {
		sink.Emit(worker.Status{Text: fmt.Sprintf("第 %d 轮调价开始，共 %d 个广告组", cycle, len(c.targets))})
		c.runCycle(ctx, sink, &stats)
		if ctx.Err() != nil || !c.opts.Loop {
			break
		}
		if err := c.cool(ctx, sink); err != nil {
			break
		}
	}
	return worker.Result{Success: stats.success, Failure: stats.failure}
}

func (c *Controller) runCycle(ctx context.Context, sink worker.Sink, stats *cycleStats) {
	var pending []pendingBid
	for i, target := range c.targets {
		// 每个目标开始前检查是否被停止
		if ctx.Err() != nil {
			return
		}
		if i > 0 {
			if err := pacing.Sleep(ctx, c.policy.GroupPause); err != nil {
				return
			}
		}
		sink.Emit(worker.RowStatus{Row: target.Row, Status: worker.RowStateRunning})
		changes, err := c.evaluate(ctx, target)
		if err != nil {
			// 单个目标失败视为本轮不调整
			c.logger.Error("调价目标处理失败",
				elog.String("adGroupId", target.AdGroupID),
				elog.FieldErr(err))
			sink.Emit(worker.Status{Text: fmt.Sprintf("%s 处理失败：%s", target.Name, err.Error())})
		}
		for _, change := range changes {
			pending = append(pending, change)
			if len(pending) >= c.policy.WriteChunk {
				c.flush(ctx, sink, pending, stats)
				pending = nil
			}
		}
		sink.Emit(worker.RowStatus{Row: target.Row, Status: worker.RowStateWaiting})
	}
	if ctx.Err() != nil {
		return
	}
	c.flush(ctx, sink, pending, stats)
}

// evaluate 计算一个广告组内需要修改的关键词
func (c *Controller) evaluate(ctx context.Context, target domain.BidTarget) ([]pendingBid, error) {
	if err := target.Config.Validate(); err != nil {
		return nil, err
	}
	keywords, err := c.client.ListKeywords(ctx, target.AdGroupID)
	if err != nil {
		return nil, fmt.Errorf("查询关键词失败 %w", err)
	}
	eligible := slice.FilterDelete(keywords, func(_ int, kw domain.Keyword) bool {
		return !kw.Eligible()
	})
	if len(eligible) == 0 {
		return nil, nil
	}

	ids := slice.Map(eligible, func(_ int, kw domain.Keyword) string {
		return kw.ID
	})
	stats, err := c.client.GetStats(ctx, ids, c.opts.DateRange)
	if err != nil {
		return nil, fmt.Errorf("查询统计数据失败 %w", err)
	}

	var res []pendingBid
	for _, kw := range eligible {
		st := stats[kw.ID]
		next, reason := Calculate(kw.BidAmount, st.AvgRank, st.Impressions, target.Config)
		if next == kw.BidAmount {
			continue
		}
		updated := kw
		updated.BidAmount = next
		res = append(res, pendingBid{
			keyword: updated,
			change: domain.BidChange{
				AdGroupID: target.AdGroupID,
				GroupName: target.Name,
				KeywordID: kw.ID,
				Keyword:   kw.Text,
				OldBid:    kw.BidAmount,
				NewBid:    next,
				Rank:      st.AvgRank,
				Reason:    reason.String(),
			},
		})
	}
	return res, nil
}

// flush 写回一批出价，写完之后固定暂停，失败时整批丢弃
func (c *Controller) flush(ctx context.Context, sink worker.Sink, batch []pendingBid, stats *cycleStats) {
	if len(batch) == 0 {
		return
	}
	keywords := slice.Map(batch, func(_ int, p pendingBid) domain.Keyword {
		return p.keyword
	})
	err := c.client.UpdateBids(ctx, keywords)
	if err != nil {
		stats.failure += len(batch)
		c.logger.Error("提交出价失败", elog.Int("count", len(batch)), elog.FieldErr(err))
		sink.Emit(worker.Status{Text: fmt.Sprintf("提交 %d 个出价失败：%s", len(batch), err.Error())})
	} else {
		stats.success += len(batch)
		now := c.now()
		for _, p := range batch {
			change := p.change
			change.Time = now
			sink.Emit(worker.BidChange{BidChange: change})
		}
	}
	_ = pacing.Sleep(ctx, c.policy.BidFlushPause)
}

// cool 两轮之间的等待，切成小段以便及时响应停止，每分钟汇报一次剩余时间
func (c *Controller) cool(ctx context.Context, sink worker.Sink) error {
	sink.Emit(worker.StateChange{State: domain.RunStateCooling})
	remaining := c.opts.Interval
	var sinceReport time.Duration
	sink.Emit(worker.Status{Text: countdown(remaining)})
	for remaining > 0 {
		step := c.policy.CycleSlice
		if step <= 0 || step > remaining {
			step = remaining
		}
		if err := pacing.Sleep(ctx, step); err != nil {
			return err
		}
		remaining -= step
		sinceReport += step
		if sinceReport >= time.Minute && remaining > 0 {
			sinceReport = 0
			sink.Emit(worker.Status{Text: countdown(remaining)})
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	sink.Emit(worker.StateChange{State: domain.RunStateRunning})
	return nil
}

func countdown(remaining time.Duration) string {
	return fmt.Sprintf("等待下一轮，剩余 %d 分 %d 秒", int(remaining.Minutes()), int(remaining.Seconds())%60)
}
