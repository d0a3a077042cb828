package bidding

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/errs"
	"gitee.com/flycash/searchad-automation/internal/pkg/pacing"
	"gitee.com/flycash/searchad-automation/internal/service/searchad"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"github.com/gotomicro/ego/core/elog"
)

var _ worker.Job = (*Leveler)(nil)

// Leveler 把一个广告计划下所有可投放关键词的出价统一改成同一个值
type Leveler struct {
	client     searchad.Client
	campaignID string
	bid        int64
	policy     pacing.Policy
	logger     *elog.Component
	now        func() time.Time
}

func NewLeveler(client searchad.Client, campaignID string, bid int64, policy pacing.Policy) *Leveler {
	return &Leveler{
		client:     client,
		campaignID: campaignID,
		bid:        bid,
		policy:     policy,
		logger:     elog.DefaultLogger.With(elog.String("component", "BulkBidLeveler"), elog.String("campaignId", campaignID)),
		now:        time.Now,
	}
}

func (l *Leveler) Kind() domain.RunKind {
	return domain.RunKindLevel
}

func (l *Leveler) Run(ctx context.Context, sink worker.Sink) worker.Result {
	if l.bid <= 0 {
		return worker.Result{Error: fmt.Errorf("%w: bid = %d", errs.ErrInvalidParameter, l.bid).Error()}
	}
	groups, err := l.client.ListAdGroups(ctx, l.campaignID)
	if err != nil {
		l.logger.Error("查询广告组失败", elog.FieldErr(err))
		return worker.Result{Error: err.Error()}
	}

	var pending []pendingBid
	for i, group := range groups {
		if ctx.Err() != nil {
			break
		}
		if i > 0 {
			if err = pacing.Sleep(ctx, l.policy.GroupPause); err != nil {
				break
			}
		}
		keywords, er := l.client.ListKeywords(ctx, group.ID)
		if er != nil {
			l.logger.Error("查询关键词失败", elog.String("adGroupId", group.ID), elog.FieldErr(er))
			sink.Emit(worker.Status{Text: fmt.Sprintf("%s 查询关键词失败：%s", group.Name, er.Error())})
		}
		for _, kw := range keywords {
			if !kw.Eligible() || kw.BidAmount == l.bid {
				continue
			}
			updated := kw
			updated.BidAmount = l.bid
			pending = append(pending, pendingBid{
				keyword: updated,
				change: domain.BidChange{
					AdGroupID: group.ID,
					GroupName: group.Name,
					KeywordID: kw.ID,
					Keyword:   kw.Text,
					OldBid:    kw.BidAmount,
					NewBid:    l.bid,
					Reason:    "level",
				},
			})
		}
		sink.Emit(worker.Progress{Processed: i + 1, Total: len(groups)})
	}
	if ctx.Err() != nil {
		return worker.Result{}
	}

	var res worker.Result
	for i, batch := range pacing.Chunk(pending, l.policy.WriteChunk) {
		if i > 0 {
			if err = pacing.Sleep(ctx, l.policy.LevelFlushPause); err != nil {
				break
			}
		}
		keywords := make([]domain.Keyword, 0, len(batch))
		for _, p := range batch {
			keywords = append(keywords, p.keyword)
		}
		if err = l.client.UpdateBids(ctx, keywords); err != nil {
			res.Failure += len(batch)
			l.logger.Error("统一出价提交失败", elog.Int("count", len(batch)), elog.FieldErr(err))
			sink.Emit(worker.Status{Text: fmt.Sprintf("提交 %d 个出价失败：%s", len(batch), err.Error())})
			continue
		}
		res.Success += len(batch)
		now := l.now()
		for _, p := range batch {
			change := p.change
			change.Time = now
			sink.Emit(worker.BidChange{BidChange: change})
		}
	}
	sink.Emit(worker.Status{Text: fmt.Sprintf("统一出价完成，修改 %d 个关键词", res.Success)})
	return res
}
