package plan

import (
	"context"
	"fmt"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/errs"
	"gitee.com/flycash/searchad-automation/internal/pkg/pacing"
	"gitee.com/flycash/searchad-automation/internal/service/asset"
	"gitee.com/flycash/searchad-automation/internal/service/bidding"
	"gitee.com/flycash/searchad-automation/internal/service/expansion"
	"gitee.com/flycash/searchad-automation/internal/service/searchad"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"github.com/ecodeclub/ekit/slice"
)

// Starter 由 worker.Manager 实现
type Starter interface {
	Start(ctx context.Context, req worker.Request) (worker.Info, error)
}

// Launcher 把计划转换成任务并启动
type Launcher struct {
	starter Starter
	policy  pacing.Policy
}

func NewLauncher(starter Starter, policy pacing.Policy) *Launcher {
	return &Launcher{starter: starter, policy: policy}
}

func campaignKey(id string) string {
	return "campaign:" + id
}

func (l *Launcher) StartBid(ctx context.Context, p BidPlan) (worker.Info, error) {
	targets, err := p.BidTargets()
	if err != nil {
		return worker.Info{}, err
	}
	opts, err := p.Options()
	if err != nil {
		return worker.Info{}, err
	}
	return l.starter.Start(ctx, worker.Request{
		Kind: domain.RunKindBid,
		LockKeys: slice.Map(targets, func(_ int, src domain.BidTarget) string {
			return src.AdGroupID
		}),
		Build: func(client searchad.Client) (worker.Job, error) {
			return bidding.NewController(client, targets, opts, l.policy), nil
		},
	})
}

func (l *Launcher) StartLevel(ctx context.Context, p LevelPlan) (worker.Info, error) {
	if p.CampaignID == "" {
		return worker.Info{}, fmt.Errorf("%w: 缺少 campaignId", errs.ErrInvalidParameter)
	}
	if p.Bid <= 0 {
		return worker.Info{}, fmt.Errorf("%w: bid 必须大于 0", errs.ErrInvalidParameter)
	}
	return l.starter.Start(ctx, worker.Request{
		Kind:     domain.RunKindLevel,
		LockKeys: []string{campaignKey(p.CampaignID)},
		Build: func(client searchad.Client) (worker.Job, error) {
			return bidding.NewLeveler(client, p.CampaignID, p.Bid, l.policy), nil
		},
	})
}

func (l *Launcher) StartExpand(ctx context.Context, p ExpandPlan) (worker.Info, error) {
	if p.CampaignID == "" {
		return worker.Info{}, fmt.Errorf("%w: 缺少 campaignId", errs.ErrInvalidParameter)
	}
	if !p.Options.LocationFirst && !p.Options.KeywordFirst && !p.Options.KeywordOnly {
		return worker.Info{}, fmt.Errorf("%w: 至少选择一种关键词组合方式", errs.ErrInvalidParameter)
	}
	if len(expansion.SplitKeywords(p.Keywords)) == 0 {
		return worker.Info{}, fmt.Errorf("%w: 没有关键词", errs.ErrInvalidParameter)
	}
	return l.starter.Start(ctx, worker.Request{
		Kind:     domain.RunKindExpand,
		LockKeys: []string{campaignKey(p.CampaignID)},
		Build: func(client searchad.Client) (worker.Job, error) {
			cloner := asset.NewCloner(client, l.policy)
			return expansion.NewCampaignJob(client, cloner, p.CampaignID, p.Mapping, p.Keywords, p.Options, l.policy), nil
		},
	})
}

// StartClone 只锁目标广告组，源广告组只读
func (l *Launcher) StartClone(ctx context.Context, p ClonePlan) (worker.Info, error) {
	if err := p.Validate(); err != nil {
		return worker.Info{}, err
	}
	targets := append([]string(nil), p.Targets...)
	return l.starter.Start(ctx, worker.Request{
		Kind:     domain.RunKindClone,
		LockKeys: targets,
		Build: func(client searchad.Client) (worker.Job, error) {
			return asset.NewCloneJob(asset.NewCloner(client, l.policy), p.Source, targets), nil
		},
	})
}

// StartFile 按 bid、level、expand、clone 的顺序启动计划中的任务，遇到错误就停止
func (l *Launcher) StartFile(ctx context.Context, f File) ([]worker.Info, error) {
	var res []worker.Info
	if f.Bid != nil {
		info, err := l.StartBid(ctx, *f.Bid)
		if err != nil {
			return res, fmt.Errorf("启动调价任务失败: %w", err)
		}
		res = append(res, info)
	}
	if f.Level != nil {
		info, err := l.StartLevel(ctx, *f.Level)
		if err != nil {
			return res, fmt.Errorf("启动统一出价任务失败: %w", err)
		}
		res = append(res, info)
	}
	if f.Expand != nil {
		info, err := l.StartExpand(ctx, *f.Expand)
		if err != nil {
			return res, fmt.Errorf("启动关键词扩展任务失败: %w", err)
		}
		res = append(res, info)
	}
	if f.Clone != nil {
		info, err := l.StartClone(ctx, *f.Clone)
		if err != nil {
			return res, fmt.Errorf("启动素材复制任务失败: %w", err)
		}
		res = append(res, info)
	}
	return res, nil
}
