package expansion

import (
	"context"
	"fmt"
	"strings"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/pkg/pacing"
	"gitee.com/flycash/searchad-automation/internal/service/searchad"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
)

var _ worker.Job = (*CampaignJob)(nil)

// GroupIndex 广告组名称到ID，名称相同时保留第一个
func GroupIndex(groups []domain.AdGroup) map[string]string {
	res := make(map[string]string, len(groups))
	for _, g := range groups {
		name := strings.TrimSpace(g.Name)
		if _, ok := res[name]; !ok {
			res[name] = g.ID
		}
	}
	return res
}

// PlanCampaign 读取活动下的广告组后生成注册任务
func PlanCampaign(ctx context.Context, client searchad.Client, campaignID, mapping, keywords string, opts PlanOptions) (PlanResult, error) {
	groups, err := client.ListAdGroups(ctx, campaignID)
	if err != nil {
		return PlanResult{}, err
	}
	return Plan(mapping, keywords, opts, GroupIndex(groups)), nil
}

// CampaignJob 先生成任务再执行瀑布扩展
type CampaignJob struct {
	client     searchad.Client
	cloner     AssetCloner
	campaignID string
	mapping    string
	keywords   string
	opts       PlanOptions
	policy     pacing.Policy
}

func NewCampaignJob(client searchad.Client, cloner AssetCloner, campaignID, mapping, keywords string,
	opts PlanOptions, policy pacing.Policy) *CampaignJob {
	return &CampaignJob{
		client:     client,
		cloner:     cloner,
		campaignID: campaignID,
		mapping:    mapping,
		keywords:   keywords,
		opts:       opts,
		policy:     policy,
	}
}

func (j *CampaignJob) Kind() domain.RunKind {
	return domain.RunKindExpand
}

func (j *CampaignJob) Run(ctx context.Context, sink worker.Sink) worker.Result {
	res, err := PlanCampaign(ctx, j.client, j.campaignID, j.mapping, j.keywords, j.opts)
	if err != nil {
		return worker.Result{Error: fmt.Sprintf("读取广告组失败: %s", describe(err))}
	}
	for _, name := range res.Unmatched {
		sink.Emit(worker.Status{Text: fmt.Sprintf("找不到广告组: %s", name)})
	}
	if len(res.Tasks) == 0 {
		return worker.Result{Error: "没有可以注册的关键词"}
	}
	sink.Emit(worker.Status{Text: fmt.Sprintf("共 %d 个注册任务", len(res.Tasks))})
	return NewExpander(j.client, j.cloner, res.RegistrationTasks(), j.policy).Run(ctx, sink)
}
