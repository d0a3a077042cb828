package searchad

import (
	"context"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/pkg/pacing"
)

// LoadCampaignTree 加载所有广告计划及其广告组，单个计划失败时跳过
func LoadCampaignTree(ctx context.Context, c Client, policy pacing.Policy) ([]domain.CampaignTree, error) {
	campaigns, err := c.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	trees := make([]domain.CampaignTree, 0, len(campaigns))
	for i, campaign := range campaigns {
		if i > 0 {
			if err = pacing.Sleep(ctx, policy.GroupPause); err != nil {
				return trees, err
			}
		}
		groups, er := c.ListAdGroups(ctx, campaign.ID)
		if er != nil {
			continue
		}
		trees = append(trees, domain.CampaignTree{Campaign: campaign, AdGroups: groups})
	}
	return trees, nil
}
