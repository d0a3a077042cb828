package searchad

import (
	"context"

	"gitee.com/flycash/searchad-automation/internal/domain"
)

// CodeNameDuplicated 创建广告组时名称已存在
const CodeNameDuplicated = 3710

// Client 广告 API 的类型化封装，所有失败都以 *gateway.APIError 的形式返回
//
//go:generate mockgen -source=./types.go -destination=./mocks/client.mock.go -package=searchadmocks Client
type Client interface {
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	ListAdGroups(ctx context.Context, campaignID string) ([]domain.AdGroup, error)
	GetAdGroup(ctx context.Context, id string) (domain.AdGroup, error)
	CreateAdGroup(ctx context.Context, group domain.AdGroup) (domain.AdGroup, error)

	ListKeywords(ctx context.Context, adGroupID string) ([]domain.Keyword, error)
	// CreateKeywords 内部按批切分，后面的批次失败时返回已经创建成功的部分和错误
	CreateKeywords(ctx context.Context, adGroupID string, texts []string) ([]domain.Keyword, error)
	// UpdateBids 单次最多 WriteChunk 条
	UpdateBids(ctx context.Context, keywords []domain.Keyword) error
	// GetStats 结果按关键词ID索引，没有统计数据的关键词不会出现
	GetStats(ctx context.Context, ids []string, dateRange domain.DateRange) (map[string]domain.KeywordStat, error)

	ListAds(ctx context.Context, adGroupID string) ([]domain.Ad, error)
	CreateAd(ctx context.Context, ad domain.Ad) error
	ListExtensions(ctx context.Context, ownerID string) ([]domain.Extension, error)
	CreateExtension(ctx context.Context, ext domain.Extension) error

	ListChannels(ctx context.Context) ([]domain.Channel, error)
}
