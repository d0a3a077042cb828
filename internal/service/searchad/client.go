package searchad

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/errs"
	"gitee.com/flycash/searchad-automation/internal/pkg/pacing"
	"gitee.com/flycash/searchad-automation/internal/service/gateway"
	"github.com/ecodeclub/ekit/slice"
)

var _ Client = (*client)(nil)

type client struct {
	caller gateway.Caller
	policy pacing.Policy
	now    func() time.Time
}

// NewClient caller 已经绑定了凭证
func NewClient(caller gateway.Caller, policy pacing.Policy) Client {
	return &client{
		caller: caller,
		policy: policy,
		now:    time.Now,
	}
}

// Factory 每个任务用自己的 Caller 创建客户端
type Factory func(caller gateway.Caller) Client

func NewFactory(policy pacing.Policy) Factory {
	return func(caller gateway.Caller) Client {
		return NewClient(caller, policy)
	}
}

func (c *client) call(ctx context.Context, req gateway.Request, out any) error {
	res := c.caller.Call(ctx, req)
	if res.IsError() {
		return res.Error()
	}
	if out == nil {
		return nil
	}
	return res.Decode(out)
}

func (c *client) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	var dtos []campaignDTO
	err := c.call(ctx, gateway.Request{Method: http.MethodGet, Path: "/ncc/campaigns"}, &dtos)
	if err != nil {
		return nil, err
	}
	return slice.Map(dtos, func(_ int, src campaignDTO) domain.Campaign {
		return domain.Campaign{ID: src.ID, Name: src.Name}
	}), nil
}

func (c *client) ListAdGroups(ctx context.Context, campaignID string) ([]domain.AdGroup, error) {
	var dtos []adGroupDTO
	err := c.call(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/ncc/adgroups",
		Query:  map[string]string{"nccCampaignId": campaignID},
	}, &dtos)
	if err != nil {
		return nil, err
	}
	return slice.Map(dtos, func(_ int, src adGroupDTO) domain.AdGroup {
		return src.toDomain()
	}), nil
}

func (c *client) GetAdGroup(ctx context.Context, id string) (domain.AdGroup, error) {
	var dto adGroupDTO
	err := c.call(ctx, gateway.Request{Method: http.MethodGet, Path: "/ncc/adgroups/" + id}, &dto)
	if err != nil {
		return domain.AdGroup{}, err
	}
	if dto.ID == "" {
		return domain.AdGroup{}, fmt.Errorf("%w: 广告组 %s 不存在", errs.ErrRemote, id)
	}
	return dto.toDomain(), nil
}

func (c *client) CreateAdGroup(ctx context.Context, group domain.AdGroup) (domain.AdGroup, error) {
	groupType := group.Type
	if groupType == "" {
		groupType = "WEB_SITE"
	}
	var dto adGroupDTO
	err := c.call(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/ncc/adgroups",
		Body: adGroupDTO{
			CampaignID:      group.CampaignID,
			Name:            group.Name,
			PCChannelID:     group.PCChannelID,
			MobileChannelID: group.MobileChannelID,
			Type:            groupType,
		},
	}, &dto)
	if err != nil {
		return domain.AdGroup{}, err
	}
	if dto.ID == "" {
		return domain.AdGroup{}, fmt.Errorf("%w: 创建广告组 %s 没有返回ID", errs.ErrValidationEmptyResult, group.Name)
	}
	return dto.toDomain(), nil
}

func (c *client) ListKeywords(ctx context.Context, adGroupID string) ([]domain.Keyword, error) {
	var dtos []keywordDTO
	err := c.call(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/ncc/keywords",
		Query:  map[string]string{"nccAdgroupId": adGroupID},
	}, &dtos)
	if err != nil {
		return nil, err
	}
	return slice.Map(dtos, func(_ int, src keywordDTO) domain.Keyword {
		return src.toDomain()
	}), nil
}

func (c *client) CreateKeywords(ctx context.Context, adGroupID string, texts []string) ([]domain.Keyword, error) {
	var created []domain.Keyword
	for i, chunk := range pacing.Chunk(texts, c.policy.WriteChunk) {
		if i > 0 {
			if err := pacing.Sleep(ctx, c.policy.CreateChunkPause); err != nil {
				return created, err
			}
		}
		body := slice.Map(chunk, func(_ int, text string) keywordDTO {
			return keywordDTO{
				AdGroupID:   adGroupID,
				Keyword:     text,
				BidAmt:      defaultKeywordBid,
				UseGroupBid: false,
			}
		})
		var dtos []keywordDTO
		err := c.call(ctx, gateway.Request{
			Method: http.MethodPost,
			Path:   "/ncc/keywords",
			Query:  map[string]string{"nccAdgroupId": adGroupID},
			Body:   body,
		}, &dtos)
		if err != nil {
			return created, err
		}
		for _, dto := range dtos {
			// 没有ID的条目是被上游静默拒绝的
			if dto.ID != "" {
				created = append(created, dto.toDomain())
			}
		}
	}
	return created, nil
}

func (c *client) UpdateBids(ctx context.Context, keywords []domain.Keyword) error {
	if len(keywords) == 0 {
		return nil
	}
	if c.policy.WriteChunk > 0 && len(keywords) > c.policy.WriteChunk {
		return fmt.Errorf("%w: 单次最多修改 %d 个关键词，实际 %d", errs.ErrInvalidParameter, c.policy.WriteChunk, len(keywords))
	}
	body := slice.Map(keywords, func(_ int, kw domain.Keyword) keywordDTO {
		return keywordDTO{
			ID:          kw.ID,
			AdGroupID:   kw.AdGroupID,
			BidAmt:      kw.BidAmount,
			UseGroupBid: false,
		}
	})
	return c.call(ctx, gateway.Request{
		Method: http.MethodPut,
		Path:   "/ncc/keywords",
		Query:  map[string]string{"fields": "bidAmt"},
		Body:   body,
	}, nil)
}

func (c *client) GetStats(ctx context.Context, ids []string, dateRange domain.DateRange) (map[string]domain.KeywordStat, error) {
	stats := make(map[string]domain.KeywordStat, len(ids))
	if len(ids) == 0 {
		return stats, nil
	}
	dr := dateRange.Resolve(c.now())
	tr, err := json.Marshal(timeRange{
		Since: dr.Since.Format(dateLayout),
		Until: dr.Until.Format(dateLayout),
	})
	if err != nil {
		return nil, err
	}
	for i, chunk := range pacing.Chunk(ids, c.policy.StatsChunk) {
		if i > 0 {
			if err = pacing.Sleep(ctx, c.policy.StatsPause); err != nil {
				return nil, err
			}
		}
		var resp statsResp
		err = c.call(ctx, gateway.Request{
			Method: http.MethodGet,
			Path:   "/stats",
			Query: map[string]string{
				"ids":       strings.Join(chunk, ","),
				"fields":    statFields,
				"timeRange": string(tr),
			},
		}, &resp)
		if err != nil {
			return nil, err
		}
		for _, item := range resp.Data {
			stats[item.ID] = item.toDomain()
		}
	}
	return stats, nil
}

func (c *client) ListAds(ctx context.Context, adGroupID string) ([]domain.Ad, error) {
	var dtos []adDTO
	err := c.call(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/ncc/ads",
		Query:  map[string]string{"nccAdgroupId": adGroupID},
	}, &dtos)
	if err != nil {
		return nil, err
	}
	return slice.Map(dtos, func(_ int, src adDTO) domain.Ad {
		return src.toDomain()
	}), nil
}

func (c *client) CreateAd(ctx context.Context, ad domain.Ad) error {
	adType := ad.Type
	if adType == "" {
		adType = defaultAdType
	}
	return c.call(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/ncc/ads",
		Body: adDTO{
			AdGroupID: ad.AdGroupID,
			Type:      adType,
			Ad: &adContentDTO{
				Headline:    ad.Headline,
				Description: ad.Description,
				PC:          landing{Final: ad.PCFinalURL},
				Mobile:      landing{Final: ad.MobileFinalURL},
			},
		},
	}, nil)
}

func (c *client) ListExtensions(ctx context.Context, ownerID string) ([]domain.Extension, error) {
	var dtos []extensionDTO
	err := c.call(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/ncc/ad-extensions",
		Query:  map[string]string{"ownerId": ownerID},
	}, &dtos)
	if err != nil {
		return nil, err
	}
	return slice.Map(dtos, func(_ int, src extensionDTO) domain.Extension {
		return src.toDomain()
	}), nil
}

func (c *client) CreateExtension(ctx context.Context, ext domain.Extension) error {
	content := ext.Content
	// 上游要求 adExtension 字段必须存在
	if !ext.HasContent() {
		content = json.RawMessage(`{}`)
	}
	channelID := ext.ChannelID()
	var res extensionDTO
	err := c.call(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/ncc/ad-extensions",
		Body: extensionDTO{
			OwnerID:         ext.OwnerID,
			Type:            ext.WireType(),
			AdExtension:     content,
			PCChannelID:     channelID,
			MobileChannelID: channelID,
		},
	}, &res)
	if err != nil {
		return err
	}
	if res.ID == "" {
		return fmt.Errorf("%w: 扩展素材 %s 没有返回ID", errs.ErrValidationEmptyResult, ext.WireType())
	}
	return nil
}

func (c *client) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	var dtos []channelDTO
	err := c.call(ctx, gateway.Request{Method: http.MethodGet, Path: "/ncc/channels"}, &dtos)
	if err != nil {
		return nil, err
	}
	return slice.Map(dtos, func(_ int, src channelDTO) domain.Channel {
		return domain.Channel{ID: src.ID, Name: src.Name, Key: src.Key, Type: src.Type}
	}), nil
}
