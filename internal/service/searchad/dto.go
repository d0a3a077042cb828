package searchad

import (
	"encoding/json"

	"gitee.com/flycash/searchad-automation/internal/domain"
)

const (
	defaultKeywordBid = 70
	defaultAdType     = "TEXT_45"
	dateLayout        = "2006-01-02"
)

var statFields = `["impCnt","clkCnt","salesAmt","avgRnk","ccnt"]`

type campaignDTO struct {
	ID   string `json:"nccCampaignId"`
	Name string `json:"name"`
}

type adGroupDTO struct {
	ID              string `json:"nccAdgroupId,omitempty"`
	CampaignID      string `json:"nccCampaignId"`
	Name            string `json:"name"`
	PCChannelID     string `json:"pcChannelId,omitempty"`
	MobileChannelID string `json:"mobileChannelId,omitempty"`
	Type            string `json:"adgroupType,omitempty"`
}

func (d adGroupDTO) toDomain() domain.AdGroup {
	return domain.AdGroup{
		ID:              d.ID,
		Name:            d.Name,
		CampaignID:      d.CampaignID,
		PCChannelID:     d.PCChannelID,
		MobileChannelID: d.MobileChannelID,
		Type:            d.Type,
	}
}

type keywordDTO struct {
	ID          string `json:"nccKeywordId,omitempty"`
	AdGroupID   string `json:"nccAdgroupId"`
	Keyword     string `json:"keyword,omitempty"`
	BidAmt      int64  `json:"bidAmt"`
	UseGroupBid bool   `json:"useGroupBidAmt"`
	Status      string `json:"status,omitempty"`
}

func (d keywordDTO) toDomain() domain.Keyword {
	return domain.Keyword{
		ID:          d.ID,
		AdGroupID:   d.AdGroupID,
		Text:        d.Keyword,
		BidAmount:   d.BidAmt,
		UseGroupBid: d.UseGroupBid,
		Status:      domain.KeywordStatus(d.Status),
	}
}

type statsResp struct {
	Data []statDTO `json:"data"`
}

type statDTO struct {
	ID       string  `json:"id"`
	ImpCnt   float64 `json:"impCnt"`
	ClkCnt   float64 `json:"clkCnt"`
	SalesAmt float64 `json:"salesAmt"`
	AvgRnk   float64 `json:"avgRnk"`
}

func (d statDTO) toDomain() domain.KeywordStat {
	return domain.KeywordStat{
		ID:          d.ID,
		Impressions: int64(d.ImpCnt),
		Clicks:      int64(d.ClkCnt),
		AvgRank:     d.AvgRnk,
		SalesAmount: int64(d.SalesAmt),
	}
}

type timeRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}

type adDTO struct {
	ID        string        `json:"nccAdId,omitempty"`
	AdGroupID string        `json:"nccAdgroupId"`
	Type      string        `json:"type"`
	Ad        *adContentDTO `json:"ad"`
}

type adContentDTO struct {
	Headline    string  `json:"headline"`
	Description string  `json:"description"`
	PC          landing `json:"pc"`
	Mobile      landing `json:"mobile"`
}

type landing struct {
	Final string `json:"final"`
}

func (d adDTO) toDomain() domain.Ad {
	ad := domain.Ad{
		ID:        d.ID,
		AdGroupID: d.AdGroupID,
		Type:      d.Type,
	}
	if d.Ad != nil {
		ad.Headline = d.Ad.Headline
		ad.Description = d.Ad.Description
		ad.PCFinalURL = d.Ad.PC.Final
		ad.MobileFinalURL = d.Ad.Mobile.Final
	}
	return ad
}

// extensionDTO 查询时内容在 extension 字段，创建时要放在 adExtension 字段
type extensionDTO struct {
	ID              string          `json:"adExtensionId,omitempty"`
	OwnerID         string          `json:"ownerId"`
	Type            string          `json:"type"`
	Extension       json.RawMessage `json:"extension,omitempty"`
	AdExtension     json.RawMessage `json:"adExtension,omitempty"`
	PCChannelID     string          `json:"pcChannelId,omitempty"`
	MobileChannelID string          `json:"mobileChannelId,omitempty"`
}

func (d extensionDTO) toDomain() domain.Extension {
	content := d.Extension
	if len(content) == 0 {
		content = d.AdExtension
	}
	return domain.Extension{
		ID:              d.ID,
		OwnerID:         d.OwnerID,
		Type:            domain.ParseExtensionType(d.Type),
		RawType:         d.Type,
		Content:         content,
		PCChannelID:     d.PCChannelID,
		MobileChannelID: d.MobileChannelID,
	}
}

type channelDTO struct {
	ID   string `json:"nccBusinessChannelId"`
	Name string `json:"name"`
	Key  string `json:"channelKey"`
	Type string `json:"channelTp"`
}
