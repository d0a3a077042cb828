package domain

import (
	"strings"
	"time"
)

// KeywordStatus 关键词状态
type KeywordStatus string

const (
	KeywordStatusEligible KeywordStatus = "ELIGIBLE"
	KeywordStatusOn       KeywordStatus = "ON"
	KeywordStatusPaused   KeywordStatus = "PAUSED"
)

// Keyword 关键词
type Keyword struct {
	ID          string
	AdGroupID   string
	Text        string
	BidAmount   int64
	UseGroupBid bool
	Status      KeywordStatus
}

// Eligible 只有可投放的关键词参与调价
func (k Keyword) Eligible() bool {
	return k.Status == KeywordStatusEligible || k.Status == KeywordStatusOn
}

// NormalizeKeyword 去掉空白并转大写，用于判重
func NormalizeKeyword(text string) string {
	return strings.ToUpper(strings.Join(strings.Fields(text), ""))
}

// KeywordStat 关键词统计，按关键词ID关联
type KeywordStat struct {
	ID          string
	Impressions int64
	Clicks      int64
	AvgRank     float64 // 0 表示没有排名数据
	SalesAmount int64
}

// DateRange 统计时间范围，零值表示当天
type DateRange struct {
	Since time.Time
	Until time.Time
}

func (r DateRange) IsZero() bool {
	return r.Since.IsZero() && r.Until.IsZero()
}

// Resolve 零值按 now 所在的自然日处理
func (r DateRange) Resolve(now time.Time) DateRange {
	if r.IsZero() {
		return DateRange{Since: now, Until: now}
	}
	if r.Until.IsZero() {
		r.Until = r.Since
	}
	return r
}
