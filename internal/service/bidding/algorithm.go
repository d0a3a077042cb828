package bidding

import (
	"fmt"

	"gitee.com/flycash/searchad-automation/internal/domain"
)

// Tag 调价原因
type Tag string

const (
	TagInsufficientData Tag = "insufficient_data" // 展现量太少，排名不可信
	TagProbe            Tag = "probe"             // 没有排名，试探性加价
	TagProbeLimit       Tag = "probe_limit"       // 试探加价已经到上限
	TagIncrease         Tag = "increase"
	TagDecrease         Tag = "decrease"
	TagHold             Tag = "hold"
)

// Clamp 结果被限制到边界时的标记
type Clamp string

const (
	ClampNone Clamp = ""
	ClampMax  Clamp = "MAX"
	ClampMin  Clamp = "MIN"
)

type Reason struct {
	Tag   Tag
	Rank  float64
	Clamp Clamp
}

// String 例如 increase(5.0)、decrease(MIN)、hold
func (r Reason) String() string {
	if r.Clamp != ClampNone {
		return fmt.Sprintf("%s(%s)", r.Tag, r.Clamp)
	}
	switch r.Tag {
	case TagIncrease, TagDecrease:
		return fmt.Sprintf("%s(%.1f)", r.Tag, r.Rank)
	default:
		return string(r.Tag)
	}
}

// Calculate 按目标排名计算新的出价。rank 为 0 表示没有排名数据，数字越大位置越差。
// 返回的出价总是在 [MinBid, MaxBid] 之内，只有新出价和 bid 不同时才需要写回
func Calculate(bid int64, rank float64, impressions int64, cfg domain.BidConfig) (int64, Reason) {
	target := float64(cfg.TargetRank)
	var next int64
	reason := Reason{Rank: rank}
	switch {
	case impressions < cfg.MinImpressions && rank > 0:
		next, reason.Tag = bid, TagInsufficientData
	case rank == 0:
		if bid >= cfg.ProbeLimit {
			next, reason.Tag = bid, TagProbeLimit
		} else {
			next, reason.Tag = bid+cfg.BidStep, TagProbe
		}
	case rank > target:
		next, reason.Tag = bid+cfg.BidStep, TagIncrease
	case rank < target:
		next, reason.Tag = bid-cfg.BidStep, TagDecrease
	default:
		next, reason.Tag = bid, TagHold
	}

	switch {
	case next > cfg.MaxBid:
		next, reason.Clamp = cfg.MaxBid, ClampMax
	case next < cfg.MinBid:
		next, reason.Clamp = cfg.MinBid, ClampMin
	}
	return next, reason
}
