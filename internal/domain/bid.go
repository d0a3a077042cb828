package domain

import (
	"fmt"
	"time"

	"gitee.com/flycash/searchad-automation/internal/errs"
)

// BidConfig 单个广告组的调价配置，一个周期内不变
type BidConfig struct {
	TargetRank     int   // 目标排名，数字越小位置越好
	BidStep        int64 // 每次调整的幅度
	MaxBid         int64
	MinBid         int64
	ProbeLimit     int64 // 没有排名数据时，试探性加价的上限
	MinImpressions int64 // 低于这个展现量的排名数据不可信
}

func (c BidConfig) Validate() error {
	if c.TargetRank < 1 {
		return fmt.Errorf("%w: TargetRank = %d", errs.ErrInvalidParameter, c.TargetRank)
	}
	if c.BidStep <= 0 {
		return fmt.Errorf("%w: BidStep = %d", errs.ErrInvalidParameter, c.BidStep)
	}
	if c.MinBid <= 0 || c.MinBid > c.MaxBid {
		return fmt.Errorf("%w: MinBid = %d, MaxBid = %d", errs.ErrInvalidParameter, c.MinBid, c.MaxBid)
	}
	if c.MinImpressions < 0 {
		return fmt.Errorf("%w: MinImpressions = %d", errs.ErrInvalidParameter, c.MinImpressions)
	}
	return nil
}

// BidTarget 调价目标
type BidTarget struct {
	AdGroupID string
	Name      string
	Row       int // 界面上的行号
	Config    BidConfig
}

// BidChange 一次关键词出价变更记录
type BidChange struct {
	RunID     uint64
	AdGroupID string
	GroupName string
	KeywordID string
	Keyword   string
	OldBid    int64
	NewBid    int64
	Rank      float64
	Reason    string
	Time      time.Time
}
