package plan

import (
	"fmt"
	"os"
	"time"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/errs"
	"gitee.com/flycash/searchad-automation/internal/service/bidding"
	"gitee.com/flycash/searchad-automation/internal/service/expansion"
	"gopkg.in/yaml.v2"
)

const dateLayout = "2006-01-02"

// File 一份任务计划，每种任务都是可选的
type File struct {
	Bid    *BidPlan    `json:"bid" yaml:"bid"`
	Level  *LevelPlan  `json:"level" yaml:"level"`
	Expand *ExpandPlan `json:"expand" yaml:"expand"`
	Clone  *ClonePlan  `json:"clone" yaml:"clone"`
}

type BidPlan struct {
	Loop            bool         `json:"loop" yaml:"loop"`
	IntervalMinutes int          `json:"intervalMinutes" yaml:"intervalMinutes"`
	Since           string       `json:"since" yaml:"since"`
	Until           string       `json:"until" yaml:"until"`
	Defaults        TargetConfig `json:"defaults" yaml:"defaults"`
	Targets         []BidTarget  `json:"targets" yaml:"targets"`
}

// TargetConfig 零值字段使用 defaults 中的值
type TargetConfig struct {
	TargetRank     int   `json:"targetRank" yaml:"targetRank"`
	BidStep        int64 `json:"bidStep" yaml:"bidStep"`
	MaxBid         int64 `json:"maxBid" yaml:"maxBid"`
	MinBid         int64 `json:"minBid" yaml:"minBid"`
	ProbeLimit     int64 `json:"probeLimit" yaml:"probeLimit"`
	MinImpressions int64 `json:"minImpressions" yaml:"minImpressions"`
}

type BidTarget struct {
	AdGroupID    string `json:"adGroupId" yaml:"adGroupId"`
	Name         string `json:"name" yaml:"name"`
	TargetConfig `yaml:",inline"`
}

type LevelPlan struct {
	CampaignID string `json:"campaignId" yaml:"campaignId"`
	Bid        int64  `json:"bid" yaml:"bid"`
}

type ExpandPlan struct {
	CampaignID string                `json:"campaignId" yaml:"campaignId"`
	Mapping    string                `json:"mapping" yaml:"mapping"`
	Keywords   string                `json:"keywords" yaml:"keywords"`
	Options    expansion.PlanOptions `json:"options" yaml:"options"`
}

// ClonePlan 把 Source 广告组的素材复制到 Targets
type ClonePlan struct {
	Source  string   `json:"source" yaml:"source"`
	Targets []string `json:"targets" yaml:"targets"`
}

// Validate 目标不能为空，不能重复，也不能是源广告组本身
func (p ClonePlan) Validate() error {
	if p.Source == "" {
		return fmt.Errorf("%w: 缺少 source", errs.ErrInvalidParameter)
	}
	if len(p.Targets) == 0 {
		return fmt.Errorf("%w: 没有复制目标", errs.ErrInvalidParameter)
	}
	seen := make(map[string]struct{}, len(p.Targets))
	for i, t := range p.Targets {
		if t == "" {
			return fmt.Errorf("%w: 第 %d 个目标为空", errs.ErrInvalidParameter, i+1)
		}
		if t == p.Source {
			return fmt.Errorf("%w: 目标 %s 和源广告组相同", errs.ErrInvalidParameter, t)
		}
		if _, ok := seen[t]; ok {
			return fmt.Errorf("%w: 目标 %s 重复", errs.ErrInvalidParameter, t)
		}
		seen[t] = struct{}{}
	}
	return nil
}

func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	return Parse(data)
}

func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return File{}, fmt.Errorf("%w: 解析计划失败 %w", errs.ErrInvalidParameter, err)
	}
	if f.Bid == nil && f.Level == nil && f.Expand == nil && f.Clone == nil {
		return File{}, fmt.Errorf("%w: 计划中没有任何任务", errs.ErrInvalidParameter)
	}
	return f, nil
}

func (c TargetConfig) withDefaults(d TargetConfig) TargetConfig {
	if c.TargetRank == 0 {
		c.TargetRank = d.TargetRank
	}
	if c.BidStep == 0 {
		c.BidStep = d.BidStep
	}
	if c.MaxBid == 0 {
		c.MaxBid = d.MaxBid
	}
	if c.MinBid == 0 {
		c.MinBid = d.MinBid
	}
	if c.ProbeLimit == 0 {
		c.ProbeLimit = d.ProbeLimit
	}
	if c.MinImpressions == 0 {
		c.MinImpressions = d.MinImpressions
	}
	return c
}

func (c TargetConfig) toDomain() domain.BidConfig {
	return domain.BidConfig{
		TargetRank:     c.TargetRank,
		BidStep:        c.BidStep,
		MaxBid:         c.MaxBid,
		MinBid:         c.MinBid,
		ProbeLimit:     c.ProbeLimit,
		MinImpressions: c.MinImpressions,
	}
}

// BidTargets 补全默认值并校验每个目标
func (p BidPlan) BidTargets() ([]domain.BidTarget, error) {
	if len(p.Targets) == 0 {
		return nil, fmt.Errorf("%w: 没有调价目标", errs.ErrInvalidParameter)
	}
	res := make([]domain.BidTarget, 0, len(p.Targets))
	for i, t := range p.Targets {
		if t.AdGroupID == "" {
			return nil, fmt.Errorf("%w: 第 %d 个目标缺少 adGroupId", errs.ErrInvalidParameter, i+1)
		}
		cfg := t.TargetConfig.withDefaults(p.Defaults).toDomain()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("目标 %s: %w", t.AdGroupID, err)
		}
		name := t.Name
		if name == "" {
			name = t.AdGroupID
		}
		res = append(res, domain.BidTarget{AdGroupID: t.AdGroupID, Name: name, Row: i, Config: cfg})
	}
	return res, nil
}

func (p BidPlan) Options() (bidding.ControllerOptions, error) {
	opts := bidding.ControllerOptions{
		Loop:     p.Loop,
		Interval: time.Duration(p.IntervalMinutes) * time.Minute,
	}
	if p.Loop && p.IntervalMinutes <= 0 {
		return opts, fmt.Errorf("%w: 循环执行时 intervalMinutes 必须大于 0", errs.ErrInvalidParameter)
	}
	if p.Since == "" {
		return opts, nil
	}
	since, err := time.ParseInLocation(dateLayout, p.Since, time.Local)
	if err != nil {
		return opts, fmt.Errorf("%w: since %w", errs.ErrInvalidParameter, err)
	}
	until := since
	if p.Until != "" {
		if until, err = time.ParseInLocation(dateLayout, p.Until, time.Local); err != nil {
			return opts, fmt.Errorf("%w: until %w", errs.ErrInvalidParameter, err)
		}
	}
	if until.Before(since) {
		return opts, fmt.Errorf("%w: until 早于 since", errs.ErrInvalidParameter)
	}
	opts.DateRange = domain.DateRange{Since: since, Until: until}
	return opts, nil
}
