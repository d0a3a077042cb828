package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// KeywordCapacity 单个广告组允许的最大关键词数
const KeywordCapacity = 1000

var suffixPattern = regexp.MustCompile(`_(\d+)$`)

// Campaign 广告计划，只读
type Campaign struct {
	ID   string
	Name string
}

// AdGroup 广告组
type AdGroup struct {
	ID              string
	Name            string
	CampaignID      string
	PCChannelID     string // PC 端业务渠道
	MobileChannelID string // 移动端业务渠道
	Type            string // 广告组类型，例如 WEB_SITE
}

// BaseName 去掉名称末尾的 _N 后缀
func (g AdGroup) BaseName() string {
	return suffixPattern.ReplaceAllString(strings.TrimSpace(g.Name), "")
}

// SuffixIndex 名称末尾 _N 中的 N
func (g AdGroup) SuffixIndex() (int, bool) {
	m := suffixPattern.FindStringSubmatch(strings.TrimSpace(g.Name))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextSuccessorIndex 后继广告组的起始序号，没有后缀的时候从 1 开始
func (g AdGroup) NextSuccessorIndex() int {
	if n, ok := g.SuffixIndex(); ok {
		return n + 1
	}
	return 1
}

// SuccessorName 第 index 个后继广告组的名称
func SuccessorName(baseName string, index int) string {
	return fmt.Sprintf("%s_%d", baseName, index)
}

// Channel 业务渠道
type Channel struct {
	ID   string
	Name string
	Key  string // 渠道标识，网站类型一般是 URL
	Type string
}

// CampaignTree 广告计划及其广告组，供界面选择目标
type CampaignTree struct {
	Campaign Campaign
	AdGroups []AdGroup
}
