package domain

import (
	"bytes"
	"encoding/json"
)

// ExtensionType 扩展素材类型
type ExtensionType string

const (
	ExtensionPhone          ExtensionType = "PHONE"
	ExtensionSubLinks       ExtensionType = "SUB_LINKS"
	ExtensionWebsiteInfo    ExtensionType = "WEBSITE_INFO"
	ExtensionPowerLinkImage ExtensionType = "POWER_LINK_IMAGE"
	ExtensionImageSubLinks  ExtensionType = "IMAGE_SUB_LINKS"
	// ExtensionOther 其余类型，原始类型保存在 Extension.RawType
	ExtensionOther ExtensionType = "OTHER"
)

// ParseExtensionType 未识别的类型统一归为 ExtensionOther
func ParseExtensionType(raw string) ExtensionType {
	switch t := ExtensionType(raw); t {
	case ExtensionPhone, ExtensionSubLinks, ExtensionWebsiteInfo,
		ExtensionPowerLinkImage, ExtensionImageSubLinks:
		return t
	default:
		return ExtensionOther
	}
}

// Extension 扩展素材
type Extension struct {
	ID              string
	OwnerID         string // 广告组或者广告计划ID
	Type            ExtensionType
	RawType         string          // 接口返回的原始类型
	Content         json.RawMessage // 类型相关的结构化内容，不做业务校验
	PCChannelID     string
	MobileChannelID string
}

// WireType 写回接口时使用的类型
func (e Extension) WireType() string {
	if e.RawType != "" {
		return e.RawType
	}
	return string(e.Type)
}

// ChannelID 优先使用 PC 渠道
func (e Extension) ChannelID() string {
	if e.PCChannelID != "" {
		return e.PCChannelID
	}
	return e.MobileChannelID
}

// HasContent 内容为空对象、空数组或 null 都视为没有内容
func (e Extension) HasContent() bool {
	c := bytes.TrimSpace(e.Content)
	switch string(c) {
	case "", "null", "{}", "[]", `""`:
		return false
	default:
		return true
	}
}

// Ad 广告创意
type Ad struct {
	ID             string
	AdGroupID      string
	Type           string
	Headline       string
	Description    string
	PCFinalURL     string
	MobileFinalURL string
}

// Complete 标题和描述是必填字段
func (a Ad) Complete() bool {
	return a.Headline != "" && a.Description != ""
}
