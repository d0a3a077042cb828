package asset

import (
	"context"
	"fmt"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/pkg/pacing"
	"gitee.com/flycash/searchad-automation/internal/service/searchad"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
)

// Report 复制结果，只用于记录日志
type Report struct {
	Extensions int
	Ads        int
	Skipped    int
	Failed     int
}

// Cloner 把扩展素材和广告创意从一个广告组复制到另一个广告组。
// 尽力而为，任何失败都不会中断调用方的流程
type Cloner struct {
	client searchad.Client
	policy pacing.Policy
	logger *elog.Component
}

func NewCloner(client searchad.Client, policy pacing.Policy) *Cloner {
	return &Cloner{
		client: client,
		policy: policy,
		logger: elog.DefaultLogger.With(elog.String("component", "AssetCloner")),
	}
}

// Clone 返回的 error 是所有失败的汇总，调用方只需要记录
func (c *Cloner) Clone(ctx context.Context, srcAdGroupID, dstAdGroupID string) (Report, error) {
	var (
		report Report
		merr   *multierror.Error
	)
	logger := c.logger.With(elog.String("src", srcAdGroupID), elog.String("dst", dstAdGroupID))

	if err := c.cloneExtensions(ctx, srcAdGroupID, dstAdGroupID, &report); err != nil {
		merr = multierror.Append(merr, err)
	}
	if err := c.cloneAds(ctx, srcAdGroupID, dstAdGroupID, &report); err != nil {
		merr = multierror.Append(merr, err)
	}

	err := merr.ErrorOrNil()
	if err != nil {
		logger.Warn("复制素材部分失败", elog.Any("report", report), elog.FieldErr(err))
	} else {
		logger.Info("复制素材完成", elog.Any("report", report))
	}
	return report, err
}

func (c *Cloner) cloneExtensions(ctx context.Context, src, dst string, report *Report) error {
	if err := pacing.Sleep(ctx, c.policy.ClonePause); err != nil {
		return err
	}
	exts, err := c.client.ListExtensions(ctx, src)
	if err != nil {
		return fmt.Errorf("查询扩展素材失败 %w", err)
	}
	var merr *multierror.Error
	for _, ext := range exts {
		if !cloneable(ext) {
			report.Skipped++
			continue
		}
		if err = pacing.Sleep(ctx, c.policy.ClonePause); err != nil {
			return multierror.Append(merr, err).ErrorOrNil()
		}
		ext.OwnerID = dst
		if err = c.client.CreateExtension(ctx, ext); err != nil {
			report.Failed++
			merr = multierror.Append(merr, fmt.Errorf("扩展素材 %s: %w", ext.WireType(), err))
			continue
		}
		report.Extensions++
	}
	return merr.ErrorOrNil()
}

// cloneable 图片类素材不能按引用复制，电话和子链接必须有内容
func cloneable(ext domain.Extension) bool {
	switch ext.Type {
	case domain.ExtensionImageSubLinks, domain.ExtensionPowerLinkImage:
		return false
	case domain.ExtensionPhone, domain.ExtensionSubLinks:
		return ext.HasContent()
	case domain.ExtensionWebsiteInfo, domain.ExtensionOther:
		return true
	default:
		return false
	}
}

func (c *Cloner) cloneAds(ctx context.Context, src, dst string, report *Report) error {
	if err := pacing.Sleep(ctx, c.policy.ClonePause); err != nil {
		return err
	}
	ads, err := c.client.ListAds(ctx, src)
	if err != nil {
		return fmt.Errorf("查询广告创意失败 %w", err)
	}
	var merr *multierror.Error
	for _, ad := range ads {
		if !ad.Complete() {
			report.Skipped++
			continue
		}
		if err = pacing.Sleep(ctx, c.policy.ClonePause); err != nil {
			return multierror.Append(merr, err).ErrorOrNil()
		}
		ad.AdGroupID = dst
		if err = c.client.CreateAd(ctx, ad); err != nil {
			report.Failed++
			merr = multierror.Append(merr, fmt.Errorf("广告创意 %s: %w", ad.ID, err))
			continue
		}
		report.Ads++
	}
	return merr.ErrorOrNil()
}
