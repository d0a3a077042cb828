package asset

import (
	"context"
	"fmt"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"github.com/gotomicro/ego/core/elog"
)

// Copier 由 Cloner 实现
type Copier interface {
	Clone(ctx context.Context, srcAdGroupID, dstAdGroupID string) (Report, error)
}

var _ worker.Job = (*CloneJob)(nil)

// CloneJob 把一个广告组的素材依次复制到多个目标广告组。
// 某个目标只要有一项素材复制失败就记为失败，不影响后面的目标
type CloneJob struct {
	copier  Copier
	src     string
	targets []string
	logger  *elog.Component
}

func NewCloneJob(copier Copier, src string, targets []string) *CloneJob {
	return &CloneJob{
		copier:  copier,
		src:     src,
		targets: targets,
		logger:  elog.DefaultLogger.With(elog.String("component", "AssetCloneJob"), elog.String("src", src)),
	}
}

func (j *CloneJob) Kind() domain.RunKind {
	return domain.RunKindClone
}

func (j *CloneJob) Run(ctx context.Context, sink worker.Sink) worker.Result {
	var res worker.Result
	total := len(j.targets)
	sink.Emit(worker.Status{Text: fmt.Sprintf("从 %s 复制素材到 %d 个广告组", j.src, total)})
	for i, dst := range j.targets {
		if ctx.Err() != nil {
			break
		}
		report, err := j.copier.Clone(ctx, j.src, dst)
		// 中途被停止的目标不计数
		if ctx.Err() != nil {
			break
		}
		switch {
		case err != nil || report.Failed > 0:
			res.Failure++
			msg := fmt.Sprintf("%s 部分素材复制失败 %+v", dst, report)
			if err != nil {
				msg = fmt.Sprintf("%s 复制失败：%s", dst, err.Error())
			}
			sink.Emit(worker.Log{Row: i, Tag: domain.TaskStatusFailed, Message: msg})
		default:
			res.Success++
			sink.Emit(worker.Log{Row: i, Tag: domain.TaskStatusSucceeded,
				Message: fmt.Sprintf("%s 扩展素材 %d 个，广告创意 %d 个，跳过 %d 个", dst, report.Extensions, report.Ads, report.Skipped)})
		}
		sink.Emit(worker.Progress{Processed: i + 1, Total: total})
	}
	j.logger.Info("素材复制任务结束", elog.Int("success", res.Success), elog.Int("failure", res.Failure))
	return res
}
