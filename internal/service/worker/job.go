package worker

import (
	"context"

	"gitee.com/flycash/searchad-automation/internal/domain"
)

// Job 一个长时间运行的自动化任务。
// Run 只在 ctx 被取消或者执行完毕时返回，返回值就是终态的计数
type Job interface {
	Kind() domain.RunKind
	Run(ctx context.Context, sink Sink) Result
}
