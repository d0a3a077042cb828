package worker

import (
	"context"

	"gitee.com/flycash/searchad-automation/internal/domain"
)

// blockingJob 汇报一次进度后一直等到被停止
type blockingJob struct {
	kind    domain.RunKind
	started chan struct{}
}

func newBlockingJob(kind domain.RunKind) *blockingJob {
	return &blockingJob{kind: kind, started: make(chan struct{})}
}

func (j *blockingJob) Kind() domain.RunKind {
	return j.kind
}

func (j *blockingJob) Run(ctx context.Context, sink Sink) Result {
	sink.Emit(Progress{Processed: 1, Total: 2})
	close(j.started)
	<-ctx.Done()
	return Result{Success: 1}
}

// quickJob 立即结束
type quickJob struct {
	events []Event
	result Result
}

func (j *quickJob) Kind() domain.RunKind {
	return domain.RunKindLevel
}

func (j *quickJob) Run(_ context.Context, sink Sink) Result {
	for _, evt := range j.events {
		sink.Emit(evt)
	}
	return j.result
}

// panicJob 汇报一次进度后 panic
type panicJob struct{}

func (j *panicJob) Kind() domain.RunKind {
	return domain.RunKindExpand
}

func (j *panicJob) Run(_ context.Context, sink Sink) Result {
	sink.Emit(Progress{Processed: 1, Total: 3})
	var m map[string]int
	m["boom"]++
	return Result{Success: 1}
}

func resultsOf(events []Event) []Result {
	var res []Result
	for _, evt := range events {
		if r, ok := evt.(Result); ok {
			res = append(res, r)
		}
	}
	return res
}
