// Package workertest 提供测试任务时用的事件收集工具
package workertest

import (
	"sync"

	"gitee.com/flycash/searchad-automation/internal/service/worker"
)

// Recorder 把事件收集起来
type Recorder struct {
	mu     sync.Mutex
	events []worker.Event
}

var _ worker.Sink = (*Recorder)(nil)

func (r *Recorder) Emit(evt worker.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func (r *Recorder) Events() []worker.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]worker.Event, len(r.events))
	copy(res, r.events)
	return res
}

// Of 按类型筛选事件
func Of[T worker.Event](events []worker.Event) []T {
	var res []T
	for _, evt := range events {
		if v, ok := evt.(T); ok {
			res = append(res, v)
		}
	}
	return res
}
