package worker

import (
	"context"
	"testing"
	"time"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, ch <-chan Event) []Event {
	t.Helper()
	var res []Event
	timeout := time.After(5 * time.Second)
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				return res
			}
			res = append(res, evt)
		case <-timeout:
			t.Fatal("事件通道没有关闭")
			return res
		}
	}
}

func TestHandle_Finished(t *testing.T) {
	job := &quickJob{
		events: []Event{Status{Text: "开始"}, Progress{Processed: 1, Total: 1}},
		result: Result{Success: 3, Failure: 1},
	}
	h := NewHandle(1, job)
	assert.Equal(t, domain.RunStateIdle, h.State())

	h.Start(context.Background())
	events := drain(t, h.Events())

	require.Len(t, events, 5)
	assert.Equal(t, StateChange{State: domain.RunStateRunning}, events[0])
	assert.Equal(t, Status{Text: "开始"}, events[1])
	assert.Equal(t, StateChange{State: domain.RunStateFinished}, events[3])
	assert.Equal(t, Result{Success: 3, Failure: 1}, events[4])
	<-h.Done()
	assert.Equal(t, domain.RunStateFinished, h.State())
	assert.Equal(t, Result{Success: 3, Failure: 1}, h.Result())
}

func TestHandle_Stop(t *testing.T) {
	job := newBlockingJob(domain.RunKindBid)
	h := NewHandle(2, job)
	h.Start(context.Background())
	<-job.started
	assert.Equal(t, domain.RunStateRunning, h.State())

	h.Stop()
	events := drain(t, h.Events())
	results := resultsOf(events)
	require.Len(t, results, 1)
	// Result 一定是最后一个事件
	assert.Equal(t, Result{Success: 1}, events[len(events)-1])
	assert.Equal(t, domain.RunStateStopped, h.State())
}

func TestHandle_StartOnce(t *testing.T) {
	h := NewHandle(3, &quickJob{})
	h.Start(context.Background())
	h.Start(context.Background())
	events := drain(t, h.Events())
	assert.Len(t, resultsOf(events), 1)
}

func TestHandle_StopBeforeStart(t *testing.T) {
	h := NewHandle(4, &quickJob{})
	assert.NotPanics(t, h.Stop)
}

func TestHandle_PanicEmitsResult(t *testing.T) {
	h := NewHandle(5, &panicJob{})
	h.Start(context.Background())
	events := drain(t, h.Events())

	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("任务没有结束")
	}
	require.Len(t, events, 4)
	assert.Equal(t, Progress{Processed: 1, Total: 3}, events[1])
	assert.Equal(t, StateChange{State: domain.RunStateFinished}, events[2])
	res, ok := events[3].(Result)
	require.True(t, ok)
	assert.Contains(t, res.Error, "assignment to entry in nil map")
	assert.Zero(t, res.Success)
	assert.Equal(t, res, h.Result())
	assert.Equal(t, domain.RunStateFinished, h.State())
}
