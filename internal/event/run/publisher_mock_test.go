package run_test

import (
	"context"
	"errors"
	"testing"

	evtmocks "gitee.com/flycash/searchad-automation/internal/event/mocks"
	"gitee.com/flycash/searchad-automation/internal/event/run"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPublisher_ProduceError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	producer := evtmocks.NewMockProducer(ctrl)

	var got []run.RunEvent
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, evt run.RunEvent) error {
			got = append(got, evt)
			return errors.New("mock error")
		}).Times(2)

	pub := run.NewPublisher(producer)
	info := worker.Info{ID: 9}
	// 发送失败不影响后续事件
	pub.Handle(t.Context(), info, worker.Status{Text: "开始"})
	pub.Handle(t.Context(), info, worker.Result{Success: 1})

	assert.Len(t, got, 2)
	assert.Equal(t, "status", got[0].Type)
	assert.Equal(t, "result", got[1].Type)
	assert.Equal(t, uint64(9), got[1].RunID)
}
