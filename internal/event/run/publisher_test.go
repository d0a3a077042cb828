package run

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Handle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, EventTopic, 1))
	consumer, err := q.Consumer(EventTopic, "test")
	require.NoError(t, err)
	producer, err := NewMQProducer(q)
	require.NoError(t, err)

	pub := NewPublisher(producer, worker.EventTypeStatus)
	pub.now = func() time.Time { return time.UnixMilli(1000) }
	info := worker.Info{ID: 7, Kind: domain.RunKindLevel}

	// Status 被过滤
	pub.Handle(ctx, info, worker.Status{Text: "忽略"})
	pub.Handle(ctx, info, worker.Progress{Processed: 2, Total: 5})
	pub.Handle(ctx, info, worker.Result{Success: 2, Failure: 3})

	var got []RunEvent
	for i := 0; i < 2; i++ {
		msg, err := consumer.Consume(ctx)
		require.NoError(t, err)
		var evt RunEvent
		require.NoError(t, json.Unmarshal(msg.Value, &evt))
		got = append(got, evt)
	}

	assert.Equal(t, uint64(7), got[0].RunID)
	assert.Equal(t, domain.RunKindLevel, got[0].Kind)
	assert.Equal(t, "progress", got[0].Type)
	assert.Equal(t, int64(1000), got[0].Time)
	assert.JSONEq(t, `{"processed":2,"total":5}`, string(got[0].Payload))
	assert.Equal(t, "result", got[1].Type)
	assert.JSONEq(t, `{"success":2,"failure":3}`, string(got[1].Payload))
}
