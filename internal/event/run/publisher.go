package run

import (
	"context"
	"encoding/json"
	"time"

	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"github.com/gotomicro/ego/core/elog"
)

var _ worker.Subscriber = (*Publisher)(nil)

// Publisher 把任务事件转发到消息队列，发送失败只记录日志
type Publisher struct {
	producer Producer
	// skip 不需要发送的事件类型
	skip   map[worker.EventType]struct{}
	now    func() time.Time
	logger *elog.Component
}

func NewPublisher(producer Producer, skip ...worker.EventType) *Publisher {
	s := make(map[worker.EventType]struct{}, len(skip))
	for _, t := range skip {
		s[t] = struct{}{}
	}
	return &Publisher{
		producer: producer,
		skip:     s,
		now:      time.Now,
		logger:   elog.DefaultLogger.With(elog.String("component", "RunEventPublisher")),
	}
}

func (p *Publisher) Handle(ctx context.Context, info worker.Info, evt worker.Event) {
	if _, ok := p.skip[evt.Type()]; ok {
		return
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		p.logger.Error("序列化任务事件失败", elog.FieldErr(err), elog.Any("evt", evt))
		return
	}
	err = p.producer.Produce(ctx, RunEvent{
		RunID:   info.ID,
		Kind:    info.Kind,
		Type:    string(evt.Type()),
		Payload: payload,
		Time:    p.now().UnixMilli(),
	})
	if err != nil {
		p.logger.Warn("发送任务事件失败",
			elog.Any("runID", info.ID),
			elog.String("type", string(evt.Type())),
			elog.FieldErr(err))
	}
}
