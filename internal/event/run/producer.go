package run

import (
	"context"

	"gitee.com/flycash/searchad-automation/internal/pkg/mqx"
	"gitee.com/flycash/searchad-automation/internal/pkg/mqx2"
	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=../mocks/run_event_producer.mock.go -typed Producer
type Producer interface {
	Produce(ctx context.Context, evt RunEvent) error
}

// NewMQProducer 基于 mq-api，开发和测试环境使用内存实现
func NewMQProducer(q mq.MQ) (Producer, error) {
	return mqx.NewGeneralProducer[RunEvent](q, EventTopic)
}

// NewKafkaProducer 生产环境直接写 kafka
func NewKafkaProducer(addr string) (*mqx2.GeneralProducer[RunEvent], error) {
	return mqx2.NewGeneralProducer[RunEvent](addr, EventTopic)
}
