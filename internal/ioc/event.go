package ioc

import (
	"context"

	"gitee.com/flycash/searchad-automation/internal/event/run"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/gotomicro/ego/core/econf"
)

// InitRunEventProducer 没有配置 kafka 时使用内存队列，事件只在进程内可见
func InitRunEventProducer() run.Producer {
	type Config struct {
		Kafka struct {
			Addr string `yaml:"addr"`
		} `yaml:"kafka"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("event", &cfg); err != nil {
		panic(err)
	}
	if cfg.Kafka.Addr != "" {
		p, err := run.NewKafkaProducer(cfg.Kafka.Addr)
		if err != nil {
			panic(err)
		}
		return p
	}
	q := memory.NewMQ()
	if err := q.CreateTopic(context.Background(), run.EventTopic, 1); err != nil {
		panic(err)
	}
	p, err := run.NewMQProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}
