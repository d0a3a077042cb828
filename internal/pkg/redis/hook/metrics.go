package hook

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

var _ redis.Hook = (*MetricsHook)(nil)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// MetricsHook 统计限流器和分布式锁对 redis 的访问
type MetricsHook struct {
	commandCounter  *prometheus.CounterVec
	commandDuration *prometheus.SummaryVec
	pipelineCounter *prometheus.CounterVec
	dialCounter     *prometheus.CounterVec
}

func NewMetricsHook(reg prometheus.Registerer) *MetricsHook {
	h := &MetricsHook{
		commandCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "searchad_redis_commands_total",
			Help: "redis 命令执行次数",
		}, []string{"command", "status"}),
		commandDuration: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Name:       "searchad_redis_command_duration_seconds",
			Help:       "redis 命令耗时（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}, []string{"command"}),
		pipelineCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "searchad_redis_pipelines_total",
			Help: "redis 管道执行次数",
		}, []string{"status"}),
		dialCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "searchad_redis_dials_total",
			Help: "redis 建立连接次数",
		}, []string{"status"}),
	}
	reg.MustRegister(h.commandCounter, h.commandDuration, h.pipelineCounter, h.dialCounter)
	return h
}

func (h *MetricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		h.dialCounter.WithLabelValues(status(err)).Inc()
		return conn, err
	}
}

func (h *MetricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.commandDuration.WithLabelValues(cmd.Name()).Observe(time.Since(start).Seconds())
		h.commandCounter.WithLabelValues(cmd.Name(), status(err)).Inc()
		return err
	}
}

func (h *MetricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		st := status(err)
		for _, cmd := range cmds {
			if status(cmd.Err()) == statusError {
				st = statusError
				break
			}
		}
		h.pipelineCounter.WithLabelValues(st).Inc()
		return err
	}
}

// status redis.Nil 表示没有数据，不算失败
func status(err error) string {
	if err != nil && !errors.Is(err, redis.Nil) {
		return statusError
	}
	return statusSuccess
}

// Wrap 给客户端挂上指标和链路追踪
func Wrap(client *redis.Client, reg prometheus.Registerer) *redis.Client {
	client.AddHook(NewMetricsHook(reg))
	client.AddHook(NewTracingHook())
	return client
}
