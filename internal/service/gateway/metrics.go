package gateway

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 广告 API 调用的指标，整个进程只注册一次
type Metrics struct {
	callDurationSummary *prometheus.SummaryVec
	callCounter         *prometheus.CounterVec
	callStatusCounter   *prometheus.CounterVec
}

// NewMetrics 创建并注册指标
func NewMetrics(reg prometheus.Registerer) *Metrics {
	callDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "searchad_api_call_duration_seconds",
			Help:       "广告 API 调用耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"method", "path", "outcome"},
	)

	callCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searchad_api_call_total",
			Help: "广告 API 调用总数",
		},
		[]string{"method", "path"},
	)

	callStatusCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searchad_api_call_code_total",
			Help: "广告 API 调用结果码统计",
		},
		[]string{"method", "path", "code"},
	)

	reg.MustRegister(callDurationSummary, callCounter, callStatusCounter)

	return &Metrics{
		callDurationSummary: callDurationSummary,
		callCounter:         callCounter,
		callStatusCounter:   callStatusCounter,
	}
}

// Wrap 为 Caller 添加指标收集
func (m *Metrics) Wrap(c Caller) Caller {
	return &metricsCaller{caller: c, m: m}
}

type metricsCaller struct {
	caller Caller
	m      *Metrics
}

func (c *metricsCaller) Call(ctx context.Context, req Request) Result {
	startTime := time.Now()
	path := PathTemplate(req.Path)
	c.m.callCounter.WithLabelValues(req.Method, path).Inc()

	res := c.caller.Call(ctx, req)

	outcome := "success"
	if res.Err != nil {
		outcome = res.Err.Kind.String()
	}
	c.m.callStatusCounter.WithLabelValues(req.Method, path, strconv.Itoa(res.Code())).Inc()
	c.m.callDurationSummary.WithLabelValues(req.Method, path, outcome).Observe(time.Since(startTime).Seconds())
	return res
}

// PathTemplate 把路径中的资源ID替换成 :id，避免指标的标签基数爆炸
func PathTemplate(path string) string {
	segments := strings.Split(stripQuery(path), "/")
	for i, seg := range segments {
		if strings.IndexFunc(seg, unicode.IsDigit) >= 0 {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}
