package ioc

import (
	"time"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/pkg/pacing"
	"gitee.com/flycash/searchad-automation/internal/pkg/ratelimit"
	retryx "gitee.com/flycash/searchad-automation/internal/pkg/retry"
	"gitee.com/flycash/searchad-automation/internal/service/gateway"
	"gitee.com/flycash/searchad-automation/internal/service/searchad"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const defaultBaseURL = "https://api.searchad.naver.com"

// InitPacing 配置里只需要写要覆盖的字段
func InitPacing() pacing.Policy {
	policy := pacing.DefaultPolicy()
	if err := econf.UnmarshalKey("searchad.pacing", &policy); err != nil {
		panic(err)
	}
	return policy
}

func InitRetry() retryx.Builder {
	cfg := retryx.DefaultConfig()
	if err := econf.UnmarshalKey("searchad.retry", &cfg); err != nil {
		panic(err)
	}
	builder, err := retryx.NewBuilder(cfg)
	if err != nil {
		panic(err)
	}
	return builder
}

// InitLimiter 同一个广告账号在所有进程里共享请求配额，单机部署可以用 local
func InitLimiter(cmd redis.Cmdable) ratelimit.Limiter {
	type Config struct {
		Mode     string        `yaml:"mode"`
		Interval time.Duration `yaml:"interval"`
		Rate     int           `yaml:"rate"`
	}
	cfg := Config{Interval: time.Second, Rate: 10}
	if err := econf.UnmarshalKey("searchad.rateLimit", &cfg); err != nil {
		panic(err)
	}
	if cfg.Mode == "local" {
		return ratelimit.NewLocalSlidingWindowLimiter(cfg.Interval, cfg.Rate)
	}
	return ratelimit.NewRedisSlidingWindowLimiter(cmd, cfg.Interval, cfg.Rate)
}

func InitGateway(limiter ratelimit.Limiter, retry retryx.Builder, policy pacing.Policy) *gateway.Gateway {
	type Config struct {
		BaseURL string        `yaml:"baseURL"`
		Timeout time.Duration `yaml:"timeout"`
	}
	cfg := Config{BaseURL: defaultBaseURL, Timeout: 30 * time.Second}
	if err := econf.UnmarshalKey("searchad", &cfg); err != nil {
		panic(err)
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)
	return gateway.NewGateway(client, limiter, retry, policy)
}

// InitConnector 每个任务拿到的客户端都带着指标和链路追踪
func InitConnector(g *gateway.Gateway, policy pacing.Policy) worker.Connector {
	metrics := gateway.NewMetrics(prometheus.DefaultRegisterer)
	factory := searchad.NewFactory(policy)
	return func(creds domain.Credentials) searchad.Client {
		return factory(gateway.NewTracingCaller(metrics.Wrap(g.Session(creds))))
	}
}
