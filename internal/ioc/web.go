package ioc

import (
	"time"

	"gitee.com/flycash/searchad-automation/internal/api/web"
	"gitee.com/flycash/searchad-automation/internal/api/web/middleware/jwt"
	"gitee.com/flycash/searchad-automation/internal/api/web/middleware/limit"
	"gitee.com/flycash/searchad-automation/internal/pkg/ratelimit"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/redis/go-redis/v9"
)

func InitWebServer(handler *web.Handler, cmd redis.Cmdable) *egin.Component {
	type Config struct {
		JWTKey string `yaml:"jwtKey"`
		Limit  struct {
			Interval time.Duration `yaml:"interval"`
			Rate     int           `yaml:"rate"`
		} `yaml:"limit"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("web", &cfg); err != nil {
		panic(err)
	}
	if cfg.JWTKey == "" {
		panic("缺少 web.jwtKey 配置")
	}
	if cfg.Limit.Interval <= 0 {
		cfg.Limit.Interval = time.Second
	}
	if cfg.Limit.Rate <= 0 {
		cfg.Limit.Rate = 20
	}

	server := egin.Load("server.http").Build()
	limiter := ratelimit.NewRedisSlidingWindowLimiter(cmd, cfg.Limit.Interval, cfg.Limit.Rate)
	api := server.Group("/api/v1",
		jwt.NewBuilder(jwt.NewJwtAuth(cfg.JWTKey)).Build(),
		limit.NewBuilder("web", limiter).Build())
	handler.RegisterRoutes(api)
	return server
}
