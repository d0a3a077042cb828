package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/redis/go-redis/v9"
)

// InitRedis 端到端测试使用本地的 redis，参考 .script 下的 docker compose
func InitRedis() redis.Cmdable {
	cmd := redis.NewClient(&redis.Options{
		Addr: "localhost:16379",
	})
	const maxInterval = 10 * time.Second
	const maxRetries = 10
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}
	for {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		err = cmd.Ping(ctx).Err()
		cancel()
		if err == nil {
			return cmd
		}
		next, ok := strategy.Next()
		if !ok {
			panic("InitRedis 重试失败......")
		}
		time.Sleep(next)
	}
}
