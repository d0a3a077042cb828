package ioc

import (
	"gitee.com/flycash/searchad-automation/internal/pkg/lock"
	"github.com/gotomicro/ego/core/econf"
	"github.com/meoying/dlock-go"
	dlockRedis "github.com/meoying/dlock-go/redis"
	"github.com/redis/go-redis/v9"
)

func InitDistributedLock(rdb redis.Cmdable) dlock.Client {
	return dlockRedis.NewClient(rdb)
}

// InitLocker 单机部署时可以只用进程内的锁
func InitLocker(client dlock.Client) lock.Locker {
	type Config struct {
		Mode string `yaml:"mode"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("worker.lock", &cfg); err != nil {
		panic(err)
	}
	if cfg.Mode == "local" {
		return lock.NewLocalLocker()
	}
	return lock.NewDLocker(client)
}
