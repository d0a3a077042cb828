package ioc

import (
	"gitee.com/flycash/searchad-automation/internal/event/run"
	"gitee.com/flycash/searchad-automation/internal/pkg/lock"
	"gitee.com/flycash/searchad-automation/internal/repository"
	"gitee.com/flycash/searchad-automation/internal/service/credential"
	"gitee.com/flycash/searchad-automation/internal/service/journal"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

func InitWorkerManager(
	ids *sonyflake.Sonyflake,
	locker lock.Locker,
	creds *credential.Store,
	connect worker.Connector,
	repo repository.RunRepository,
	producer run.Producer,
) *worker.Manager {
	cfg := worker.Config{MaxWorkers: 8}
	if err := econf.UnmarshalKey("worker", &cfg); err != nil {
		panic(err)
	}
	// 日志事件量很大，只在界面的事件流里看
	publisher := run.NewPublisher(producer, worker.EventTypeLog, worker.EventTypeRowStatus)
	return worker.NewManager(ids, cfg, locker, creds, connect, journal.NewJournal(repo), publisher)
}
