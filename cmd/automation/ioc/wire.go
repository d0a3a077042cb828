//go:build wireinject

package ioc

import (
	"gitee.com/flycash/searchad-automation/internal/api/web"
	"gitee.com/flycash/searchad-automation/internal/ioc"
	"gitee.com/flycash/searchad-automation/internal/repository"
	"gitee.com/flycash/searchad-automation/internal/repository/dao"
	"gitee.com/flycash/searchad-automation/internal/service/plan"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"github.com/google/wire"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitRedisClient,
		ioc.InitRedisCmd,
		ioc.InitDistributedLock,
		ioc.InitLocker,
		ioc.InitIDGenerator,
		ioc.InitZipkinTracer,
	)
	searchAdSet = wire.NewSet(
		ioc.InitPacing,
		ioc.InitRetry,
		ioc.InitLimiter,
		ioc.InitGateway,
		ioc.InitConnector,
	)
	credentialSet = wire.NewSet(
		ioc.InitLicenseSession,
		ioc.InitCredentialStore,
	)
	runSvcSet = wire.NewSet(
		repository.NewRunRepository,
		dao.NewRunDAO,
		ioc.InitRunEventProducer,
	)
	workerSet = wire.NewSet(
		ioc.InitWorkerManager,
		plan.NewLauncher,
		wire.Bind(new(plan.Starter), new(*worker.Manager)),
	)
	webSet = wire.NewSet(
		web.NewHandler,
		wire.Bind(new(web.WorkerManager), new(*worker.Manager)),
		wire.Bind(new(web.Launcher), new(*plan.Launcher)),
		ioc.InitWebServer,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		// 基础设施
		BaseSet,

		// 广告 API
		searchAdSet,
		credentialSet,

		// 任务
		runSvcSet,
		workerSet,
		ioc.Crons,

		// HTTP 服务
		webSet,
		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
