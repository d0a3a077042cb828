package main

import (
	"context"
	"time"

	"gitee.com/flycash/searchad-automation/cmd/automation/ioc"
	prodioc "gitee.com/flycash/searchad-automation/internal/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// 停止时 app 已经初始化完成
	var app *prodioc.App
	e := ego.New(ego.WithBeforeStopClean(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.Manager.Shutdown(ctx)
	}), ego.WithAfterStopClean(func() error {
		if app.Tracer == nil {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.Tracer.Shutdown(ctx)
	}))
	app = ioc.InitApp()

	if err := e.Serve(
		egovernor.Load("server.governor").Build(),
		app.WebServer,
	).Cron(app.Crons...).Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
