package ioc

import (
	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	WebServer *egin.Component
	Manager   *worker.Manager
	Crons     []ecron.Ecron
	Tracer    *sdktrace.TracerProvider
}
