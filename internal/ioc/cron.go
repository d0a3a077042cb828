package ioc

import (
	"gitee.com/flycash/searchad-automation/internal/service/license"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"github.com/gotomicro/ego/task/ecron"
)

// Crons 没有授权服务时不需要上报在线状态
func Crons(session *license.Session, mgr *worker.Manager) []ecron.Ecron {
	if session == nil {
		return nil
	}
	job := license.NewLivenessJob(session, mgr.Summary)
	return []ecron.Ecron{ecron.Load("cron.liveness").Build(ecron.WithJob(job.Do))}
}
