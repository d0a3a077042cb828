package web

import (
	"context"

	"gitee.com/flycash/searchad-automation/internal/service/expansion"
	"gitee.com/flycash/searchad-automation/internal/service/plan"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
)

//go:generate mockgen -source=./types.go -destination=./mocks/web.mock.go -package=webmocks -typed WorkerManager,Launcher

// WorkerManager 由 worker.Manager 实现
type WorkerManager interface {
	List() []worker.Info
	Get(id uint64) (worker.Info, error)
	Stop(id uint64) error
	Watch(id uint64) (<-chan worker.Event, func(), error)
}

// Launcher 由 plan.Launcher 实现
type Launcher interface {
	StartBid(ctx context.Context, p plan.BidPlan) (worker.Info, error)
	StartLevel(ctx context.Context, p plan.LevelPlan) (worker.Info, error)
	StartExpand(ctx context.Context, p plan.ExpandPlan) (worker.Info, error)
	StartClone(ctx context.Context, p plan.ClonePlan) (worker.Info, error)
	StartFile(ctx context.Context, f plan.File) ([]worker.Info, error)
}

// Result 统一的响应格式
type Result struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

type CredentialsReq struct {
	AccessKey  string `json:"accessKey"`
	SecretKey  string `json:"secretKey"`
	CustomerID string `json:"customerId"`
	// Force 有任务运行时也切换，只影响之后启动的任务
	Force bool `json:"force"`
}

type CredentialsVO struct {
	AccessKey  string `json:"accessKey"`
	CustomerID string `json:"customerId"`
	Configured bool   `json:"configured"`
	Leases     int    `json:"leases"`
}

type ExpansionPlanReq struct {
	CampaignID string                `json:"campaignId"`
	Mapping    string                `json:"mapping"`
	Keywords   string                `json:"keywords"`
	Options    expansion.PlanOptions `json:"options"`
}

type CampaignVO struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	AdGroups []AdGroupVO `json:"adGroups"`
}

type AdGroupVO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
