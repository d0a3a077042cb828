package web

import (
	"errors"
	"net/http"
	"strconv"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/errs"
	"gitee.com/flycash/searchad-automation/internal/pkg/pacing"
	"gitee.com/flycash/searchad-automation/internal/repository"
	"gitee.com/flycash/searchad-automation/internal/service/credential"
	"gitee.com/flycash/searchad-automation/internal/service/expansion"
	"gitee.com/flycash/searchad-automation/internal/service/plan"
	"gitee.com/flycash/searchad-automation/internal/service/searchad"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultPageSize    = 20
	maxPageSize        = 100
	bidChangePageLimit = 500
)

// Handler 给界面使用的控制接口
type Handler struct {
	mgr      WorkerManager
	launcher Launcher
	creds    *credential.Store
	connect  worker.Connector
	repo     repository.RunRepository
	policy   pacing.Policy
	logger   *elog.Component
}

func NewHandler(mgr WorkerManager, launcher Launcher, creds *credential.Store, connect worker.Connector,
	repo repository.RunRepository, policy pacing.Policy) *Handler {
	return &Handler{
		mgr:      mgr,
		launcher: launcher,
		creds:    creds,
		connect:  connect,
		repo:     repo,
		policy:   policy,
		logger:   elog.DefaultLogger.With(elog.String("component", "WebHandler")),
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	wg := r.Group("/workers")
	wg.POST("/bid", h.StartBid)
	wg.POST("/level", h.StartLevel)
	wg.POST("/expand", h.StartExpand)
	wg.POST("/clone", h.StartClone)
	wg.GET("", h.ListWorkers)
	wg.GET("/:id", h.GetWorker)
	wg.DELETE("/:id", h.StopWorker)
	wg.GET("/:id/events", h.StreamEvents)

	r.POST("/plans", h.StartPlan)
	r.POST("/expansion/plan", h.PreviewExpansion)
	r.GET("/credentials", h.GetCredentials)
	r.PUT("/credentials", h.SwapCredentials)
	r.GET("/campaigns", h.ListCampaigns)
	r.GET("/runs", h.ListRuns)
	r.GET("/runs/:id/bid-changes", h.ListBidChanges)
}

func (h *Handler) ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Result{Msg: "OK", Data: data})
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "系统错误"
	switch {
	case errors.Is(err, errs.ErrInvalidParameter):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrWorkerNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrTooManyWorkers),
		errors.Is(err, errs.ErrTargetLocked),
		errors.Is(err, errs.ErrCredentialsInUse):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrNotConfigured):
		status, msg = http.StatusPreconditionFailed, err.Error()
	case errors.Is(err, errs.ErrRemote), errors.Is(err, errs.ErrTransport):
		status, msg = http.StatusBadGateway, err.Error()
	default:
		h.logger.Error("处理请求失败",
			elog.String("path", c.FullPath()),
			elog.FieldErr(err))
	}
	c.AbortWithStatusJSON(status, Result{Code: status, Msg: msg})
}

func (h *Handler) bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, Result{Code: http.StatusBadRequest, Msg: errs.ErrInvalidParameter.Error()})
		return false
	}
	return true
}

func (h *Handler) workerID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, Result{Code: http.StatusBadRequest, Msg: "非法的任务ID"})
		return 0, false
	}
	return id, true
}

func (h *Handler) StartBid(c *gin.Context) {
	var req plan.BidPlan
	if !h.bindJSON(c, &req) {
		return
	}
	info, err := h.launcher.StartBid(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, info)
}

func (h *Handler) StartLevel(c *gin.Context) {
	var req plan.LevelPlan
	if !h.bindJSON(c, &req) {
		return
	}
	info, err := h.launcher.StartLevel(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, info)
}

func (h *Handler) StartExpand(c *gin.Context) {
	var req plan.ExpandPlan
	if !h.bindJSON(c, &req) {
		return
	}
	info, err := h.launcher.StartExpand(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, info)
}

func (h *Handler) StartClone(c *gin.Context) {
	var req plan.ClonePlan
	if !h.bindJSON(c, &req) {
		return
	}
	info, err := h.launcher.StartClone(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, info)
}

// StartPlan 请求体是 YAML 格式的计划文件
func (h *Handler) StartPlan(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		h.fail(c, err)
		return
	}
	f, err := plan.Parse(data)
	if err != nil {
		h.fail(c, err)
		return
	}
	infos, err := h.launcher.StartFile(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, infos)
}

func (h *Handler) ListWorkers(c *gin.Context) {
	h.ok(c, h.mgr.List())
}

func (h *Handler) GetWorker(c *gin.Context) {
	id, ok := h.workerID(c)
	if !ok {
		return
	}
	info, err := h.mgr.Get(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, info)
}

func (h *Handler) StopWorker(c *gin.Context) {
	id, ok := h.workerID(c)
	if !ok {
		return
	}
	if err := h.mgr.Stop(id); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

// StreamEvents 以 SSE 推送任务事件，任务结束后连接关闭
func (h *Handler) StreamEvents(c *gin.Context) {
	id, ok := h.workerID(c)
	if !ok {
		return
	}
	ch, cancel, err := h.mgr.Watch(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	defer cancel()
	ctx := c.Request.Context()
	c.Writer.Header().Set("Cache-Control", "no-cache")
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				return
			}
			c.SSEvent(string(evt.Type()), evt)
			c.Writer.Flush()
		case <-ctx.Done():
			return
		}
	}
}

func (h *Handler) GetCredentials(c *gin.Context) {
	cur := h.creds.Snapshot()
	h.ok(c, CredentialsVO{
		AccessKey:  cur.Masked(),
		CustomerID: cur.CustomerID,
		Configured: cur.Valid(),
		Leases:     h.creds.Active(),
	})
}

func (h *Handler) SwapCredentials(c *gin.Context) {
	var req CredentialsReq
	if !h.bindJSON(c, &req) {
		return
	}
	err := h.creds.Swap(domain.Credentials{
		AccessKey:  req.AccessKey,
		SecretKey:  req.SecretKey,
		CustomerID: req.CustomerID,
	}, req.Force)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, nil)
}

// client 用当前凭证访问广告 API，只用于短时间的查询
func (h *Handler) client() searchad.Client {
	return h.connect(h.creds.Snapshot())
}

func (h *Handler) PreviewExpansion(c *gin.Context) {
	var req ExpansionPlanReq
	if !h.bindJSON(c, &req) {
		return
	}
	if req.CampaignID == "" {
		h.fail(c, errs.ErrInvalidParameter)
		return
	}
	res, err := expansion.PlanCampaign(c.Request.Context(), h.client(), req.CampaignID, req.Mapping, req.Keywords, req.Options)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, res)
}

func (h *Handler) ListCampaigns(c *gin.Context) {
	trees, err := searchad.LoadCampaignTree(c.Request.Context(), h.client(), h.policy)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, slice.Map(trees, func(_ int, src domain.CampaignTree) CampaignVO {
		return CampaignVO{
			ID:   src.Campaign.ID,
			Name: src.Campaign.Name,
			AdGroups: slice.Map(src.AdGroups, func(_ int, g domain.AdGroup) AdGroupVO {
				return AdGroupVO{ID: g.ID, Name: g.Name}
			}),
		}
	}))
}

func (h *Handler) ListRuns(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	runs, err := h.repo.ListRuns(c.Request.Context(), offset, limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, runs)
}

func (h *Handler) ListBidChanges(c *gin.Context) {
	id, ok := h.workerID(c)
	if !ok {
		return
	}
	changes, err := h.repo.FindBidChanges(c.Request.Context(), id, bidChangePageLimit)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, changes)
}
