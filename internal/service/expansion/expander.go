package expansion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/errs"
	"gitee.com/flycash/searchad-automation/internal/pkg/pacing"
	"gitee.com/flycash/searchad-automation/internal/service/asset"
	"gitee.com/flycash/searchad-automation/internal/service/gateway"
	"gitee.com/flycash/searchad-automation/internal/service/searchad"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var _ worker.Job = (*Expander)(nil)

// AssetCloner 新建后继广告组之后复制素材
type AssetCloner interface {
	Clone(ctx context.Context, srcAdGroupID, dstAdGroupID string) (asset.Report, error)
}

// Expander 瀑布式关键词注册：当前广告组满了就转到下一个后继广告组，找不到就新建
type Expander struct {
	client searchad.Client
	cloner AssetCloner
	tasks  []domain.RegistrationTask
	policy pacing.Policy
	logger *elog.Component
}

func NewExpander(client searchad.Client, cloner AssetCloner, tasks []domain.RegistrationTask, policy pacing.Policy) *Expander {
	return &Expander{
		client: client,
		cloner: cloner,
		tasks:  tasks,
		policy: policy,
		logger: elog.DefaultLogger.With(elog.String("component", "WaterfallExpander")),
	}
}

func (e *Expander) Kind() domain.RunKind {
	return domain.RunKindExpand
}

type originBatch struct {
	originID string
	tasks    []domain.RegistrationTask
}

// groupByOrigin 按初始广告组分组，保持首次出现的顺序
func groupByOrigin(tasks []domain.RegistrationTask) []originBatch {
	idx := make(map[string]int)
	var batches []originBatch
	for _, task := range tasks {
		i, ok := idx[task.OriginAdGroupID]
		if !ok {
			i = len(batches)
			idx[task.OriginAdGroupID] = i
			batches = append(batches, originBatch{originID: task.OriginAdGroupID})
		}
		batches[i].tasks = append(batches[i].tasks, task)
	}
	return batches
}

func (e *Expander) Run(ctx context.Context, sink worker.Sink) worker.Result {
	var res worker.Result
	processed := 0
	for _, batch := range groupByOrigin(e.tasks) {
		if ctx.Err() != nil {
			break
		}
		s := &originState{sink: sink, queue: batch.tasks}
		e.expandOrigin(ctx, batch.originID, s)
		res.Success += s.success
		res.Failure += s.failure
		processed += len(batch.tasks)
		sink.Emit(worker.Progress{Processed: processed, Total: len(e.tasks)})
	}
	return res
}

// originState 一个初始广告组的处理状态
type originState struct {
	sink     worker.Sink
	origin   domain.AdGroup
	current  domain.AdGroup
	baseName string
	next     int
	queue    []domain.RegistrationTask
	success  int
	failure  int
}

func (s *originState) logAll(tasks []domain.RegistrationTask, tag domain.TaskStatus, msg string) {
	for _, t := range tasks {
		s.sink.Emit(worker.Log{Row: t.Row, Tag: tag, Message: msg})
	}
}

func (s *originState) fail(tasks []domain.RegistrationTask, msg string) {
	s.failure += len(tasks)
	s.logAll(tasks, domain.TaskStatusFailed, msg)
}

func (e *Expander) expandOrigin(ctx context.Context, originID string, s *originState) {
	logger := e.logger.With(elog.String("origin", originID))
	origin, err := e.client.GetAdGroup(ctx, originID)
	if err != nil {
		logger.Error("查询初始广告组失败", elog.FieldErr(err))
		s.fail(s.queue, "无法获取广告组信息")
		return
	}
	s.origin, s.current = origin, origin
	s.baseName = origin.BaseName()
	s.next = origin.NextSuccessorIndex()
	s.queue = e.dedupQueue(s)

	for round := 0; round < e.policy.ExpandOuterLimit; round++ {
		if ctx.Err() != nil {
			return
		}

		// 容量检查，每次都重新查询，不相信缓存的数量
		if err = pacing.Sleep(ctx, e.policy.CapacityPause); err != nil {
			return
		}
		existing, er := e.client.ListKeywords(ctx, s.current.ID)
		if er != nil {
			logger.Warn("查询关键词数量失败，稍后重试", elog.String("adGroupId", s.current.ID), elog.FieldErr(er))
			s.logAll(s.queue, domain.TaskStatusWaiting, "查询关键词数量失败，重试中")
			if err = pacing.Sleep(ctx, e.policy.ReadRetryPause); err != nil {
				return
			}
			continue
		}
		s.queue = e.dropExisting(s, existing)
		if len(s.queue) == 0 {
			return
		}

		capacity := e.policy.KeywordCapacity - len(existing)
		if capacity > 0 {
			if err = e.register(ctx, s, min(capacity, len(s.queue))); err != nil {
				return
			}
			if len(s.queue) == 0 {
				return
			}
		}

		if !e.advance(ctx, s) {
			if ctx.Err() != nil {
				return
			}
			logger.Error("无法建立后继广告组", elog.String("baseName", s.baseName), elog.Int("next", s.next))
			s.fail(s.queue, fmt.Errorf("%w: %s", errs.ErrExpansionExhausted, s.baseName).Error())
			s.queue = nil
			return
		}
	}

	if len(s.queue) > 0 {
		logger.Error("超过循环上限", elog.Int("limit", e.policy.ExpandOuterLimit))
		s.failure += len(s.queue)
		s.logAll(s.queue, domain.TaskStatusAborted, fmt.Sprintf("超过循环上限（%d 次）", e.policy.ExpandOuterLimit))
		s.queue = nil
	}
}

// dedupQueue 同一个初始广告组内重复提交的关键词只保留第一个
func (e *Expander) dedupQueue(s *originState) []domain.RegistrationTask {
	seen := make(map[string]struct{}, len(s.queue))
	res := make([]domain.RegistrationTask, 0, len(s.queue))
	for _, t := range s.queue {
		key := domain.NormalizeKeyword(t.Keyword)
		if _, ok := seen[key]; ok {
			s.sink.Emit(worker.Log{Row: t.Row, Tag: domain.TaskStatusSkipped, Message: "重复的关键词"})
			continue
		}
		seen[key] = struct{}{}
		res = append(res, t)
	}
	return res
}

// dropExisting 当前广告组里已经存在的关键词直接跳过，不算失败
func (e *Expander) dropExisting(s *originState, existing []domain.Keyword) []domain.RegistrationTask {
	exists := make(map[string]struct{}, len(existing))
	for _, kw := range existing {
		exists[domain.NormalizeKeyword(kw.Text)] = struct{}{}
	}
	return slice.FilterDelete(s.queue, func(_ int, t domain.RegistrationTask) bool {
		if _, ok := exists[domain.NormalizeKeyword(t.Keyword)]; ok {
			s.sink.Emit(worker.Log{Row: t.Row, Tag: domain.TaskStatusSkipped, Message: s.current.Name + " 中已存在"})
			return true
		}
		return false
	})
}

// register 提交队列前 n 个关键词，无论结果如何这 n 个都会出队
func (e *Expander) register(ctx context.Context, s *originState, n int) error {
	chunk := s.queue[:n]
	if err := pacing.Sleep(ctx, e.policy.RegisterPause); err != nil {
		return err
	}
	texts := slice.Map(chunk, func(_ int, t domain.RegistrationTask) string {
		return t.Keyword
	})
	created, err := e.client.CreateKeywords(ctx, s.current.ID, texts)
	s.queue = s.queue[n:]

	switch {
	case len(created) > 0:
		// 部分成功时按关键词文本对账，没有对上的视为被静默拒绝
		ok := make(map[string]struct{}, len(created))
		for _, kw := range created {
			ok[domain.NormalizeKeyword(kw.Text)] = struct{}{}
		}
		var rejected []domain.RegistrationTask
		for _, t := range chunk {
			if _, hit := ok[domain.NormalizeKeyword(t.Keyword)]; hit {
				s.success++
				s.sink.Emit(worker.Log{Row: t.Row, Tag: domain.TaskStatusSucceeded, Message: "已注册到 " + s.current.Name})
				continue
			}
			rejected = append(rejected, t)
		}
		if len(rejected) > 0 {
			msg := errs.ErrValidationEmptyResult.Error()
			if err != nil {
				msg = describe(err)
			}
			s.fail(rejected, msg)
		}
	case err != nil:
		e.logger.Error("注册关键词失败", elog.String("adGroupId", s.current.ID), elog.Int("count", n), elog.FieldErr(err))
		s.fail(chunk, describe(err))
	default:
		e.logger.Error("注册关键词返回空结果", elog.String("adGroupId", s.current.ID), elog.Int("count", n))
		s.fail(chunk, errs.ErrValidationEmptyResult.Error())
	}
	return nil
}

// advance 找到或者新建下一个后继广告组
func (e *Expander) advance(ctx context.Context, s *originState) bool {
	for attempt := 0; attempt < e.policy.ExpandInnerLimit; attempt++ {
		if ctx.Err() != nil {
			return false
		}
		name := domain.SuccessorName(s.baseName, s.next)
		s.logAll(s.queue, domain.TaskStatusMoving, "查找 "+name)

		if pacing.Sleep(ctx, e.policy.SearchPause) != nil {
			return false
		}
		groups, err := e.client.ListAdGroups(ctx, s.origin.CampaignID)
		if err != nil {
			// 查询失败不能断定不存在，否则会在名称冲突上空转
			if pacing.Sleep(ctx, e.policy.ReadRetryPause) != nil {
				return false
			}
			continue
		}
		if found, ok := slice.Find(groups, func(g domain.AdGroup) bool {
			return strings.TrimSpace(g.Name) == name
		}); ok {
			s.current = found
			s.next++
			s.logAll(s.queue, domain.TaskStatusSwitched, "切换到已有广告组 "+found.Name)
			return true
		}

		if pacing.Sleep(ctx, e.policy.CreateGroupPause) != nil {
			return false
		}
		created, err := e.client.CreateAdGroup(ctx, domain.AdGroup{
			Name:            name,
			CampaignID:      s.origin.CampaignID,
			PCChannelID:     s.origin.PCChannelID,
			MobileChannelID: s.origin.MobileChannelID,
			Type:            s.origin.Type,
		})
		if err == nil {
			s.current = created
			s.next++
			s.logAll(s.queue, domain.TaskStatusCreated, "新建广告组 "+created.Name)
			e.cloneAssets(ctx, s.origin.ID, created.ID)
			return true
		}

		switch code(err) {
		case searchad.CodeNameDuplicated:
			// 可能是别的任务刚刚建好，重新查找同一个名字
			s.logAll(s.queue, domain.TaskStatusRetrying, "名称已存在，重新查找")
			if pacing.Sleep(ctx, e.policy.NameCollisionPause) != nil {
				return false
			}
		case gateway.CodeRateLimit:
			s.logAll(s.queue, domain.TaskStatusWaiting, "触发限流，稍后重试")
			if pacing.Sleep(ctx, e.policy.RateLimitPause) != nil {
				return false
			}
		default:
			s.logAll(s.queue, domain.TaskStatusExpandError, "创建失败 "+describe(err))
			s.next++
		}
	}
	return false
}

func (e *Expander) cloneAssets(ctx context.Context, src, dst string) {
	if e.cloner == nil {
		return
	}
	report, err := e.cloner.Clone(ctx, src, dst)
	if err != nil {
		e.logger.Warn("复制素材失败", elog.String("src", src), elog.String("dst", dst),
			elog.Any("report", report), elog.FieldErr(err))
	}
}

func code(err error) int {
	if apiErr, ok := gateway.AsAPIError(err); ok {
		return apiErr.Code
	}
	return 0
}

func describe(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Err %d: %s", apiErr.Code, apiErr.Message())
	}
	return err.Error()
}
