package bidding

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/pkg/pacing"
	"gitee.com/flycash/searchad-automation/internal/service/searchad"
	searchadmocks "gitee.com/flycash/searchad-automation/internal/service/searchad/mocks"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"gitee.com/flycash/searchad-automation/internal/service/worker/workertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testPolicy() pacing.Policy {
	return pacing.DefaultPolicy().Scaled(0)
}

func target(id string, row int) domain.BidTarget {
	return domain.BidTarget{AdGroupID: id, Name: "group-" + id, Row: row, Config: defaultCfg}
}

func TestController_SingleCycle(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name        string
		targets     []domain.BidTarget
		policy      func() pacing.Policy
		mock        func(ctrl *gomock.Controller) searchad.Client
		wantResult  worker.Result
		wantChanges []domain.BidChange
	}{
		{
			name:    "只调整可投放且需要变化的关键词",
			targets: []domain.BidTarget{target("grp-1", 0)},
			policy:  testPolicy,
			mock: func(ctrl *gomock.Controller) searchad.Client {
				c := searchadmocks.NewMockClient(ctrl)
				c.EXPECT().ListKeywords(gomock.Any(), "grp-1").Return([]domain.Keyword{
					{ID: "k1", AdGroupID: "grp-1", Text: "SHOES", BidAmount: 1000, Status: domain.KeywordStatusEligible},
					{ID: "k2", AdGroupID: "grp-1", Text: "BAGS", BidAmount: 1000, Status: domain.KeywordStatusPaused},
					{ID: "k3", AdGroupID: "grp-1", Text: "HATS", BidAmount: 3000, Status: domain.KeywordStatusOn},
				}, nil)
				c.EXPECT().GetStats(gomock.Any(), []string{"k1", "k3"}, domain.DateRange{}).Return(map[string]domain.KeywordStat{
					"k1": {ID: "k1", Impressions: 100, AvgRank: 5},
					"k3": {ID: "k3", Impressions: 100, AvgRank: 3},
				}, nil)
				c.EXPECT().UpdateBids(gomock.Any(), []domain.Keyword{
					{ID: "k1", AdGroupID: "grp-1", Text: "SHOES", BidAmount: 1500, Status: domain.KeywordStatusEligible},
				}).Return(nil)
				return c
			},
			wantResult: worker.Result{Success: 1},
			wantChanges: []domain.BidChange{
				{AdGroupID: "grp-1", GroupName: "group-grp-1", KeywordID: "k1", Keyword: "SHOES", OldBid: 1000, NewBid: 1500, Rank: 5, Reason: "increase(5.0)"},
			},
		},
		{
			name:    "单个目标失败不影响其他目标",
			targets: []domain.BidTarget{target("grp-1", 0), target("grp-2", 1), target("grp-3", 2)},
			policy:  testPolicy,
			mock: func(ctrl *gomock.Controller) searchad.Client {
				c := searchadmocks.NewMockClient(ctrl)
				c.EXPECT().ListKeywords(gomock.Any(), "grp-1").Return(nil, errors.New("mock error"))
				c.EXPECT().ListKeywords(gomock.Any(), "grp-2").Return([]domain.Keyword{
					{ID: "k2", AdGroupID: "grp-2", BidAmount: 1000, Status: domain.KeywordStatusOn},
				}, nil)
				c.EXPECT().GetStats(gomock.Any(), []string{"k2"}, gomock.Any()).Return(nil, errors.New("stats error"))
				c.EXPECT().ListKeywords(gomock.Any(), "grp-3").Return([]domain.Keyword{
					{ID: "k3", AdGroupID: "grp-3", BidAmount: 1000, Status: domain.KeywordStatusOn},
				}, nil)
				// 没有统计数据时试探加价
				c.EXPECT().GetStats(gomock.Any(), []string{"k3"}, gomock.Any()).Return(map[string]domain.KeywordStat{}, nil)
				c.EXPECT().UpdateBids(gomock.Any(), gomock.Len(1)).Return(nil)
				return c
			},
			wantResult: worker.Result{Success: 1},
			wantChanges: []domain.BidChange{
				{AdGroupID: "grp-3", GroupName: "group-grp-3", KeywordID: "k3", OldBid: 1000, NewBid: 1500, Reason: "probe"},
			},
		},
		{
			name:    "达到批量上限立即提交",
			targets: []domain.BidTarget{target("grp-1", 0), target("grp-2", 1)},
			policy: func() pacing.Policy {
				p := testPolicy()
				p.WriteChunk = 2
				return p
			},
			mock: func(ctrl *gomock.Controller) searchad.Client {
				c := searchadmocks.NewMockClient(ctrl)
				c.EXPECT().ListKeywords(gomock.Any(), "grp-1").Return([]domain.Keyword{
					{ID: "k1", BidAmount: 1000, Status: domain.KeywordStatusOn},
					{ID: "k2", BidAmount: 1000, Status: domain.KeywordStatusOn},
					{ID: "k3", BidAmount: 1000, Status: domain.KeywordStatusOn},
				}, nil)
				c.EXPECT().GetStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(map[string]domain.KeywordStat{}, nil)
				c.EXPECT().ListKeywords(gomock.Any(), "grp-2").Return(nil, nil)
				gomock.InOrder(
					c.EXPECT().UpdateBids(gomock.Any(), gomock.Len(2)).Return(nil),
					c.EXPECT().UpdateBids(gomock.Any(), gomock.Len(1)).Return(errors.New("write error")),
				)
				return c
			},
			wantResult: worker.Result{Success: 2, Failure: 1},
			wantChanges: []domain.BidChange{
				{KeywordID: "k1", GroupName: "group-grp-1", AdGroupID: "grp-1", OldBid: 1000, NewBid: 1500, Reason: "probe"},
				{KeywordID: "k2", GroupName: "group-grp-1", AdGroupID: "grp-1", OldBid: 1000, NewBid: 1500, Reason: "probe"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
			c := NewController(tc.mock(ctrl), tc.targets, ControllerOptions{}, tc.policy())
			c.now = func() time.Time { return now }

			rec := &workertest.Recorder{}
			res := c.Run(t.Context(), rec)
			assert.Equal(t, tc.wantResult, res)

			changes := workertest.Of[worker.BidChange](rec.Events())
			require.Len(t, changes, len(tc.wantChanges))
			for i, want := range tc.wantChanges {
				want.Time = now
				assert.Equal(t, want, changes[i].BidChange)
			}

			rows := workertest.Of[worker.RowStatus](rec.Events())
			require.Len(t, rows, len(tc.targets)*2)
			for i, tg := range tc.targets {
				assert.Equal(t, worker.RowStatus{Row: tg.Row, Status: worker.RowStateRunning}, rows[i*2])
				assert.Equal(t, worker.RowStatus{Row: tg.Row, Status: worker.RowStateWaiting}, rows[i*2+1])
			}
		})
	}
}

func TestController_LoopUntilStopped(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	calls := 0
	client := searchadmocks.NewMockClient(ctrl)
	client.EXPECT().ListKeywords(gomock.Any(), "grp-1").DoAndReturn(
		func(context.Context, string) ([]domain.Keyword, error) {
			calls++
			if calls == 2 {
				cancel()
			}
			return nil, nil
		}).Times(2)

	c := NewController(client, []domain.BidTarget{target("grp-1", 0)}, ControllerOptions{Loop: true}, testPolicy())
	rec := &workertest.Recorder{}
	res := c.Run(ctx, rec)
	assert.Equal(t, worker.Result{}, res)
	assert.Equal(t, 2, calls)

	states := workertest.Of[worker.StateChange](rec.Events())
	assert.Equal(t, []worker.StateChange{
		{State: domain.RunStateCooling},
		{State: domain.RunStateRunning},
	}, states)
}

func TestController_CoolCountdown(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := testPolicy()
	// 3 分钟的等待，每段 30 秒
	p.CycleSlice = 30 * time.Second
	c := NewController(searchadmocks.NewMockClient(ctrl), nil, ControllerOptions{Interval: 3 * time.Minute}, p)
	rec := &workertest.Recorder{}

	// 用一个已经取消的 ctx 验证等待可以被打断
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	err := c.cool(ctx, rec)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, workertest.Of[worker.StateChange](rec.Events()), 1)
}
