package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	webmocks "gitee.com/flycash/searchad-automation/internal/api/web/mocks"
	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/errs"
	"gitee.com/flycash/searchad-automation/internal/pkg/pacing"
	repomocks "gitee.com/flycash/searchad-automation/internal/repository/mocks"
	"gitee.com/flycash/searchad-automation/internal/service/credential"
	"gitee.com/flycash/searchad-automation/internal/service/plan"
	"gitee.com/flycash/searchad-automation/internal/service/searchad"
	searchadmocks "gitee.com/flycash/searchad-automation/internal/service/searchad/mocks"
	"gitee.com/flycash/searchad-automation/internal/service/worker"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mgr      *webmocks.MockWorkerManager
	launcher *webmocks.MockLauncher
	client   *searchadmocks.MockClient
	repo     *repomocks.MockRunRepository
	creds    *credential.Store
	server   *gin.Engine
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.mgr = webmocks.NewMockWorkerManager(s.ctrl)
	s.launcher = webmocks.NewMockLauncher(s.ctrl)
	s.client = searchadmocks.NewMockClient(s.ctrl)
	s.repo = repomocks.NewMockRunRepository(s.ctrl)
	s.creds = credential.NewStore(domain.Credentials{AccessKey: "ak-123456", SecretKey: "sk", CustomerID: "1"})

	h := NewHandler(s.mgr, s.launcher, s.creds, func(domain.Credentials) searchad.Client {
		return s.client
	}, s.repo, pacing.DefaultPolicy().Scaled(0))
	s.server = gin.New()
	h.RegisterRoutes(s.server.Group("/api/v1"))
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path, body string) (*httptest.ResponseRecorder, Result) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	var res Result
	if strings.HasPrefix(recorder.Header().Get("Content-Type"), "application/json") {
		s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &res))
	}
	return recorder, res
}

func (s *HandlerTestSuite) TestStartBid() {
	testCases := []struct {
		name     string
		body     string
		mock     func()
		wantCode int
	}{
		{
			name: "启动成功",
			body: `{"targets":[{"adGroupId":"grp-1","targetRank":3,"bidStep":100,"maxBid":5000,"minBid":70}]}`,
			mock: func() {
				s.launcher.EXPECT().StartBid(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p plan.BidPlan) (worker.Info, error) {
						s.Equal("grp-1", p.Targets[0].AdGroupID)
						s.Equal(3, p.Targets[0].TargetRank)
						return worker.Info{ID: 1, Kind: domain.RunKindBid}, nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "非法的 JSON",
			body:     `{"targets":`,
			mock:     func() {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "参数校验失败",
			body: `{}`,
			mock: func() {
				s.launcher.EXPECT().StartBid(gomock.Any(), gomock.Any()).
					Return(worker.Info{}, errs.ErrInvalidParameter)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "目标被占用",
			body: `{}`,
			mock: func() {
				s.launcher.EXPECT().StartBid(gomock.Any(), gomock.Any()).
					Return(worker.Info{}, errs.ErrTargetLocked)
			},
			wantCode: http.StatusConflict,
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.mock()
			recorder, res := s.do(http.MethodPost, "/api/v1/workers/bid", tc.body)
			s.Equal(tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				s.Equal(tc.wantCode, res.Code)
			}
		})
	}
}

func (s *HandlerTestSuite) TestStartClone() {
	testCases := []struct {
		name     string
		body     string
		mock     func()
		wantCode int
	}{
		{
			name: "启动成功",
			body: `{"source":"grp-1","targets":["grp-2","grp-3"]}`,
			mock: func() {
				s.launcher.EXPECT().StartClone(gomock.Any(), plan.ClonePlan{Source: "grp-1", Targets: []string{"grp-2", "grp-3"}}).
					Return(worker.Info{ID: 7, Kind: domain.RunKindClone}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "复制到自己",
			body: `{"source":"grp-1","targets":["grp-1"]}`,
			mock: func() {
				s.launcher.EXPECT().StartClone(gomock.Any(), gomock.Any()).
					Return(worker.Info{}, errs.ErrInvalidParameter)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "目标被占用",
			body: `{"source":"grp-1","targets":["grp-2"]}`,
			mock: func() {
				s.launcher.EXPECT().StartClone(gomock.Any(), gomock.Any()).
					Return(worker.Info{}, errs.ErrTargetLocked)
			},
			wantCode: http.StatusConflict,
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.mock()
			recorder, res := s.do(http.MethodPost, "/api/v1/workers/clone", tc.body)
			s.Equal(tc.wantCode, recorder.Code)
			if tc.wantCode == http.StatusOK {
				data, ok := res.Data.(map[string]any)
				s.Require().True(ok)
				s.Equal(string(domain.RunKindClone), data["kind"])
			} else {
				s.Equal(tc.wantCode, res.Code)
			}
		})
	}
}

func (s *HandlerTestSuite) TestStartPlan() {
	s.launcher.EXPECT().StartFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f plan.File) ([]worker.Info, error) {
			s.Require().NotNil(f.Level)
			s.Equal(int64(300), f.Level.Bid)
			return []worker.Info{{ID: 9, Kind: domain.RunKindLevel}}, nil
		})
	recorder, _ := s.do(http.MethodPost, "/api/v1/plans", "level:\n  campaignId: cmp-1\n  bid: 300\n")
	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), `"id":"9"`)

	recorder, _ = s.do(http.MethodPost, "/api/v1/plans", "unknown: 1\n")
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestWorkers() {
	s.mgr.EXPECT().List().Return([]worker.Info{{ID: 1, Kind: domain.RunKindBid, State: domain.RunStateRunning}})
	recorder, _ := s.do(http.MethodGet, "/api/v1/workers", "")
	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), `"state":"RUNNING"`)

	s.mgr.EXPECT().Stop(uint64(1)).Return(nil)
	recorder, _ = s.do(http.MethodDelete, "/api/v1/workers/1", "")
	s.Equal(http.StatusOK, recorder.Code)

	s.mgr.EXPECT().Stop(uint64(2)).Return(errs.ErrWorkerNotFound)
	recorder, _ = s.do(http.MethodDelete, "/api/v1/workers/2", "")
	s.Equal(http.StatusNotFound, recorder.Code)

	recorder, _ = s.do(http.MethodDelete, "/api/v1/workers/abc", "")
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestStreamEvents() {
	ch := make(chan worker.Event, 3)
	ch <- worker.Progress{Processed: 1, Total: 2}
	ch <- worker.StateChange{State: domain.RunStateFinished}
	ch <- worker.Result{Success: 2}
	close(ch)
	cancelled := false
	s.mgr.EXPECT().Watch(uint64(5)).Return((<-chan worker.Event)(ch), func() { cancelled = true }, nil)

	recorder, _ := s.do(http.MethodGet, "/api/v1/workers/5/events", "")
	s.Equal(http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	s.Contains(body, "event:progress")
	s.Contains(body, `"processed":1`)
	s.Contains(body, "event:result")
	s.True(cancelled)
}

func (s *HandlerTestSuite) TestCredentials() {
	recorder, _ := s.do(http.MethodGet, "/api/v1/credentials", "")
	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), `"accessKey":"ak-1****"`)
	s.NotContains(recorder.Body.String(), "ak-123456")

	recorder, _ = s.do(http.MethodPut, "/api/v1/credentials", `{"accessKey":"a","secretKey":"b","customerId":"2"}`)
	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("2", s.creds.Snapshot().CustomerID)

	recorder, _ = s.do(http.MethodPut, "/api/v1/credentials", `{"accessKey":"a"}`)
	s.Equal(http.StatusBadRequest, recorder.Code)

	_, release := s.creds.Acquire()
	defer release()
	recorder, _ = s.do(http.MethodPut, "/api/v1/credentials", `{"accessKey":"c","secretKey":"d","customerId":"3"}`)
	s.Equal(http.StatusConflict, recorder.Code)
	recorder, _ = s.do(http.MethodPut, "/api/v1/credentials", `{"accessKey":"c","secretKey":"d","customerId":"3","force":true}`)
	s.Equal(http.StatusOK, recorder.Code)
}

func (s *HandlerTestSuite) TestPreviewExpansion() {
	s.client.EXPECT().ListAdGroups(gomock.Any(), "cmp-1").
		Return([]domain.AdGroup{{ID: "grp-1", Name: "SHOES"}}, nil)
	recorder, res := s.do(http.MethodPost, "/api/v1/expansion/plan",
		`{"campaignId":"cmp-1","mapping":"SHOES(Seoul)\nHATS","keywords":"red","options":{"locationFirst":true}}`)
	s.Require().Equal(http.StatusOK, recorder.Code)
	data, err := json.Marshal(res.Data)
	s.Require().NoError(err)
	s.Contains(string(data), `"Keyword":"Seoulred"`)
	s.Contains(string(data), `"unmatched":["HATS"]`)

	recorder, _ = s.do(http.MethodPost, "/api/v1/expansion/plan", `{"mapping":"x"}`)
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestListCampaigns() {
	s.client.EXPECT().ListCampaigns(gomock.Any()).
		Return([]domain.Campaign{{ID: "cmp-1", Name: "Shoes"}}, nil)
	s.client.EXPECT().ListAdGroups(gomock.Any(), "cmp-1").
		Return([]domain.AdGroup{{ID: "grp-1", Name: "SHOES"}}, nil)

	recorder, _ := s.do(http.MethodGet, "/api/v1/campaigns", "")
	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), `"adGroups":[{"id":"grp-1","name":"SHOES"}]`)

	s.client.EXPECT().ListCampaigns(gomock.Any()).Return(nil, errs.ErrNotConfigured)
	recorder, _ = s.do(http.MethodGet, "/api/v1/campaigns", "")
	s.Equal(http.StatusPreconditionFailed, recorder.Code)
}

func (s *HandlerTestSuite) TestRuns() {
	s.repo.EXPECT().ListRuns(gomock.Any(), 0, defaultPageSize).
		Return([]domain.Run{{ID: 1, Kind: domain.RunKindBid, State: domain.RunStateFinished}}, nil)
	recorder, _ := s.do(http.MethodGet, "/api/v1/runs?limit=1000", "")
	s.Equal(http.StatusOK, recorder.Code)

	s.repo.EXPECT().FindBidChanges(gomock.Any(), uint64(1), bidChangePageLimit).
		Return([]domain.BidChange{{RunID: 1, KeywordID: "kw-1", OldBid: 100, NewBid: 110}}, nil)
	recorder, _ = s.do(http.MethodGet, "/api/v1/runs/1/bid-changes", "")
	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), `"NewBid":110`)
}

func TestResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(Result{Code: 400, Msg: "参数错误"}))
	assert.JSONEq(t, `{"code":400,"msg":"参数错误"}`, buf.String())
}
