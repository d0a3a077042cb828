package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/errs"
	"gitee.com/flycash/searchad-automation/internal/pkg/pacing"
	limitmocks "gitee.com/flycash/searchad-automation/internal/pkg/ratelimit/mocks"
	retryx "gitee.com/flycash/searchad-automation/internal/pkg/retry"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCreds = domain.Credentials{AccessKey: "access-key", SecretKey: "secret", CustomerID: "1234"}

func newTestGateway(t *testing.T, url string, builder retryx.Builder) *Gateway {
	t.Helper()
	return NewGateway(resty.New().SetBaseURL(url), nil, builder, pacing.DefaultPolicy().Scaled(0))
}

func fastRetry(t *testing.T) retryx.Builder {
	t.Helper()
	builder, err := retryx.NewBuilder(retryx.Config{
		Type:          "fixed",
		FixedInterval: &retryx.FixedIntervalConfig{MaxRetries: 2, Interval: 1},
	})
	require.NoError(t, err)
	return builder
}

func TestGateway_SignedRequest(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ncc/keywords", r.URL.Path)
		assert.Equal(t, "grp-1", r.URL.Query().Get("nccAdgroupId"))
		assert.Equal(t, "access-key", r.Header.Get(HeaderAPIKey))
		assert.Equal(t, "1234", r.Header.Get(HeaderCustomer))
		assert.Equal(t, "application/json; charset=UTF-8", r.Header.Get("Content-Type"))

		ts, err := strconv.ParseInt(r.Header.Get(HeaderTimestamp), 10, 64)
		require.NoError(t, err)
		assert.Equal(t, Sign("secret", ts, http.MethodPost, "/ncc/keywords"), r.Header.Get(HeaderSignature))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `[{"keyword":"SHOES"}]`, string(body))
		_, _ = w.Write([]byte(`[{"nccKeywordId":"nkw-1","keyword":"SHOES"}]`))
	}))
	defer server.Close()

	g := newTestGateway(t, server.URL, nil)
	res := g.Session(testCreds).Call(t.Context(), Request{
		Method: http.MethodPost,
		Path:   "/ncc/keywords",
		Query:  map[string]string{"nccAdgroupId": "grp-1"},
		Body:   []map[string]string{{"keyword": "SHOES"}},
	})
	require.False(t, res.IsError())
	assert.NoError(t, res.Error())
	assert.JSONEq(t, `[{"nccKeywordId":"nkw-1","keyword":"SHOES"}]`, string(res.Body))

	var decoded []map[string]string
	require.NoError(t, res.Decode(&decoded))
	assert.Equal(t, "nkw-1", decoded[0]["nccKeywordId"])
}

func TestSign(t *testing.T) {
	t.Parallel()
	// 查询参数不参与签名
	assert.Equal(t, Sign("s", 1700000000000, "get", "/ncc/adgroups"), Sign("s", 1700000000000, "GET", "/ncc/adgroups?nccCampaignId=1"))
	assert.NotEqual(t, Sign("s", 1700000000000, "GET", "/ncc/adgroups"), Sign("s", 1700000000001, "GET", "/ncc/adgroups"))
}

func TestGateway_Errors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		status     int
		body       string
		wantCode   int
		wantStatus int
		assertData func(t *testing.T, data any)
	}{
		{
			name:       "403带错误码",
			status:     http.StatusForbidden,
			body:       `{"code":1010,"message":"bad key"}`,
			wantCode:   1010,
			wantStatus: http.StatusForbidden,
			assertData: func(t *testing.T, data any) {
				m, ok := data.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "bad key", m["message"])
			},
		},
		{
			name:       "响应体不是JSON",
			status:     http.StatusInternalServerError,
			body:       "upstream exploded",
			wantCode:   http.StatusInternalServerError,
			wantStatus: http.StatusInternalServerError,
			assertData: func(t *testing.T, data any) {
				assert.Equal(t, "upstream exploded", data)
			},
		},
		{
			name:       "JSON对象但没有code",
			status:     http.StatusBadRequest,
			body:       `{"title":"invalid"}`,
			wantCode:   http.StatusBadRequest,
			wantStatus: http.StatusBadRequest,
			assertData: func(t *testing.T, data any) {
				m, ok := data.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "invalid", m["title"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var hits atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				hits.Add(1)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			// 有重试配置也不应该重试普通的业务错误
			g := newTestGateway(t, server.URL, fastRetry(t))
			res := g.Session(testCreds).Call(t.Context(), Request{Method: http.MethodGet, Path: "/ncc/campaigns"})
			require.True(t, res.IsError())
			assert.Equal(t, KindRemote, res.Err.Kind)
			assert.Equal(t, tc.wantCode, res.Err.Code)
			assert.Equal(t, tc.wantStatus, res.Err.Status)
			tc.assertData(t, res.Err.Data)
			assert.ErrorIs(t, res.Error(), errs.ErrRemote)
			assert.False(t, errors.Is(res.Error(), errs.ErrTransport))
			assert.Equal(t, int32(1), hits.Load())
		})
	}
}

func TestGateway_NotConfigured(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	g := newTestGateway(t, server.URL, nil)
	res := g.Session(domain.Credentials{AccessKey: "a"}).Call(t.Context(), Request{Method: http.MethodGet, Path: "/ncc/campaigns"})
	require.True(t, res.IsError())
	assert.Equal(t, KindNotConfigured, res.Err.Kind)
	assert.ErrorIs(t, res.Error(), errs.ErrNotConfigured)
	assert.Equal(t, int32(0), hits.Load())
}

func TestGateway_Transport(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	g := newTestGateway(t, url, fastRetry(t))
	res := g.Session(testCreds).Call(t.Context(), Request{Method: http.MethodGet, Path: "/ncc/campaigns"})
	require.True(t, res.IsError())
	assert.Equal(t, KindTransport, res.Err.Kind)
	assert.Equal(t, CodeTransport, res.Err.Code)
	assert.ErrorIs(t, res.Error(), errs.ErrTransport)
	assert.NotEmpty(t, res.Err.Message())
}

func TestGateway_RetryOnRateLimit(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	var timestamps []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timestamps = append(timestamps, r.Header.Get(HeaderTimestamp))
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]any{"code": CodeRateLimit, "message": "too many requests"})
			return
		}
		_, _ = w.Write([]byte(`{"nccAdgroupId":"grp-1"}`))
	}))
	defer server.Close()

	g := newTestGateway(t, server.URL, fastRetry(t))
	res := g.Session(testCreds).Call(t.Context(), Request{Method: http.MethodGet, Path: "/ncc/adgroups/grp-1"})
	require.False(t, res.IsError())
	assert.Equal(t, int32(2), hits.Load())
	assert.Len(t, timestamps, 2)
}

func TestGateway_RetryExhausted(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"code":1014}`))
	}))
	defer server.Close()

	g := newTestGateway(t, server.URL, fastRetry(t))
	res := g.Session(testCreds).Call(t.Context(), Request{Method: http.MethodGet, Path: "/ncc/campaigns"})
	require.True(t, res.IsError())
	assert.Equal(t, CodeRateLimit, res.Err.Code)
	// 首次调用加上两次重试
	assert.Equal(t, int32(3), hits.Load())
}

func TestGateway_WaitsForLimiter(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limiter := limitmocks.NewMockLimiter(ctrl)
	gomock.InOrder(
		limiter.EXPECT().Limit(gomock.Any(), "1234").Return(true, nil),
		limiter.EXPECT().Limit(gomock.Any(), "1234").Return(false, errors.New("redis down")),
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	g := NewGateway(resty.New().SetBaseURL(server.URL), limiter, nil, pacing.DefaultPolicy().Scaled(0))
	res := g.Session(testCreds).Call(t.Context(), Request{Method: http.MethodGet, Path: "/ncc/campaigns"})
	assert.False(t, res.IsError())
}

func TestGateway_CancelledWhileLimited(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limiter := limitmocks.NewMockLimiter(ctrl)
	limiter.EXPECT().Limit(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()

	g := NewGateway(resty.New().SetBaseURL("http://127.0.0.1:1"), limiter, nil, pacing.DefaultPolicy())
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	res := g.Session(testCreds).Call(ctx, Request{Method: http.MethodGet, Path: "/ncc/campaigns"})
	require.True(t, res.IsError())
	assert.Equal(t, KindTransport, res.Err.Kind)
}

func TestPathTemplate(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/ncc/adgroups/:id", PathTemplate("/ncc/adgroups/grp-a001-01-000000012345"))
	assert.Equal(t, "/ncc/campaigns", PathTemplate("/ncc/campaigns?x=1"))
}
