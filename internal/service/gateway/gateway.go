package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/pkg/pacing"
	"gitee.com/flycash/searchad-automation/internal/pkg/ratelimit"
	retryx "gitee.com/flycash/searchad-automation/internal/pkg/retry"
	"github.com/ecodeclub/ekit/retry"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"
)

const (
	HeaderTimestamp = "X-Timestamp"
	HeaderAPIKey    = "X-API-KEY"
	HeaderCustomer  = "X-Customer"
	HeaderSignature = "X-Signature"

	contentType = "application/json; charset=UTF-8"
)

// Gateway 所有对广告 API 的调用都经过这里：签名、限流、重试、错误归一化
type Gateway struct {
	client  *resty.Client
	limiter ratelimit.Limiter
	retry   retryx.Builder
	policy  pacing.Policy
	logger  *elog.Component
}

// NewGateway limiter 和 retry 都可以为 nil，表示不限流、不重试
func NewGateway(client *resty.Client, limiter ratelimit.Limiter, retry retryx.Builder, policy pacing.Policy) *Gateway {
	return &Gateway{
		client:  client,
		limiter: limiter,
		retry:   retry,
		policy:  policy,
		logger:  elog.DefaultLogger.With(elog.String("component", "SignedRequestGateway")),
	}
}

// Session 绑定一份凭证快照，任务运行期间凭证不会变化
func (g *Gateway) Session(creds domain.Credentials) Caller {
	return &session{
		g:      g,
		creds:  creds,
		logger: g.logger.With(elog.String("customer", creds.CustomerID), elog.String("accessKey", creds.Masked())),
	}
}

type session struct {
	g      *Gateway
	creds  domain.Credentials
	logger *elog.Component
}

func (s *session) Call(ctx context.Context, req Request) Result {
	if !s.creds.Valid() {
		s.logger.Warn("广告 API 凭证未配置", elog.String("method", req.Method), elog.String("path", req.Path))
		return Result{Err: &APIError{Kind: KindNotConfigured, Data: "credentials not configured"}}
	}

	var strategy retry.Strategy
	for {
		if err := s.waitQuota(ctx); err != nil {
			return Result{Err: &APIError{Kind: KindTransport, Code: CodeTransport, Data: err.Error()}}
		}
		res := s.do(ctx, req)
		if res.Err == nil || !res.Err.Retryable() || s.g.retry == nil {
			return res
		}
		if strategy == nil {
			var err error
			strategy, err = s.g.retry()
			if err != nil {
				s.logger.Error("创建重试策略失败", elog.FieldErr(err))
				return res
			}
		}
		next, ok := strategy.Next()
		if !ok {
			return res
		}
		s.logger.Warn("调用广告 API 失败，稍后重试",
			elog.String("method", req.Method),
			elog.String("path", req.Path),
			elog.Int("code", res.Err.Code),
			elog.Any("after", next))
		if err := pacing.Sleep(ctx, next); err != nil {
			return res
		}
	}
}

// waitQuota 共享配额用完时等待，限流器本身出错时放行
func (s *session) waitQuota(ctx context.Context) error {
	if s.g.limiter == nil {
		return nil
	}
	for {
		limited, err := s.g.limiter.Limit(ctx, s.creds.CustomerID)
		if err != nil {
			s.logger.Warn("限流器异常，直接放行", elog.FieldErr(err))
			return nil
		}
		if !limited {
			return nil
		}
		if err = pacing.Sleep(ctx, s.g.policy.LimitedWait); err != nil {
			return err
		}
	}
}

func (s *session) do(ctx context.Context, req Request) Result {
	ts := time.Now().UnixMilli()
	r := s.g.client.R().
		// 已经发出的请求要让它完成，取消只在等待的时候生效
		SetContext(context.WithoutCancel(ctx)).
		SetHeader("Content-Type", contentType).
		SetHeader(HeaderTimestamp, strconv.FormatInt(ts, 10)).
		SetHeader(HeaderAPIKey, s.creds.AccessKey).
		SetHeader(HeaderCustomer, s.creds.CustomerID).
		SetHeader(HeaderSignature, Sign(s.creds.SecretKey, ts, req.Method, req.Path))
	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query)
	}
	if req.Body != nil {
		body, err := json.Marshal(req.Body)
		if err != nil {
			s.logger.Error("请求体序列化失败", elog.String("path", req.Path), elog.FieldErr(err))
			return Result{Err: &APIError{Kind: KindTransport, Code: CodeTransport, Data: err.Error()}}
		}
		r.SetBody(body)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		s.logger.Error("调用广告 API 网络异常",
			elog.String("method", req.Method),
			elog.String("path", req.Path),
			elog.FieldErr(err))
		return Result{Err: &APIError{Kind: KindTransport, Code: CodeTransport, Data: err.Error()}}
	}

	if resp.StatusCode() == http.StatusOK {
		return Result{StatusCode: resp.StatusCode(), Body: json.RawMessage(resp.Body())}
	}

	apiErr := parseRemoteError(resp.StatusCode(), resp.Body())
	s.logger.Error("广告 API 返回错误",
		elog.String("method", req.Method),
		elog.String("path", req.Path),
		elog.Int("status", resp.StatusCode()),
		elog.Int("code", apiErr.Code),
		elog.String("message", apiErr.Message()))
	return Result{StatusCode: resp.StatusCode(), Err: apiErr}
}

// parseRemoteError 响应体是 JSON 对象时优先用其中的 code，否则用 HTTP 状态码
func parseRemoteError(status int, body []byte) *APIError {
	apiErr := &APIError{Kind: KindRemote, Status: status, Code: status}
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		var anyJSON any
		if json.Unmarshal(body, &anyJSON) == nil && anyJSON != nil {
			apiErr.Data = anyJSON
		} else {
			apiErr.Data = string(body)
		}
		return apiErr
	}
	apiErr.Data = obj
	if code, ok := codeOf(obj["code"]); ok {
		apiErr.Code = code
	}
	return apiErr
}

func codeOf(v any) (int, bool) {
	switch c := v.(type) {
	case float64:
		return int(c), true
	case string:
		n, err := strconv.Atoi(c)
		return n, err == nil
	default:
		return 0, false
	}
}

// AsAPIError 从 error 里取出 APIError
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
