package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"gitee.com/flycash/searchad-automation/internal/errs"
)

const (
	// CodeTransport 网络层失败时使用的错误码，上游不会返回这个值
	CodeTransport = 999
	// CodeRateLimit 上游限流
	CodeRateLimit = 1014
)

// Caller 绑定了一份凭证的广告 API 调用方
//
//go:generate mockgen -source=./types.go -destination=./mocks/caller.mock.go -package=gatewaymocks -typed Caller
type Caller interface {
	// Call 不返回 error，也不会 panic，所有失败都放在 Result.Err 里
	Call(ctx context.Context, req Request) Result
}

type Request struct {
	Method string
	// Path 不带查询参数，签名只用到这个部分
	Path  string
	Query map[string]string
	Body  any
}

type Result struct {
	StatusCode int
	// Body 200 时原样返回上游的响应体，可能是列表也可能是对象
	Body json.RawMessage
	Err  *APIError
}

func (r Result) IsError() bool {
	return r.Err != nil
}

// Error 避免把 nil 的 *APIError 转成非 nil 的 error
func (r Result) Error() error {
	if r.Err == nil {
		return nil
	}
	return r.Err
}

// Code 成功时返回 0
func (r Result) Code() int {
	if r.Err == nil {
		return 0
	}
	return r.Err.Code
}

func (r Result) Decode(v any) error {
	if r.Err != nil {
		return r.Err
	}
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: 解析响应失败 %w", errs.ErrRemote, err)
	}
	return nil
}

type Kind uint8

const (
	KindNotConfigured Kind = iota + 1
	KindTransport
	KindRemote
)

func (k Kind) String() string {
	switch k {
	case KindNotConfigured:
		return "not_configured"
	case KindTransport:
		return "transport"
	case KindRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// APIError 调用失败的统一描述
type APIError struct {
	Kind Kind
	// Status HTTP 状态码，网络失败时为 0
	Status int
	// Code 上游响应体里的 code，没有的时候用 HTTP 状态码
	Code int
	// Data 上游响应体解析后的 JSON，解析不了就是原始文本
	Data any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("searchad api %s error, code: %d, message: %s", e.Kind, e.Code, e.Message())
}

// Is 让调用方可以直接用 errors.Is 判断错误类别
func (e *APIError) Is(target error) bool {
	switch e.Kind {
	case KindNotConfigured:
		return target == errs.ErrNotConfigured
	case KindTransport:
		return target == errs.ErrTransport
	case KindRemote:
		return target == errs.ErrRemote
	default:
		return false
	}
}

// Message 尽量从响应体里取出可读的错误信息
func (e *APIError) Message() string {
	switch v := e.Data.(type) {
	case map[string]any:
		for _, key := range []string{"message", "title", "detail"} {
			if msg, ok := v[key].(string); ok && msg != "" {
				return msg
			}
		}
		raw, _ := json.Marshal(v)
		return string(raw)
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Retryable 只有网络失败和上游限流才值得在网关层重试
func (e *APIError) Retryable() bool {
	return e.Kind == KindTransport || (e.Kind == KindRemote && e.Code == CodeRateLimit)
}
