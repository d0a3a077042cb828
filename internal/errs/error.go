package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter = errors.New("参数错误")

	// 广告 API 调用
	ErrNotConfigured         = errors.New("广告 API 凭证未配置")
	ErrTransport             = errors.New("广告 API 网络异常")
	ErrRemote                = errors.New("广告 API 返回错误")
	ErrValidationEmptyResult = errors.New("批量写入返回空结果，未通过校验")
	ErrExpansionExhausted    = errors.New("无法建立后继广告组")

	// 任务管理
	ErrWorkerNotFound   = errors.New("任务不存在")
	ErrTooManyWorkers   = errors.New("运行中的任务过多")
	ErrTargetLocked     = errors.New("目标广告组已被其他任务占用")
	ErrCredentialsInUse = errors.New("存在运行中的任务，禁止切换凭证")

	// 控制接口
	ErrRateLimited = errors.New("请求过于频繁")

	// 授权服务
	ErrUnauthorized  = errors.New("授权服务认证失败")
	ErrLicenseServer = errors.New("授权服务异常")
)
