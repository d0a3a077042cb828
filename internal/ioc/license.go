package ioc

import (
	"context"
	"time"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/service/credential"
	"gitee.com/flycash/searchad-automation/internal/service/license"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

// InitLicenseSession 没有配置授权服务时返回 nil，凭证只能来自本地配置或者界面
func InitLicenseSession() *license.Session {
	type Config struct {
		Addr     string        `yaml:"addr"`
		Timeout  time.Duration `yaml:"timeout"`
		Username string        `yaml:"username"`
		Password string        `yaml:"password"`
	}
	cfg := Config{Timeout: 10 * time.Second}
	if err := econf.UnmarshalKey("license", &cfg); err != nil {
		panic(err)
	}
	if cfg.Addr == "" {
		return nil
	}
	client := resty.New().
		SetBaseURL(cfg.Addr).
		SetTimeout(cfg.Timeout)
	return license.NewSession(license.NewClient(client), cfg.Username, cfg.Password)
}

// InitCredentialStore 优先使用授权服务下发的凭证
func InitCredentialStore(session *license.Session) *credential.Store {
	type Config struct {
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		CustomerID string `yaml:"customerId"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("searchad.credentials", &cfg); err != nil {
		panic(err)
	}
	creds := domain.Credentials{AccessKey: cfg.AccessKey, SecretKey: cfg.SecretKey, CustomerID: cfg.CustomerID}
	if session == nil {
		return credential.NewStore(creds)
	}

	const timeout = 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	profile, err := session.Profile(ctx)
	if err != nil {
		// 授权服务不可用时仍然可以启动，之后在界面里配置凭证
		elog.Error("从授权服务获取凭证失败", elog.FieldErr(err))
		return credential.NewStore(creds)
	}
	if profile.Credentials.Valid() {
		creds = profile.Credentials
	}
	return credential.NewStore(creds)
}
