package license

import (
	"context"
	"net/http"
	"time"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/errs"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/gotomicro/ego/core/elog"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

const (
	livenessTimeout = 2 * time.Second
	profileTTL      = time.Minute
)

// Token 授权服务签发的令牌
type Token struct {
	AccessToken string
	// ExpiresAt 从 JWT 的 exp 中读取，读不到时为零值
	ExpiresAt time.Time
}

// Profile 授权服务上保存的用户信息
type Profile struct {
	Credentials domain.Credentials
	Privileged  bool
}

// Client 授权服务客户端，只负责登录、拉取用户信息和上报在线状态
type Client struct {
	client *resty.Client
	cache  *cache.Cache
	logger *elog.Component
}

func NewClient(client *resty.Client) *Client {
	return &Client{
		client: client,
		cache:  cache.New(profileTTL, 5*time.Minute),
		logger: elog.DefaultLogger.With(elog.String("component", "LicenseClient")),
	}
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type profileResp struct {
	AccessKey   string `json:"naver_access_key"`
	SecretKey   string `json:"naver_secret_key"`
	CustomerID  string `json:"naver_customer_id"`
	IsSuperuser bool   `json:"is_superuser"`
}

func (c *Client) Login(ctx context.Context, username, password string) (Token, error) {
	var res tokenResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"username": username, "password": password}).
		SetResult(&res).
		Post("/auth/token")
	if err != nil {
		return Token{}, errors.Wrap(errs.ErrLicenseServer, err.Error())
	}
	switch {
	case resp.StatusCode() == http.StatusUnauthorized, resp.StatusCode() == http.StatusForbidden:
		return Token{}, errors.Wrapf(errs.ErrUnauthorized, "用户 %s 登录失败", username)
	case resp.StatusCode() != http.StatusOK:
		return Token{}, errors.Wrapf(errs.ErrLicenseServer, "登录返回 %d", resp.StatusCode())
	case res.AccessToken == "":
		return Token{}, errors.Wrap(errs.ErrLicenseServer, "登录没有返回令牌")
	}
	c.logger.Info("登录授权服务成功", elog.String("user", username))
	return Token{AccessToken: res.AccessToken, ExpiresAt: expiresAt(res.AccessToken)}, nil
}

// expiresAt 只读取过期时间，签名由授权服务自己校验
func expiresAt(token string) time.Time {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// FetchProfile 同一个令牌一分钟内只查询一次
func (c *Client) FetchProfile(ctx context.Context, token string) (Profile, error) {
	if v, ok := c.cache.Get(token); ok {
		return v.(Profile), nil
	}
	var res profileResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&res).
		Get("/users/me")
	if err != nil {
		return Profile{}, errors.Wrap(errs.ErrLicenseServer, err.Error())
	}
	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return Profile{}, errors.Wrap(errs.ErrUnauthorized, "令牌无效或者已过期")
	default:
		return Profile{}, errors.Wrapf(errs.ErrLicenseServer, "查询用户信息返回 %d", resp.StatusCode())
	}
	p := Profile{
		Credentials: domain.Credentials{
			AccessKey:  res.AccessKey,
			SecretKey:  res.SecretKey,
			CustomerID: res.CustomerID,
		},
		Privileged: res.IsSuperuser,
	}
	c.cache.Set(token, p, cache.DefaultExpiration)
	return p, nil
}

// SendLiveness 上报在线状态，失败只记录日志
func (c *Client) SendLiveness(ctx context.Context, token, status string) {
	ctx, cancel := context.WithTimeout(ctx, livenessTimeout)
	defer cancel()
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(map[string]string{"status": status}).
		Post("/api/monitor/heartbeat")
	if err != nil {
		c.logger.Debug("上报在线状态失败", elog.FieldErr(err))
		return
	}
	if resp.StatusCode() != http.StatusOK {
		c.logger.Debug("上报在线状态失败", elog.Int("status", resp.StatusCode()))
	}
}
