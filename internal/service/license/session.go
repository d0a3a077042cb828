package license

import (
	"context"
	"sync"
	"time"
)

// refreshBefore 距离过期不足这个时间就重新登录
const refreshBefore = 5 * time.Minute

// Session 保存登录状态，令牌快过期时自动重新登录
type Session struct {
	client   *Client
	username string
	password string

	mu    sync.Mutex
	token Token
	now   func() time.Time
}

func NewSession(client *Client, username, password string) *Session {
	return &Session{
		client:   client,
		username: username,
		password: password,
		now:      time.Now,
	}
}

func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token.AccessToken != "" && (s.token.ExpiresAt.IsZero() || s.now().Add(refreshBefore).Before(s.token.ExpiresAt)) {
		return s.token.AccessToken, nil
	}
	tok, err := s.client.Login(ctx, s.username, s.password)
	if err != nil {
		return "", err
	}
	s.token = tok
	return tok.AccessToken, nil
}

// Profile 使用当前令牌查询用户信息
func (s *Session) Profile(ctx context.Context) (Profile, error) {
	tok, err := s.Token(ctx)
	if err != nil {
		return Profile{}, err
	}
	return s.client.FetchProfile(ctx, tok)
}

// LivenessJob 定时上报在线状态，由 ecron 调度
type LivenessJob struct {
	session *Session
	status  func() string
}

func NewLivenessJob(session *Session, status func() string) *LivenessJob {
	return &LivenessJob{session: session, status: status}
}

// Do 登录失败时返回错误，上报本身的失败会被吞掉
func (j *LivenessJob) Do(ctx context.Context) error {
	tok, err := j.session.Token(ctx)
	if err != nil {
		return err
	}
	j.session.client.SendLiveness(ctx, tok, j.status())
	return nil
}
