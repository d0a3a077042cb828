package credential

import (
	"fmt"
	"sync"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/errs"
	"github.com/gotomicro/ego/core/elog"
)

// Store 进程内当前使用的广告 API 凭证。
// 任务启动时拿一份快照，运行期间凭证切换不影响已经启动的任务
type Store struct {
	mu      sync.RWMutex
	current domain.Credentials
	leases  int
	logger  *elog.Component
}

func NewStore(initial domain.Credentials) *Store {
	return &Store{
		current: initial,
		logger:  elog.DefaultLogger.With(elog.String("component", "CredentialStore")),
	}
}

// Snapshot 当前凭证的副本
func (s *Store) Snapshot() domain.Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Acquire 任务启动时调用，release 必须在任务结束时调用且只调用一次
func (s *Store) Acquire() (domain.Credentials, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leases++
	var once sync.Once
	return s.current, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.leases--
		})
	}
}

// Swap 有任务在运行时拒绝切换，force 为 true 时只对之后启动的任务生效
func (s *Store) Swap(c domain.Credentials, force bool) error {
	if !c.Valid() {
		return fmt.Errorf("%w: 凭证不完整", errs.ErrInvalidParameter)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.leases > 0 && !force {
		return fmt.Errorf("%w: %d 个任务正在使用", errs.ErrCredentialsInUse, s.leases)
	}
	s.logger.Info("切换广告 API 凭证",
		elog.String("customer", c.CustomerID),
		elog.String("accessKey", c.Masked()),
		elog.Int("leases", s.leases))
	s.current = c
	return nil
}

// Active 正在使用凭证的任务数
func (s *Store) Active() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.leases
}
