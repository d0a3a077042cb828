package limit

import (
	"net/http"

	"gitee.com/flycash/searchad-automation/internal/api/web/middleware/jwt"
	"gitee.com/flycash/searchad-automation/internal/errs"
	"gitee.com/flycash/searchad-automation/internal/pkg/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// Builder 控制接口的限流，按用户计数，没有用户时按 IP
type Builder struct {
	prefix  string
	limiter ratelimit.Limiter
	logger  *elog.Component
}

func NewBuilder(prefix string, limiter ratelimit.Limiter) *Builder {
	return &Builder{
		prefix:  prefix,
		limiter: limiter,
		logger:  elog.DefaultLogger.With(elog.String("component", "WebLimiter")),
	}
}

func (b *Builder) Build() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if uid, err := jwt.GetUserIDFromContext(c); err == nil {
			key = uid
		}
		limited, err := b.limiter.Limit(c.Request.Context(), b.prefix+":"+key)
		if err != nil {
			// 保守策略
			b.logger.Error("限流器异常", elog.FieldErr(err), elog.String("key", key))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"code": http.StatusTooManyRequests, "msg": errs.ErrRateLimited.Error()})
			return
		}
		if limited {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"code": http.StatusTooManyRequests, "msg": errs.ErrRateLimited.Error()})
			return
		}
		c.Next()
	}
}
