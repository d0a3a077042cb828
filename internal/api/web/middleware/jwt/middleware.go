package jwt

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const UserIDName = "uid"

var ErrUserIDNotFound = errors.New("uid 不存在")

type Builder struct {
	auth *JwtAuth
}

func NewBuilder(auth *JwtAuth) *Builder {
	return &Builder{auth: auth}
}

// Build 校验 Authorization 头，把 uid 放进上下文
func (b *Builder) Build() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "msg": "缺少令牌"})
			return
		}
		claims, err := b.auth.Decode(header)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "msg": "令牌无效"})
			return
		}
		uid, ok := claims[UserIDName].(string)
		if !ok || uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "msg": "令牌中缺少 uid"})
			return
		}
		c.Set(UserIDName, uid)
		c.Next()
	}
}

func GetUserIDFromContext(c *gin.Context) (string, error) {
	val, ok := c.Get(UserIDName)
	if !ok {
		return "", ErrUserIDNotFound
	}
	v, ok := val.(string)
	if !ok {
		return "", ErrUserIDNotFound
	}
	return v, nil
}
