package limit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	limitmocks "gitee.com/flycash/searchad-automation/internal/pkg/ratelimit/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBuilder_Build(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testCases := []struct {
		name     string
		uid      string
		mock     func(ctrl *gomock.Controller) *limitmocks.MockLimiter
		wantCode int
	}{
		{
			name: "按用户限流，未超限",
			uid:  "alice",
			mock: func(ctrl *gomock.Controller) *limitmocks.MockLimiter {
				l := limitmocks.NewMockLimiter(ctrl)
				l.EXPECT().Limit(gomock.Any(), "web:alice").Return(false, nil)
				return l
			},
			wantCode: http.StatusOK,
		},
		{
			name: "超限",
			uid:  "alice",
			mock: func(ctrl *gomock.Controller) *limitmocks.MockLimiter {
				l := limitmocks.NewMockLimiter(ctrl)
				l.EXPECT().Limit(gomock.Any(), "web:alice").Return(true, nil)
				return l
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name: "限流器异常时拒绝",
			mock: func(ctrl *gomock.Controller) *limitmocks.MockLimiter {
				l := limitmocks.NewMockLimiter(ctrl)
				l.EXPECT().Limit(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
				return l
			},
			wantCode: http.StatusTooManyRequests,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server := gin.New()
			server.GET("/ping", func(c *gin.Context) {
				if tc.uid != "" {
					c.Set("uid", tc.uid)
				}
			}, NewBuilder("web", tc.mock(ctrl)).Build(), func(c *gin.Context) {
				c.String(http.StatusOK, "pong")
			})
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}
