package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FelipeSantos92Dev/senai-2025-2/pkg/response"
)

// Recovery 捕获 panic，记录堆栈后返回统一的 500 响应
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		logger.Error("请求处理 panic",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", GetRequestID(c)),
			zap.String("panic", fmt.Sprint(recovered)),
			zap.Stack("stack"),
		)
		response.InternalError(c)
	})
}
