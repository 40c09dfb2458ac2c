package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const healthPath = "/health"

// Logger 访问日志：按状态码选择级别，成功的健康检查只记 Debug
// 处理器通过 c.Error 登记的内部错误随日志输出，不返回给客户端
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", GetRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields = append(fields, zap.String("query", q))
		}
		if private := c.Errors.ByType(gin.ErrorTypePrivate); len(private) > 0 {
			errs := make([]error, 0, len(private))
			for _, e := range private {
				errs = append(errs, e.Err)
			}
			fields = append(fields, zap.Errors("errors", errs))
		}

		logger.Check(accessLevel(c.Request.URL.Path, status), "HTTP 请求").Write(fields...)
	}
}

func accessLevel(path string, status int) zapcore.Level {
	switch {
	case status >= 500:
		return zapcore.ErrorLevel
	case status >= 400:
		return zapcore.WarnLevel
	case path == healthPath:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
