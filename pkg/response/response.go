package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 错误类别，对应响应体中的 kind 字段
const (
	KindValidation = "VALIDATION_ERROR"
	KindNotFound   = "NOT_FOUND"
	KindBadRequest = "BAD_REQUEST"
	KindRateLimit  = "RATE_LIMITED"
	KindTooLarge   = "PAYLOAD_TOO_LARGE"
	KindInternal   = "INTERNAL_ERROR"
)

// Response 统一响应结构
type Response struct {
	Code    int               `json:"code"`
	Kind    string            `json:"kind,omitempty"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, code int, kind, message string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code:    code,
		Kind:    kind,
		Message: message,
	})
}

// ── 常见快捷方式 ──

// BadRequest 400（请求体无法解析等）
func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, KindBadRequest, message)
}

// ValidationFailed 400，附带字段级错误
func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Code:    10001,
		Kind:    KindValidation,
		Message: "Dados inválidos",
		Fields:  fields,
	})
}

// NotFound 404
func NotFound(c *gin.Context, code int, message string) {
	Error(c, http.StatusNotFound, code, KindNotFound, message)
}

// PayloadTooLarge 413
func PayloadTooLarge(c *gin.Context) {
	Error(c, http.StatusRequestEntityTooLarge, 41300, KindTooLarge, "Corpo da requisição excede o limite permitido")
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, 42900, KindRateLimit, "Muitas requisições, tente novamente mais tarde")
}

// InternalError 500，不向客户端暴露内部细节
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, 50000, KindInternal, "Erro interno do servidor")
}
