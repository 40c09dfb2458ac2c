package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/FelipeSantos92Dev/senai-2025-2/pkg/errors"
	"github.com/FelipeSantos92Dev/senai-2025-2/pkg/response"
)

// 业务错误码
const (
	codeBadBody         = 10002
	msgWrongType        = "tipo inválido"
	codeCohortNotFound  = 20001
	codeUnitNotFound    = 20101
	codeSessionNotFound = 20201
	codeNotFound        = 20000
)

var notFoundCodes = map[string]int{
	"cohort":  codeCohortNotFound,
	"unit":    codeUnitNotFound,
	"session": codeSessionNotFound,
}

// bindJSON 解析请求体；失败时写入 400 / 413 并返回 false
// 字段类型错误按校验错误返回，并指出字段名
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.PayloadTooLarge(c)
			return false
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			response.ValidationFailed(c, map[string]string{typeErr.Field: msgWrongType})
			return false
		}
		response.BadRequest(c, codeBadBody, "Corpo da requisição inválido")
		return false
	}
	return true
}

// handleServiceError 将服务层错误映射为 HTTP 响应
//
//	ValidationError → 400（附字段错误）
//	NotFoundError   → 404（按实体区分错误码）
//	其他            → 500，详细信息只进入日志
func handleServiceError(c *gin.Context, err error) {
	var verr *pkgerrors.ValidationError
	if errors.As(err, &verr) {
		response.ValidationFailed(c, verr.Fields)
		return
	}

	var nf *pkgerrors.NotFoundError
	if errors.As(err, &nf) {
		code, ok := notFoundCodes[nf.Entity]
		if !ok {
			code = codeNotFound
		}
		response.NotFound(c, code, nf.Message)
		return
	}

	_ = c.Error(err)
	response.InternalError(c)
}
