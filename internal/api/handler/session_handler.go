package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/FelipeSantos92Dev/senai-2025-2/internal/dto"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/service"
	"github.com/FelipeSantos92Dev/senai-2025-2/pkg/response"
)

// SessionHandler 课次模块 HTTP 处理器
type SessionHandler struct {
	sessionSvc service.SessionService
}

// NewSessionHandler 创建 SessionHandler
func NewSessionHandler(sessionSvc service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// ListSessions 获取课次列表
// GET /api/v1/sessions?unitId=xxx&status=COMPLETED
func (h *SessionHandler) ListSessions(c *gin.Context) {
	var req dto.SessionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeBadBody, "Parâmetros de consulta inválidos")
		return
	}

	sessions, err := h.sessionSvc.List(c.Request.Context(), req.UnitFilter(), req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, sessions)
}

// GetSession 获取课次详情
// GET /api/v1/sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.sessionSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, session)
}

// CreateSession 创建课次
// POST /api/v1/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.sessionSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, session)
}

// UpdateSession 更新课次；所属单元不可修改
// PUT /api/v1/sessions/:id
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	var req dto.UpdateSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.sessionSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, session)
}

// DeleteSession 删除课次
// DELETE /api/v1/sessions/:id
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	result, err := h.sessionSvc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, result)
}
