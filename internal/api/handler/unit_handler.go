package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/FelipeSantos92Dev/senai-2025-2/internal/dto"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/service"
	"github.com/FelipeSantos92Dev/senai-2025-2/pkg/response"
)

// UnitHandler 课程单元模块 HTTP 处理器
type UnitHandler struct {
	unitSvc service.UnitService
}

// NewUnitHandler 创建 UnitHandler
func NewUnitHandler(unitSvc service.UnitService) *UnitHandler {
	return &UnitHandler{unitSvc: unitSvc}
}

// ListUnits 获取课程单元列表
// GET /api/v1/units?cohortId=xxx（也接受 turmaId）
func (h *UnitHandler) ListUnits(c *gin.Context) {
	var req dto.UnitListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeBadBody, "Parâmetros de consulta inválidos")
		return
	}

	units, err := h.unitSvc.List(c.Request.Context(), req.Filter())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, units)
}

// GetUnit 获取课程单元详情
// GET /api/v1/units/:id
func (h *UnitHandler) GetUnit(c *gin.Context) {
	unit, err := h.unitSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, unit)
}

// CreateUnit 创建课程单元
// POST /api/v1/units
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var req dto.CreateUnitRequest
	if !bindJSON(c, &req) {
		return
	}

	unit, err := h.unitSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, unit)
}

// UpdateUnit 更新课程单元；请求中的 cohortId 被忽略
// PUT /api/v1/units/:id
func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	var req dto.UpdateUnitRequest
	if !bindJSON(c, &req) {
		return
	}

	unit, err := h.unitSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, unit)
}

// DeleteUnit 删除课程单元（级联删除课次）
// DELETE /api/v1/units/:id
func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	result, err := h.unitSvc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, result)
}

// GetProgress 获取课程单元进度
// GET /api/v1/units/:id/progress
func (h *UnitHandler) GetProgress(c *gin.Context) {
	progress, err := h.unitSvc.Progress(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, progress)
}
