package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/FelipeSantos92Dev/senai-2025-2/internal/dto"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/service"
	"github.com/FelipeSantos92Dev/senai-2025-2/pkg/response"
)

// CohortHandler 班级模块 HTTP 处理器
type CohortHandler struct {
	cohortSvc service.CohortService
}

// NewCohortHandler 创建 CohortHandler
func NewCohortHandler(cohortSvc service.CohortService) *CohortHandler {
	return &CohortHandler{cohortSvc: cohortSvc}
}

// ListCohorts 获取班级列表
// GET /api/v1/cohorts
func (h *CohortHandler) ListCohorts(c *gin.Context) {
	cohorts, err := h.cohortSvc.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, cohorts)
}

// GetCohort 获取班级详情
// GET /api/v1/cohorts/:id
func (h *CohortHandler) GetCohort(c *gin.Context) {
	cohort, err := h.cohortSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, cohort)
}

// CreateCohort 创建班级
// POST /api/v1/cohorts
func (h *CohortHandler) CreateCohort(c *gin.Context) {
	var req dto.CreateCohortRequest
	if !bindJSON(c, &req) {
		return
	}

	cohort, err := h.cohortSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, cohort)
}

// UpdateCohort 更新班级（部分更新）
// PUT /api/v1/cohorts/:id
func (h *CohortHandler) UpdateCohort(c *gin.Context) {
	var req dto.UpdateCohortRequest
	if !bindJSON(c, &req) {
		return
	}

	cohort, err := h.cohortSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, cohort)
}

// DeleteCohort 删除班级（级联删除课程单元与课次）
// DELETE /api/v1/cohorts/:id
func (h *CohortHandler) DeleteCohort(c *gin.Context) {
	result, err := h.cohortSvc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, result)
}
