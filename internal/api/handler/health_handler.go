package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FelipeSantos92Dev/senai-2025-2/internal/dto"
	"github.com/FelipeSantos92Dev/senai-2025-2/pkg/response"
)

const healthTimeout = 2 * time.Second

// Pinger 数据库连通性检查，由 repository.Repository 实现
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler 健康检查处理器
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler 创建 HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health 健康检查，数据库不可达时返回 503
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Code:    50300,
			Kind:    response.KindInternal,
			Message: "Banco de dados indisponível",
			Data:    dto.HealthResponse{Status: "degraded", Database: "down"},
		})
		return
	}

	response.OK(c, dto.HealthResponse{Status: "ok", Database: "up"})
}
