package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FelipeSantos92Dev/senai-2025-2/config"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/api/handler"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/api/middleware"
	"github.com/FelipeSantos92Dev/senai-2025-2/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时不启用速率限制
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", h.Health.Health)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	if rdb != nil {
		v1.Use(middleware.RateLimit(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window, logger))
	}
	{
		// 班级模块
		cohorts := v1.Group("/cohorts")
		{
			cohorts.GET("", h.Cohort.ListCohorts)
			cohorts.POST("", h.Cohort.CreateCohort)
			cohorts.GET("/:id", h.Cohort.GetCohort)
			cohorts.PUT("/:id", h.Cohort.UpdateCohort)
			cohorts.DELETE("/:id", h.Cohort.DeleteCohort)
			cohorts.GET("/:id/export", h.Export.ExportCohortPlan)
		}

		// 课程单元模块
		units := v1.Group("/units")
		{
			units.GET("", h.Unit.ListUnits)
			units.POST("", h.Unit.CreateUnit)
			units.GET("/:id", h.Unit.GetUnit)
			units.PUT("/:id", h.Unit.UpdateUnit)
			units.DELETE("/:id", h.Unit.DeleteUnit)
			units.GET("/:id/progress", h.Unit.GetProgress)
			units.GET("/:id/calendar.ics", h.Export.UnitCalendar)
		}

		// 课次模块
		sessions := v1.Group("/sessions")
		{
			sessions.GET("", h.Session.ListSessions)
			sessions.POST("", h.Session.CreateSession)
			sessions.GET("/:id", h.Session.GetSession)
			sessions.PUT("/:id", h.Session.UpdateSession)
			sessions.DELETE("/:id", h.Session.DeleteSession)
		}
	}

	return r
}
