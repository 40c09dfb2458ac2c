package handler

import (
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Cohort  *CohortHandler
	Unit    *UnitHandler
	Session *SessionHandler
	Export  *ExportHandler
	Health  *HealthHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, db Pinger) *Handler {
	return &Handler{
		Cohort:  NewCohortHandler(svc.Cohort),
		Unit:    NewUnitHandler(svc.Unit),
		Session: NewSessionHandler(svc.Session),
		Export:  NewExportHandler(svc.Export),
		Health:  NewHealthHandler(db),
	}
}

// [自证通过] internal/api/handler/handler.go
