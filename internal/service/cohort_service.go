package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/FelipeSantos92Dev/senai-2025-2/internal/dto"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/model"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/repository"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/validator"
	pkgerrors "github.com/FelipeSantos92Dev/senai-2025-2/pkg/errors"
)

// CohortService 班级业务接口
type CohortService interface {
	Create(ctx context.Context, req *dto.CreateCohortRequest) (*dto.CohortResponse, error)
	// GetByID 返回班级及其课程单元与课次摘要
	GetByID(ctx context.Context, id string) (*dto.CohortDetailResponse, error)
	List(ctx context.Context) ([]dto.CohortListItem, error)
	Update(ctx context.Context, id string, req *dto.UpdateCohortRequest) (*dto.CohortResponse, error)
	// Delete 级联删除班级下的课程单元与课次
	Delete(ctx context.Context, id string) (*dto.DeleteResponse, error)
}

type cohortService struct {
	repo     *repository.Repository
	validate *validator.Validator
	logger   *zap.Logger
}

// NewCohortService 创建 CohortService 实例
func NewCohortService(repo *repository.Repository, validate *validator.Validator, logger *zap.Logger) CohortService {
	return &cohortService{repo: repo, validate: validate, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *cohortService) Create(ctx context.Context, req *dto.CreateCohortRequest) (*dto.CohortResponse, error) {
	verr := pkgerrors.NewValidationError()

	year, _, err := toInt(req.Year)
	if err != nil {
		verr.Add("year", err.Error())
	}

	cohort := &model.Cohort{
		Name:        strings.TrimSpace(req.Name),
		Term:        strings.TrimSpace(req.Term),
		Year:        year,
		Description: optionalString(req.Description),
		Color:       optionalString(req.Color),
	}
	verr.Merge(s.validate.Struct(cohort))
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if err := s.repo.Cohort.Create(ctx, cohort); err != nil {
		s.logger.Error("创建班级失败", zap.Error(err))
		return nil, pkgerrors.Internal("criar turma", err)
	}

	resp := toCohortResponse(cohort)
	return &resp, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *cohortService) GetByID(ctx context.Context, id string) (*dto.CohortDetailResponse, error) {
	if !isRecordID(id) {
		return nil, ErrCohortNotFound
	}

	cohort, err := s.repo.Cohort.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCohortNotFound
		}
		s.logger.Error("查询班级失败", zap.String("id", id), zap.Error(err))
		return nil, pkgerrors.Internal("buscar turma", err)
	}

	resp := &dto.CohortDetailResponse{
		CohortResponse: toCohortResponse(cohort),
		Units:          make([]dto.UnitWithSessionSummaries, 0, len(cohort.Units)),
	}
	for i := range cohort.Units {
		u := &cohort.Units[i]
		item := dto.UnitWithSessionSummaries{
			UnitResponse: toUnitResponse(u),
			Sessions:     make([]dto.SessionSummary, 0, len(u.Sessions)),
		}
		for j := range u.Sessions {
			item.Sessions = append(item.Sessions, toSessionSummary(&u.Sessions[j]))
		}
		resp.Units = append(resp.Units, item)
	}
	return resp, nil
}

// ────────────────────── List ──────────────────────

func (s *cohortService) List(ctx context.Context) ([]dto.CohortListItem, error) {
	cohorts, err := s.repo.Cohort.List(ctx)
	if err != nil {
		s.logger.Error("列出班级失败", zap.Error(err))
		return nil, pkgerrors.Internal("listar turmas", err)
	}

	// 批量查询课次数，避免 N+1 查询问题
	unitIDs := make([]string, 0)
	for i := range cohorts {
		for j := range cohorts[i].Units {
			unitIDs = append(unitIDs, cohorts[i].Units[j].UnitID)
		}
	}
	counts, err := s.repo.Session.CountByUnitIDs(ctx, unitIDs)
	if err != nil {
		s.logger.Error("批量统计课次数失败", zap.Error(err))
		return nil, pkgerrors.Internal("contar aulas", err)
	}

	result := make([]dto.CohortListItem, 0, len(cohorts))
	for i := range cohorts {
		item := dto.CohortListItem{
			CohortResponse: toCohortResponse(&cohorts[i]),
			Units:          make([]dto.UnitWithCountResponse, 0, len(cohorts[i].Units)),
		}
		for j := range cohorts[i].Units {
			u := &cohorts[i].Units[j]
			item.Units = append(item.Units, dto.UnitWithCountResponse{
				UnitResponse: toUnitResponse(u),
				SessionCount: counts[u.UnitID],
			})
		}
		result = append(result, item)
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *cohortService) Update(ctx context.Context, id string, req *dto.UpdateCohortRequest) (*dto.CohortResponse, error) {
	if !isRecordID(id) {
		return nil, ErrCohortNotFound
	}

	cohort, err := s.repo.Cohort.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCohortNotFound
		}
		s.logger.Error("查询班级失败", zap.String("id", id), zap.Error(err))
		return nil, pkgerrors.Internal("buscar turma", err)
	}

	p := newPatch()
	p.str(&cohort.Name, req.Name, "Name")
	p.str(&cohort.Term, req.Term, "Term")
	p.integer(&cohort.Year, req.Year, "Year", "year")
	p.optStr(&cohort.Description, req.Description, "Description")
	p.optStr(&cohort.Color, req.Color, "Color")

	p.verr.Merge(s.validate.Partial(cohort, p.fields...))
	if err := p.verr.OrNil(); err != nil {
		return nil, err
	}

	if err := s.repo.Cohort.Update(ctx, cohort); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCohortNotFound
		}
		s.logger.Error("更新班级失败", zap.String("id", id), zap.Error(err))
		return nil, pkgerrors.Internal("atualizar turma", err)
	}

	resp := toCohortResponse(cohort)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *cohortService) Delete(ctx context.Context, id string) (*dto.DeleteResponse, error) {
	if !isRecordID(id) {
		return nil, ErrCohortNotFound
	}

	res, err := s.repo.Cohort.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCohortNotFound
		}
		s.logger.Error("删除班级失败", zap.String("id", id), zap.Error(err))
		return nil, pkgerrors.Internal("deletar turma", err)
	}

	s.logger.Info("班级已删除",
		zap.String("id", id),
		zap.Int64("units", res.Units),
		zap.Int64("sessions", res.Sessions),
	)
	return &dto.DeleteResponse{
		ID:              id,
		Deleted:         true,
		RemovedUnits:    res.Units,
		RemovedSessions: res.Sessions,
	}, nil
}
