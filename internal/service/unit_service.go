package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/FelipeSantos92Dev/senai-2025-2/internal/dto"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/model"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/repository"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/validator"
	pkgerrors "github.com/FelipeSantos92Dev/senai-2025-2/pkg/errors"
)

// UnitService 课程单元业务接口
type UnitService interface {
	Create(ctx context.Context, req *dto.CreateUnitRequest) (*dto.UnitWithCohortResponse, error)
	// GetByID 返回课程单元、所属班级摘要及全部课次
	GetByID(ctx context.Context, id string) (*dto.UnitDetailResponse, error)
	// List cohortID 为空时返回全部课程单元
	List(ctx context.Context, cohortID string) ([]dto.UnitListItemResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateUnitRequest) (*dto.UnitWithCohortResponse, error)
	Delete(ctx context.Context, id string) (*dto.DeleteResponse, error)
	// Progress 按课次状态统计完成进度
	Progress(ctx context.Context, id string) (*dto.UnitProgressResponse, error)
}

type unitService struct {
	repo     *repository.Repository
	validate *validator.Validator
	logger   *zap.Logger
}

// NewUnitService 创建 UnitService 实例
func NewUnitService(repo *repository.Repository, validate *validator.Validator, logger *zap.Logger) UnitService {
	return &unitService{repo: repo, validate: validate, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *unitService) Create(ctx context.Context, req *dto.CreateUnitRequest) (*dto.UnitWithCohortResponse, error) {
	verr := pkgerrors.NewValidationError()

	unit := &model.CurricularUnit{
		CohortID:    strings.TrimSpace(req.ParentID()),
		Name:        strings.TrimSpace(req.Name),
		Code:        optionalString(req.Code),
		Description: optionalString(req.Description),
		Instructor:  optionalString(req.Instructor),
		Color:       optionalString(req.Color),
	}

	if n, present, err := toInt(req.WorkloadHours); err != nil {
		verr.Add("workloadHours", err.Error())
	} else if present {
		unit.WorkloadHours = &n
	}
	if n, _, err := toInt(req.Ordem); err != nil {
		verr.Add("ordem", err.Error())
	} else {
		unit.Ordem = n
	}

	verr.Merge(s.validate.Struct(unit))
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	// 父级班级必须存在；不存在时不写入任何数据
	if !isRecordID(unit.CohortID) {
		return nil, ErrCohortNotFound
	}
	cohort, err := s.repo.Cohort.GetByID(ctx, unit.CohortID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCohortNotFound
		}
		s.logger.Error("查询班级失败", zap.String("cohort_id", unit.CohortID), zap.Error(err))
		return nil, pkgerrors.Internal("buscar turma", err)
	}

	if err := s.repo.Unit.Create(ctx, unit); err != nil {
		s.logger.Error("创建课程单元失败", zap.String("cohort_id", unit.CohortID), zap.Error(err))
		return nil, pkgerrors.Internal("criar unidade curricular", err)
	}

	unit.Cohort = cohort
	return toUnitWithCohort(unit), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *unitService) GetByID(ctx context.Context, id string) (*dto.UnitDetailResponse, error) {
	if !isRecordID(id) {
		return nil, ErrUnitNotFound
	}

	unit, err := s.repo.Unit.GetDetail(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(err, id)
	}

	resp := &dto.UnitDetailResponse{
		UnitResponse: toUnitResponse(unit),
		Cohort:       toCohortSummary(unit.Cohort),
		Sessions:     make([]dto.SessionResponse, 0, len(unit.Sessions)),
	}
	for i := range unit.Sessions {
		resp.Sessions = append(resp.Sessions, toSessionResponse(&unit.Sessions[i]))
	}
	return resp, nil
}

// ────────────────────── List ──────────────────────

func (s *unitService) List(ctx context.Context, cohortID string) ([]dto.UnitListItemResponse, error) {
	cohortID = strings.TrimSpace(cohortID)
	if cohortID != "" && !isRecordID(cohortID) {
		return []dto.UnitListItemResponse{}, nil
	}

	units, err := s.repo.Unit.List(ctx, cohortID)
	if err != nil {
		s.logger.Error("列出课程单元失败", zap.String("cohort_id", cohortID), zap.Error(err))
		return nil, pkgerrors.Internal("listar unidades curriculares", err)
	}

	unitIDs := make([]string, 0, len(units))
	for i := range units {
		unitIDs = append(unitIDs, units[i].UnitID)
	}
	counts, err := s.repo.Session.CountByUnitIDs(ctx, unitIDs)
	if err != nil {
		s.logger.Error("批量统计课次数失败", zap.Error(err))
		return nil, pkgerrors.Internal("contar aulas", err)
	}

	result := make([]dto.UnitListItemResponse, 0, len(units))
	for i := range units {
		result = append(result, dto.UnitListItemResponse{
			UnitResponse: toUnitResponse(&units[i]),
			Cohort:       toCohortSummary(units[i].Cohort),
			SessionCount: counts[units[i].UnitID],
		})
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *unitService) Update(ctx context.Context, id string, req *dto.UpdateUnitRequest) (*dto.UnitWithCohortResponse, error) {
	if !isRecordID(id) {
		return nil, ErrUnitNotFound
	}

	unit, err := s.repo.Unit.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(err, id)
	}

	p := newPatch()
	p.str(&unit.Name, req.Name, "Name")
	p.optStr(&unit.Code, req.Code, "Code")
	p.optStr(&unit.Description, req.Description, "Description")
	p.optInt(&unit.WorkloadHours, req.WorkloadHours, "WorkloadHours", "workloadHours")
	p.optStr(&unit.Instructor, req.Instructor, "Instructor")
	p.optStr(&unit.Color, req.Color, "Color")
	p.integer(&unit.Ordem, req.Ordem, "Ordem", "ordem")

	p.verr.Merge(s.validate.Partial(unit, p.fields...))
	if err := p.verr.OrNil(); err != nil {
		return nil, err
	}

	if err := s.repo.Unit.Update(ctx, unit); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitNotFound
		}
		s.logger.Error("更新课程单元失败", zap.String("id", id), zap.Error(err))
		return nil, pkgerrors.Internal("atualizar unidade curricular", err)
	}

	return toUnitWithCohort(unit), nil
}

// ────────────────────── Delete ──────────────────────

func (s *unitService) Delete(ctx context.Context, id string) (*dto.DeleteResponse, error) {
	if !isRecordID(id) {
		return nil, ErrUnitNotFound
	}

	res, err := s.repo.Unit.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitNotFound
		}
		s.logger.Error("删除课程单元失败", zap.String("id", id), zap.Error(err))
		return nil, pkgerrors.Internal("deletar unidade curricular", err)
	}

	s.logger.Info("课程单元已删除", zap.String("id", id), zap.Int64("sessions", res.Sessions))
	return &dto.DeleteResponse{
		ID:              id,
		Deleted:         true,
		RemovedSessions: res.Sessions,
	}, nil
}

// ────────────────────── Progress ──────────────────────

func (s *unitService) Progress(ctx context.Context, id string) (*dto.UnitProgressResponse, error) {
	if !isRecordID(id) {
		return nil, ErrUnitNotFound
	}

	if _, err := s.repo.Unit.GetByID(ctx, id); err != nil {
		return nil, s.mapLookupError(err, id)
	}

	counts, err := s.repo.Session.CountByStatus(ctx, id)
	if err != nil {
		s.logger.Error("统计课次状态失败", zap.String("id", id), zap.Error(err))
		return nil, pkgerrors.Internal("calcular progresso", err)
	}

	return buildProgress(id, counts), nil
}

// buildProgress 完成率 = round(已完成 / 总数 × 100)，总数为 0 时为 0
func buildProgress(unitID string, counts map[model.SessionStatus]int64) *dto.UnitProgressResponse {
	resp := &dto.UnitProgressResponse{
		UnitID:   unitID,
		ByStatus: make(map[string]int64, len(model.AllStatuses)),
	}
	for _, st := range model.AllStatuses {
		resp.ByStatus[string(st)] = counts[st]
		resp.Total += counts[st]
	}
	resp.Completed = counts[model.StatusCompleted]
	resp.InProgress = counts[model.StatusInProgress]
	if resp.Total > 0 {
		resp.Percent = int(math.Round(float64(resp.Completed) * 100 / float64(resp.Total)))
	}
	return resp
}

// ── 内部辅助方法 ──

func (s *unitService) mapLookupError(err error, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUnitNotFound
	}
	s.logger.Error("查询课程单元失败", zap.String("id", id), zap.Error(err))
	return pkgerrors.Internal("buscar unidade curricular", err)
}
