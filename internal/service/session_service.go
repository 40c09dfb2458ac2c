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

// SessionService 课次业务接口
type SessionService interface {
	Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionWithUnitResponse, error)
	// GetByID 返回课次、完整所属单元及班级摘要
	GetByID(ctx context.Context, id string) (*dto.SessionDetailResponse, error)
	// List unitID / status 为空时不过滤
	List(ctx context.Context, unitID, status string) ([]dto.SessionListItemResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateSessionRequest) (*dto.SessionWithUnitResponse, error)
	Delete(ctx context.Context, id string) (*dto.DeleteResponse, error)
}

type sessionService struct {
	repo     *repository.Repository
	validate *validator.Validator
	logger   *zap.Logger
}

// NewSessionService 创建 SessionService 实例
func NewSessionService(repo *repository.Repository, validate *validator.Validator, logger *zap.Logger) SessionService {
	return &sessionService{repo: repo, validate: validate, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *sessionService) Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionWithUnitResponse, error) {
	verr := pkgerrors.NewValidationError()

	session := &model.Session{
		UnitID:          strings.TrimSpace(req.ParentID()),
		Title:           strings.TrimSpace(req.Title),
		Subject:         strings.TrimSpace(req.Subject),
		Summary:         optionalString(req.Summary),
		Objectives:      optionalString(req.Objectives),
		SupportMaterial: optionalString(req.SupportMaterial),
		Notes:           optionalString(req.Notes),
		Slug:            optionalString(req.Slug),
		Status:          model.StatusPlanned,
	}

	if date, _, err := parseDate(req.Date); err != nil {
		verr.Add("date", msgBadDate)
	} else {
		session.Date = date
	}

	if st := strings.TrimSpace(req.Status); st != "" {
		session.Status = model.SessionStatus(st)
		if !session.Status.Valid() {
			verr.Add("status", msgBadStatus)
		}
	}

	if n, present, err := toInt(req.DurationMinutes); err != nil {
		verr.Add("durationMinutes", err.Error())
	} else if present {
		session.DurationMinutes = &n
	}
	if n, _, err := toInt(req.Ordem); err != nil {
		verr.Add("ordem", err.Error())
	} else {
		session.Ordem = n
	}

	verr.Merge(s.validate.Struct(session))
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if !isRecordID(session.UnitID) {
		return nil, ErrUnitNotFound
	}
	unit, err := s.repo.Unit.GetByID(ctx, session.UnitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitNotFound
		}
		s.logger.Error("查询课程单元失败", zap.String("unit_id", session.UnitID), zap.Error(err))
		return nil, pkgerrors.Internal("buscar unidade curricular", err)
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.logger.Error("创建课次失败", zap.String("unit_id", session.UnitID), zap.Error(err))
		return nil, pkgerrors.Internal("criar aula", err)
	}

	session.Unit = unit
	return toSessionWithUnit(session), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *sessionService) GetByID(ctx context.Context, id string) (*dto.SessionDetailResponse, error) {
	if !isRecordID(id) {
		return nil, ErrSessionNotFound
	}

	session, err := s.repo.Session.GetDetail(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(err, id)
	}

	resp := &dto.SessionDetailResponse{SessionResponse: toSessionResponse(session)}
	if session.Unit != nil {
		resp.Unit = *toUnitWithCohort(session.Unit)
	}
	return resp, nil
}

// ────────────────────── List ──────────────────────

func (s *sessionService) List(ctx context.Context, unitID, status string) ([]dto.SessionListItemResponse, error) {
	filter := repository.SessionFilter{UnitID: strings.TrimSpace(unitID)}
	if st := strings.TrimSpace(status); st != "" {
		filter.Status = model.SessionStatus(st)
		if !filter.Status.Valid() {
			verr := pkgerrors.NewValidationError()
			verr.Add("status", msgBadStatus)
			return nil, verr
		}
	}

	if filter.UnitID != "" && !isRecordID(filter.UnitID) {
		return []dto.SessionListItemResponse{}, nil
	}

	sessions, err := s.repo.Session.List(ctx, filter)
	if err != nil {
		s.logger.Error("列出课次失败",
			zap.String("unit_id", filter.UnitID),
			zap.String("status", string(filter.Status)),
			zap.Error(err),
		)
		return nil, pkgerrors.Internal("listar aulas", err)
	}

	result := make([]dto.SessionListItemResponse, 0, len(sessions))
	for i := range sessions {
		item := dto.SessionListItemResponse{SessionResponse: toSessionResponse(&sessions[i])}
		if u := sessions[i].Unit; u != nil {
			item.Unit = dto.UnitRefWithCohort{
				UnitRef: toUnitRef(u),
				Cohort:  toCohortSummary(u.Cohort),
			}
		}
		result = append(result, item)
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *sessionService) Update(ctx context.Context, id string, req *dto.UpdateSessionRequest) (*dto.SessionWithUnitResponse, error) {
	if !isRecordID(id) {
		return nil, ErrSessionNotFound
	}

	session, err := s.repo.Session.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(err, id)
	}

	p := newPatch()
	p.str(&session.Title, req.Title, "Title")
	p.str(&session.Subject, req.Subject, "Subject")
	p.optStr(&session.Summary, req.Summary, "Summary")
	p.date(&session.Date, req.Date, "Date", "date")
	p.optInt(&session.DurationMinutes, req.DurationMinutes, "DurationMinutes", "durationMinutes")
	p.optStr(&session.Objectives, req.Objectives, "Objectives")
	p.optStr(&session.SupportMaterial, req.SupportMaterial, "SupportMaterial")
	p.optStr(&session.Notes, req.Notes, "Notes")
	p.integer(&session.Ordem, req.Ordem, "Ordem", "ordem")
	p.optStr(&session.Slug, req.Slug, "Slug")

	if req.Status.Set {
		var st string
		p.str(&st, req.Status, "Status")
		session.Status = model.SessionStatus(st)
		if st != "" && !session.Status.Valid() {
			p.verr.Add("status", msgBadStatus)
		}
	}

	p.verr.Merge(s.validate.Partial(session, p.fields...))
	if err := p.verr.OrNil(); err != nil {
		return nil, err
	}

	if err := s.repo.Session.Update(ctx, session); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("更新课次失败", zap.String("id", id), zap.Error(err))
		return nil, pkgerrors.Internal("atualizar aula", err)
	}

	return toSessionWithUnit(session), nil
}

// ────────────────────── Delete ──────────────────────

func (s *sessionService) Delete(ctx context.Context, id string) (*dto.DeleteResponse, error) {
	if !isRecordID(id) {
		return nil, ErrSessionNotFound
	}

	if err := s.repo.Session.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("删除课次失败", zap.String("id", id), zap.Error(err))
		return nil, pkgerrors.Internal("deletar aula", err)
	}
	return &dto.DeleteResponse{ID: id, Deleted: true}, nil
}

// ── 内部辅助方法 ──

func (s *sessionService) mapLookupError(err error, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSessionNotFound
	}
	s.logger.Error("查询课次失败", zap.String("id", id), zap.Error(err))
	return pkgerrors.Internal("buscar aula", err)
}
