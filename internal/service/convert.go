package service

import (
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/dto"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/model"
)

// ── 模型 → 响应 ──

func toCohortResponse(c *model.Cohort) dto.CohortResponse {
	return dto.CohortResponse{
		ID:          c.CohortID,
		Name:        c.Name,
		Term:        c.Term,
		Year:        c.Year,
		Description: c.Description,
		Color:       c.Color,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
}

func toCohortSummary(c *model.Cohort) dto.CohortSummary {
	if c == nil {
		return dto.CohortSummary{}
	}
	return dto.CohortSummary{
		ID:   c.CohortID,
		Name: c.Name,
		Term: c.Term,
		Year: c.Year,
	}
}

func toUnitResponse(u *model.CurricularUnit) dto.UnitResponse {
	return dto.UnitResponse{
		ID:            u.UnitID,
		CohortID:      u.CohortID,
		Name:          u.Name,
		Code:          u.Code,
		Description:   u.Description,
		WorkloadHours: u.WorkloadHours,
		Instructor:    u.Instructor,
		Color:         u.Color,
		Ordem:         u.Ordem,
		CreatedAt:     formatTime(u.CreatedAt),
		UpdatedAt:     formatTime(u.UpdatedAt),
	}
}

func toUnitWithCohort(u *model.CurricularUnit) *dto.UnitWithCohortResponse {
	return &dto.UnitWithCohortResponse{
		UnitResponse: toUnitResponse(u),
		Cohort:       toCohortSummary(u.Cohort),
	}
}

func toUnitRef(u *model.CurricularUnit) dto.UnitRef {
	if u == nil {
		return dto.UnitRef{}
	}
	return dto.UnitRef{ID: u.UnitID, Name: u.Name, Code: u.Code}
}

func toSessionResponse(s *model.Session) dto.SessionResponse {
	return dto.SessionResponse{
		ID:              s.SessionID,
		UnitID:          s.UnitID,
		Title:           s.Title,
		Subject:         s.Subject,
		Summary:         s.Summary,
		Date:            formatTime(s.Date),
		Status:          string(s.Status),
		DurationMinutes: s.DurationMinutes,
		Objectives:      s.Objectives,
		SupportMaterial: s.SupportMaterial,
		Notes:           s.Notes,
		Ordem:           s.Ordem,
		Slug:            s.Slug,
		CreatedAt:       formatTime(s.CreatedAt),
		UpdatedAt:       formatTime(s.UpdatedAt),
	}
}

func toSessionSummary(s *model.Session) dto.SessionSummary {
	return dto.SessionSummary{
		ID:      s.SessionID,
		Title:   s.Title,
		Status:  string(s.Status),
		Date:    formatTime(s.Date),
		Subject: s.Subject,
	}
}

func toSessionWithUnit(s *model.Session) *dto.SessionWithUnitResponse {
	return &dto.SessionWithUnitResponse{
		SessionResponse: toSessionResponse(s),
		Unit:            toUnitRef(s.Unit),
	}
}
