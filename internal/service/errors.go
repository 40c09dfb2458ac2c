package service

import pkgerrors "github.com/FelipeSantos92Dev/senai-2025-2/pkg/errors"

// ── 业务错误 ──
// 目标记录与父级引用不存在时返回同一错误，均映射为 404

var (
	ErrCohortNotFound  = pkgerrors.NewNotFound("cohort", "Turma não encontrada")
	ErrUnitNotFound    = pkgerrors.NewNotFound("unit", "Unidade curricular não encontrada")
	ErrSessionNotFound = pkgerrors.NewNotFound("session", "Aula não encontrada")
)
