package model

import (
	"time"

	"gorm.io/gorm"
)

// SessionStatus 课次状态，取值为封闭集合
type SessionStatus string

const (
	StatusPlanned    SessionStatus = "PLANNED"
	StatusInProgress SessionStatus = "IN_PROGRESS"
	StatusCompleted  SessionStatus = "COMPLETED"
	StatusCancelled  SessionStatus = "CANCELLED"
	StatusPostponed  SessionStatus = "POSTPONED"
)

// AllStatuses 按展示顺序列出全部状态
var AllStatuses = []SessionStatus{
	StatusPlanned,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusPostponed,
}

// Valid 判断状态是否属于已知集合
func (s SessionStatus) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Label 状态的葡萄牙语名称，用于导出
func (s SessionStatus) Label() string {
	switch s {
	case StatusPlanned:
		return "Planejada"
	case StatusInProgress:
		return "Em Andamento"
	case StatusCompleted:
		return "Concluída"
	case StatusCancelled:
		return "Cancelada"
	case StatusPostponed:
		return "Adiada"
	}
	return string(s)
}

// Session 课次表，对应 sessions，隶属于一个 CurricularUnit
type Session struct {
	SessionID       string        `gorm:"type:uuid;primaryKey"                       json:"id"`
	UnitID          string        `gorm:"type:uuid;not null;index"                   json:"unitId" validate:"required"` // 创建后不可修改
	Title           string        `gorm:"type:varchar(300);not null"                 json:"title" validate:"required,max=300"`
	Subject         string        `gorm:"type:text;not null"                         json:"subject" validate:"required"`
	Summary         *string       `gorm:"type:text"                                  json:"summary,omitempty"`
	Date            time.Time     `gorm:"not null"                                   json:"date" validate:"required"`
	Status          SessionStatus `gorm:"type:varchar(20);not null;default:'PLANNED'" json:"status" validate:"required,oneof=PLANNED IN_PROGRESS COMPLETED CANCELLED POSTPONED"`
	DurationMinutes *int          `gorm:"column:duration_minutes"                    json:"durationMinutes,omitempty"`
	Objectives      *string       `gorm:"type:text"                                  json:"objectives,omitempty"`
	SupportMaterial *string       `gorm:"type:text"                                  json:"supportMaterial,omitempty"`
	Notes           *string       `gorm:"type:text"                                  json:"notes,omitempty"`
	Ordem           int           `gorm:"not null;default:0"                         json:"ordem"`
	Slug            *string       `gorm:"type:varchar(300)"                          json:"slug,omitempty" validate:"omitempty,max=300"` // 自由文本，不唯一
	BaseModel

	Unit *CurricularUnit `json:"unit,omitempty" validate:"-"` // belongs-to，按 UnitID 关联
}

// TableName 指定表名
func (Session) TableName() string { return "sessions" }

// BeforeCreate 分配主键并补全默认状态
func (s *Session) BeforeCreate(*gorm.DB) error {
	newID(&s.SessionID)
	if s.Status == "" {
		s.Status = StatusPlanned
	}
	return nil
}
