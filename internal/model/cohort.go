package model

import "gorm.io/gorm"

// Cohort 班级表，对应 cohorts
type Cohort struct {
	CohortID    string  `gorm:"type:uuid;primaryKey"       json:"id"`
	Name        string  `gorm:"type:varchar(200);not null" json:"name" validate:"required,max=200"`
	Term        string  `gorm:"type:varchar(50);not null"  json:"term" validate:"required,max=50"` // 例如 2025.1
	Year        int     `gorm:"not null"                   json:"year" validate:"required"`
	Description *string `gorm:"type:text"                  json:"description,omitempty"`
	Color       *string `gorm:"type:varchar(32)"           json:"color,omitempty" validate:"omitempty,max=32"`
	BaseModel

	Units []CurricularUnit `gorm:"foreignKey:CohortID;constraint:OnDelete:CASCADE" json:"units,omitempty" validate:"-"`
}

// TableName 指定表名
func (Cohort) TableName() string { return "cohorts" }

// BeforeCreate 分配主键
func (c *Cohort) BeforeCreate(*gorm.DB) error {
	newID(&c.CohortID)
	return nil
}
