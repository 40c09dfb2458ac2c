package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/FelipeSantos92Dev/senai-2025-2/internal/model"
)

// UnitRepository 课程单元数据访问接口
type UnitRepository interface {
	Create(ctx context.Context, unit *model.CurricularUnit) error
	// GetByID 加载课程单元及所属班级
	GetByID(ctx context.Context, id string) (*model.CurricularUnit, error)
	// GetDetail 额外加载全部课次，按 (ordem, date) 排序
	GetDetail(ctx context.Context, id string) (*model.CurricularUnit, error)
	// List cohortID 为空时返回全部
	List(ctx context.Context, cohortID string) ([]model.CurricularUnit, error)
	Update(ctx context.Context, unit *model.CurricularUnit) error
	// Delete 在同一事务中删除课程单元及其全部课次
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}

type unitRepo struct {
	db *gorm.DB
}

// NewUnitRepo 创建 UnitRepository 实例
func NewUnitRepo(db *gorm.DB) UnitRepository {
	return &unitRepo{db: db}
}

func (r *unitRepo) Create(ctx context.Context, unit *model.CurricularUnit) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(unit).Error
}

func (r *unitRepo) GetByID(ctx context.Context, id string) (*model.CurricularUnit, error) {
	var unit model.CurricularUnit
	err := r.db.WithContext(ctx).
		Preload("Cohort").
		Where("unit_id = ?", id).
		First(&unit).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepo) GetDetail(ctx context.Context, id string) (*model.CurricularUnit, error) {
	var unit model.CurricularUnit
	err := r.db.WithContext(ctx).
		Preload("Cohort").
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordem ASC, date ASC, " + tiebreak + ", session_id ASC")
		}).
		Where("unit_id = ?", id).
		First(&unit).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepo) List(ctx context.Context, cohortID string) ([]model.CurricularUnit, error) {
	var units []model.CurricularUnit
	db := r.db.WithContext(ctx).Preload("Cohort")
	if cohortID != "" {
		db = db.Where("cohort_id = ?", cohortID)
	}
	err := db.Order("ordem ASC, " + tiebreak + ", unit_id ASC").Find(&units).Error
	return units, err
}

// Update 全字段更新；cohort_id 不参与更新，单元不可更换班级
func (r *unitRepo) Update(ctx context.Context, unit *model.CurricularUnit) error {
	res := r.db.WithContext(ctx).
		Model(unit).
		Select("*").
		Omit(clause.Associations, "CohortID", "CreatedAt").
		Updates(unit)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *unitRepo) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	result := &DeleteResult{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("unit_id = ?", id).Delete(&model.Session{})
		if res.Error != nil {
			return res.Error
		}
		result.Sessions = res.RowsAffected

		res = tx.Where("unit_id = ?", id).Delete(&model.CurricularUnit{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
