package seed

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/FelipeSantos92Dev/senai-2025-2/internal/model"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/repository"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/service"
)

func newTestService(t *testing.T) *service.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("打开 SQLite 失败: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&model.Cohort{}, &model.CurricularUnit{}, &model.Session{}); err != nil {
		t.Fatalf("AutoMigrate 失败: %v", err)
	}
	return service.NewService(repository.NewRepository(db), zap.NewNop())
}

func TestRun_Idempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := Run(ctx, svc, zap.NewNop())
	if err != nil {
		t.Fatalf("Run 应成功: %v", err)
	}
	if first.Cohorts != 2 || first.Units != 4 || first.Sessions != 13 || first.RemovedCohorts != 0 {
		t.Errorf("首次写入统计不正确: %+v", first)
	}

	second, err := Run(ctx, svc, zap.NewNop())
	if err != nil {
		t.Fatalf("再次 Run 应成功: %v", err)
	}
	if second.RemovedCohorts != 2 {
		t.Errorf("再次写入应先删除2个班级，实际=%d", second.RemovedCohorts)
	}

	sessions, err := svc.Session.List(ctx, "", "")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(sessions) != 13 {
		t.Errorf("期望13个课次，实际=%d", len(sessions))
	}
}

func TestRun_SlugsAndProgress(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := Run(ctx, svc, zap.NewNop()); err != nil {
		t.Fatalf("Run 应成功: %v", err)
	}

	units, _ := svc.Unit.List(ctx, "")
	var frontID string
	for _, u := range units {
		if u.Code != nil && *u.Code == "FRONT001" {
			frontID = u.ID
		}
	}
	if frontID == "" {
		t.Fatal("未找到 FRONT001")
	}

	detail, err := svc.Unit.GetByID(ctx, frontID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if s := detail.Sessions[0]; s.Slug == nil || *s.Slug != "introducao-ao-react" {
		t.Errorf("slug 不正确: %v", s.Slug)
	}

	p, err := svc.Unit.Progress(ctx, frontID)
	if err != nil {
		t.Fatalf("Progress 应成功: %v", err)
	}
	if p.Total != 5 || p.Completed != 2 || p.Percent != 40 {
		t.Errorf("进度不正确: %+v", p)
	}
}
