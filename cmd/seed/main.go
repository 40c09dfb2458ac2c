package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/FelipeSantos92Dev/senai-2025-2/config"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/repository"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/seed"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/service"
	"github.com/FelipeSantos92Dev/senai-2025-2/pkg/database"
	applogger "github.com/FelipeSantos92Dev/senai-2025-2/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	svc := service.NewService(repository.NewRepository(db), logger)
	sum, err := seed.Run(ctx, svc, logger)
	if err != nil {
		logger.Fatal("写入演示数据失败", zap.Error(err))
	}

	fmt.Printf("Seed concluído: %d turmas, %d unidades curriculares, %d aulas\n", sum.Cohorts, sum.Units, sum.Sessions)
}
