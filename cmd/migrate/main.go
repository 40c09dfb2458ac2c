package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/FelipeSantos92Dev/senai-2025-2/config"
	"github.com/FelipeSantos92Dev/senai-2025-2/pkg/database"
	applogger "github.com/FelipeSantos92Dev/senai-2025-2/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(2)
	}

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

	mg, err := database.NewMigrator(sqlDB, logger)
	if err != nil {
		logger.Fatal("初始化迁移失败", zap.Error(err))
	}

	switch args[0] {
	case "up":
		err = mg.Up()
	case "down":
		err = mg.Down()
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = mg.Version()
		if err == nil {
			fmt.Printf("Version: %d, Dirty: %t\n", version, dirty)
		}
	case "force":
		if len(args) < 2 {
			logger.Fatal("force 需要版本号参数")
		}
		v, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			logger.Fatal("版本号无效", zap.String("version", args[1]))
		}
		err = mg.Force(v)
	default:
		printUsage()
		os.Exit(2)
	}

	if err != nil {
		logger.Fatal("迁移命令执行失败", zap.String("command", args[0]), zap.Error(err))
	}
}

func printUsage() {
	fmt.Println("Usage: migrate [flags] <command>")
	fmt.Println("Commands: up, down, version, force <version>")
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
