package main

import (
	"fmt"

	"foodgram/flags"
	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/logger"
	"foodgram/internal/router"
	"foodgram/internal/service"
	"foodgram/pkg/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// 初始化配置
	if err := config.Init("."); err != nil {
		panic(fmt.Sprintf("初始化配置失败: %v", err))
	}
	// 初始化日志
	if err := logger.Init(); err != nil {
		panic(fmt.Sprintf("初始化日志失败: %v", err))
	}
	defer logger.Close()

	// 初始化数据库
	database.GetDB()
	// 初始化图片存储
	imageCfg := config.GlobalConfig.Image
	if err := storage.Init(imageCfg.Snowflake.StartTime, imageCfg.Snowflake.MachineID); err != nil {
		logger.GetSugaredLogger().Fatalf("初始化图片存储失败: %v", err)
	}

	// 初始化命令行参数，有命令时执行后退出
	flags.Newflags()

	// 初始化定时任务
	service.CronInit()

	// 初始化路由并启动服务
	gin.SetMode(config.GlobalConfig.App.Mode)
	r := gin.New()
	r.Use(logger.GinLogger(), gin.Recovery())
	router.Setup(r)

	if err := r.Run(fmt.Sprintf(":%d", config.GlobalConfig.App.Port)); err != nil {
		logger.GetSugaredLogger().Fatalf("启动服务失败: %v", err)
	}
}
