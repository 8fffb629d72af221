package service

import (
	"foodgram/internal/logger"

	"github.com/robfig/cron/v3"
)

// CronInit 初始化定时任务
// 标签的食谱计数冗余存储，每天凌晨全量对账一次
func CronInit() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 3 * * *", func() {
		if err := NewTagService().SyncAllTagRecipeCount(); err != nil {
			logger.GetSugaredLogger().Errorf("同步标签食谱计数失败: %v", err)
		}
	})
	if err != nil {
		logger.GetSugaredLogger().Errorf("注册定时任务失败: %v", err)
		return
	}

	c.Start()
}
