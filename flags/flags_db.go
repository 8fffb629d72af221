package flags

import (
	"foodgram/internal/database"
	"foodgram/internal/logger"
	"foodgram/internal/model"

	"github.com/urfave/cli/v2"
)

// DB 生成数据库表结构
func DB(c *cli.Context) error {
	if err := model.InitTables(database.GetDB()); err != nil {
		logger.GetSugaredLogger().Errorf("生成数据库表结构失败: %v", err)
		return err
	}
	logger.GetSugaredLogger().Info("生成数据库表结构成功")
	return nil
}
