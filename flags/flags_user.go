package flags

import (
	"fmt"

	"foodgram/internal/database"
	"foodgram/internal/logger"
	"foodgram/internal/model"
	"foodgram/utils"

	"github.com/urfave/cli/v2"
)

// User 创建用户，默认创建管理员
func User(c *cli.Context) error {
	username := c.String("username")
	email := c.String("email")
	password := c.String("password")
	role := c.String("role")
	if role != "admin" && role != "user" {
		return fmt.Errorf("无效的角色: %s", role)
	}

	db := database.GetDB()

	var count int64
	if err := db.Model(&model.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("用户名或邮箱已存在: %s", username)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Role:     role,
		Status:   1,
	}
	if err := db.Create(user).Error; err != nil {
		logger.GetSugaredLogger().Errorf("创建用户失败: %v", err)
		return err
	}

	logger.GetSugaredLogger().Infof("创建用户成功: %s (%s)", username, role)
	return nil
}
