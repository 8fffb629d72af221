package service

import (
	"os"
	"testing"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/logger"
	"foodgram/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	config.GlobalConfig = &config.Config{
		JWT: config.JWTConfig{
			SecretKey:            "test-secret",
			AccessExpireSeconds:  3600,
			RefreshExpireSeconds: 7200,
			Issuer:               "foodgram-test",
		},
		Log: config.LogConfig{Level: "error"},
	}
	logger.InitLogger(&config.GlobalConfig.Log)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}
	if err := model.InitTables(db); err != nil {
		panic(err)
	}
	database.Use(db)

	os.Exit(m.Run())
}

// 测试数据构造辅助

func createTestUser(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username: username,
		Password: "hashed",
		Email:    username + "@test.local",
		Role:     "user",
		Status:   1,
	}
	if err := database.GetDB().Create(user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return user
}

func createTestTag(t *testing.T, name, slug string) *model.Tag {
	t.Helper()
	tag := &model.Tag{Name: name, Color: "#E26C2D", Slug: slug}
	if err := database.GetDB().Create(tag).Error; err != nil {
		t.Fatalf("创建测试标签失败: %v", err)
	}
	return tag
}

func createTestIngredient(t *testing.T, name, unit string) *model.Ingredient {
	t.Helper()
	ingredient := &model.Ingredient{Name: name, MeasurementUnit: unit}
	if err := database.GetDB().Create(ingredient).Error; err != nil {
		t.Fatalf("创建测试食材失败: %v", err)
	}
	return ingredient
}

func intPtr(v int) *int {
	return &v
}
