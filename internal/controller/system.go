package controller

import (
	"foodgram/internal/config"
	"foodgram/internal/logger"
	"foodgram/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/mojocn/base64Captcha"
	"go.uber.org/zap"
)

// 验证码存储，内存实现，单实例部署足够
var captchaStore = base64Captcha.DefaultMemStore

// SystemApi 系统API控制器
type SystemApi struct {
	logger *zap.SugaredLogger
}

// NewSystemApi 创建系统API控制器
func NewSystemApi() *SystemApi {
	return &SystemApi{
		logger: logger.GetSugaredLogger(),
	}
}

// CreateCaptcha 生成数字验证码
func (api *SystemApi) CreateCaptcha(c *gin.Context) {
	cfg := config.GlobalConfig.Captcha
	driver := base64Captcha.NewDriverDigit(cfg.ImgHeight, cfg.ImgWidth, cfg.KeyLong, 0.7, 80)
	captcha := base64Captcha.NewCaptcha(driver, captchaStore)

	id, b64s, _, err := captcha.Generate()
	if err != nil {
		api.logger.Errorf("生成验证码失败: %v", err)
		response.InternalServerError(c, "生成验证码失败", err)
		return
	}

	response.Success(c, "获取成功", gin.H{
		"captcha_id": id,
		"pic_path":   b64s,
	})
}

// verifyCaptcha 校验验证码，未开启时直接通过
func verifyCaptcha(id, answer string) bool {
	if config.GlobalConfig == nil || !config.GlobalConfig.Captcha.Open {
		return true
	}
	if id == "" || answer == "" {
		return false
	}
	return captchaStore.Verify(id, answer, true)
}
