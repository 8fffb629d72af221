package controller

import (
	"foodgram/internal/dto"
	"foodgram/internal/logger"
	"foodgram/internal/service"
	"foodgram/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IngredientApi 食材API控制器
type IngredientApi struct {
	logger            *zap.SugaredLogger
	ingredientService *service.IngredientService
}

// NewIngredientApi 创建食材API控制器
func NewIngredientApi() *IngredientApi {
	return &IngredientApi{
		logger:            logger.GetSugaredLogger(),
		ingredientService: service.NewIngredientService(),
	}
}

// List 获取食材列表，支持按名称前缀搜索
func (api *IngredientApi) List(c *gin.Context) {
	var req dto.IngredientListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		handleBindError(c, err)
		return
	}

	ingredients, err := api.ingredientService.List(&req)
	if err != nil {
		api.logger.Errorf("获取食材列表失败: %v", err)
		handleServiceError(c, err, "获取食材列表失败")
		return
	}

	response.Success(c, "获取成功", gin.H{
		"ingredients": ingredients,
	})
}

// GetByID 根据ID获取食材
func (api *IngredientApi) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ingredient, err := api.ingredientService.GetByID(id)
	if err != nil {
		handleServiceError(c, err, "获取食材失败")
		return
	}

	response.Success(c, "获取成功", gin.H{
		"ingredient": api.ingredientService.GenerateIngredientResponse(ingredient),
	})
}
