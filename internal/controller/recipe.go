package controller

import (
	"net/http"

	"foodgram/internal/dto"
	"foodgram/internal/logger"
	"foodgram/internal/middleware"
	"foodgram/internal/service"
	"foodgram/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecipeApi 食谱API控制器
type RecipeApi struct {
	logger             *zap.SugaredLogger
	recipeService      *service.RecipeService
	interactionService *service.InteractionService
}

// NewRecipeApi 创建食谱API控制器
func NewRecipeApi() *RecipeApi {
	return &RecipeApi{
		logger:             logger.GetSugaredLogger(),
		recipeService:      service.NewRecipeService(),
		interactionService: service.NewInteractionService(),
	}
}

// Create 创建食谱
func (api *RecipeApi) Create(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "用户未登录", err)
		return
	}

	var req dto.RecipeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	recipe, err := api.recipeService.Create(userID, &req)
	if err != nil {
		api.logger.Errorf("创建食谱失败: %v", err)
		handleServiceError(c, err, "创建食谱失败")
		return
	}

	response.Created(c, "创建成功", gin.H{"recipe": recipe})
}

// Update 更新食谱，PUT与PATCH均为整体替换
func (api *RecipeApi) Update(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "用户未登录", err)
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RecipeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	recipe, err := api.recipeService.Update(id, userID, role, &req)
	if err != nil {
		api.logger.Errorf("更新食谱失败: %v", err)
		handleServiceError(c, err, "更新食谱失败")
		return
	}

	response.Success(c, "更新成功", gin.H{"recipe": recipe})
}

// Delete 删除食谱
func (api *RecipeApi) Delete(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "用户未登录", err)
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := api.recipeService.Delete(id, userID, role); err != nil {
		api.logger.Errorf("删除食谱失败: %v", err)
		handleServiceError(c, err, "删除食谱失败")
		return
	}

	response.NoContent(c)
}

// GetByID 获取食谱详情
func (api *RecipeApi) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// 匿名访问时userID为0，收藏和购物车标志为false
	userID, _ := middleware.GetUserID(c)

	recipe, err := api.recipeService.GetDetail(id, userID)
	if err != nil {
		handleServiceError(c, err, "获取食谱失败")
		return
	}

	response.Success(c, "获取成功", gin.H{"recipe": recipe})
}

// List 获取食谱列表
func (api *RecipeApi) List(c *gin.Context) {
	var req dto.RecipeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		handleBindError(c, err)
		return
	}

	userID, _ := middleware.GetUserID(c)

	result, err := api.recipeService.List(&req, userID)
	if err != nil {
		api.logger.Errorf("获取食谱列表失败: %v", err)
		handleServiceError(c, err, "获取食谱列表失败")
		return
	}

	response.SuccessPage(c, "获取成功", result.List, req.Page, req.PageSize, result.Total)
}

// AddFavorite 收藏食谱
func (api *RecipeApi) AddFavorite(c *gin.Context) {
	api.addRelation(c, api.interactionService.AddFavorite, "收藏成功", "收藏失败")
}

// RemoveFavorite 取消收藏
func (api *RecipeApi) RemoveFavorite(c *gin.Context) {
	api.removeRelation(c, api.interactionService.RemoveFavorite, "取消收藏失败")
}

// AddToCart 加入购物车
func (api *RecipeApi) AddToCart(c *gin.Context) {
	api.addRelation(c, api.interactionService.AddToCart, "已加入购物车", "加入购物车失败")
}

// RemoveFromCart 移出购物车
func (api *RecipeApi) RemoveFromCart(c *gin.Context) {
	api.removeRelation(c, api.interactionService.RemoveFromCart, "移出购物车失败")
}

func (api *RecipeApi) addRelation(c *gin.Context, action func(userID, recipeID uint) (*dto.ShortRecipeResponse, error), okMsg, failMsg string) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "用户未登录", err)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	recipe, err := action(userID, id)
	if err != nil {
		handleServiceError(c, err, failMsg)
		return
	}

	response.Created(c, okMsg, gin.H{"recipe": recipe})
}

func (api *RecipeApi) removeRelation(c *gin.Context, action func(userID, recipeID uint) error, failMsg string) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "用户未登录", err)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := action(userID, id); err != nil {
		handleServiceError(c, err, failMsg)
		return
	}

	response.NoContent(c)
}

// DownloadShoppingCart 下载购物清单
// 聚合购物车内全部食材用量，以文本附件返回，空购物车返回空文件
func (api *RecipeApi) DownloadShoppingCart(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "用户未登录", err)
		return
	}

	items, err := api.interactionService.ShoppingList(userID)
	if err != nil {
		api.logger.Errorf("生成购物清单失败: %v", err)
		handleServiceError(c, err, "生成购物清单失败")
		return
	}

	content := api.interactionService.RenderShoppingList(items)
	c.Header("Content-Disposition", `attachment; filename="shopping_list.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}
