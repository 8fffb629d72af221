package controller

import (
	"foodgram/internal/dto"
	"foodgram/internal/logger"
	"foodgram/internal/service"
	"foodgram/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TagApi 标签API控制器
type TagApi struct {
	logger     *zap.SugaredLogger
	tagService *service.TagService
}

// NewTagApi 创建标签API控制器
func NewTagApi() *TagApi {
	return &TagApi{
		logger:     logger.GetSugaredLogger(),
		tagService: service.NewTagService(),
	}
}

// Create 创建标签
func (api *TagApi) Create(c *gin.Context) {
	var req dto.TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	tag, err := api.tagService.Create(&req)
	if err != nil {
		api.logger.Errorf("创建标签失败: %v", err)
		handleServiceError(c, err, "创建标签失败")
		return
	}

	response.Created(c, "创建成功", gin.H{
		"tag": api.tagService.GenerateTagResponse(tag),
	})
}

// Update 更新标签
func (api *TagApi) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.TagUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	tag, err := api.tagService.Update(id, &req)
	if err != nil {
		api.logger.Errorf("更新标签失败: %v", err)
		handleServiceError(c, err, "更新标签失败")
		return
	}

	response.Success(c, "更新成功", gin.H{
		"tag": api.tagService.GenerateTagResponse(tag),
	})
}

// Delete 删除标签
func (api *TagApi) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := api.tagService.Delete(id); err != nil {
		api.logger.Errorf("删除标签失败: %v", err)
		handleServiceError(c, err, "删除标签失败")
		return
	}

	response.NoContent(c)
}

// GetByID 根据ID获取标签
func (api *TagApi) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tag, err := api.tagService.GetByID(id)
	if err != nil {
		handleServiceError(c, err, "获取标签失败")
		return
	}

	response.Success(c, "获取成功", gin.H{
		"tag": api.tagService.GenerateTagResponse(tag),
	})
}

// List 获取标签列表
func (api *TagApi) List(c *gin.Context) {
	tags, err := api.tagService.List()
	if err != nil {
		api.logger.Errorf("获取标签列表失败: %v", err)
		handleServiceError(c, err, "获取标签列表失败")
		return
	}

	response.Success(c, "获取成功", tags)
}
