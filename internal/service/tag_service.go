package service

import (
	"errors"
	"sync"

	"foodgram/internal/database"
	"foodgram/internal/dto"
	"foodgram/internal/logger"
	"foodgram/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	tagService     *TagService
	tagServiceOnce sync.Once
)

// TagService 标签服务
type TagService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewTagService 创建标签服务实例
func NewTagService() *TagService {
	tagServiceOnce.Do(func() {
		tagService = &TagService{
			db:     database.GetDB(),
			logger: logger.GetSugaredLogger(),
		}
	})
	return tagService
}

// Create 创建标签
func (s *TagService) Create(req *dto.TagCreateRequest) (*model.Tag, error) {
	// 检查标签名和slug是否已存在
	var count int64
	if err := s.db.Model(&model.Tag{}).Where("name = ? OR slug = ?", req.Name, req.Slug).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &ConflictError{Message: "标签名或slug已存在"}
	}

	tag := &model.Tag{
		Name:  req.Name,
		Color: req.Color,
		Slug:  req.Slug,
	}

	if err := s.db.Create(tag).Error; err != nil {
		return nil, err
	}

	return tag, nil
}

// Update 更新标签
func (s *TagService) Update(id uint, req *dto.TagUpdateRequest) (*model.Tag, error) {
	tag, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	// 检查新标签名和slug是否与其他标签冲突
	var count int64
	if err := s.db.Model(&model.Tag{}).
		Where("(name = ? OR slug = ?) AND id != ?", req.Name, req.Slug, id).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &ConflictError{Message: "标签名或slug已存在"}
	}

	if err := s.db.Model(tag).Updates(map[string]interface{}{
		"name":  req.Name,
		"color": req.Color,
		"slug":  req.Slug,
	}).Error; err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// Delete 删除标签
func (s *TagService) Delete(id uint) error {
	tag, err := s.GetByID(id)
	if err != nil {
		return err
	}

	// 有关联食谱的标签不允许删除
	if tag.RecipeCount > 0 {
		return &ConflictError{Message: "该标签下还有关联的食谱，无法删除"}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&model.RecipeTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(tag).Error
	})
}

// GetByID 根据ID获取标签
func (s *TagService) GetByID(id uint) (*model.Tag, error) {
	var tag model.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "标签不存在"}
		}
		return nil, err
	}
	return &tag, nil
}

// List 获取全部标签，数量有限不分页
func (s *TagService) List() (*dto.TagListResponse, error) {
	var tags []model.Tag
	if err := s.db.Order("id").Find(&tags).Error; err != nil {
		return nil, err
	}

	resp := &dto.TagListResponse{
		Total: int64(len(tags)),
		List:  make([]dto.TagResponse, 0, len(tags)),
	}
	for _, tag := range tags {
		resp.List = append(resp.List, *s.GenerateTagResponse(&tag))
	}
	return resp, nil
}

// UpdateTagRecipeCount 更新标签的食谱计数
func (s *TagService) UpdateTagRecipeCount(tx *gorm.DB, tagID uint) error {
	db := tx
	if db == nil {
		db = s.db
	}

	var count int64
	if err := db.Model(&model.RecipeTag{}).
		Where("tag_id = ?", tagID).
		Count(&count).Error; err != nil {
		return err
	}

	return db.Model(&model.Tag{}).Where("id = ?", tagID).Update("recipe_count", count).Error
}

// UpdateMultipleTagRecipeCount 批量更新多个标签的食谱计数
func (s *TagService) UpdateMultipleTagRecipeCount(tx *gorm.DB, tagIDs []uint) error {
	for _, tagID := range tagIDs {
		if err := s.UpdateTagRecipeCount(tx, tagID); err != nil {
			return err
		}
	}
	return nil
}

// SyncAllTagRecipeCount 同步所有标签的食谱计数
func (s *TagService) SyncAllTagRecipeCount() error {
	var tags []model.Tag
	if err := s.db.Find(&tags).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, tag := range tags {
			if err := s.UpdateTagRecipeCount(tx, tag.ID); err != nil {
				s.logger.Errorf("更新标签 %d (%s) 食谱计数失败: %v", tag.ID, tag.Name, err)
				return err
			}
		}
		return nil
	})
}

// GenerateTagResponse 生成标签响应DTO
func (s *TagService) GenerateTagResponse(tag *model.Tag) *dto.TagResponse {
	return &dto.TagResponse{
		ID:          tag.ID,
		Name:        tag.Name,
		Color:       tag.Color,
		Slug:        tag.Slug,
		RecipeCount: tag.RecipeCount,
	}
}
