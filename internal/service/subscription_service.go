package service

import (
	"sync"

	"foodgram/internal/database"
	"foodgram/internal/dto"
	"foodgram/internal/logger"
	"foodgram/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	subscriptionService     *SubscriptionService
	subscriptionServiceOnce sync.Once
)

// SubscriptionService 订阅服务
type SubscriptionService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewSubscriptionService 创建订阅服务实例
func NewSubscriptionService() *SubscriptionService {
	subscriptionServiceOnce.Do(func() {
		subscriptionService = &SubscriptionService{
			db:     database.GetDB(),
			logger: logger.GetSugaredLogger(),
		}
	})
	return subscriptionService
}

// Subscribe 订阅作者
// recipesLimit限制返回的食谱数量，-1表示不限制
func (s *SubscriptionService) Subscribe(userID, authorID uint, recipesLimit int) (*dto.SubscribeResponse, error) {
	if userID == authorID {
		return nil, &ValidationError{Field: "author", Message: "不能订阅自己"}
	}

	author, err := NewUserService().GetByID(authorID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&model.Subscribe{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &ConflictError{Message: "已经订阅过该作者"}
	}

	sub := &model.Subscribe{
		UserID:   userID,
		AuthorID: authorID,
	}
	if err := s.db.Create(sub).Error; err != nil {
		return nil, err
	}

	return s.GenerateSubscribeResponse(author, userID, recipesLimit)
}

// Unsubscribe 取消订阅
func (s *SubscriptionService) Unsubscribe(userID, authorID uint) error {
	result := s.db.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&model.Subscribe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Message: "未订阅该作者"}
	}
	return nil
}

// List 获取当前用户订阅的作者列表
func (s *SubscriptionService) List(userID uint, req *dto.SubscriptionListRequest, recipesLimit int) (*dto.SubscriptionListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	query := s.db.Model(&model.Subscribe{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var subs []model.Subscribe
	if err := query.Preload("Author").
		Order("id DESC").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Find(&subs).Error; err != nil {
		return nil, err
	}

	resp := &dto.SubscriptionListResponse{
		Total: total,
		List:  make([]dto.SubscribeResponse, 0, len(subs)),
	}
	for i := range subs {
		item, err := s.GenerateSubscribeResponse(&subs[i].Author, userID, recipesLimit)
		if err != nil {
			return nil, err
		}
		resp.List = append(resp.List, *item)
	}
	return resp, nil
}

// GenerateSubscribeResponse 生成订阅作者响应
// recipes受recipesLimit限制，recipes_count始终为作者食谱总数
func (s *SubscriptionService) GenerateSubscribeResponse(author *model.User, currentUserID uint, recipesLimit int) (*dto.SubscribeResponse, error) {
	var recipesCount int64
	if err := s.db.Model(&model.Recipe{}).
		Where("author_id = ?", author.ID).
		Count(&recipesCount).Error; err != nil {
		return nil, err
	}

	recipeQuery := s.db.Where("author_id = ?", author.ID).Order("id DESC")
	if recipesLimit >= 0 {
		recipeQuery = recipeQuery.Limit(recipesLimit)
	}

	var recipes []model.Recipe
	if err := recipeQuery.Find(&recipes).Error; err != nil {
		return nil, err
	}

	shorts := make([]dto.ShortRecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		shorts = append(shorts, dto.ShortRecipeResponse{
			ID:          recipe.ID,
			Name:        recipe.Name,
			Image:       recipe.Image,
			CookingTime: recipe.CookingTime,
		})
	}

	return &dto.SubscribeResponse{
		UserResponse: *NewUserService().GenerateUserResponse(author, currentUserID),
		Recipes:      shorts,
		RecipesCount: recipesCount,
	}, nil
}
