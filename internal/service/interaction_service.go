package service

import (
	"fmt"
	"strings"
	"sync"

	"foodgram/internal/database"
	"foodgram/internal/dto"
	"foodgram/internal/logger"
	"foodgram/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	interactionService     *InteractionService
	interactionServiceOnce sync.Once
)

// InteractionService 收藏与购物车服务
type InteractionService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewInteractionService 创建收藏与购物车服务实例
func NewInteractionService() *InteractionService {
	interactionServiceOnce.Do(func() {
		interactionService = &InteractionService{
			db:     database.GetDB(),
			logger: logger.GetSugaredLogger(),
		}
	})
	return interactionService
}

// AddFavorite 收藏食谱，重复收藏返回冲突
func (s *InteractionService) AddFavorite(userID, recipeID uint) (*dto.ShortRecipeResponse, error) {
	return s.addRelation(userID, recipeID, &model.Favorite{UserID: userID, RecipeID: recipeID},
		&model.Favorite{}, "已经收藏过该食谱")
}

// RemoveFavorite 取消收藏，未收藏返回不存在
func (s *InteractionService) RemoveFavorite(userID, recipeID uint) error {
	return s.removeRelation(userID, recipeID, &model.Favorite{}, "未收藏该食谱")
}

// AddToCart 将食谱加入购物车，重复添加返回冲突
func (s *InteractionService) AddToCart(userID, recipeID uint) (*dto.ShortRecipeResponse, error) {
	return s.addRelation(userID, recipeID, &model.ShoppingCart{UserID: userID, RecipeID: recipeID},
		&model.ShoppingCart{}, "该食谱已在购物车中")
}

// RemoveFromCart 将食谱移出购物车，不在购物车返回不存在
func (s *InteractionService) RemoveFromCart(userID, recipeID uint) error {
	return s.removeRelation(userID, recipeID, &model.ShoppingCart{}, "该食谱不在购物车中")
}

// addRelation 创建用户-食谱关系，同一事务内检查存在性，唯一索引兜底
func (s *InteractionService) addRelation(userID, recipeID uint, row interface{}, query interface{}, conflictMsg string) (*dto.ShortRecipeResponse, error) {
	recipe, err := NewRecipeService().getByID(recipeID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(query).
			Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &ConflictError{Message: conflictMsg}
		}
		return tx.Create(row).Error
	})
	if err != nil {
		return nil, err
	}

	return NewRecipeService().GenerateShortResponse(recipe), nil
}

// removeRelation 删除用户-食谱关系
func (s *InteractionService) removeRelation(userID, recipeID uint, query interface{}, missingMsg string) error {
	if _, err := NewRecipeService().getByID(recipeID); err != nil {
		return err
	}

	result := s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(query)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Message: missingMsg}
	}
	return nil
}

// ShoppingList 聚合购物车内所有食谱的食材用量
// 按(名称, 单位)分组求和，按名称排序
func (s *InteractionService) ShoppingList(userID uint) ([]dto.ShoppingListItem, error) {
	var items []dto.ShoppingListItem
	err := s.db.Model(&model.RecipeIngredient{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// RenderShoppingList 将聚合结果渲染为购物清单文本
func (s *InteractionService) RenderShoppingList(items []dto.ShoppingListItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%s (%s) - %d\n", item.Name, item.MeasurementUnit, item.Total)
	}
	return b.String()
}
