package service

import (
	"errors"
	"sync"

	"foodgram/internal/database"
	"foodgram/internal/dto"
	"foodgram/internal/logger"
	"foodgram/internal/model"
	"foodgram/pkg/imagecodec"
	"foodgram/pkg/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	recipeService     *RecipeService
	recipeServiceOnce sync.Once
)

// RecipeService 食谱服务
type RecipeService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewRecipeService 创建食谱服务实例
func NewRecipeService() *RecipeService {
	recipeServiceOnce.Do(func() {
		recipeService = &RecipeService{
			db:     database.GetDB(),
			logger: logger.GetSugaredLogger(),
		}
	})
	return recipeService
}

// validatePayload 校验食谱载荷中的食材和标签
// 数量缺失或为负数拒绝，重复食材拒绝，引用不存在的食材拒绝
func (s *RecipeService) validatePayload(ingredients []dto.RecipeIngredientItem, tagIDs []uint) error {
	if len(ingredients) == 0 {
		return &ValidationError{Field: "ingredients", Message: "食材不能为空"}
	}
	if len(tagIDs) == 0 {
		return &ValidationError{Field: "tags", Message: "标签不能为空"}
	}

	seen := make(map[uint]struct{}, len(ingredients))
	ids := make([]uint, 0, len(ingredients))
	for _, item := range ingredients {
		if item.Amount == nil {
			return &ValidationError{Field: "ingredients", Message: "食材数量不能为空"}
		}
		if *item.Amount < 0 {
			return &ValidationError{Field: "ingredients", Message: "食材数量不能为负数"}
		}
		if _, ok := seen[item.ID]; ok {
			return &ValidationError{Field: "ingredients", Message: "食材不能重复"}
		}
		seen[item.ID] = struct{}{}
		ids = append(ids, item.ID)
	}

	var count int64
	if err := s.db.Model(&model.Ingredient{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return &NotFoundError{Message: "引用的食材不存在"}
	}

	tagSeen := make(map[uint]struct{}, len(tagIDs))
	for _, tagID := range tagIDs {
		if _, ok := tagSeen[tagID]; ok {
			return &ValidationError{Field: "tags", Message: "标签不能重复"}
		}
		tagSeen[tagID] = struct{}{}
	}

	if err := s.db.Model(&model.Tag{}).Where("id IN ?", tagIDs).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(tagIDs)) {
		return &NotFoundError{Message: "引用的标签不存在"}
	}

	return nil
}

// saveImage 保存图片，data URI解码后落盘，其他形式原样保留
func (s *RecipeService) saveImage(image string) (string, error) {
	if !imagecodec.IsDataURI(image) {
		return image, nil
	}

	data, ext, err := imagecodec.Decode(image)
	if err != nil {
		return "", &ValidationError{Field: "image", Message: "图片格式不正确"}
	}

	url, err := storage.SaveImage(data, ext)
	if err != nil {
		s.logger.Errorf("保存图片失败: %v", err)
		return "", err
	}
	return url, nil
}

// Create 创建食谱
func (s *RecipeService) Create(userID uint, req *dto.RecipeCreateRequest) (*dto.RecipeResponse, error) {
	if err := s.validatePayload(req.Ingredients, req.TagIDs); err != nil {
		return nil, err
	}

	imageURL, err := s.saveImage(req.Image)
	if err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		Name:        req.Name,
		Image:       imageURL,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		AuthorID:    userID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		if err := s.replaceIngredients(tx, recipe.ID, req.Ingredients); err != nil {
			return err
		}
		return s.replaceTags(tx, recipe, req.TagIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetDetail(recipe.ID, userID)
}

// Update 更新食谱，食材与标签整体替换
func (s *RecipeService) Update(id, userID uint, role string, req *dto.RecipeUpdateRequest) (*dto.RecipeResponse, error) {
	recipe, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkPermission(recipe, userID, role); err != nil {
		return nil, err
	}
	if err := s.validatePayload(req.Ingredients, req.TagIDs); err != nil {
		return nil, err
	}

	imageURL := recipe.Image
	if req.Image != "" {
		imageURL, err = s.saveImage(req.Image)
		if err != nil {
			return nil, err
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(recipe).Updates(map[string]interface{}{
			"name":         req.Name,
			"image":        imageURL,
			"text":         req.Text,
			"cooking_time": req.CookingTime,
		}).Error; err != nil {
			return err
		}
		if err := s.replaceIngredients(tx, recipe.ID, req.Ingredients); err != nil {
			return err
		}
		return s.replaceTags(tx, recipe, req.TagIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetDetail(id, userID)
}

// Delete 删除食谱及其关联数据
func (s *RecipeService) Delete(id, userID uint, role string) error {
	recipe, err := s.getByID(id)
	if err != nil {
		return err
	}
	if err := s.checkPermission(recipe, userID, role); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var tagIDs []uint
		if err := tx.Model(&model.RecipeTag{}).
			Where("recipe_id = ?", id).
			Pluck("tag_id", &tagIDs).Error; err != nil {
			return err
		}

		for _, m := range []interface{}{
			&model.RecipeIngredient{}, &model.RecipeTag{}, &model.Favorite{}, &model.ShoppingCart{},
		} {
			if err := tx.Where("recipe_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(recipe).Error; err != nil {
			return err
		}

		return NewTagService().UpdateMultipleTagRecipeCount(tx, tagIDs)
	})
}

// replaceIngredients 整体替换食谱的食材列表
func (s *RecipeService) replaceIngredients(tx *gorm.DB, recipeID uint, items []dto.RecipeIngredientItem) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeIngredient{}).Error; err != nil {
		return err
	}

	rows := make([]model.RecipeIngredient, 0, len(items))
	for _, item := range items {
		rows = append(rows, model.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: item.ID,
			Amount:       *item.Amount,
		})
	}
	return tx.Create(&rows).Error
}

// replaceTags 整体替换食谱的标签并刷新标签计数
func (s *RecipeService) replaceTags(tx *gorm.DB, recipe *model.Recipe, tagIDs []uint) error {
	var oldTagIDs []uint
	if err := tx.Model(&model.RecipeTag{}).
		Where("recipe_id = ?", recipe.ID).
		Pluck("tag_id", &oldTagIDs).Error; err != nil {
		return err
	}

	if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&model.RecipeTag{}).Error; err != nil {
		return err
	}

	rows := make([]model.RecipeTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, model.RecipeTag{RecipeID: recipe.ID, TagID: tagID})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return err
	}

	// 新旧标签的计数都需要刷新
	affected := append(oldTagIDs, tagIDs...)
	return NewTagService().UpdateMultipleTagRecipeCount(tx, affected)
}

// checkPermission 只有作者本人或管理员可以修改食谱
func (s *RecipeService) checkPermission(recipe *model.Recipe, userID uint, role string) error {
	if recipe.AuthorID != userID && role != "admin" {
		return &ForbiddenError{Message: "没有操作权限"}
	}
	return nil
}

// getByID 根据ID获取食谱模型
func (s *RecipeService) getByID(id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "食谱不存在"}
		}
		return nil, err
	}
	return &recipe, nil
}

// GetDetail 获取食谱详情
func (s *RecipeService) GetDetail(id, currentUserID uint) (*dto.RecipeResponse, error) {
	var recipe model.Recipe
	err := s.db.Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "食谱不存在"}
		}
		return nil, err
	}

	flags, err := s.interactionFlags([]uint{id}, currentUserID)
	if err != nil {
		return nil, err
	}
	return s.generateRecipeResponse(&recipe, currentUserID, flags), nil
}

// List 获取食谱列表，支持标签、作者、收藏、购物车过滤
func (s *RecipeService) List(req *dto.RecipeListRequest, currentUserID uint) (*dto.RecipeListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	query := s.db.Model(&model.Recipe{})

	if len(req.Tags) > 0 {
		query = query.Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", req.Tags)
	}
	if req.Author > 0 {
		query = query.Where("recipes.author_id = ?", req.Author)
	}
	// 收藏和购物车过滤只对已登录用户生效，匿名时忽略
	if req.IsFavorited == "true" && currentUserID > 0 {
		query = query.Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
			Where("favorites.user_id = ?", currentUserID)
	}
	if req.IsInShoppingCart == "true" && currentUserID > 0 {
		query = query.Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipes.id").
			Where("shopping_carts.user_id = ?", currentUserID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).
		Distinct("recipes.id").
		Count(&total).Error; err != nil {
		return nil, err
	}

	// 先取分页内的ID，再预加载完整关联，避免JOIN放大
	var ids []uint
	if err := query.Session(&gorm.Session{}).
		Distinct("recipes.id").
		Order("recipes.id DESC").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Pluck("recipes.id", &ids).Error; err != nil {
		return nil, err
	}

	resp := &dto.RecipeListResponse{
		Total: total,
		List:  make([]dto.RecipeResponse, 0, len(ids)),
	}
	if len(ids) == 0 {
		return resp, nil
	}

	var recipes []model.Recipe
	if err := s.db.Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Where("id IN ?", ids).
		Order("id DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	flags, err := s.interactionFlags(ids, currentUserID)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		resp.List = append(resp.List, *s.generateRecipeResponse(&recipes[i], currentUserID, flags))
	}
	return resp, nil
}

// interactionFlags 批量查询当前用户对一组食谱的收藏和购物车状态
type recipeFlags struct {
	favorited map[uint]bool
	inCart    map[uint]bool
}

func (s *RecipeService) interactionFlags(recipeIDs []uint, userID uint) (*recipeFlags, error) {
	flags := &recipeFlags{
		favorited: make(map[uint]bool),
		inCart:    make(map[uint]bool),
	}
	if userID == 0 || len(recipeIDs) == 0 {
		return flags, nil
	}

	var favIDs []uint
	if err := s.db.Model(&model.Favorite{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &favIDs).Error; err != nil {
		return nil, err
	}
	for _, id := range favIDs {
		flags.favorited[id] = true
	}

	var cartIDs []uint
	if err := s.db.Model(&model.ShoppingCart{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &cartIDs).Error; err != nil {
		return nil, err
	}
	for _, id := range cartIDs {
		flags.inCart[id] = true
	}
	return flags, nil
}

// generateRecipeResponse 生成食谱响应DTO
func (s *RecipeService) generateRecipeResponse(recipe *model.Recipe, currentUserID uint, flags *recipeFlags) *dto.RecipeResponse {
	tagService := NewTagService()
	tags := make([]dto.TagResponse, 0, len(recipe.Tags))
	for i := range recipe.Tags {
		tags = append(tags, *tagService.GenerateTagResponse(&recipe.Tags[i]))
	}

	ingredients := make([]dto.RecipeIngredientResponse, 0, len(recipe.Ingredients))
	for _, ri := range recipe.Ingredients {
		ingredients = append(ingredients, dto.RecipeIngredientResponse{
			ID:              ri.IngredientID,
			Name:            ri.Ingredient.Name,
			MeasurementUnit: ri.Ingredient.MeasurementUnit,
			Amount:          ri.Amount,
		})
	}

	return &dto.RecipeResponse{
		ID:               recipe.ID,
		Tags:             tags,
		Author:           *NewUserService().GenerateUserResponse(&recipe.Author, currentUserID),
		Ingredients:      ingredients,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
		IsFavorited:      flags.favorited[recipe.ID],
		IsInShoppingCart: flags.inCart[recipe.ID],
		CreatedAt:        recipe.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GenerateShortResponse 生成食谱简要响应
func (s *RecipeService) GenerateShortResponse(recipe *model.Recipe) *dto.ShortRecipeResponse {
	return &dto.ShortRecipeResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}
}
