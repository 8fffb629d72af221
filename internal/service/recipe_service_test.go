package service

import (
	"testing"

	"foodgram/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRecipe(t *testing.T, authorID uint, name string, tagIDs []uint, items []dto.RecipeIngredientItem) *dto.RecipeResponse {
	t.Helper()
	recipe, err := NewRecipeService().Create(authorID, &dto.RecipeCreateRequest{
		Name:        name,
		Image:       "http://test.local/" + name + ".png",
		Text:        "做法描述",
		CookingTime: 30,
		Ingredients: items,
		TagIDs:      tagIDs,
	})
	require.NoError(t, err)
	return recipe
}

func TestRecipeCreateRoundTrip(t *testing.T) {
	author := createTestUser(t, "recipe_author")
	tag := createTestTag(t, "早餐", "breakfast")
	flour := createTestIngredient(t, "面粉", "g")
	milk := createTestIngredient(t, "牛奶", "ml")

	recipe := createTestRecipe(t, author.ID, "煎饼", []uint{tag.ID}, []dto.RecipeIngredientItem{
		{ID: flour.ID, Amount: intPtr(200)},
		{ID: milk.ID, Amount: intPtr(300)},
	})

	assert.Equal(t, "煎饼", recipe.Name)
	assert.Equal(t, author.ID, recipe.Author.ID)
	assert.False(t, recipe.IsFavorited)
	assert.False(t, recipe.IsInShoppingCart)

	require.Len(t, recipe.Tags, 1)
	assert.Equal(t, "breakfast", recipe.Tags[0].Slug)

	require.Len(t, recipe.Ingredients, 2)
	amounts := map[uint]int{}
	for _, item := range recipe.Ingredients {
		amounts[item.ID] = item.Amount
	}
	assert.Equal(t, 200, amounts[flour.ID])
	assert.Equal(t, 300, amounts[milk.ID])

	// 标签计数随创建递增
	updated, err := NewTagService().GetByID(tag.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.RecipeCount)
}

func TestRecipeCreateValidation(t *testing.T) {
	author := createTestUser(t, "validation_author")
	tag := createTestTag(t, "午餐", "lunch")
	salt := createTestIngredient(t, "盐", "g")

	svc := NewRecipeService()
	base := func() *dto.RecipeCreateRequest {
		return &dto.RecipeCreateRequest{
			Name:        "汤",
			Image:       "http://test.local/soup.png",
			Text:        "做法",
			CookingTime: 10,
			Ingredients: []dto.RecipeIngredientItem{{ID: salt.ID, Amount: intPtr(5)}},
			TagIDs:      []uint{tag.ID},
		}
	}

	t.Run("食材为空", func(t *testing.T) {
		req := base()
		req.Ingredients = nil
		_, err := svc.Create(author.ID, req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "ingredients", verr.Field)
	})

	t.Run("标签为空", func(t *testing.T) {
		req := base()
		req.TagIDs = nil
		_, err := svc.Create(author.ID, req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "tags", verr.Field)
	})

	t.Run("食材重复", func(t *testing.T) {
		req := base()
		req.Ingredients = []dto.RecipeIngredientItem{
			{ID: salt.ID, Amount: intPtr(5)},
			{ID: salt.ID, Amount: intPtr(10)},
		}
		_, err := svc.Create(author.ID, req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("数量缺失", func(t *testing.T) {
		req := base()
		req.Ingredients = []dto.RecipeIngredientItem{{ID: salt.ID}}
		_, err := svc.Create(author.ID, req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("数量为负", func(t *testing.T) {
		req := base()
		req.Ingredients = []dto.RecipeIngredientItem{{ID: salt.ID, Amount: intPtr(-1)}}
		_, err := svc.Create(author.ID, req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("数量为零可以通过", func(t *testing.T) {
		req := base()
		req.Name = "零用量汤"
		req.Ingredients = []dto.RecipeIngredientItem{{ID: salt.ID, Amount: intPtr(0)}}
		recipe, err := svc.Create(author.ID, req)
		require.NoError(t, err)
		require.Len(t, recipe.Ingredients, 1)
		assert.Equal(t, 0, recipe.Ingredients[0].Amount)
	})

	t.Run("食材不存在", func(t *testing.T) {
		req := base()
		req.Ingredients = []dto.RecipeIngredientItem{{ID: 999999, Amount: intPtr(5)}}
		_, err := svc.Create(author.ID, req)
		var nferr *NotFoundError
		require.ErrorAs(t, err, &nferr)
	})
}

func TestRecipeUpdateReplacesSets(t *testing.T) {
	author := createTestUser(t, "update_author")
	tagA := createTestTag(t, "晚餐", "dinner")
	tagB := createTestTag(t, "甜点", "dessert")
	sugar := createTestIngredient(t, "糖", "g")
	butter := createTestIngredient(t, "黄油", "g")

	recipe := createTestRecipe(t, author.ID, "蛋糕", []uint{tagA.ID}, []dto.RecipeIngredientItem{
		{ID: sugar.ID, Amount: intPtr(100)},
	})

	updated, err := NewRecipeService().Update(recipe.ID, author.ID, "user", &dto.RecipeUpdateRequest{
		Name:        "黄油蛋糕",
		Text:        "新做法",
		CookingTime: 45,
		Ingredients: []dto.RecipeIngredientItem{{ID: butter.ID, Amount: intPtr(50)}},
		TagIDs:      []uint{tagB.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, "黄油蛋糕", updated.Name)
	// 图片未提供时保留原值
	assert.Equal(t, recipe.Image, updated.Image)

	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, butter.ID, updated.Ingredients[0].ID)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, tagB.ID, updated.Tags[0].ID)

	// 旧标签计数归零，新标签计数递增
	oldTag, err := NewTagService().GetByID(tagA.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, oldTag.RecipeCount)
	newTag, err := NewTagService().GetByID(tagB.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, newTag.RecipeCount)
}

func TestRecipePermission(t *testing.T) {
	author := createTestUser(t, "perm_author")
	other := createTestUser(t, "perm_other")
	tag := createTestTag(t, "夜宵", "night")
	noodle := createTestIngredient(t, "面条", "g")

	recipe := createTestRecipe(t, author.ID, "炒面", []uint{tag.ID}, []dto.RecipeIngredientItem{
		{ID: noodle.ID, Amount: intPtr(150)},
	})

	req := &dto.RecipeUpdateRequest{
		Name:        "改名",
		Text:        "做法",
		CookingTime: 5,
		Ingredients: []dto.RecipeIngredientItem{{ID: noodle.ID, Amount: intPtr(1)}},
		TagIDs:      []uint{tag.ID},
	}

	_, err := NewRecipeService().Update(recipe.ID, other.ID, "user", req)
	var ferr *ForbiddenError
	require.ErrorAs(t, err, &ferr)

	// 管理员可以修改他人食谱
	_, err = NewRecipeService().Update(recipe.ID, other.ID, "admin", req)
	require.NoError(t, err)

	err = NewRecipeService().Delete(recipe.ID, other.ID, "user")
	require.ErrorAs(t, err, &ferr)
	require.NoError(t, NewRecipeService().Delete(recipe.ID, author.ID, "user"))

	_, err = NewRecipeService().GetDetail(recipe.ID, 0)
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestRecipeListFilters(t *testing.T) {
	author := createTestUser(t, "filter_author")
	viewer := createTestUser(t, "filter_viewer")
	tagSpicy := createTestTag(t, "辣味", "spicy")
	tagSweet := createTestTag(t, "甜味", "sweet")
	pepper := createTestIngredient(t, "辣椒", "g")

	spicyRecipe := createTestRecipe(t, author.ID, "辣子鸡", []uint{tagSpicy.ID}, []dto.RecipeIngredientItem{
		{ID: pepper.ID, Amount: intPtr(30)},
	})
	createTestRecipe(t, author.ID, "糖醋排骨", []uint{tagSweet.ID}, []dto.RecipeIngredientItem{
		{ID: pepper.ID, Amount: intPtr(5)},
	})

	svc := NewRecipeService()

	t.Run("按标签过滤", func(t *testing.T) {
		result, err := svc.List(&dto.RecipeListRequest{Tags: []string{"spicy"}}, 0)
		require.NoError(t, err)
		require.Equal(t, int64(1), result.Total)
		assert.Equal(t, spicyRecipe.ID, result.List[0].ID)
	})

	t.Run("多标签为并集", func(t *testing.T) {
		result, err := svc.List(&dto.RecipeListRequest{Tags: []string{"spicy", "sweet"}}, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Total)
	})

	t.Run("按作者过滤", func(t *testing.T) {
		result, err := svc.List(&dto.RecipeListRequest{Author: author.ID}, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Total)
	})

	t.Run("收藏过滤只对登录用户生效", func(t *testing.T) {
		_, err := NewInteractionService().AddFavorite(viewer.ID, spicyRecipe.ID)
		require.NoError(t, err)

		result, err := svc.List(&dto.RecipeListRequest{Author: author.ID, IsFavorited: "true"}, viewer.ID)
		require.NoError(t, err)
		require.Equal(t, int64(1), result.Total)
		assert.Equal(t, spicyRecipe.ID, result.List[0].ID)
		assert.True(t, result.List[0].IsFavorited)

		// 匿名访问时该过滤是无操作
		anon, err := svc.List(&dto.RecipeListRequest{Author: author.ID, IsFavorited: "true"}, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), anon.Total)
	})
}
