package service

import (
	"testing"

	"foodgram/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteToggle(t *testing.T) {
	author := createTestUser(t, "fav_author")
	user := createTestUser(t, "fav_user")
	tag := createTestTag(t, "烧烤", "grill")
	meat := createTestIngredient(t, "牛肉", "g")

	recipe := createTestRecipe(t, author.ID, "烤牛肉", []uint{tag.ID}, []dto.RecipeIngredientItem{
		{ID: meat.ID, Amount: intPtr(500)},
	})

	svc := NewInteractionService()

	short, err := svc.AddFavorite(user.ID, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, short.ID)
	assert.Equal(t, recipe.Name, short.Name)

	detail, err := NewRecipeService().GetDetail(recipe.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, detail.IsFavorited)

	// 重复收藏冲突
	_, err = svc.AddFavorite(user.ID, recipe.ID)
	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)

	require.NoError(t, svc.RemoveFavorite(user.ID, recipe.ID))

	detail, err = NewRecipeService().GetDetail(recipe.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, detail.IsFavorited)

	// 再次取消返回不存在
	err = svc.RemoveFavorite(user.ID, recipe.ID)
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)

	// 食谱不存在
	_, err = svc.AddFavorite(user.ID, 999999)
	require.ErrorAs(t, err, &nferr)
}

func TestCartToggle(t *testing.T) {
	author := createTestUser(t, "cart_author")
	user := createTestUser(t, "cart_user")
	tag := createTestTag(t, "凉菜", "cold")
	cucumber := createTestIngredient(t, "黄瓜", "g")

	recipe := createTestRecipe(t, author.ID, "拍黄瓜", []uint{tag.ID}, []dto.RecipeIngredientItem{
		{ID: cucumber.ID, Amount: intPtr(200)},
	})

	svc := NewInteractionService()

	_, err := svc.AddToCart(user.ID, recipe.ID)
	require.NoError(t, err)

	detail, err := NewRecipeService().GetDetail(recipe.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, detail.IsInShoppingCart)

	_, err = svc.AddToCart(user.ID, recipe.ID)
	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)

	require.NoError(t, svc.RemoveFromCart(user.ID, recipe.ID))

	err = svc.RemoveFromCart(user.ID, recipe.ID)
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestShoppingListAggregation(t *testing.T) {
	author := createTestUser(t, "list_author")
	user := createTestUser(t, "list_user")
	tag := createTestTag(t, "烘焙", "baking")
	flour := createTestIngredient(t, "Flour", "g")
	egg := createTestIngredient(t, "Egg", "pcs")

	bread := createTestRecipe(t, author.ID, "面包", []uint{tag.ID}, []dto.RecipeIngredientItem{
		{ID: flour.ID, Amount: intPtr(100)},
		{ID: egg.ID, Amount: intPtr(2)},
	})
	cake := createTestRecipe(t, author.ID, "戚风蛋糕", []uint{tag.ID}, []dto.RecipeIngredientItem{
		{ID: flour.ID, Amount: intPtr(250)},
	})

	svc := NewInteractionService()
	_, err := svc.AddToCart(user.ID, bread.ID)
	require.NoError(t, err)
	_, err = svc.AddToCart(user.ID, cake.ID)
	require.NoError(t, err)

	items, err := svc.ShoppingList(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// 按名称排序，同名同单位的用量合并
	assert.Equal(t, "Egg", items[0].Name)
	assert.Equal(t, 2, items[0].Total)
	assert.Equal(t, "Flour", items[1].Name)
	assert.Equal(t, "g", items[1].MeasurementUnit)
	assert.Equal(t, 350, items[1].Total)

	text := svc.RenderShoppingList(items)
	assert.Equal(t, "Egg (pcs) - 2\nFlour (g) - 350\n", text)
}

func TestShoppingListEmptyCart(t *testing.T) {
	user := createTestUser(t, "empty_cart_user")

	svc := NewInteractionService()
	items, err := svc.ShoppingList(user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, "", svc.RenderShoppingList(items))
}
