package service

import (
	"testing"

	"foodgram/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeRules(t *testing.T) {
	user := createTestUser(t, "sub_user")
	author := createTestUser(t, "sub_author")

	svc := NewSubscriptionService()

	// 不能订阅自己
	_, err := svc.Subscribe(user.ID, user.ID, -1)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// 作者不存在
	_, err = svc.Subscribe(user.ID, 999999, -1)
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)

	result, err := svc.Subscribe(user.ID, author.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, author.ID, result.ID)
	assert.True(t, result.IsSubscribed)

	// 重复订阅冲突
	_, err = svc.Subscribe(user.ID, author.ID, -1)
	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestSubscribeRecipesLimit(t *testing.T) {
	user := createTestUser(t, "limit_user")
	author := createTestUser(t, "limit_author")
	tag := createTestTag(t, "家常菜", "home")
	rice := createTestIngredient(t, "米饭", "g")

	for _, name := range []string{"蛋炒饭", "扬州炒饭", "酱油炒饭"} {
		createTestRecipe(t, author.ID, name, []uint{tag.ID}, []dto.RecipeIngredientItem{
			{ID: rice.ID, Amount: intPtr(300)},
		})
	}

	result, err := NewSubscriptionService().Subscribe(user.ID, author.ID, 2)
	require.NoError(t, err)

	// recipes受限制，recipes_count是真实总数
	assert.Len(t, result.Recipes, 2)
	assert.Equal(t, int64(3), result.RecipesCount)
}

func TestSubscriptionList(t *testing.T) {
	user := createTestUser(t, "sublist_user")
	authorA := createTestUser(t, "sublist_author_a")
	authorB := createTestUser(t, "sublist_author_b")

	svc := NewSubscriptionService()
	_, err := svc.Subscribe(user.ID, authorA.ID, -1)
	require.NoError(t, err)
	_, err = svc.Subscribe(user.ID, authorB.ID, -1)
	require.NoError(t, err)

	result, err := svc.List(user.ID, &dto.SubscriptionListRequest{}, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	require.Len(t, result.List, 2)
	for _, item := range result.List {
		assert.True(t, item.IsSubscribed)
	}

	// 取消订阅后从列表消失
	require.NoError(t, svc.Unsubscribe(user.ID, authorA.ID))

	result, err = svc.List(user.ID, &dto.SubscriptionListRequest{}, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, authorB.ID, result.List[0].ID)

	// 未订阅时取消订阅返回不存在
	err = svc.Unsubscribe(user.ID, authorA.ID)
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
}
