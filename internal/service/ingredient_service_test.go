package service

import (
	"testing"

	"foodgram/internal/dto"
	"foodgram/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientPrefixSearch(t *testing.T) {
	createTestIngredient(t, "Paprika smoked", "g")
	createTestIngredient(t, "paprika sweet", "g")
	createTestIngredient(t, "Green paprika", "pcs")

	svc := NewIngredientService()

	// 前缀匹配大小写不敏感
	list, err := svc.List(&dto.IngredientListRequest{Name: "paPrika"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, item := range list {
		assert.NotEqual(t, "Green paprika", item.Name)
	}

	// 只匹配前缀，不做子串搜索
	list, err = svc.List(&dto.IngredientListRequest{Name: "green"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Green paprika", list[0].Name)
}

func TestIngredientSearchEscapesWildcards(t *testing.T) {
	createTestIngredient(t, "100% apple juice", "ml")
	createTestIngredient(t, "100g butter pack", "pcs")
	createTestIngredient(t, "milk_powder", "g")
	createTestIngredient(t, "milkshake mix", "g")

	svc := NewIngredientService()

	// %按字面量匹配，不是任意长度通配符
	list, err := svc.List(&dto.IngredientListRequest{Name: "100%"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "100% apple juice", list[0].Name)

	// _按字面量匹配，不是单字符通配符
	list, err = svc.List(&dto.IngredientListRequest{Name: "milk_"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "milk_powder", list[0].Name)
}

func TestIngredientBatchImport(t *testing.T) {
	ingredients := []model.Ingredient{
		{Name: "batchimp almond", MeasurementUnit: "g"},
		{Name: "batchimp basil", MeasurementUnit: "g"},
		{Name: "batchimp broth", MeasurementUnit: "ml"},
	}

	imported, err := NewIngredientService().BatchImport(ingredients)
	require.NoError(t, err)
	assert.Equal(t, 3, imported)

	list, err := NewIngredientService().List(&dto.IngredientListRequest{Name: "batchimp"})
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
