package dto

// IngredientListRequest 食材列表请求，name为前缀搜索
type IngredientListRequest struct {
	Name string `form:"name" binding:"omitempty,max=200"`
}

// IngredientResponse 食材响应
type IngredientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}
