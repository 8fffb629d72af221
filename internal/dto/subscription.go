package dto

// SubscribeRequest 订阅请求，recipes_limit来自查询参数
type SubscribeRequest struct {
	RecipesLimit string `form:"recipes_limit" binding:"omitempty,numeric"`
}

// SubscriptionListRequest 订阅列表请求
type SubscriptionListRequest struct {
	Page         int    `form:"page" binding:"omitempty,min=1"`
	PageSize     int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	RecipesLimit string `form:"recipes_limit" binding:"omitempty,numeric"`
}

// SubscribeResponse 订阅作者响应，附带作者的食谱
type SubscribeResponse struct {
	UserResponse
	Recipes      []ShortRecipeResponse `json:"recipes"`
	RecipesCount int64                 `json:"recipes_count"`
}

// SubscriptionListResponse 订阅列表响应
type SubscriptionListResponse struct {
	Total int64               `json:"total"`
	List  []SubscribeResponse `json:"list"`
}
