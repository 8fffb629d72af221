package dto

// TagCreateRequest 创建标签请求
type TagCreateRequest struct {
	Name  string `json:"name" binding:"required,max=50"`
	Color string `json:"color" binding:"required,hexcolor"`
	Slug  string `json:"slug" binding:"required,max=50"`
}

// TagUpdateRequest 更新标签请求
type TagUpdateRequest struct {
	Name  string `json:"name" binding:"required,max=50"`
	Color string `json:"color" binding:"required,hexcolor"`
	Slug  string `json:"slug" binding:"required,max=50"`
}

// TagResponse 标签响应
type TagResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Slug        string `json:"slug"`
	RecipeCount int    `json:"recipe_count"`
}

// TagListResponse 标签列表响应
type TagListResponse struct {
	Total int64         `json:"total"`
	List  []TagResponse `json:"list"`
}
