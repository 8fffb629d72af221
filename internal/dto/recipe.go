package dto

// RecipeIngredientItem 食谱载荷中的食材项
// 数量的存在性与取值在服务层校验，以便返回按字段分组的错误
type RecipeIngredientItem struct {
	ID     uint `json:"id"`
	Amount *int `json:"amount"`
}

// RecipeCreateRequest 创建食谱请求
type RecipeCreateRequest struct {
	Name        string                 `json:"name" binding:"required,max=200"`
	Image       string                 `json:"image" binding:"required"`
	Text        string                 `json:"text" binding:"required"`
	CookingTime int                    `json:"cooking_time" binding:"required,min=1"`
	Ingredients []RecipeIngredientItem `json:"ingredients"`
	TagIDs      []uint                 `json:"tags"`
}

// RecipeUpdateRequest 更新食谱请求，食材与标签整体替换
type RecipeUpdateRequest struct {
	Name        string                 `json:"name" binding:"required,max=200"`
	Image       string                 `json:"image" binding:"omitempty"`
	Text        string                 `json:"text" binding:"required"`
	CookingTime int                    `json:"cooking_time" binding:"required,min=1"`
	Ingredients []RecipeIngredientItem `json:"ingredients"`
	TagIDs      []uint                 `json:"tags"`
}

// RecipeListRequest 食谱列表请求
type RecipeListRequest struct {
	Page             int      `form:"page" binding:"omitempty,min=1"`
	PageSize         int      `form:"page_size" binding:"omitempty,min=1,max=100"`
	Tags             []string `form:"tags" binding:"omitempty"` // 标签slug，多值
	Author           uint     `form:"author" binding:"omitempty"`
	IsFavorited      string   `form:"is_favorited" binding:"omitempty"`
	IsInShoppingCart string   `form:"is_in_shopping_cart" binding:"omitempty"`
}

// RecipeIngredientResponse 食谱中的食材响应
type RecipeIngredientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeResponse 食谱响应
type RecipeResponse struct {
	ID               uint                       `json:"id"`
	Tags             []TagResponse              `json:"tags"`
	Author           UserResponse               `json:"author"`
	Ingredients      []RecipeIngredientResponse `json:"ingredients"`
	Name             string                     `json:"name"`
	Image            string                     `json:"image"`
	Text             string                     `json:"text"`
	CookingTime      int                        `json:"cooking_time"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	CreatedAt        string                     `json:"created_at"`
}

// ShortRecipeResponse 食谱简要响应，用于收藏和购物车操作的返回
type ShortRecipeResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// RecipeListResponse 食谱列表响应
type RecipeListResponse struct {
	Total int64            `json:"total"`
	List  []RecipeResponse `json:"list"`
}

// ShoppingListItem 购物清单聚合项
type ShoppingListItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Total           int    `json:"total"`
}
