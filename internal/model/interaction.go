package model

// Favorite 收藏模型
type Favorite struct {
	Base
	UserID   uint `gorm:"type:int(11);not null;index;uniqueIndex:idx_favorite_user_recipe" json:"user_id"`
	RecipeID uint `gorm:"type:int(11);not null;index;uniqueIndex:idx_favorite_user_recipe" json:"recipe_id"`

	// 关联
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipe Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}

// TableName 指定表名
func (Favorite) TableName() string {
	return "favorites"
}

// ShoppingCart 购物车模型
type ShoppingCart struct {
	Base
	UserID   uint `gorm:"type:int(11);not null;index;uniqueIndex:idx_cart_user_recipe" json:"user_id"`
	RecipeID uint `gorm:"type:int(11);not null;index;uniqueIndex:idx_cart_user_recipe" json:"recipe_id"`

	// 关联
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipe Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}

// TableName 指定表名
func (ShoppingCart) TableName() string {
	return "shopping_carts"
}
