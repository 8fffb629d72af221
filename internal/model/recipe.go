package model

// Recipe 食谱模型
type Recipe struct {
	Base
	Name        string `gorm:"type:varchar(200);not null" json:"name"`
	Image       string `gorm:"type:varchar(255);not null" json:"image"`
	Text        string `gorm:"type:text;not null" json:"text"`
	CookingTime int    `gorm:"type:int(11);not null" json:"cooking_time"` // 单位: 分钟
	AuthorID    uint   `gorm:"type:int(11);not null;index" json:"author_id"`

	// 关联
	Author      User               `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Tags        []Tag              `gorm:"many2many:recipe_tags;" json:"tags,omitempty"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
}

// TableName 指定表名
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient 食谱-食材关联模型，带数量
type RecipeIngredient struct {
	Base
	RecipeID     uint `gorm:"type:int(11);not null;index;uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID uint `gorm:"type:int(11);not null;index;uniqueIndex:idx_recipe_ingredient" json:"ingredient_id"`
	Amount       int  `gorm:"type:int(11);not null" json:"amount"`

	// 关联
	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

// TableName 指定表名
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
