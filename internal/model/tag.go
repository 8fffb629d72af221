package model

// Tag 标签模型
type Tag struct {
	Base
	Name        string `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
	Color       string `gorm:"type:varchar(7);not null" json:"color"` // HEX颜色, 如 #49B64E
	Slug        string `gorm:"type:varchar(50);not null;uniqueIndex" json:"slug"`
	RecipeCount int    `gorm:"type:int(11);not null;default:0" json:"recipe_count"`

	// 关联
	Recipes []*Recipe `gorm:"many2many:recipe_tags;" json:"recipes,omitempty"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}

// RecipeTag 食谱-标签关联模型
type RecipeTag struct {
	RecipeID uint `gorm:"primaryKey;type:int(11);not null" json:"recipe_id"`
	TagID    uint `gorm:"primaryKey;type:int(11);not null" json:"tag_id"`
}

// TableName 指定表名
func (RecipeTag) TableName() string {
	return "recipe_tags"
}
