package model

// Ingredient 食材模型
type Ingredient struct {
	Base
	Name            string `gorm:"type:varchar(200);not null;index" json:"name"`
	MeasurementUnit string `gorm:"type:varchar(50);not null" json:"measurement_unit"`
}

// TableName 指定表名
func (Ingredient) TableName() string {
	return "ingredients"
}
