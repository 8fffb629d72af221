package model

import (
	"time"
)

// User 用户模型
type User struct {
	Base
	Username    string    `gorm:"type:varchar(150);not null;uniqueIndex" json:"username"`
	Password    string    `gorm:"type:varchar(100);not null" json:"-"`
	Email       string    `gorm:"type:varchar(254);not null;uniqueIndex" json:"email"`
	FirstName   string    `gorm:"type:varchar(150);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(150);not null" json:"last_name"`
	Avatar      string    `gorm:"type:varchar(255)" json:"avatar"`
	Role        string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Status      int       `gorm:"type:tinyint(2);not null;default:1" json:"status"` // 0=禁用 1=正常
	LastLoginAt time.Time `json:"last_login_at"`
	LastLoginIP string    `gorm:"type:varchar(50)" json:"last_login_ip"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// Subscribe 订阅模型，user订阅author的食谱更新
type Subscribe struct {
	Base
	UserID   uint `gorm:"type:int(11);not null;index;uniqueIndex:idx_subscribe_user_author" json:"user_id"`
	AuthorID uint `gorm:"type:int(11);not null;index;uniqueIndex:idx_subscribe_user_author" json:"author_id"`

	// 关联
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName 指定表名
func (Subscribe) TableName() string {
	return "subscribes"
}
