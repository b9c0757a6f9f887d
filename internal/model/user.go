package model

import "time"

// User 用户模型
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex;comment:登录邮箱" json:"email"`
	Name      string    `gorm:"size:255;comment:昵称" json:"name"`
	Avatar    *string   `gorm:"size:500;comment:用户头像" json:"avatar"`
	UserRole  string    `gorm:"size:32;not null;default:'user';comment:用户角色" json:"user_role"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:注册时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Animals   []Animal   `gorm:"foreignKey:OwnerID" json:"animals,omitempty"`
	Favorites []Favorite `gorm:"foreignKey:UserID" json:"favorites,omitempty"`
}

func (User) TableName() string {
	return "users"
}
