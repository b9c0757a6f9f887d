package model

import "time"

// Favorite 收藏模型，(用户, 宠物) 至多一条记录
type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:收藏记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_animal_favorite;index:idx_favorites_user_id;comment:收藏用户ID" json:"user_id"`
	AnimalID  int64     `gorm:"not null;uniqueIndex:uq_user_animal_favorite;index:idx_favorites_animal_id;comment:被收藏宠物ID" json:"animal_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_favorites_created_at;comment:收藏时间" json:"created_at"`

	// 关联关系
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Animal Animal `gorm:"foreignKey:AnimalID" json:"animal,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}
