package model

import "time"

// 性别、体型、年龄段的枚举值，与移动端筛选项保持一致
const (
	GenderMale   = "Male"
	GenderFemale = "Female"

	SizeSmall  = "Small"
	SizeMedium = "Medium"
	SizeLarge  = "Large"

	AgeBaby   = "Baby"
	AgeYoung  = "Young"
	AgeAdult  = "Adult"
	AgeSenior = "Senior"
)

// IsValidGender 校验性别枚举值
func IsValidGender(s string) bool {
	return s == GenderMale || s == GenderFemale
}

// IsValidSize 校验体型枚举值
func IsValidSize(s string) bool {
	return s == SizeSmall || s == SizeMedium || s == SizeLarge
}

// IsValidAge 校验年龄段枚举值
func IsValidAge(s string) bool {
	return s == AgeBaby || s == AgeYoung || s == AgeAdult || s == AgeSenior
}

// Animal 待领养宠物模型
type Animal struct {
	ID          int64    `gorm:"primaryKey;autoIncrement;comment:宠物标识" json:"id"`
	OwnerID     int64    `gorm:"not null;index:idx_animals_owner_id;comment:发布者ID" json:"owner_id"`
	Name        string   `gorm:"size:255;not null;comment:宠物名称" json:"name"`
	Description string   `gorm:"type:text;comment:宠物介绍" json:"description"`
	Images      []string `gorm:"type:jsonb;serializer:json;comment:图片地址列表" json:"images"`
	Gender      string   `gorm:"size:16;not null;comment:性别" json:"gender"`
	Size        string   `gorm:"size:16;not null;comment:体型" json:"size"`
	Age         string   `gorm:"size:16;not null;comment:年龄段" json:"age"`
	Latitude    *float64 `gorm:"comment:所在纬度" json:"latitude"`
	Longitude   *float64 `gorm:"comment:所在经度" json:"longitude"`
	Address     string   `gorm:"size:500;comment:详细地址" json:"address"`
	City        string   `gorm:"size:128;comment:城市" json:"city"`
	State       string   `gorm:"size:128;comment:省/州" json:"state"`
	Country     string   `gorm:"size:128;comment:国家" json:"country"`
	PetTypeID   int64    `gorm:"not null;index:idx_animals_pet_type_id;comment:宠物类别ID" json:"pet_type_id"`
	BreedTypeID *int64   `gorm:"index:idx_animals_breed_type_id;comment:品种ID" json:"breed_type_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_animals_created_at;comment:发布时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Owner     User       `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	PetType   PetType    `gorm:"foreignKey:PetTypeID" json:"pet_type,omitempty"`
	BreedType *BreedType `gorm:"foreignKey:BreedTypeID" json:"breed_type,omitempty"`
	Favorites []Favorite `gorm:"foreignKey:AnimalID" json:"favorites,omitempty"`
}

func (Animal) TableName() string {
	return "animals"
}

// HasLocation 判断是否同时存在经纬度
func (a *Animal) HasLocation() bool {
	return a.Latitude != nil && a.Longitude != nil
}
