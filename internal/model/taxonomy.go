package model

// PetType 宠物类别（如 Dogs、Cats），由种子数据导入后只读
type PetType struct {
	ID   int64  `gorm:"primaryKey;autoIncrement;comment:类别ID" json:"id"`
	Name string `gorm:"size:128;not null;uniqueIndex;comment:类别名称" json:"name"`

	// 关联关系
	BreedTypes []BreedType `gorm:"foreignKey:PetTypeID" json:"breed_types,omitempty"`
}

func (PetType) TableName() string {
	return "pet_types"
}

// BreedType 宠物品种，隶属于某个类别
type BreedType struct {
	ID        int64  `gorm:"primaryKey;autoIncrement;comment:品种ID" json:"id"`
	PetTypeID int64  `gorm:"not null;uniqueIndex:uq_pet_type_breed;index:idx_breed_types_pet_type_id;comment:所属类别ID" json:"pet_type_id"`
	Name      string `gorm:"size:128;not null;uniqueIndex:uq_pet_type_breed;comment:品种名称" json:"name"`

	// 关联关系
	PetType PetType `gorm:"foreignKey:PetTypeID" json:"pet_type,omitempty"`
}

func (BreedType) TableName() string {
	return "breed_types"
}
