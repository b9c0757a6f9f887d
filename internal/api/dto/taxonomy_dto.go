package dto

// PetTypeInfo 宠物类别信息
type PetTypeInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BreedTypeInfo 品种信息
type BreedTypeInfo struct {
	ID        int64  `json:"id"`
	PetTypeID int64  `json:"pet_type_id"`
	Name      string `json:"name"`
}

// SuggestData 名称联想结果
type SuggestData struct {
	Suggestions []string `json:"suggestions"`
}
