package dto

// FavoriteToggleRequest 批量收藏翻转请求
type FavoriteToggleRequest struct {
	AnimalIDs []int64 `json:"animalIds"`
}

// FavoriteToggleData 收藏翻转结果
type FavoriteToggleData struct {
	Added   []int64 `json:"added"`
	Removed []int64 `json:"removed"`
}
