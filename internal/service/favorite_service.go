package service

import (
	"errors"

	"pata-go/internal/api/dto"
)

var ErrEmptyAnimalIDs = errors.New("animalIds 不能为空")

type FavoriteService struct {
	favorites FavoriteStore
	animals   AnimalStore
}

func NewFavoriteService(favorites FavoriteStore, animals AnimalStore) *FavoriteService {
	return &FavoriteService{favorites: favorites, animals: animals}
}

// Toggle 批量翻转收藏状态
// 每个 ID 独立做 XOR：已收藏的取消、未收藏的新建。
// 任一 ID 不存在则整个请求失败，不产生任何部分变更
func (s *FavoriteService) Toggle(userID int64, animalIDs []int64) (*dto.FavoriteToggleData, error) {
	if len(animalIDs) == 0 {
		return nil, ErrEmptyAnimalIDs
	}

	// 去重，保持首次出现的顺序
	seen := make(map[int64]bool, len(animalIDs))
	ids := make([]int64, 0, len(animalIDs))
	for _, id := range animalIDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	// 先整体校验存在性，再落库
	count, err := s.animals.CountByIDs(ids)
	if err != nil {
		return nil, err
	}
	if count != int64(len(ids)) {
		return nil, ErrAnimalNotFound
	}

	added, removed, err := s.favorites.Toggle(userID, ids)
	if err != nil {
		return nil, err
	}

	return &dto.FavoriteToggleData{Added: added, Removed: removed}, nil
}
