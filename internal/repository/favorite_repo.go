package repository

import (
	"pata-go/internal/model"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// FilterFavorited 返回 animalIDs 中已被该用户收藏的 ID 集合
// 整页一次批量查询，避免逐条往返
func (r *FavoriteRepository) FilterFavorited(userID int64, animalIDs []int64) (map[int64]bool, error) {
	if len(animalIDs) == 0 {
		return map[int64]bool{}, nil
	}

	var favIDs []int64
	err := r.db.Model(&model.Favorite{}).
		Where("user_id = ? AND animal_id IN ?", userID, animalIDs).
		Pluck("animal_id", &favIDs).Error
	if err != nil {
		return nil, err
	}

	favSet := make(map[int64]bool, len(favIDs))
	for _, id := range favIDs {
		favSet[id] = true
	}
	return favSet, nil
}

// Toggle 对每个 animalID 做一次收藏状态翻转：
// 已收藏的删除、未收藏的新建，整体在一个事务内完成
func (r *FavoriteRepository) Toggle(userID int64, animalIDs []int64) (added, removed []int64, err error) {
	added = make([]int64, 0, len(animalIDs))
	removed = make([]int64, 0, len(animalIDs))

	err = r.db.Transaction(func(tx *gorm.DB) error {
		var existing []int64
		if err := tx.Model(&model.Favorite{}).
			Where("user_id = ? AND animal_id IN ?", userID, animalIDs).
			Pluck("animal_id", &existing).Error; err != nil {
			return err
		}

		existingSet := make(map[int64]bool, len(existing))
		for _, id := range existing {
			existingSet[id] = true
		}

		for _, id := range animalIDs {
			if existingSet[id] {
				removed = append(removed, id)
			} else {
				added = append(added, id)
			}
		}

		if len(removed) > 0 {
			if err := tx.Where("user_id = ? AND animal_id IN ?", userID, removed).
				Delete(&model.Favorite{}).Error; err != nil {
				return err
			}
		}

		if len(added) > 0 {
			marks := make([]model.Favorite, 0, len(added))
			for _, id := range added {
				marks = append(marks, model.Favorite{UserID: userID, AnimalID: id})
			}
			if err := tx.Create(&marks).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return added, removed, nil
}

// ListAnimalIDsByUser 获取用户收藏的宠物 ID 列表（按收藏时间倒序）
func (r *FavoriteRepository) ListAnimalIDsByUser(userID int64, skip, limit int) ([]int64, int64, error) {
	query := r.db.Model(&model.Favorite{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []int64
	err := query.Order("created_at DESC").Offset(skip).Limit(limit).
		Pluck("animal_id", &ids).Error
	return ids, total, err
}
