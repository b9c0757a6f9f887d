package repository

import (
	"pata-go/internal/model"

	"gorm.io/gorm"
)

type TaxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

// ListPetTypes 获取所有宠物类别
func (r *TaxonomyRepository) ListPetTypes() ([]model.PetType, error) {
	var types []model.PetType
	err := r.db.Order("name ASC").Find(&types).Error
	return types, err
}

// GetPetTypeByID 根据 ID 获取宠物类别
func (r *TaxonomyRepository) GetPetTypeByID(id int64) (*model.PetType, error) {
	var petType model.PetType
	if err := r.db.Where("id = ?", id).First(&petType).Error; err != nil {
		return nil, err
	}
	return &petType, nil
}

// ListBreedTypes 获取品种列表，petTypeID 为 0 时返回全部
func (r *TaxonomyRepository) ListBreedTypes(petTypeID int64) ([]model.BreedType, error) {
	query := r.db.Model(&model.BreedType{})
	if petTypeID != 0 {
		query = query.Where("pet_type_id = ?", petTypeID)
	}

	var breeds []model.BreedType
	err := query.Order("name ASC").Find(&breeds).Error
	return breeds, err
}

// GetBreedTypeByID 根据 ID 获取品种
func (r *TaxonomyRepository) GetBreedTypeByID(id int64) (*model.BreedType, error) {
	var breed model.BreedType
	if err := r.db.Where("id = ?", id).First(&breed).Error; err != nil {
		return nil, err
	}
	return &breed, nil
}
