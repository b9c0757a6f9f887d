package repository

import (
	"pata-go/internal/model"

	"gorm.io/gorm"
)

// AnimalFilter 列表/搜索查询条件，零值字段不参与过滤
type AnimalFilter struct {
	Name        string // 名称子串，大小写不敏感
	Address     string // 地址子串，大小写不敏感
	Size        string // 体型，大小写不敏感精确匹配
	Age         string // 年龄段，大小写不敏感精确匹配
	Gender      string // 性别，大小写不敏感精确匹配
	PetTypeID   int64  // 类别ID精确匹配
	BreedTypeID int64  // 品种ID精确匹配
}

type AnimalRepository struct {
	db *gorm.DB
}

func NewAnimalRepository(db *gorm.DB) *AnimalRepository {
	return &AnimalRepository{db: db}
}

// GetByID 根据 ID 获取宠物（含类别/品种信息）
func (r *AnimalRepository) GetByID(id int64) (*model.Animal, error) {
	var animal model.Animal
	err := r.db.Preload("PetType").Preload("BreedType").
		Where("id = ?", id).First(&animal).Error
	if err != nil {
		return nil, err
	}
	return &animal, nil
}

// GetByIDs 批量获取宠物（含类别/品种信息），按创建时间倒序
func (r *AnimalRepository) GetByIDs(ids []int64) ([]model.Animal, error) {
	if len(ids) == 0 {
		return []model.Animal{}, nil
	}

	var animals []model.Animal
	err := r.db.Preload("PetType").Preload("BreedType").
		Where("id IN ?", ids).
		Order("created_at DESC, id DESC").
		Find(&animals).Error
	if err != nil {
		return nil, err
	}
	return animals, nil
}

// CountByIDs 统计 ID 列表中实际存在的宠物数量
func (r *AnimalRepository) CountByIDs(ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&model.Animal{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

// Create 创建宠物记录
func (r *AnimalRepository) Create(animal *model.Animal) error {
	return r.db.Create(animal).Error
}

// Update 更新宠物字段
func (r *AnimalRepository) Update(id int64, updates map[string]interface{}) (*model.Animal, error) {
	result := r.db.Model(&model.Animal{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// List 宠物列表查询（分页、筛选，含类别/品种信息）
// 空字符串/零值条件一律不参与过滤；枚举值不做校验，
// 非法值自然匹配不到任何记录
func (r *AnimalRepository) List(filter AnimalFilter, skip, limit int) ([]model.Animal, int64, error) {
	query := r.db.Model(&model.Animal{})

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Address != "" {
		query = query.Where("address ILIKE ?", "%"+filter.Address+"%")
	}
	if filter.Size != "" {
		query = query.Where("LOWER(size) = LOWER(?)", filter.Size)
	}
	if filter.Age != "" {
		query = query.Where("LOWER(age) = LOWER(?)", filter.Age)
	}
	if filter.Gender != "" {
		query = query.Where("LOWER(gender) = LOWER(?)", filter.Gender)
	}
	if filter.PetTypeID != 0 {
		query = query.Where("pet_type_id = ?", filter.PetTypeID)
	}
	if filter.BreedTypeID != 0 {
		query = query.Where("breed_type_id = ?", filter.BreedTypeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var animals []model.Animal
	err := query.Preload("PetType").Preload("BreedType").
		Order("created_at DESC, id DESC").
		Offset(skip).Limit(limit).
		Find(&animals).Error
	if err != nil {
		return nil, 0, err
	}

	return animals, total, nil
}
