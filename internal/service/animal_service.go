package service

import (
	"context"
	"errors"
	"time"

	"pata-go/internal/api/dto"
	infraKafka "pata-go/internal/infra/kafka"
	"pata-go/internal/model"
	"pata-go/internal/repository"
	"pata-go/pkg/geo"

	"gorm.io/gorm"
)

var (
	ErrAnimalNotFound    = errors.New("宠物不存在")
	ErrPetTypeNotFound   = errors.New("宠物类别不存在")
	ErrBreedTypeNotFound = errors.New("宠物品种不存在")
	ErrBreedTypeMismatch = errors.New("品种不属于所选类别")
	ErrInvalidEnumValue  = errors.New("性别/体型/年龄段取值无效")
	ErrInvalidLocation   = errors.New("经纬度必须同时提供")
	ErrNotOwner          = errors.New("只有发布者可以编辑该宠物")
)

// AnimalStore 宠物存储接口
type AnimalStore interface {
	GetByID(id int64) (*model.Animal, error)
	GetByIDs(ids []int64) ([]model.Animal, error)
	CountByIDs(ids []int64) (int64, error)
	Create(animal *model.Animal) error
	Update(id int64, updates map[string]interface{}) (*model.Animal, error)
	List(filter repository.AnimalFilter, skip, limit int) ([]model.Animal, int64, error)
}

// FavoriteStore 收藏存储接口
type FavoriteStore interface {
	FilterFavorited(userID int64, animalIDs []int64) (map[int64]bool, error)
	Toggle(userID int64, animalIDs []int64) (added, removed []int64, err error)
	ListAnimalIDsByUser(userID int64, skip, limit int) ([]int64, int64, error)
}

// TaxonomyStore 类别/品种存储接口
type TaxonomyStore interface {
	ListPetTypes() ([]model.PetType, error)
	GetPetTypeByID(id int64) (*model.PetType, error)
	ListBreedTypes(petTypeID int64) ([]model.BreedType, error)
	GetBreedTypeByID(id int64) (*model.BreedType, error)
}

// EventPublisher 宠物变更事件发布接口，nil 时跳过发布
type EventPublisher interface {
	PublishAnimalEvent(ctx context.Context, event *infraKafka.AnimalEvent) error
}

type AnimalService struct {
	animals   AnimalStore
	favorites FavoriteStore
	taxonomy  TaxonomyStore
	events    EventPublisher
	origin    geo.Point
}

// NewAnimalService 创建宠物服务
// origin 为距离注解的参考点，由配置传入而非包级常量
func NewAnimalService(animals AnimalStore, favorites FavoriteStore, taxonomy TaxonomyStore, events EventPublisher, origin geo.Point) *AnimalService {
	return &AnimalService{
		animals:   animals,
		favorites: favorites,
		taxonomy:  taxonomy,
		events:    events,
		origin:    origin,
	}
}

// BuildFilter 将搜索请求翻译成存储层过滤条件
// 空字符串/零值字段一律省略，表示不做该项过滤；
// 枚举值不做校验，非法值匹配不到任何记录而不是报错
func BuildFilter(req *dto.AnimalSearchRequest) repository.AnimalFilter {
	if req == nil {
		return repository.AnimalFilter{}
	}
	return repository.AnimalFilter{
		Name:        req.SearchName,
		Address:     req.SearchLocation,
		Size:        req.Size,
		Age:         req.Age,
		Gender:      req.Gender,
		PetTypeID:   req.PetType,
		BreedTypeID: req.BreedType,
	}
}

// List 分页列表查询
// 依次：过滤 → 计数 → 取页（按发布时间倒序）→ 距离注解 → 收藏注解。
// userID 为 nil 时按匿名处理，isFavorite 恒为 false
func (s *AnimalService) List(filter repository.AnimalFilter, page, limit int, userID *int64) ([]dto.AnimalInfo, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	skip := (page - 1) * limit
	animals, total, err := s.animals.List(filter, skip, limit)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.annotate(animals, userID)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetDetail 获取宠物详情（含 kms 与 isFavorite 注解）
func (s *AnimalService) GetDetail(id int64, userID *int64) (*dto.AnimalInfo, error) {
	animal, err := s.animals.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, err
	}

	items, err := s.annotate([]model.Animal{*animal}, userID)
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// ListFavorites 获取用户收藏的宠物列表，按收藏时间倒序
func (s *AnimalService) ListFavorites(userID int64, page, limit int) ([]dto.AnimalInfo, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	skip := (page - 1) * limit
	ids, total, err := s.favorites.ListAnimalIDsByUser(userID, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return []dto.AnimalInfo{}, total, nil
	}

	animals, err := s.animals.GetByIDs(ids)
	if err != nil {
		return nil, 0, err
	}

	// 按收藏时间顺序输出
	byID := make(map[int64]*model.Animal, len(animals))
	for i := range animals {
		byID[animals[i].ID] = &animals[i]
	}
	ordered := make([]model.Animal, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			ordered = append(ordered, *a)
		}
	}

	items := make([]dto.AnimalInfo, 0, len(ordered))
	for i := range ordered {
		info := s.toAnimalInfo(&ordered[i])
		info.IsFavorite = true
		items = append(items, info)
	}
	return items, total, nil
}

// Create 发布宠物
func (s *AnimalService) Create(ownerID int64, req *dto.AnimalCreateRequest) (*dto.AnimalInfo, error) {
	if !model.IsValidGender(req.Gender) || !model.IsValidSize(req.Size) || !model.IsValidAge(req.Age) {
		return nil, ErrInvalidEnumValue
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, ErrInvalidLocation
	}

	if _, err := s.taxonomy.GetPetTypeByID(req.PetType); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPetTypeNotFound
		}
		return nil, err
	}
	if req.BreedType != nil {
		breed, err := s.taxonomy.GetBreedTypeByID(*req.BreedType)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBreedTypeNotFound
			}
			return nil, err
		}
		if breed.PetTypeID != req.PetType {
			return nil, ErrBreedTypeMismatch
		}
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}

	animal := &model.Animal{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Images:      images,
		Gender:      req.Gender,
		Size:        req.Size,
		Age:         req.Age,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		PetTypeID:   req.PetType,
		BreedTypeID: req.BreedType,
	}

	if err := s.animals.Create(animal); err != nil {
		return nil, err
	}

	s.publishEvent(animal.ID, infraKafka.AnimalActionCreated)

	created, err := s.animals.GetByID(animal.ID)
	if err != nil {
		return nil, err
	}
	info := s.toAnimalInfo(created)
	return &info, nil
}

// Update 编辑宠物，仅发布者可操作
func (s *AnimalService) Update(userID, animalID int64, req *dto.AnimalUpdateRequest) (*dto.AnimalInfo, error) {
	animal, err := s.animals.GetByID(animalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, err
	}
	if animal.OwnerID != userID {
		return nil, ErrNotOwner
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Images != nil {
		updates["images"] = *req.Images
	}
	if req.Gender != nil {
		if !model.IsValidGender(*req.Gender) {
			return nil, ErrInvalidEnumValue
		}
		updates["gender"] = *req.Gender
	}
	if req.Size != nil {
		if !model.IsValidSize(*req.Size) {
			return nil, ErrInvalidEnumValue
		}
		updates["size"] = *req.Size
	}
	if req.Age != nil {
		if !model.IsValidAge(*req.Age) {
			return nil, ErrInvalidEnumValue
		}
		updates["age"] = *req.Age
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.BreedType != nil {
		breed, err := s.taxonomy.GetBreedTypeByID(*req.BreedType)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBreedTypeNotFound
			}
			return nil, err
		}
		if breed.PetTypeID != animal.PetTypeID {
			return nil, ErrBreedTypeMismatch
		}
		updates["breed_type_id"] = *req.BreedType
	}

	updated, err := s.animals.Update(animalID, updates)
	if err != nil {
		return nil, err
	}

	s.publishEvent(animalID, infraKafka.AnimalActionUpdated)

	info := s.toAnimalInfo(updated)
	return &info, nil
}

// AppendImage 为宠物追加一张图片，仅发布者可操作
func (s *AnimalService) AppendImage(userID, animalID int64, imageURL string) (*dto.AnimalInfo, error) {
	animal, err := s.animals.GetByID(animalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, err
	}
	if animal.OwnerID != userID {
		return nil, ErrNotOwner
	}

	images := append(animal.Images, imageURL)
	updated, err := s.animals.Update(animalID, map[string]interface{}{"images": images})
	if err != nil {
		return nil, err
	}

	s.publishEvent(animalID, infraKafka.AnimalActionPhotoAdded)

	info := s.toAnimalInfo(updated)
	return &info, nil
}

// annotate 为一页结果附加 kms 与 isFavorite
// 收藏状态只对本页 ID 做一次批量查询
func (s *AnimalService) annotate(animals []model.Animal, userID *int64) ([]dto.AnimalInfo, error) {
	favSet := map[int64]bool{}
	if userID != nil && len(animals) > 0 {
		ids := make([]int64, 0, len(animals))
		for i := range animals {
			ids = append(ids, animals[i].ID)
		}
		var err error
		favSet, err = s.favorites.FilterFavorited(*userID, ids)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.AnimalInfo, 0, len(animals))
	for i := range animals {
		info := s.toAnimalInfo(&animals[i])
		info.IsFavorite = favSet[animals[i].ID]
		items = append(items, info)
	}
	return items, nil
}

func (s *AnimalService) toAnimalInfo(a *model.Animal) dto.AnimalInfo {
	info := dto.AnimalInfo{
		ID:          a.ID,
		OwnerID:     a.OwnerID,
		Name:        a.Name,
		Description: a.Description,
		Images:      a.Images,
		Gender:      a.Gender,
		Size:        a.Size,
		Age:         a.Age,
		Latitude:    a.Latitude,
		Longitude:   a.Longitude,
		Address:     a.Address,
		City:        a.City,
		State:       a.State,
		Country:     a.Country,
		PetTypeID:   a.PetTypeID,
		PetType:     a.PetType.Name,
		BreedTypeID: a.BreedTypeID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if info.Images == nil {
		info.Images = []string{}
	}
	if a.BreedType != nil {
		info.BreedType = a.BreedType.Name
	}
	// 无定位的宠物 kms 保持 null
	if a.HasLocation() {
		kms := geo.Distance(s.origin, geo.Point{Lat: *a.Latitude, Lng: *a.Longitude})
		info.Kms = &kms
	}
	return info
}

func (s *AnimalService) publishEvent(animalID int64, action string) {
	if s.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_ = s.events.PublishAnimalEvent(ctx, &infraKafka.AnimalEvent{
		AnimalID: animalID,
		Action:   action,
	})
}
