package dto

import "time"

// AnimalSearchRequest 条件搜索请求，所有筛选字段均可省略
// 空字符串与省略等价，表示不做该项过滤
type AnimalSearchRequest struct {
	Page           int    `json:"page"`
	Limit          int    `json:"limit"`
	SearchName     string `json:"searchName"`
	SearchLocation string `json:"searchLocation"`
	Size           string `json:"size"`
	Age            string `json:"age"`
	Gender         string `json:"gender"`
	PetType        int64  `json:"petType"`
	BreedType      int64  `json:"breedType"`
}

// AnimalCreateRequest 发布宠物请求
type AnimalCreateRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=255"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Gender      string   `json:"gender" binding:"required"`
	Size        string   `json:"size" binding:"required"`
	Age         string   `json:"age" binding:"required"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	PetType     int64    `json:"petType" binding:"required"`
	BreedType   *int64   `json:"breedType"`
}

// AnimalUpdateRequest 编辑宠物请求，仅更新提供的字段
type AnimalUpdateRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
	Gender      *string   `json:"gender"`
	Size        *string   `json:"size"`
	Age         *string   `json:"age"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Address     *string   `json:"address"`
	City        *string   `json:"city"`
	State       *string   `json:"state"`
	Country     *string   `json:"country"`
	BreedType   *int64    `json:"breedType"`
}

// AnimalInfo 宠物详情，kms 与 isFavorite 为列表服务计算出的注解字段
type AnimalInfo struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Gender      string    `json:"gender"`
	Size        string    `json:"size"`
	Age         string    `json:"age"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	PetTypeID   int64     `json:"pet_type_id"`
	PetType     string    `json:"pet_type"`
	BreedTypeID *int64    `json:"breed_type_id"`
	BreedType   string    `json:"breed_type"`
	Kms         *float64  `json:"kms"`
	IsFavorite  bool      `json:"isFavorite"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
