package service

import "pata-go/internal/api/dto"

type TaxonomyService struct {
	taxonomy TaxonomyStore
}

func NewTaxonomyService(taxonomy TaxonomyStore) *TaxonomyService {
	return &TaxonomyService{taxonomy: taxonomy}
}

// ListPetTypes 获取全部宠物类别
func (s *TaxonomyService) ListPetTypes() ([]dto.PetTypeInfo, error) {
	types, err := s.taxonomy.ListPetTypes()
	if err != nil {
		return nil, err
	}

	items := make([]dto.PetTypeInfo, 0, len(types))
	for _, t := range types {
		items = append(items, dto.PetTypeInfo{ID: t.ID, Name: t.Name})
	}
	return items, nil
}

// ListBreedTypes 获取品种列表，petTypeID 为 0 时返回全部
func (s *TaxonomyService) ListBreedTypes(petTypeID int64) ([]dto.BreedTypeInfo, error) {
	breeds, err := s.taxonomy.ListBreedTypes(petTypeID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.BreedTypeInfo, 0, len(breeds))
	for _, b := range breeds {
		items = append(items, dto.BreedTypeInfo{ID: b.ID, PetTypeID: b.PetTypeID, Name: b.Name})
	}
	return items, nil
}
