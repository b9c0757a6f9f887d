package service

import (
	"context"
	"math"
	"sort"
	"strings"
	"testing"
	"time"

	"pata-go/internal/api/dto"
	infraKafka "pata-go/internal/infra/kafka"
	"pata-go/internal/model"
	"pata-go/internal/repository"
	"pata-go/pkg/geo"

	"gorm.io/gorm"
)

// -------------------------
// 内存版存储实现（仅测试用）
// -------------------------

type fakeAnimalStore struct {
	animals []model.Animal
	nextID  int64
}

func newFakeAnimalStore() *fakeAnimalStore {
	return &fakeAnimalStore{nextID: 1}
}

func (s *fakeAnimalStore) add(a model.Animal) model.Animal {
	if a.ID == 0 {
		a.ID = s.nextID
		s.nextID++
	} else if a.ID >= s.nextID {
		s.nextID = a.ID + 1
	}
	s.animals = append(s.animals, a)
	return a
}

func (s *fakeAnimalStore) GetByID(id int64) (*model.Animal, error) {
	for i := range s.animals {
		if s.animals[i].ID == id {
			a := s.animals[i]
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeAnimalStore) GetByIDs(ids []int64) ([]model.Animal, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]model.Animal, 0, len(ids))
	for i := range s.animals {
		if want[s.animals[i].ID] {
			out = append(out, s.animals[i])
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *fakeAnimalStore) CountByIDs(ids []int64) (int64, error) {
	var count int64
	for _, id := range ids {
		for i := range s.animals {
			if s.animals[i].ID == id {
				count++
				break
			}
		}
	}
	return count, nil
}

func (s *fakeAnimalStore) Create(animal *model.Animal) error {
	*animal = s.add(*animal)
	return nil
}

func (s *fakeAnimalStore) Update(id int64, updates map[string]interface{}) (*model.Animal, error) {
	for i := range s.animals {
		if s.animals[i].ID != id {
			continue
		}
		a := &s.animals[i]
		for key, value := range updates {
			switch key {
			case "name":
				a.Name = value.(string)
			case "description":
				a.Description = value.(string)
			case "images":
				a.Images = value.([]string)
			case "gender":
				a.Gender = value.(string)
			case "size":
				a.Size = value.(string)
			case "age":
				a.Age = value.(string)
			case "address":
				a.Address = value.(string)
			}
		}
		out := *a
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeAnimalStore) List(filter repository.AnimalFilter, skip, limit int) ([]model.Animal, int64, error) {
	matched := make([]model.Animal, 0, len(s.animals))
	for i := range s.animals {
		if matchesFilter(&s.animals[i], filter) {
			matched = append(matched, s.animals[i])
		}
	}
	sortNewestFirst(matched)

	total := int64(len(matched))
	if skip >= len(matched) {
		return []model.Animal{}, total, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func matchesFilter(a *model.Animal, f repository.AnimalFilter) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(a.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Address != "" && !strings.Contains(strings.ToLower(a.Address), strings.ToLower(f.Address)) {
		return false
	}
	if f.Size != "" && !strings.EqualFold(a.Size, f.Size) {
		return false
	}
	if f.Age != "" && !strings.EqualFold(a.Age, f.Age) {
		return false
	}
	if f.Gender != "" && !strings.EqualFold(a.Gender, f.Gender) {
		return false
	}
	if f.PetTypeID != 0 && a.PetTypeID != f.PetTypeID {
		return false
	}
	if f.BreedTypeID != 0 && (a.BreedTypeID == nil || *a.BreedTypeID != f.BreedTypeID) {
		return false
	}
	return true
}

func sortNewestFirst(animals []model.Animal) {
	sort.Slice(animals, func(i, j int) bool {
		if !animals[i].CreatedAt.Equal(animals[j].CreatedAt) {
			return animals[i].CreatedAt.After(animals[j].CreatedAt)
		}
		return animals[i].ID > animals[j].ID
	})
}

type fakeFavoriteStore struct {
	// userID -> animalID -> 收藏时间
	favs        map[int64]map[int64]time.Time
	clock       time.Time
	filterCalls int
}

func newFakeFavoriteStore() *fakeFavoriteStore {
	return &fakeFavoriteStore{
		favs:  map[int64]map[int64]time.Time{},
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *fakeFavoriteStore) mark(userID, animalID int64) {
	if s.favs[userID] == nil {
		s.favs[userID] = map[int64]time.Time{}
	}
	s.clock = s.clock.Add(time.Second)
	s.favs[userID][animalID] = s.clock
}

func (s *fakeFavoriteStore) FilterFavorited(userID int64, animalIDs []int64) (map[int64]bool, error) {
	s.filterCalls++
	out := map[int64]bool{}
	for _, id := range animalIDs {
		if _, ok := s.favs[userID][id]; ok {
			out[id] = true
		}
	}
	return out, nil
}

func (s *fakeFavoriteStore) Toggle(userID int64, animalIDs []int64) (added, removed []int64, err error) {
	added = []int64{}
	removed = []int64{}
	for _, id := range animalIDs {
		if _, ok := s.favs[userID][id]; ok {
			delete(s.favs[userID], id)
			removed = append(removed, id)
		} else {
			s.mark(userID, id)
			added = append(added, id)
		}
	}
	return added, removed, nil
}

func (s *fakeFavoriteStore) ListAnimalIDsByUser(userID int64, skip, limit int) ([]int64, int64, error) {
	type entry struct {
		id int64
		at time.Time
	}
	entries := make([]entry, 0, len(s.favs[userID]))
	for id, at := range s.favs[userID] {
		entries = append(entries, entry{id: id, at: at})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].at.After(entries[j].at) })

	total := int64(len(entries))
	if skip >= len(entries) {
		return []int64{}, total, nil
	}
	end := skip + limit
	if end > len(entries) {
		end = len(entries)
	}
	ids := make([]int64, 0, end-skip)
	for _, e := range entries[skip:end] {
		ids = append(ids, e.id)
	}
	return ids, total, nil
}

type fakeTaxonomyStore struct {
	petTypes   map[int64]model.PetType
	breedTypes map[int64]model.BreedType
}

func newFakeTaxonomyStore() *fakeTaxonomyStore {
	return &fakeTaxonomyStore{
		petTypes: map[int64]model.PetType{
			1: {ID: 1, Name: "Dogs"},
			2: {ID: 2, Name: "Cats"},
		},
		breedTypes: map[int64]model.BreedType{
			10: {ID: 10, PetTypeID: 1, Name: "Labrador"},
			20: {ID: 20, PetTypeID: 2, Name: "Siamese"},
		},
	}
}

func (s *fakeTaxonomyStore) ListPetTypes() ([]model.PetType, error) {
	out := make([]model.PetType, 0, len(s.petTypes))
	for _, pt := range s.petTypes {
		out = append(out, pt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeTaxonomyStore) GetPetTypeByID(id int64) (*model.PetType, error) {
	pt, ok := s.petTypes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &pt, nil
}

func (s *fakeTaxonomyStore) ListBreedTypes(petTypeID int64) ([]model.BreedType, error) {
	out := make([]model.BreedType, 0, len(s.breedTypes))
	for _, bt := range s.breedTypes {
		if petTypeID == 0 || bt.PetTypeID == petTypeID {
			out = append(out, bt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeTaxonomyStore) GetBreedTypeByID(id int64) (*model.BreedType, error) {
	bt, ok := s.breedTypes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &bt, nil
}

type fakePublisher struct {
	events []infraKafka.AnimalEvent
}

func (p *fakePublisher) PublishAnimalEvent(ctx context.Context, event *infraKafka.AnimalEvent) error {
	p.events = append(p.events, *event)
	return nil
}

// -------------------------
// 构造辅助
// -------------------------

func floatPtr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64     { return &v }

func testAnimal(id int64, name string, createdAt time.Time) model.Animal {
	return model.Animal{
		ID:        id,
		OwnerID:   100,
		Name:      name,
		Gender:    model.GenderFemale,
		Size:      model.SizeMedium,
		Age:       model.AgeYoung,
		PetTypeID: 1,
		PetType:   model.PetType{ID: 1, Name: "Dogs"},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func newTestAnimalService(animals *fakeAnimalStore, favorites *fakeFavoriteStore, origin geo.Point) *AnimalService {
	return NewAnimalService(animals, favorites, newFakeTaxonomyStore(), nil, origin)
}

// -------------------------
// Tests
// -------------------------

func TestAnimalService_List_DistanceAnnotation(t *testing.T) {
	animals := newFakeAnimalStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	atOrigin := testAnimal(1, "Milo", base)
	atOrigin.Latitude = floatPtr(0)
	atOrigin.Longitude = floatPtr(0)
	animals.add(atOrigin)

	oneDegreeEast := testAnimal(2, "Luna", base.Add(time.Minute))
	oneDegreeEast.Latitude = floatPtr(0)
	oneDegreeEast.Longitude = floatPtr(1)
	animals.add(oneDegreeEast)

	noLocation := testAnimal(3, "Rex", base.Add(2*time.Minute))
	animals.add(noLocation)

	svc := newTestAnimalService(animals, newFakeFavoriteStore(), geo.Point{Lat: 0, Lng: 0})

	items, total, err := svc.List(repository.AnimalFilter{}, 1, 20, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 3 || len(items) != 3 {
		t.Fatalf("expected 3 animals, got total=%d len=%d", total, len(items))
	}

	byID := map[int64]dto.AnimalInfo{}
	for _, item := range items {
		byID[item.ID] = item
	}

	if byID[3].Kms != nil {
		t.Fatalf("expected kms=null without location, got %v", *byID[3].Kms)
	}
	if byID[1].Kms == nil || *byID[1].Kms > 0.001 {
		t.Fatalf("expected kms≈0 at origin, got %v", byID[1].Kms)
	}
	if byID[2].Kms == nil || math.Abs(*byID[2].Kms-111.2) > 1.0 {
		t.Fatalf("expected kms≈111.2 one degree east, got %v", byID[2].Kms)
	}
}

func TestAnimalService_List_FavoriteAnnotation(t *testing.T) {
	animals := newFakeAnimalStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	animals.add(testAnimal(1, "Milo", base))
	animals.add(testAnimal(2, "Luna", base.Add(time.Minute)))
	animals.add(testAnimal(3, "Rex", base.Add(2*time.Minute)))

	favorites := newFakeFavoriteStore()
	favorites.mark(7, 1)
	favorites.mark(7, 3)

	svc := newTestAnimalService(animals, favorites, geo.DefaultOrigin)

	userID := int64Ptr(7)
	items, _, err := svc.List(repository.AnimalFilter{}, 1, 20, userID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	want := map[int64]bool{1: true, 2: false, 3: true}
	for _, item := range items {
		if item.IsFavorite != want[item.ID] {
			t.Fatalf("animal %d: expected isFavorite=%v, got %v", item.ID, want[item.ID], item.IsFavorite)
		}
	}
	// 收藏状态整页只查一次
	if favorites.filterCalls != 1 {
		t.Fatalf("expected 1 batched favorite lookup, got %d", favorites.filterCalls)
	}

	// 页外的收藏不影响本页标记：limit=1 只返回最新的 Rex
	items, _, err = svc.List(repository.AnimalFilter{}, 1, 1, userID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 1 || items[0].ID != 3 || !items[0].IsFavorite {
		t.Fatalf("expected page [3] with isFavorite=true, got %+v", items)
	}

	// limit=1 第二页返回未收藏的 Luna
	items, _, err = svc.List(repository.AnimalFilter{}, 2, 1, userID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 1 || items[0].ID != 2 || items[0].IsFavorite {
		t.Fatalf("expected page [2] with isFavorite=false, got %+v", items)
	}
}

func TestAnimalService_List_AnonymousNeverFavorite(t *testing.T) {
	animals := newFakeAnimalStore()
	animals.add(testAnimal(1, "Milo", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))

	favorites := newFakeFavoriteStore()
	favorites.mark(7, 1)

	svc := newTestAnimalService(animals, favorites, geo.DefaultOrigin)

	items, _, err := svc.List(repository.AnimalFilter{}, 1, 20, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if items[0].IsFavorite {
		t.Fatalf("expected isFavorite=false for anonymous request")
	}
	if favorites.filterCalls != 0 {
		t.Fatalf("expected no favorite lookup for anonymous request, got %d", favorites.filterCalls)
	}
}

func TestAnimalService_List_Pagination(t *testing.T) {
	animals := newFakeAnimalStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	animals.add(testAnimal(1, "Oldest", base))
	animals.add(testAnimal(2, "Middle", base.Add(time.Minute)))
	animals.add(testAnimal(3, "Newest", base.Add(2*time.Minute)))

	svc := newTestAnimalService(animals, newFakeFavoriteStore(), geo.DefaultOrigin)

	items, total, err := svc.List(repository.AnimalFilter{}, 2, 1, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total=3 regardless of page, got %d", total)
	}
	if len(items) != 1 || items[0].Name != "Middle" {
		t.Fatalf("expected page 2 of size 1 to hold the middle animal, got %+v", items)
	}

	// 非法分页参数回退默认值
	items, total, err = svc.List(repository.AnimalFilter{}, 0, 0, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 3 || len(items) != 3 {
		t.Fatalf("expected defaults page=1 limit=20, got total=%d len=%d", total, len(items))
	}

	// 按发布时间倒序，最新在前
	if items[0].Name != "Newest" || items[2].Name != "Oldest" {
		t.Fatalf("expected newest-first ordering, got %s..%s", items[0].Name, items[2].Name)
	}
}

func TestAnimalService_List_FilterSemantics(t *testing.T) {
	animals := newFakeAnimalStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	small := testAnimal(1, "Buddy", base)
	small.Size = model.SizeSmall
	small.Address = "123 Queen Street West"
	animals.add(small)

	large := testAnimal(2, "Maximus", base.Add(time.Minute))
	large.Size = model.SizeLarge
	large.Address = "45 King Road"
	animals.add(large)

	svc := newTestAnimalService(animals, newFakeFavoriteStore(), geo.DefaultOrigin)

	// 空字符串等价于省略
	_, total, err := svc.List(repository.AnimalFilter{Size: ""}, 1, 20, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected empty size filter to match all, got total=%d", total)
	}

	// 枚举匹配大小写不敏感
	items, total, err := svc.List(repository.AnimalFilter{Size: "small"}, 1, 20, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 1 || items[0].Name != "Buddy" {
		t.Fatalf("expected case-insensitive size match, got total=%d", total)
	}

	// 名称/地址为子串匹配
	_, total, err = svc.List(repository.AnimalFilter{Name: "max"}, 1, 20, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected substring name match, got total=%d", total)
	}
	_, total, err = svc.List(repository.AnimalFilter{Address: "queen"}, 1, 20, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected substring address match, got total=%d", total)
	}

	// 非法枚举值返回空结果而不是报错
	items, total, err = svc.List(repository.AnimalFilter{Size: "Gigantic"}, 1, 20, nil)
	if err != nil {
		t.Fatalf("expected no error for unknown enum value, got %v", err)
	}
	if total != 0 || len(items) != 0 {
		t.Fatalf("expected empty result for unknown enum value, got total=%d", total)
	}
}

func TestAnimalService_BuildFilter(t *testing.T) {
	filter := BuildFilter(&dto.AnimalSearchRequest{
		SearchName:     "milo",
		SearchLocation: "toronto",
		Size:           "Small",
		PetType:        1,
	})
	want := repository.AnimalFilter{Name: "milo", Address: "toronto", Size: "Small", PetTypeID: 1}
	if filter != want {
		t.Fatalf("unexpected filter: %+v", filter)
	}

	if BuildFilter(nil) != (repository.AnimalFilter{}) {
		t.Fatalf("expected zero filter for nil request")
	}
}

func TestAnimalService_GetDetail_NotFound(t *testing.T) {
	svc := newTestAnimalService(newFakeAnimalStore(), newFakeFavoriteStore(), geo.DefaultOrigin)

	_, err := svc.GetDetail(999, nil)
	if err != ErrAnimalNotFound {
		t.Fatalf("expected ErrAnimalNotFound, got %v", err)
	}
}

func TestAnimalService_Create_ValidatesInput(t *testing.T) {
	svc := newTestAnimalService(newFakeAnimalStore(), newFakeFavoriteStore(), geo.DefaultOrigin)

	valid := dto.AnimalCreateRequest{
		Name:    "Milo",
		Gender:  model.GenderMale,
		Size:    model.SizeSmall,
		Age:     model.AgeBaby,
		PetType: 1,
	}

	bad := valid
	bad.Gender = "Unknown"
	if _, err := svc.Create(100, &bad); err != ErrInvalidEnumValue {
		t.Fatalf("expected ErrInvalidEnumValue, got %v", err)
	}

	bad = valid
	bad.Latitude = floatPtr(43.7)
	if _, err := svc.Create(100, &bad); err != ErrInvalidLocation {
		t.Fatalf("expected ErrInvalidLocation for latitude without longitude, got %v", err)
	}

	bad = valid
	bad.PetType = 999
	if _, err := svc.Create(100, &bad); err != ErrPetTypeNotFound {
		t.Fatalf("expected ErrPetTypeNotFound, got %v", err)
	}

	bad = valid
	bad.BreedType = int64Ptr(20) // Siamese 属于 Cats
	if _, err := svc.Create(100, &bad); err != ErrBreedTypeMismatch {
		t.Fatalf("expected ErrBreedTypeMismatch, got %v", err)
	}
}

func TestAnimalService_Create_PublishesEvent(t *testing.T) {
	animals := newFakeAnimalStore()
	publisher := &fakePublisher{}
	svc := NewAnimalService(animals, newFakeFavoriteStore(), newFakeTaxonomyStore(), publisher, geo.DefaultOrigin)

	info, err := svc.Create(100, &dto.AnimalCreateRequest{
		Name:    "Milo",
		Gender:  model.GenderMale,
		Size:    model.SizeSmall,
		Age:     model.AgeBaby,
		PetType: 1,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if info.Images == nil {
		t.Fatalf("expected images to default to empty slice")
	}
	if len(publisher.events) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(publisher.events))
	}
	event := publisher.events[0]
	if event.AnimalID != info.ID || event.Action != infraKafka.AnimalActionCreated {
		t.Fatalf("unexpected event %+v", event)
	}
}

func TestAnimalService_Update_OwnershipEnforced(t *testing.T) {
	animals := newFakeAnimalStore()
	a := testAnimal(1, "Milo", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	a.OwnerID = 100
	animals.add(a)

	svc := newTestAnimalService(animals, newFakeFavoriteStore(), geo.DefaultOrigin)

	name := "Max"
	if _, err := svc.Update(200, 1, &dto.AnimalUpdateRequest{Name: &name}); err != ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	info, err := svc.Update(100, 1, &dto.AnimalUpdateRequest{Name: &name})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if info.Name != "Max" {
		t.Fatalf("expected updated name, got %s", info.Name)
	}
}

func TestAnimalService_ListFavorites_OrderedByFavoriteTime(t *testing.T) {
	animals := newFakeAnimalStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	animals.add(testAnimal(1, "Milo", base))
	animals.add(testAnimal(2, "Luna", base.Add(time.Minute)))
	animals.add(testAnimal(3, "Rex", base.Add(2*time.Minute)))

	favorites := newFakeFavoriteStore()
	favorites.mark(7, 3)
	favorites.mark(7, 1) // 最近收藏的排最前

	svc := newTestAnimalService(animals, favorites, geo.DefaultOrigin)

	items, total, err := svc.ListFavorites(7, 1, 20)
	if err != nil {
		t.Fatalf("ListFavorites returned error: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("expected 2 favorites, got total=%d len=%d", total, len(items))
	}
	if items[0].ID != 1 || items[1].ID != 3 {
		t.Fatalf("expected favorite-time ordering [1 3], got [%d %d]", items[0].ID, items[1].ID)
	}
	for _, item := range items {
		if !item.IsFavorite {
			t.Fatalf("expected isFavorite=true on favorites page, animal %d", item.ID)
		}
	}
}
