package service

import (
	"testing"
	"time"
)

func newToggleFixture() (*FavoriteService, *fakeFavoriteStore) {
	animals := newFakeAnimalStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	animals.add(testAnimal(1, "Milo", base))
	animals.add(testAnimal(2, "Luna", base.Add(time.Minute)))

	favorites := newFakeFavoriteStore()
	return NewFavoriteService(favorites, animals), favorites
}

func TestFavoriteService_Toggle_XORRoundTrip(t *testing.T) {
	svc, _ := newToggleFixture()

	data, err := svc.Toggle(7, []int64{1})
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if len(data.Added) != 1 || data.Added[0] != 1 || len(data.Removed) != 0 {
		t.Fatalf("expected first toggle to add, got %+v", data)
	}

	data, err = svc.Toggle(7, []int64{1})
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if len(data.Removed) != 1 || data.Removed[0] != 1 || len(data.Added) != 0 {
		t.Fatalf("expected second toggle to remove, got %+v", data)
	}
}

func TestFavoriteService_Toggle_MixedAddRemove(t *testing.T) {
	svc, favorites := newToggleFixture()
	favorites.mark(7, 1)

	data, err := svc.Toggle(7, []int64{1, 2})
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if len(data.Removed) != 1 || data.Removed[0] != 1 {
		t.Fatalf("expected animal 1 removed, got %+v", data)
	}
	if len(data.Added) != 1 || data.Added[0] != 2 {
		t.Fatalf("expected animal 2 added, got %+v", data)
	}
}

func TestFavoriteService_Toggle_AllOrNothing(t *testing.T) {
	svc, favorites := newToggleFixture()

	// 存在无效 ID 时整个请求失败，不产生任何变更
	_, err := svc.Toggle(7, []int64{1, 999})
	if err != ErrAnimalNotFound {
		t.Fatalf("expected ErrAnimalNotFound, got %v", err)
	}
	if len(favorites.favs[7]) != 0 {
		t.Fatalf("expected no partial changes, got %v", favorites.favs[7])
	}
}

func TestFavoriteService_Toggle_EmptyIDs(t *testing.T) {
	svc, _ := newToggleFixture()

	if _, err := svc.Toggle(7, []int64{}); err != ErrEmptyAnimalIDs {
		t.Fatalf("expected ErrEmptyAnimalIDs, got %v", err)
	}
	if _, err := svc.Toggle(7, nil); err != ErrEmptyAnimalIDs {
		t.Fatalf("expected ErrEmptyAnimalIDs for nil, got %v", err)
	}
}

func TestFavoriteService_Toggle_DeduplicatesIDs(t *testing.T) {
	svc, favorites := newToggleFixture()

	data, err := svc.Toggle(7, []int64{1, 1, 1})
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if len(data.Added) != 1 || data.Added[0] != 1 {
		t.Fatalf("expected duplicates collapsed to single add, got %+v", data)
	}
	if len(favorites.favs[7]) != 1 {
		t.Fatalf("expected exactly one favorite, got %v", favorites.favs[7])
	}
}
