package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"pata-go/internal/model"
)

// animalDoc animals 索引中的文档结构
type animalDoc struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Gender      string    `json:"gender"`
	Size        string    `json:"size"`
	Age         string    `json:"age"`
	PetType     string    `json:"pet_type"`
	BreedType   string    `json:"breed_type,omitempty"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Location    *geoPoint `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type geoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IndexAnimal 将宠物写入（或覆盖）animals 索引
func IndexAnimal(ctx context.Context, animal *model.Animal) error {
	doc := animalDoc{
		ID:          animal.ID,
		OwnerID:     animal.OwnerID,
		Name:        animal.Name,
		Description: animal.Description,
		Gender:      animal.Gender,
		Size:        animal.Size,
		Age:         animal.Age,
		PetType:     animal.PetType.Name,
		Address:     animal.Address,
		City:        animal.City,
		CreatedAt:   animal.CreatedAt,
	}
	if animal.BreedType != nil {
		doc.BreedType = animal.BreedType.Name
	}
	if animal.HasLocation() {
		doc.Location = &geoPoint{Lat: *animal.Latitude, Lon: *animal.Longitude}
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal animal doc: %w", err)
	}

	resp, err := Index(ctx, AnimalsIndexName(), strconv.FormatInt(animal.ID, 10), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("index animal doc: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index animal doc failed: %s", resp.String())
	}
	return nil
}

// DeleteAnimal 从 animals 索引中删除宠物文档
func DeleteAnimal(ctx context.Context, animalID int64) error {
	resp, err := Delete(ctx, AnimalsIndexName(), strconv.FormatInt(animalID, 10))
	if err != nil {
		return fmt.Errorf("delete animal doc: %w", err)
	}
	defer resp.Body.Close()

	// 文档本就不存在视为成功
	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete animal doc failed: %s", resp.String())
	}
	return nil
}

// SuggestAnimalNames 按名称前缀做联想查询，返回去重后的名称列表
func SuggestAnimalNames(ctx context.Context, prefix string, limit int) ([]string, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"match_phrase_prefix": map[string]interface{}{
				"name": map[string]interface{}{
					"query": prefix,
				},
			},
		},
		"_source": []string{"name"},
		"size":    limit,
	}

	payload, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	resp, err := Search(ctx, AnimalsIndexName(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES suggest error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				Source struct {
					Name string `json:"name"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(esResp.Hits.Hits))
	names := make([]string, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		if !seen[h.Source.Name] {
			seen[h.Source.Name] = true
			names = append(names, h.Source.Name)
		}
	}
	return names, nil
}
