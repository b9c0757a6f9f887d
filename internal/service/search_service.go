package service

import (
	"context"
	"strings"

	"pata-go/internal/api/dto"
	infraES "pata-go/internal/infra/elasticsearch"
	"pata-go/internal/repository"
	"pata-go/pkg/logger"

	"go.uber.org/zap"
)

const suggestLimit = 10

type SearchService struct {
	animals AnimalStore
}

func NewSearchService(animals AnimalStore) *SearchService {
	return &SearchService{animals: animals}
}

// Suggest 名称联想（ES 优先，失败则降级到 DB 前缀查询）
func (s *SearchService) Suggest(ctx context.Context, q string) (*dto.SuggestData, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return &dto.SuggestData{Suggestions: []string{}}, nil
	}

	names, err := infraES.SuggestAnimalNames(ctx, q, suggestLimit)
	if err != nil {
		logger.Warn("ES suggest failed, fallback to DB", zap.Error(err))
		return s.suggestFromDB(q)
	}
	return &dto.SuggestData{Suggestions: names}, nil
}

func (s *SearchService) suggestFromDB(q string) (*dto.SuggestData, error) {
	animals, _, err := s.animals.List(repository.AnimalFilter{Name: q}, 0, suggestLimit)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(animals))
	names := make([]string, 0, len(animals))
	for i := range animals {
		name := animals[i].Name
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return &dto.SuggestData{Suggestions: names}, nil
}
