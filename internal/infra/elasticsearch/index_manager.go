package elasticsearch

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"pata-go/internal/config"
	"pata-go/pkg/logger"

	"go.uber.org/zap"
)

// AnimalsIndexName 返回配置的 animals 索引名
func AnimalsIndexName() string {
	cfg := config.GetElasticsearch()
	name := cfg.Index["animals"]
	if name == "" {
		name = "animals"
	}
	return name
}

// GetAnimalsIndexMapping 返回 animals 索引的 mapping
func GetAnimalsIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"owner_id": {"type": "long"},
				"name": {
					"type": "text",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 255}}
				},
				"description": {"type": "text"},
				"gender": {"type": "keyword"},
				"size": {"type": "keyword"},
				"age": {"type": "keyword"},
				"pet_type": {"type": "keyword"},
				"breed_type": {"type": "keyword"},
				"address": {"type": "text"},
				"city": {"type": "keyword"},
				"location": {"type": "geo_point"},
				"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
			}
		}
	}`
}

// EnsureAnimalsIndex 确保 animals 索引存在，不存在则创建
func EnsureAnimalsIndex(ctx context.Context) error {
	indexName := AnimalsIndexName()

	exists, err := IndicesExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch animals index already exists", zap.String("index", indexName))
		return nil
	}

	body := bytes.NewReader([]byte(GetAnimalsIndexMapping()))
	resp, err := IndicesCreate(ctx, indexName, body)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch animals index created", zap.String("index", indexName))
	return nil
}

// InitIndexes 初始化所有索引（启动时调用）
func InitIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return EnsureAnimalsIndex(ctx)
}
