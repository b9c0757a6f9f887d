package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pata-go/internal/config"
	"pata-go/internal/infra/database"
	infraES "pata-go/internal/infra/elasticsearch"
	infraKafka "pata-go/internal/infra/kafka"
	"pata-go/internal/repository"
	"pata-go/pkg/logger"

	"go.uber.org/zap"
)

// 搜索索引 worker：消费宠物变更事件，把宠物文档同步进 Elasticsearch
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	if err := infraES.InitIndexes(); err != nil {
		logger.Fatal("Failed to init elasticsearch indexes", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	topic := cfg.Kafka.Topics["animal_events"]
	groupID := "pata-go-index-worker"

	logger.Info("Index worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	animalRepo := repository.NewAnimalRepository(database.Get())

	handler := func(event *infraKafka.AnimalEvent) error {
		syncCtx, syncCancel := context.WithTimeout(ctx, 10*time.Second)
		defer syncCancel()
		return syncAnimal(syncCtx, animalRepo, event.AnimalID)
	}

	infraKafka.StartAnimalEventConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, handler)
}

// syncAnimal 以数据库为准刷新单个宠物的索引文档
func syncAnimal(ctx context.Context, repo *repository.AnimalRepository, animalID int64) error {
	animal, err := repo.GetByID(animalID)
	if err != nil {
		// 记录已不存在时清掉旧文档
		return infraES.DeleteAnimal(ctx, animalID)
	}

	if err := infraES.IndexAnimal(ctx, animal); err != nil {
		return err
	}

	logger.Info("Animal indexed", zap.Int64("animal_id", animalID))
	return nil
}
