package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pata-go/internal/config"
	"pata-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// 宠物变更事件类型
const (
	AnimalActionCreated    = "created"
	AnimalActionUpdated    = "updated"
	AnimalActionPhotoAdded = "photo_added"
)

// AnimalEvent 宠物变更事件消息体，worker 据此刷新搜索索引
type AnimalEvent struct {
	AnimalID int64  `json:"animal_id"`
	Action   string `json:"action"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendAnimalEvent 发送宠物变更事件到指定 topic
func SendAnimalEvent(ctx context.Context, topic string, event *AnimalEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal animal event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("animal-%d", event.AnimalID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send animal event: %w", err)
	}

	logger.Info("Animal event sent",
		zap.Int64("animal_id", event.AnimalID),
		zap.String("action", event.Action),
		zap.String("topic", topic),
	)

	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}

// Publisher 实现 service.EventPublisher，将事件写入固定 topic
type Publisher struct {
	topic string
}

func NewPublisher(topic string) *Publisher {
	return &Publisher{topic: topic}
}

// PublishAnimalEvent 发布宠物变更事件
func (p *Publisher) PublishAnimalEvent(ctx context.Context, event *AnimalEvent) error {
	return SendAnimalEvent(ctx, p.topic, event)
}
