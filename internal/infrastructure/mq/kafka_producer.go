package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"huddle_server/internal/config"
)

// kafkaProducer 基于 Kafka 的信号实现
// signalMode = "kafka" 时使用，信号按事件 ID 哈希分区
type kafkaProducer struct {
	writer *kafka.Writer
}

// NewKafkaProducer 创建 Kafka 信号生产者
func NewKafkaProducer() SignalProducer {
	kafkaConfig := config.GetConfig().KafkaConfig
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(kafkaConfig.HostPort),
		Topic:                  kafkaConfig.SignalTopic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           kafkaConfig.Timeout * time.Second,
		RequiredAcks:           kafka.RequireNone,
		AllowAutoTopicCreation: true,
	}
	return &kafkaProducer{writer: writer}
}

// Publish 发布信号到 Kafka
// key 用事件 ID，同一事件的信号落在同一分区保持顺序
func (p *kafkaProducer) Publish(ctx context.Context, sig Signal) error {
	value, err := json.Marshal(sig)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(sig.EventId),
		Value: value,
	})
}

// Close 关闭底层 writer
func (p *kafkaProducer) Close() error {
	if err := p.writer.Close(); err != nil {
		zap.L().Error("kafka writer close failed", zap.Error(err))
		return err
	}
	return nil
}
