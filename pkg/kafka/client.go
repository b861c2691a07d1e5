// Package kafka 提供了与 Kafka 消息队列交互的功能。
package kafka

import (
	"context"
	"encoding/json"
	"internhub-go/internal/config"
	"internhub-go/pkg/events"
	"internhub-go/pkg/log"

	"github.com/segmentio/kafka-go"
)

// EventProcessor defines the interface for any service that can process a platform event.
// This decouples the Kafka consumer from the concrete notification implementation.
type EventProcessor interface {
	Process(ctx context.Context, evt events.PlatformEvent) error
}

var producer *kafka.Writer

// InitProducer 初始化 Kafka 生产者。
func InitProducer(cfg config.KafkaConfig) {
	producer = &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	log.Info("Kafka 生产者初始化成功")
}

// ProduceEvent 发送一个平台事件到 Kafka。
func ProduceEvent(evt events.PlatformEvent) error {
	evtBytes, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return producer.WriteMessages(context.Background(),
		kafka.Message{
			Value: evtBytes,
		},
	)
}

// StartConsumer 启动一个 Kafka 消费者来处理平台事件。
// 事件处理是尽力而为的：失败只记录日志并提交 offset，
// 通知丢失不影响任何状态持有者的数据。
func StartConsumer(cfg config.KafkaConfig, processor EventProcessor) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{cfg.Brokers},
		Topic:    cfg.Topic,
		GroupID:  "internhub-go-consumer",
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
	})

	log.Infof("Kafka 消费者已启动，正在监听主题 '%s'", cfg.Topic)

	for {
		m, err := r.FetchMessage(context.Background())
		if err != nil {
			log.Error("从 Kafka 读取消息失败", err)
			break
		}

		var evt events.PlatformEvent
		if err := json.Unmarshal(m.Value, &evt); err != nil {
			log.Errorf("无法解析 Kafka 消息: %v, value: %s", err, string(m.Value))
			// 消息格式错误，直接提交，避免阻塞队列
			if err := r.CommitMessages(context.Background(), m); err != nil {
				log.Errorf("提交错误消息失败: %v", err)
			}
			continue
		}

		if err := processor.Process(context.Background(), evt); err != nil {
			log.Errorf("处理平台事件失败: type=%s, user=%s, error: %v", evt.Type, evt.UserID, err)
		}
		if err := r.CommitMessages(context.Background(), m); err != nil {
			log.Errorf("提交 Kafka 消息 offset 失败: %v", err)
		}
	}

	if err := r.Close(); err != nil {
		log.Fatalf("关闭 Kafka 消费者失败: %v", err)
	}
}
