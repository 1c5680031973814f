// Package kafka publishes notification messages to the mail delivery topic.
// A separate mailer service consumes the topic and renders the templates.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/lcnogueira/plataforma-sabia/internal/notifications"

	"github.com/IBM/sarama"
)

// Producer implements notifications.Queue on top of a synchronous Kafka
// producer. Messages are keyed by recipient so mail for the same address
// stays ordered within a partition.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewProducer connects to the given brokers and returns a producer bound to
// the mail topic.
func NewProducer(brokers []string, topic string, logger *slog.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &Producer{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka"),
	}, nil
}

// Enqueue publishes one notification message to the mail topic.
func (p *Producer) Enqueue(_ context.Context, message notifications.Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(message.To),
		Value: sarama.ByteEncoder(data),
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	p.logger.Debug("notification published",
		"topic", p.topic,
		"template", message.Template,
		"partition", partition,
		"offset", offset,
	)

	return nil
}

// Close releases the underlying Kafka connection.
func (p *Producer) Close() error {
	return p.producer.Close()
}
