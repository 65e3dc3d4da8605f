// Package events отдаёт доменные события заказов внешним потребителям (push, email).
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/config"
	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	logger *slog.Logger
	writer messageWriter
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *KafkaPublisher {
	return newKafkaPublisher(logger, &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.EventsTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	})
}

func newKafkaPublisher(logger *slog.Logger, w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{
		logger: logger.With(slog.String("component", "events")),
		writer: w,
	}
}

// Publish пишет событие с ключом по заказу, чтобы события одного заказа шли по порядку.
func (p *KafkaPublisher) Publish(ctx context.Context, e entities.OrderEvent) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(e.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	eventsPublished.WithLabelValues(string(e.Type)).Inc()
	p.logger.DebugContext(ctx, "event published", slog.String("order_id", e.OrderID), slog.String("type", string(e.Type)))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
