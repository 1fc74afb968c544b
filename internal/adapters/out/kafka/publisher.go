// Package kafka publishes order domain events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"storefront/internal/core/domain/model/kernel"

	"github.com/Shopify/sarama"
)

var ErrTopicIsRequired = errors.New("kafka topic is required")

// NewSyncProducer connects to the brokers with acks from all in-sync
// replicas. Messages with the same key (the order id) keep their order.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.ClientID = "storefront"
	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("connect to kafka %v: %w", brokers, err)
	}
	return producer, nil
}

// Publisher writes each event as a JSON message keyed by its aggregate id.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewPublisher(producer sarama.SyncProducer, topic string) (*Publisher, error) {
	if topic == "" {
		return nil, ErrTopicIsRequired
	}
	return &Publisher{producer: producer, topic: topic}, nil
}

// Publish sends all events in one batch. A partial failure is reported as
// the joined per-message errors.
func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	messages := make([]*sarama.ProducerMessage, 0, len(events))
	for _, event := range events {
		message, err := p.toMessage(event)
		if err != nil {
			return err
		}
		messages = append(messages, message)
	}

	if err := p.producer.SendMessages(messages); err != nil {
		var producerErrs sarama.ProducerErrors
		if errors.As(err, &producerErrs) {
			joined := make([]error, 0, len(producerErrs))
			for _, e := range producerErrs {
				joined = append(joined, e)
			}
			return fmt.Errorf("publish %d events: %w", len(events), errors.Join(joined...))
		}
		return fmt.Errorf("publish %d events: %w", len(events), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}

func (p *Publisher) toMessage(event kernel.DomainEvent) (*sarama.ProducerMessage, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", event.EventName(), err)
	}

	return &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.AggregateID().String()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-name"), Value: []byte(event.EventName())},
			{Key: []byte("event-id"), Value: []byte(event.EventID().String())},
		},
		Timestamp: event.OccurredAt(),
	}, nil
}

// NopPublisher drops events. It stands in when no broker is configured.
type NopPublisher struct {
	logger *slog.Logger
}

func NewNopPublisher(logger *slog.Logger) NopPublisher {
	return NopPublisher{logger: logger}
}

func (p NopPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	for _, event := range events {
		p.logger.DebugContext(ctx, "event dropped, kafka is not configured",
			slog.String("event", event.EventName()),
			slog.String("aggregate_id", event.AggregateID().String()))
	}
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
