package adapter

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/dwikikusuma/gamecock-shop/pkg/contracts"
	"github.com/dwikikusuma/gamecock-shop/pkg/kafka"
)

// KafkaPublisher emits order events keyed by order id so all events of
// one order land on the same partition.
type KafkaPublisher struct {
	writer *kafkago.Writer
}

func NewKafkaPublisher(client *kafka.Client, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: client.NewWriter(topic)}
}

func (p *KafkaPublisher) OrderPlaced(ctx context.Context, event contracts.OrderPlaced) error {
	return kafka.PublishJSON(ctx, p.writer, event.OrderID, event)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) OrderPlaced(ctx context.Context, event contracts.OrderPlaced) error {
	return nil
}
