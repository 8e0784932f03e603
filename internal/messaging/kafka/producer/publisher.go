package producer

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"go-storefront-api/internal/order"
)

// OrderEventPublisher writes order events keyed by order id so consumers see
// a per-order ordering guarantee.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

func NewOrderEventPublisher(writer *kafka.Writer) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

func (p *OrderEventPublisher) PublishOrderCreated(ctx context.Context, event order.OrderCreatedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(order.EventOrderCreated)},
			{Key: "aggregate_type", Value: []byte("order")},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}
