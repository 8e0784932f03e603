package consumer

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"go-storefront-api/internal/email"
	"go-storefront-api/internal/order"
)

// ConsumeMessages drains the order events topic. ORDER_CREATED events trigger
// a confirmation email; unknown event types are committed and skipped.
func ConsumeMessages(ctx context.Context, reader *kafka.Reader, mailer email.Service) {
	log.Println("[CONSUMER] Started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[CONSUMER] Error fetching message: %v", err)
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		if eventType == order.EventOrderCreated {
			if err := handleOrderCreated(ctx, msg.Value, mailer); err != nil {
				log.Printf("[CONSUMER] Error handling %s: %v", order.EventOrderCreated, err)
				continue
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Printf("[CONSUMER] Error committing message: %v", err)
		}
	}
}

func handleOrderCreated(ctx context.Context, payload []byte, mailer email.Service) error {
	var event order.OrderCreatedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Order %s placed by user %s: %d item(s), total %.2f",
		event.OrderID, event.UserID, len(event.Items), event.TotalPrice)

	if event.CustomerEmail == "" {
		return nil
	}

	// best effort: a failed email never blocks the commit
	if err := mailer.SendOrderConfirmation(ctx, event.CustomerEmail, event.OrderID, event.TotalPrice); err != nil {
		log.Printf("[CONSUMER] Error sending confirmation for %s: %v", event.OrderID, err)
	}
	return nil
}
