package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"

	"go-storefront-api/internal/email"
	"go-storefront-api/internal/messaging/kafka/consumer"
)

func RunConsumer() error {
	log.Println("[CONSUMER] Starting order events consumer...")

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   "order.events",
		GroupID: "order-consumer-group",
	})
	defer reader.Close()
	log.Println("[CONSUMER] Kafka reader initialized")

	mailer, err := email.NewResendServiceFromEnv()
	if err != nil {
		log.Printf("[CONSUMER] Confirmation emails disabled: %v", err)
		mailer = email.NewNoopService()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, mailer)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	log.Println("[CONSUMER] Stopped")
	return nil
}
