package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	"github.com/nicoxroll/frikioteca/internal/email"
	"github.com/nicoxroll/frikioteca/internal/messaging/kafka/consumer"
)

func main() {
	_ = godotenv.Load()
	log.Println("[CONSUMER] Starting notification consumer...")

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   "frikioteca.events",
		GroupID: "frikioteca-notifications",
	})
	defer reader.Close()

	mailer, err := email.NewResendServiceFromEnv()
	if err != nil {
		log.Printf("[CONSUMER] Email disabled: %v", err)
		mailer = email.NewNoopService()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, mailer)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
}
