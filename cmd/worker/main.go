package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	"github.com/nicoxroll/frikioteca/internal/app"
	"github.com/nicoxroll/frikioteca/internal/messaging/kafka/producer"
	"github.com/nicoxroll/frikioteca/internal/outbox"
)

func main() {
	_ = godotenv.Load()
	log.Println("[WORKER] Starting outbox processor...")

	// 1. Connect to database
	db, err := sql.Open("postgres", os.Getenv("DB_URL"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("[WORKER] Database connected")

	// 2. Setup Kafka writer
	kafkaWriter, err := app.ConnectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), 5)
	if err != nil {
		log.Fatalf("Failed to connect to kafka: %v", err)
	}
	kafkaWriter.Topic = "frikioteca.events"
	kafkaWriter.Balancer = &kafka.LeastBytes{}
	defer kafkaWriter.Close()

	// 3. Outbox repository
	outboxRepo := outbox.NewRepository(db)

	// 4. Start processor
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter)

	// 5. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[WORKER] Shutting down...")
	cancel()
	time.Sleep(1 * time.Second)
	log.Println("[WORKER] Stopped")
}
