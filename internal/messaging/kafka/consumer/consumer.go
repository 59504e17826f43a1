package consumer

import (
	"context"
	"encoding/json"
	"log"

	"github.com/nicoxroll/frikioteca/internal/email"

	"github.com/segmentio/kafka-go"
)

type orderCreatedEvent struct {
	OrderID       string  `json:"orderId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Total         float64 `json:"total"`
}

type newsletterSubscribedEvent struct {
	Email string `json:"email"`
}

// ConsumeMessages lee los eventos publicados por el worker del outbox
// y despacha los avisos por email.
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

		var handleErr error
		switch eventType {
		case "order.created":
			handleErr = handleOrderCreated(ctx, msg.Value, mailer)
		case "newsletter.subscribed":
			handleErr = handleNewsletterSubscribed(ctx, msg.Value, mailer)
		default:
			// Evento desconocido, se descarta.
		}

		if handleErr != nil {
			log.Printf("[CONSUMER] Error handling %s: %v", eventType, handleErr)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Printf("[CONSUMER] Error committing message: %v", err)
		}
	}
}

func handleOrderCreated(ctx context.Context, payload []byte, mailer email.Service) error {
	var ev orderCreatedEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return err
	}
	return mailer.SendOrderConfirmation(ctx, ev.CustomerEmail, ev.CustomerName, ev.OrderID, ev.Total)
}

func handleNewsletterSubscribed(ctx context.Context, payload []byte, mailer email.Service) error {
	var ev newsletterSubscribedEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return err
	}
	return mailer.SendNewsletterWelcome(ctx, ev.Email)
}

func getHeader(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
