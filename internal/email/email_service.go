package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type Service interface {
	SendOrderConfirmation(ctx context.Context, to, customerName, orderID string, total float64) error
	SendNewsletterWelcome(ctx context.Context, to string) error
}

type resendService struct {
	apiKey    string
	fromEmail string
	baseURL   string
}

func NewResendServiceFromEnv() (Service, error) {
	apiKey := strings.Trim(os.Getenv("RESEND_API_KEY"), "\"")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is not configured")
	}

	from := strings.TrimSpace(strings.Trim(os.Getenv("RESEND_FROM_EMAIL"), "\""))
	if from == "" {
		from = "hola@frikioteca.com"
	}

	return &resendService{
		apiKey:    apiKey,
		fromEmail: from,
		baseURL:   "https://api.resend.com",
	}, nil
}

func NewNoopService() Service {
	return &noopService{}
}

func (s *resendService) SendOrderConfirmation(ctx context.Context, to, customerName, orderID string, total float64) error {
	html := fmt.Sprintf(
		"<p>Hola %s,</p><p>Recibimos tu pedido <strong>%s</strong> por $%.2f.</p><p>Te contactaremos pronto para coordinar la entrega.</p>",
		customerName,
		orderID,
		total,
	)
	return s.send(ctx, to, "¡Pedido recibido!", html)
}

func (s *resendService) SendNewsletterWelcome(ctx context.Context, to string) error {
	html := "<p>¡Gracias por suscribirte!</p><p>Recibirás nuestras novedades en tu correo.</p>"
	return s.send(ctx, to, "Bienvenido a Frikioteca", html)
}

func (s *resendService) send(ctx context.Context, to, subject, html string) error {
	body, err := json.Marshal(map[string]any{
		"from":    s.fromEmail,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("resend: status %d: %s", res.StatusCode, string(msg))
	}
	return nil
}

type noopService struct{}

func (s *noopService) SendOrderConfirmation(context.Context, string, string, string, float64) error {
	return nil
}

func (s *noopService) SendNewsletterWelcome(context.Context, string) error {
	return nil
}
