package newsletter

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/nicoxroll/frikioteca/internal/outbox"
	"github.com/nicoxroll/frikioteca/internal/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidEmail = apperror.New(
	apperror.CodeInvalidInput,
	"Por favor ingresa un email válido",
	http.StatusBadRequest,
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SubscribeRequest struct {
	Email string `json:"email"`
}

type Service interface {
	Subscribe(ctx context.Context, email string) error
}

type service struct {
	repo   Repository
	outbox outbox.Repository
	logger *zap.Logger
}

func NewService(repo Repository, ob outbox.Repository, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, outbox: ob, logger: logger}
}

func (s *service) Subscribe(ctx context.Context, email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}

	created, err := s.repo.Subscribe(ctx, email)
	if err != nil {
		return err
	}
	if !created {
		// Ya estaba suscripto; no se reenvía la bienvenida.
		return nil
	}

	if s.outbox == nil {
		return nil
	}

	payload, _ := json.Marshal(map[string]string{"email": email})
	err = s.outbox.Create(ctx, outbox.CreateParams{
		AggregateType: "newsletter",
		AggregateID:   uuid.New(),
		EventType:     "newsletter.subscribed",
		Payload:       payload,
	})
	if err != nil {
		s.logger.Warn("newsletter: could not enqueue welcome event",
			zap.String("email", email),
			zap.Error(err),
		)
	}
	return nil
}
