package newsletter_test

import (
	"context"
	"testing"

	"github.com/nicoxroll/frikioteca/internal/newsletter"
	"github.com/nicoxroll/frikioteca/internal/outbox"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeNewsletterRepo struct {
	subscribeFunc func(ctx context.Context, email string) (bool, error)
	calls         int
}

func (f *fakeNewsletterRepo) Subscribe(ctx context.Context, email string) (bool, error) {
	f.calls++
	if f.subscribeFunc != nil {
		return f.subscribeFunc(ctx, email)
	}
	return true, nil
}

type fakeOutboxRepo struct {
	created []outbox.CreateParams
	err     error
}

func (f *fakeOutboxRepo) Create(ctx context.Context, arg outbox.CreateParams) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, arg)
	return nil
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int32) ([]outbox.Event, error) {
	return nil, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id uuid.UUID) error   { return nil }
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id uuid.UUID) error { return nil }

func TestNewsletterService_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("success_enqueues_welcome", func(t *testing.T) {
		repo := &fakeNewsletterRepo{}
		ob := &fakeOutboxRepo{}
		svc := newsletter.NewService(repo, ob, nil)

		err := svc.Subscribe(ctx, "nico@example.com")
		assert.NoError(t, err)
		assert.Len(t, ob.created, 1)
		assert.Equal(t, "newsletter.subscribed", ob.created[0].EventType)
	})

	t.Run("already_subscribed_skips_welcome", func(t *testing.T) {
		repo := &fakeNewsletterRepo{
			subscribeFunc: func(ctx context.Context, email string) (bool, error) {
				return false, nil
			},
		}
		ob := &fakeOutboxRepo{}
		svc := newsletter.NewService(repo, ob, nil)

		err := svc.Subscribe(ctx, "nico@example.com")
		assert.NoError(t, err)
		assert.Empty(t, ob.created)
	})

	t.Run("invalid_email_rejected", func(t *testing.T) {
		repo := &fakeNewsletterRepo{}
		svc := newsletter.NewService(repo, &fakeOutboxRepo{}, nil)

		err := svc.Subscribe(ctx, "sin-arroba")
		assert.Equal(t, newsletter.ErrInvalidEmail, err)
		assert.Zero(t, repo.calls)
	})

	t.Run("repo_error_propagates", func(t *testing.T) {
		repo := &fakeNewsletterRepo{
			subscribeFunc: func(ctx context.Context, email string) (bool, error) {
				return false, assert.AnError
			},
		}
		svc := newsletter.NewService(repo, &fakeOutboxRepo{}, nil)

		err := svc.Subscribe(ctx, "nico@example.com")
		assert.Error(t, err)
	})

	t.Run("outbox_failure_does_not_fail_subscription", func(t *testing.T) {
		svc := newsletter.NewService(&fakeNewsletterRepo{}, &fakeOutboxRepo{err: assert.AnError}, nil)

		err := svc.Subscribe(ctx, "nico@example.com")
		assert.NoError(t, err)
	})
}
