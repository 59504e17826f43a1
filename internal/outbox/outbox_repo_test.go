package outbox_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/nicoxroll/frikioteca/internal/outbox"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newMockRepo(t *testing.T) (outbox.Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	return outbox.NewRepository(db), mock, func() { db.Close() }
}

func TestOutboxRepo_Create(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()
	ctx := context.Background()

	aggregateID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox")).
		WithArgs("order", aggregateID, "order.created", []byte(`{"orderId":"abc"}`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(ctx, outbox.CreateParams{
		AggregateType: "order",
		AggregateID:   aggregateID,
		EventType:     "order.created",
		Payload:       []byte(`{"orderId":"abc"}`),
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepo_ListPending(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()
	ctx := context.Background()

	cols := []string{"id", "aggregate_type", "aggregate_id", "event_type", "payload", "status", "created_at"}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'PENDING'")).
		WithArgs(int32(10)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(uuid.New(), "order", uuid.New(), "order.created", []byte(`{}`), "PENDING", time.Now()).
			AddRow(uuid.New(), "newsletter", uuid.New(), "newsletter.subscribed", []byte(`{}`), "PENDING", time.Now()))

	events, err := repo.ListPending(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "order.created", events[0].EventType)
}

func TestOutboxRepo_MarkSent(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()
	ctx := context.Background()

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox SET status = 'SENT'")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkSent(ctx, id))
}

func TestOutboxRepo_MarkFailed(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()
	ctx := context.Background()

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox SET status = 'FAILED'")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkFailed(ctx, id))
}
