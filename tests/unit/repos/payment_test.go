package repos

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"courtside-backend/internal/domain"
	"courtside-backend/internal/repository/postgres"
)

func TestPaymentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		p := &domain.Payment{
			UserID:      7,
			Status:      domain.PaymentStatusPending,
			Amount:      29.35,
			PaymentDate: time.Now(),
			OrderID:     "pi_123",
		}

		mock.ExpectQuery("INSERT INTO payments").
			WithArgs(p.UserID, p.Status, p.Amount, p.PaymentDate, p.OrderID, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

		err := repo.Create(ctx, p)
		assert.NoError(t, err)
		assert.Equal(t, int32(11), p.ID)
	})
}

func TestPaymentRepository_GetByOrderID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, order_id, status, amount, payment_date, transaction_id FROM payments").
			WithArgs("pi_123").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "order_id", "status", "amount", "payment_date", "transaction_id"}).
				AddRow(11, 7, "pi_123", "pending", 29.35, time.Now(), nil))

		p, err := repo.GetByOrderID(ctx, "pi_123")
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPending, p.Status)
		assert.Equal(t, 29.35, p.Amount)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, order_id, status, amount, payment_date, transaction_id FROM payments").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "order_id", "status", "amount", "payment_date", "transaction_id"}))

		_, err := repo.GetByOrderID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPaymentRepository_ApplyGatewayUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectExec("UPDATE payments").
			WithArgs("completed", 29.35, now, "pi_123", "pi_123", int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := repo.ApplyGatewayUpdate(ctx, domain.PaymentStatusCompleted, 29.35, now, "pi_123", "pi_123", 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("NoMatchingRow", func(t *testing.T) {
		now := time.Now()
		mock.ExpectExec("UPDATE payments").
			WithArgs("completed", 29.35, now, "pi_999", "pi_999", int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		affected, err := repo.ApplyGatewayUpdate(ctx, domain.PaymentStatusCompleted, 29.35, now, "pi_999", "pi_999", 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}

func TestPaymentRepository_ListExpiredCash(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cutoff := time.Now().Add(-6 * time.Hour)
		mock.ExpectQuery("SELECT id, user_id, order_id, status, amount, payment_date, transaction_id").
			WithArgs(cutoff).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "order_id", "status", "amount", "payment_date", "transaction_id"}).
				AddRow(1, 7, "cash_1", "pending", 20.0, cutoff.Add(-time.Hour), nil))

		stale, err := repo.ListExpiredCash(ctx, cutoff)
		assert.NoError(t, err)
		assert.Len(t, stale, 1)
		assert.Equal(t, "cash_1", stale[0].OrderID)
	})
}
