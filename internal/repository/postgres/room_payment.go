package postgres

import (
	"context"
	"database/sql"
	"errors"

	"courtside-backend/internal/domain"
	"courtside-backend/internal/repository"
)

type roomPaymentRepository struct {
	db *sql.DB
}

func NewRoomPaymentRepository(db *sql.DB) repository.RoomPaymentRepository {
	return &roomPaymentRepository{db: db}
}

func (r *roomPaymentRepository) Create(ctx context.Context, rp *domain.RoomPayment) error {
	query := `INSERT INTO payments_rooms (payment_intent_id, order_id, user_id, room_id, amount, currency, room_count, adult_count, children_count, total_nights, date, start_date, end_date, status, client_secret)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.ExecContext(ctx, query, rp.PaymentIntentID, rp.OrderID, rp.UserID, rp.RoomID, rp.Amount, rp.Currency, rp.RoomCount, rp.AdultCount, rp.ChildrenCount, rp.TotalNights, rp.Date, rp.StartDate, rp.EndDate, rp.Status, rp.ClientSecret)
	return err
}

func (r *roomPaymentRepository) GetByIntentID(ctx context.Context, intentID string, userID int32) (*domain.RoomPayment, error) {
	rp := &domain.RoomPayment{}
	query := `SELECT payment_intent_id, order_id, user_id, room_id, amount, currency, room_count, adult_count, children_count, total_nights, date, start_date, end_date, status, client_secret
	          FROM payments_rooms
	          WHERE payment_intent_id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, intentID, userID).Scan(&rp.PaymentIntentID, &rp.OrderID, &rp.UserID, &rp.RoomID, &rp.Amount, &rp.Currency, &rp.RoomCount, &rp.AdultCount, &rp.ChildrenCount, &rp.TotalNights, &rp.Date, &rp.StartDate, &rp.EndDate, &rp.Status, &rp.ClientSecret)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rp, nil
}

func (r *roomPaymentRepository) ApplyGatewayUpdate(ctx context.Context, status domain.PaymentStatus, amount float64, intentID string, userID int32) (int64, error) {
	query := `UPDATE payments_rooms SET status = $1, amount = $2 WHERE payment_intent_id = $3 AND user_id = $4`
	res, err := r.db.ExecContext(ctx, query, status, amount, intentID, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *roomPaymentRepository) DeleteByIntentID(ctx context.Context, intentID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM payments_rooms WHERE payment_intent_id = $1`, intentID)
	return err
}
