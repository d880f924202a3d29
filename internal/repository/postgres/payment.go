package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"courtside-backend/internal/domain"
	"courtside-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (user_id, status, amount, payment_date, order_id, transaction_id)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.UserID, p.Status, p.Amount, p.PaymentDate, p.OrderID, p.TransactionID).Scan(&p.ID)
}

func (r *paymentRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT id, user_id, order_id, status, amount, payment_date, transaction_id FROM payments WHERE order_id = $1`
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(&p.ID, &p.UserID, &p.OrderID, &p.Status, &p.Amount, &p.PaymentDate, &p.TransactionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) GetByUserAndOrderID(ctx context.Context, userID int32, orderID string) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT id, user_id, order_id, status, amount, payment_date, transaction_id
	          FROM payments
	          WHERE user_id = $1 AND order_id = $2
	          ORDER BY payment_date DESC
	          LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, userID, orderID).Scan(&p.ID, &p.UserID, &p.OrderID, &p.Status, &p.Amount, &p.PaymentDate, &p.TransactionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) ApplyGatewayUpdate(ctx context.Context, status domain.PaymentStatus, amount float64, paymentDate time.Time, transactionID, orderID string, userID int32) (int64, error) {
	query := `UPDATE payments
	          SET status = $1,
	              amount = $2,
	              payment_date = $3,
	              transaction_id = $4
	          WHERE order_id = $5 AND user_id = $6`
	res, err := r.db.ExecContext(ctx, query, status, amount, paymentDate, transactionID, orderID, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *paymentRepository) UpdateStatusByOrderID(ctx context.Context, status domain.PaymentStatus, orderID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE payments SET status = $1 WHERE order_id = $2`, status, orderID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *paymentRepository) DeleteByOrderID(ctx context.Context, orderID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE order_id = $1`, orderID)
	return err
}

func (r *paymentRepository) ListExpiredCash(ctx context.Context, cutoff time.Time) ([]domain.Payment, error) {
	query := `SELECT id, user_id, order_id, status, amount, payment_date, transaction_id
	          FROM payments
	          WHERE status = 'pending' AND order_id LIKE 'cash%' AND payment_date < $1`
	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.OrderID, &p.Status, &p.Amount, &p.PaymentDate, &p.TransactionID); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) ListPendingCash(ctx context.Context) ([]domain.PaymentDetails, error) {
	query := `SELECT p.id, p.user_id, p.order_id, p.status, p.amount, p.payment_date, p.transaction_id,
	                 b.id, b.booked_date, b.start_time, b.end_time, b.booked_slot, b.boking_time_json, b.status, u.email, u.phone
	          FROM payments p
	          INNER JOIN bookings b ON p.order_id = b.order_id
	          INNER JOIN users u ON p.user_id = u.id
	          WHERE p.status = 'pending' AND p.order_id LIKE 'cash%'
	          ORDER BY p.payment_date DESC`
	return r.listDetails(ctx, query)
}

func (r *paymentRepository) ListWithBookings(ctx context.Context) ([]domain.PaymentDetails, error) {
	query := `SELECT p.id, p.user_id, p.order_id, p.status, p.amount, p.payment_date, p.transaction_id,
	                 b.id, b.booked_date, b.start_time, b.end_time, b.booked_slot, b.boking_time_json, b.status, u.email, u.phone
	          FROM payments p
	          INNER JOIN bookings b ON p.order_id = b.order_id
	          INNER JOIN users u ON p.user_id = u.id
	          ORDER BY p.payment_date DESC`
	return r.listDetails(ctx, query)
}

func (r *paymentRepository) listDetails(ctx context.Context, query string) ([]domain.PaymentDetails, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.PaymentDetails
	for rows.Next() {
		var pd domain.PaymentDetails
		var bs domain.BookingSummary
		var email, phone *string
		if err := rows.Scan(&pd.ID, &pd.UserID, &pd.OrderID, &pd.Status, &pd.Amount, &pd.PaymentDate, &pd.TransactionID,
			&bs.BookingID, &bs.BookedDate, &bs.StartTime, &bs.EndTime, &bs.BookedSlot, &bs.BookingTimeJSON, &bs.BookingStatus, &email, &phone); err != nil {
			return nil, err
		}
		bs.UserID = pd.UserID
		bs.OrderID = pd.OrderID
		bs.UserPhone = phone
		pd.Booking = &bs
		details = append(details, pd)
	}
	return details, rows.Err()
}
