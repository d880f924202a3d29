package postgres

import (
	"context"
	"database/sql"
	"errors"

	"courtside-backend/internal/domain"
	"courtside-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (user_id, order_id, booking_date, status, facility_id, booked_date, booked_slot, boking_time_json)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.UserID, b.OrderID, b.BookingDate, b.Status, b.FacilityID, b.BookedDate, b.BookedSlot, b.BookingTimeJSON).Scan(&b.ID)
}

func (r *bookingRepository) ListForFacilityDate(ctx context.Context, facilityID int32, date string) ([]domain.BookingSummary, error) {
	query := `SELECT
	            b.id AS booking_id,
	            b.user_id,
	            b.order_id,
	            b.booked_date,
	            b.start_time,
	            b.booked_slot,
	            b.boking_time_json,
	            b.end_time,
	            b.status AS booking_status,
	            p.amount,
	            p.status AS payment_status,
	            u.phone AS user_phone,
	            f.name AS facility_name
	          FROM bookings b
	          LEFT JOIN payments p ON b.order_id = p.order_id
	          LEFT JOIN users u ON b.user_id = u.id
	          LEFT JOIN facilities f ON b.facility_id = f.id
	          WHERE b.booked_date = $1 AND b.facility_id = $2 AND b.status IN ('confirmed', 'active', 'booked')
	          ORDER BY b.start_time ASC`
	rows, err := r.db.QueryContext(ctx, query, date, facilityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.BookingSummary
	for rows.Next() {
		var bs domain.BookingSummary
		if err := rows.Scan(&bs.BookingID, &bs.UserID, &bs.OrderID, &bs.BookedDate, &bs.StartTime, &bs.BookedSlot, &bs.BookingTimeJSON, &bs.EndTime, &bs.BookingStatus, &bs.Amount, &bs.PaymentStatus, &bs.UserPhone, &bs.FacilityName); err != nil {
			return nil, err
		}
		bookings = append(bookings, bs)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) GetDetailsByOrderID(ctx context.Context, orderID string) (*domain.BookingSummary, error) {
	bs := &domain.BookingSummary{}
	query := `SELECT b.id, b.user_id, b.order_id, b.booked_date, b.start_time, b.end_time, b.booked_slot, b.boking_time_json, b.status, p.amount, p.status AS payment_status
	          FROM bookings b
	          JOIN payments p ON b.order_id = p.order_id
	          WHERE b.order_id = $1`
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(&bs.BookingID, &bs.UserID, &bs.OrderID, &bs.BookedDate, &bs.StartTime, &bs.EndTime, &bs.BookedSlot, &bs.BookingTimeJSON, &bs.BookingStatus, &bs.Amount, &bs.PaymentStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *bookingRepository) UpdateStatusByOrderID(ctx context.Context, status domain.BookingStatus, orderID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $1 WHERE order_id = $2`, status, orderID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *bookingRepository) DeleteByOrderID(ctx context.Context, orderID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE order_id = $1`, orderID)
	return err
}
