package repository

import (
	"context"
	"time"

	"courtside-backend/internal/domain"
)

type FacilityRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Facility, error)
	List(ctx context.Context) ([]domain.Facility, error)
	// ScheduleForWeekday returns the (facility, day-type) join rows whose
	// day-type covers the given weekday name ("Monday"...).
	ScheduleForWeekday(ctx context.Context, weekday string, facilityID int32) ([]domain.ScheduleRow, error)
	ListScheduleRows(ctx context.Context) ([]domain.ScheduleRow, error)

	// Day-type administration. Both run inside an explicit transaction:
	// the day_types row and its day_type_days rows commit or roll back
	// together.
	CreateDayType(ctx context.Context, dt *domain.DayType) error
	DeleteDayType(ctx context.Context, id int32) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	// ListForFacilityDate returns bookings for (facility, booked date)
	// whose status is confirmed/active/booked, joined with their payments.
	ListForFacilityDate(ctx context.Context, facilityID int32, date string) ([]domain.BookingSummary, error)
	GetDetailsByOrderID(ctx context.Context, orderID string) (*domain.BookingSummary, error)
	UpdateStatusByOrderID(ctx context.Context, status domain.BookingStatus, orderID string) (int64, error)
	DeleteByOrderID(ctx context.Context, orderID string) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	GetByUserAndOrderID(ctx context.Context, userID int32, orderID string) (*domain.Payment, error)
	// ApplyGatewayUpdate records a webhook-reported state change keyed by
	// order id + user id (the intent metadata correlation).
	ApplyGatewayUpdate(ctx context.Context, status domain.PaymentStatus, amount float64, paymentDate time.Time, transactionID, orderID string, userID int32) (int64, error)
	UpdateStatusByOrderID(ctx context.Context, status domain.PaymentStatus, orderID string) (int64, error)
	DeleteByOrderID(ctx context.Context, orderID string) error
	ListExpiredCash(ctx context.Context, cutoff time.Time) ([]domain.Payment, error)
	ListPendingCash(ctx context.Context) ([]domain.PaymentDetails, error)
	ListWithBookings(ctx context.Context) ([]domain.PaymentDetails, error)
}

type RoomPaymentRepository interface {
	Create(ctx context.Context, rp *domain.RoomPayment) error
	GetByIntentID(ctx context.Context, intentID string, userID int32) (*domain.RoomPayment, error)
	ApplyGatewayUpdate(ctx context.Context, status domain.PaymentStatus, amount float64, intentID string, userID int32) (int64, error)
	DeleteByIntentID(ctx context.Context, intentID string) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

type OTPRepository interface {
	Insert(ctx context.Context, email, otp string, expiresAt time.Time) error
	Latest(ctx context.Context, email string) (*domain.OTPLog, error)
	IncrementAttempts(ctx context.Context, id int32) error
	Delete(ctx context.Context, id int32) error
}
