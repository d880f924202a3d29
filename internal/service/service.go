package service

import (
	"context"

	"courtside-backend/internal/domain"
)

type AvailabilityService interface {
	// GetFacilityAvailability derives the bookable schedule and occupancy for
	// a facility on a calendar date.
	GetFacilityAvailability(ctx context.Context, facilityID int32, date string) (*domain.FacilityAvailability, error)
	ListFacilities(ctx context.Context) ([]domain.Facility, error)
	GetFacilitySchedules(ctx context.Context) ([]domain.FacilitySchedule, error)
	CreateDayType(ctx context.Context, dt *domain.DayType) error
	DeleteDayType(ctx context.Context, id int32) error
}

type PaymentService interface {
	// Card payments: the gateway intent id doubles as the order id. The
	// booking row is created later, by the success webhook.
	CreateCardPayment(ctx context.Context, userID int32, amount float64, bc domain.BookingContext) (clientSecret, orderID string, err error)
	CreateRoomCardPayment(ctx context.Context, userID int32, rp *domain.RoomPayment) (clientSecret, intentID string, err error)

	// Cash and free paths create both rows synchronously.
	CreateCashPayment(ctx context.Context, userID int32, amount float64, bc domain.BookingContext) (orderID string, err error)
	CreateRoomCashPayment(ctx context.Context, userID int32, rp *domain.RoomPayment) (orderID string, err error)
	CreateFreeBooking(ctx context.Context, userID int32, bc domain.BookingContext) (orderID string, err error)

	HandleWebhookEvent(ctx context.Context, payload []byte, sigHeader string) error
	HandleRoomWebhookEvent(ctx context.Context, payload []byte, sigHeader string) error

	GetPaymentStatus(ctx context.Context, userID int32, orderID string) (*domain.PaymentDetails, error)
	GetCheckoutSessionStatus(ctx context.Context, sessionID string) (string, error)
	GetRoomPaymentStatus(ctx context.Context, userID int32, intentID string) (*domain.RoomPayment, error)
	GetCashPaymentExpiry(ctx context.Context, userID int32, orderID string) (*domain.CashPaymentExpiry, error)

	ApproveCashPayment(ctx context.Context, orderID string) error
	UpdateCashPaymentStatus(ctx context.Context, orderID string, bookingStatus, paymentStatus *string) error
	ListPendingCashPayments(ctx context.Context) ([]domain.PaymentDetails, error)
	ListAllPayments(ctx context.Context) ([]domain.PaymentDetails, error)
}

type AuthService interface {
	RequestOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (string, *domain.User, error)
	AdminLogin(ctx context.Context, email, password string) (string, *domain.User, error)
}

type EmailService interface {
	SendOTP(ctx context.Context, email, code string) error
	SendBookingConfirmation(ctx context.Context, email, facilityName, bookedDate, slot string) error
}
