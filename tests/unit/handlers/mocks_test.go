package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"courtside-backend/internal/domain"
)

// MockPaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreateCardPayment(ctx context.Context, userID int32, amount float64, bc domain.BookingContext) (string, string, error) {
	args := m.Called(ctx, userID, amount, bc)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockPaymentService) CreateRoomCardPayment(ctx context.Context, userID int32, rp *domain.RoomPayment) (string, string, error) {
	args := m.Called(ctx, userID, rp)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockPaymentService) CreateCashPayment(ctx context.Context, userID int32, amount float64, bc domain.BookingContext) (string, error) {
	args := m.Called(ctx, userID, amount, bc)
	return args.String(0), args.Error(1)
}
func (m *MockPaymentService) CreateRoomCashPayment(ctx context.Context, userID int32, rp *domain.RoomPayment) (string, error) {
	args := m.Called(ctx, userID, rp)
	return args.String(0), args.Error(1)
}
func (m *MockPaymentService) CreateFreeBooking(ctx context.Context, userID int32, bc domain.BookingContext) (string, error) {
	args := m.Called(ctx, userID, bc)
	return args.String(0), args.Error(1)
}
func (m *MockPaymentService) HandleWebhookEvent(ctx context.Context, payload []byte, sigHeader string) error {
	args := m.Called(ctx, payload, sigHeader)
	return args.Error(0)
}
func (m *MockPaymentService) HandleRoomWebhookEvent(ctx context.Context, payload []byte, sigHeader string) error {
	args := m.Called(ctx, payload, sigHeader)
	return args.Error(0)
}
func (m *MockPaymentService) GetPaymentStatus(ctx context.Context, userID int32, orderID string) (*domain.PaymentDetails, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentDetails), args.Error(1)
}
func (m *MockPaymentService) GetCheckoutSessionStatus(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}
func (m *MockPaymentService) GetRoomPaymentStatus(ctx context.Context, userID int32, intentID string) (*domain.RoomPayment, error) {
	args := m.Called(ctx, userID, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomPayment), args.Error(1)
}
func (m *MockPaymentService) GetCashPaymentExpiry(ctx context.Context, userID int32, orderID string) (*domain.CashPaymentExpiry, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashPaymentExpiry), args.Error(1)
}
func (m *MockPaymentService) ApproveCashPayment(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}
func (m *MockPaymentService) UpdateCashPaymentStatus(ctx context.Context, orderID string, bookingStatus, paymentStatus *string) error {
	args := m.Called(ctx, orderID, bookingStatus, paymentStatus)
	return args.Error(0)
}
func (m *MockPaymentService) ListPendingCashPayments(ctx context.Context) ([]domain.PaymentDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentDetails), args.Error(1)
}
func (m *MockPaymentService) ListAllPayments(ctx context.Context) ([]domain.PaymentDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentDetails), args.Error(1)
}
