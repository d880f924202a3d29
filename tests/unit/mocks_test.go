package unit

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"courtside-backend/internal/domain"
	"courtside-backend/internal/gateway"
)

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) GetByUserAndOrderID(ctx context.Context, userID int32, orderID string) (*domain.Payment, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ApplyGatewayUpdate(ctx context.Context, status domain.PaymentStatus, amount float64, paymentDate time.Time, transactionID, orderID string, userID int32) (int64, error) {
	args := m.Called(ctx, status, amount, paymentDate, transactionID, orderID, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPaymentRepo) UpdateStatusByOrderID(ctx context.Context, status domain.PaymentStatus, orderID string) (int64, error) {
	args := m.Called(ctx, status, orderID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPaymentRepo) DeleteByOrderID(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListExpiredCash(ctx context.Context, cutoff time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListPendingCash(ctx context.Context) ([]domain.PaymentDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentDetails), args.Error(1)
}
func (m *MockPaymentRepo) ListWithBookings(ctx context.Context) ([]domain.PaymentDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentDetails), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) ListForFacilityDate(ctx context.Context, facilityID int32, date string) ([]domain.BookingSummary, error) {
	args := m.Called(ctx, facilityID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingSummary), args.Error(1)
}
func (m *MockBookingRepo) GetDetailsByOrderID(ctx context.Context, orderID string) (*domain.BookingSummary, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingSummary), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatusByOrderID(ctx context.Context, status domain.BookingStatus, orderID string) (int64, error) {
	args := m.Called(ctx, status, orderID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockBookingRepo) DeleteByOrderID(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

// MockRoomPaymentRepo
type MockRoomPaymentRepo struct {
	mock.Mock
}

func (m *MockRoomPaymentRepo) Create(ctx context.Context, rp *domain.RoomPayment) error {
	args := m.Called(ctx, rp)
	return args.Error(0)
}
func (m *MockRoomPaymentRepo) GetByIntentID(ctx context.Context, intentID string, userID int32) (*domain.RoomPayment, error) {
	args := m.Called(ctx, intentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomPayment), args.Error(1)
}
func (m *MockRoomPaymentRepo) ApplyGatewayUpdate(ctx context.Context, status domain.PaymentStatus, amount float64, intentID string, userID int32) (int64, error) {
	args := m.Called(ctx, status, amount, intentID, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRoomPaymentRepo) DeleteByIntentID(ctx context.Context, intentID string) error {
	args := m.Called(ctx, intentID)
	return args.Error(0)
}

// MockFacilityRepo
type MockFacilityRepo struct {
	mock.Mock
}

func (m *MockFacilityRepo) GetByID(ctx context.Context, id int32) (*domain.Facility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Facility), args.Error(1)
}
func (m *MockFacilityRepo) List(ctx context.Context) ([]domain.Facility, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Facility), args.Error(1)
}
func (m *MockFacilityRepo) ScheduleForWeekday(ctx context.Context, weekday string, facilityID int32) ([]domain.ScheduleRow, error) {
	args := m.Called(ctx, weekday, facilityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleRow), args.Error(1)
}
func (m *MockFacilityRepo) ListScheduleRows(ctx context.Context) ([]domain.ScheduleRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleRow), args.Error(1)
}
func (m *MockFacilityRepo) CreateDayType(ctx context.Context, dt *domain.DayType) error {
	args := m.Called(ctx, dt)
	return args.Error(0)
}
func (m *MockFacilityRepo) DeleteDayType(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockOTPRepo
type MockOTPRepo struct {
	mock.Mock
}

func (m *MockOTPRepo) Insert(ctx context.Context, email, otp string, expiresAt time.Time) error {
	args := m.Called(ctx, email, otp, expiresAt)
	return args.Error(0)
}
func (m *MockOTPRepo) Latest(ctx context.Context, email string) (*domain.OTPLog, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OTPLog), args.Error(1)
}
func (m *MockOTPRepo) IncrementAttempts(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOTPRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*gateway.Intent, error) {
	args := m.Called(ctx, amountMinor, currency, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Intent), args.Error(1)
}
func (m *MockGateway) UpdateIntentMetadata(ctx context.Context, intentID string, metadata map[string]string) error {
	args := m.Called(ctx, intentID, metadata)
	return args.Error(0)
}
func (m *MockGateway) RetrieveCheckoutSession(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}
func (m *MockGateway) VerifyWebhook(payload []byte, sigHeader, secret string) (*gateway.WebhookEvent, error) {
	args := m.Called(payload, sigHeader, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.WebhookEvent), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOTP(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, email, facilityName, bookedDate, slot string) error {
	args := m.Called(ctx, email, facilityName, bookedDate, slot)
	return args.Error(0)
}
