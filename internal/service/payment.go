package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"courtside-backend/internal/domain"
	"courtside-backend/internal/gateway"
	"courtside-backend/internal/logger"
	"courtside-backend/internal/repository"
	"courtside-backend/internal/utils"
)

const (
	orderPrefixCash     = "cash_"
	orderPrefixRoomCash = "room_cash_"
	orderPrefixFree     = "free_booking_"
)

type paymentService struct {
	paymentRepo  repository.PaymentRepository
	bookingRepo  repository.BookingRepository
	roomRepo     repository.RoomPaymentRepository
	gateway      gateway.PaymentGateway
	currency     string
	cashHold     time.Duration
	webhookSecret     string
	roomWebhookSecret string
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomPaymentRepository,
	gw gateway.PaymentGateway,
	currency string,
	cashHoldHours int,
	webhookSecret, roomWebhookSecret string,
) PaymentService {
	return &paymentService{
		paymentRepo:       paymentRepo,
		bookingRepo:       bookingRepo,
		roomRepo:          roomRepo,
		gateway:           gw,
		currency:          currency,
		cashHold:          time.Duration(cashHoldHours) * time.Hour,
		webhookSecret:     webhookSecret,
		roomWebhookSecret: roomWebhookSecret,
	}
}

// newOrderID builds <prefix><unix-millis>_<uuid fragment>. The timestamp makes
// orders sortable; the fragment disambiguates same-millisecond requests.
func newOrderID(prefix string) string {
	return fmt.Sprintf("%s%d_%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

func (s *paymentService) CreateCardPayment(ctx context.Context, userID int32, amount float64, bc domain.BookingContext) (string, string, error) {
	if amount <= 0 {
		return "", "", domain.NewValidationError("amount must be positive")
	}
	if bc.FacilityID == 0 || bc.Date == "" {
		return "", "", domain.NewValidationError("facility and date are required")
	}

	metadata := map[string]string{
		"user_id":           strconv.Itoa(int(userID)),
		"facility_id":       strconv.Itoa(int(bc.FacilityID)),
		"date":              bc.Date,
		"slot":              bc.Slot,
		"booking_time_json": bc.BookingTimeJSON,
	}

	logger.ExternalServiceCall("stripe", "create_intent", "user_id", userID, "amount", amount)
	intent, err := s.gateway.CreateIntent(ctx, utils.ToMinorUnits(amount), s.currency, metadata)
	logger.ExternalServiceResult("stripe", "create_intent", err)
	if err != nil {
		return "", "", err
	}

	// The intent id is the order id: re-attach it so webhook metadata carries
	// the correlation key explicitly.
	if err := s.gateway.UpdateIntentMetadata(ctx, intent.ID, map[string]string{"order_id": intent.ID}); err != nil {
		return "", "", err
	}

	payment := &domain.Payment{
		UserID:      userID,
		OrderID:     intent.ID,
		Status:      domain.PaymentStatusPending,
		Amount:      amount,
		PaymentDate: time.Now(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return "", "", fmt.Errorf("failed to record pending payment %s: %w", intent.ID, err)
	}

	// No booking row yet: it materializes when the success webhook arrives.
	return intent.ClientSecret, intent.ID, nil
}

func (s *paymentService) CreateRoomCardPayment(ctx context.Context, userID int32, rp *domain.RoomPayment) (string, string, error) {
	if rp.Amount <= 0 {
		return "", "", domain.NewValidationError("amount must be positive")
	}
	if rp.RoomID == 0 || rp.StartDate == "" || rp.EndDate == "" {
		return "", "", domain.NewValidationError("room and stay dates are required")
	}
	if rp.Currency == "" {
		rp.Currency = s.currency
	}

	metadata := map[string]string{
		"user_id": strconv.Itoa(int(userID)),
		"room_id": strconv.Itoa(int(rp.RoomID)),
	}

	intent, err := s.gateway.CreateIntent(ctx, utils.ToMinorUnits(rp.Amount), rp.Currency, metadata)
	if err != nil {
		return "", "", err
	}
	if err := s.gateway.UpdateIntentMetadata(ctx, intent.ID, map[string]string{"order_id": intent.ID}); err != nil {
		return "", "", err
	}

	rp.UserID = userID
	rp.PaymentIntentID = intent.ID
	rp.OrderID = intent.ID
	rp.Status = domain.PaymentStatusPending
	rp.ClientSecret = &intent.ClientSecret
	if err := s.roomRepo.Create(ctx, rp); err != nil {
		return "", "", fmt.Errorf("failed to record pending room payment %s: %w", intent.ID, err)
	}
	return intent.ClientSecret, intent.ID, nil
}

func (s *paymentService) CreateCashPayment(ctx context.Context, userID int32, amount float64, bc domain.BookingContext) (string, error) {
	if amount <= 0 {
		return "", domain.NewValidationError("amount must be positive")
	}
	if bc.FacilityID == 0 || bc.Date == "" {
		return "", domain.NewValidationError("facility and date are required")
	}

	orderID := newOrderID(orderPrefixCash)
	if err := s.createPaymentBookingPair(ctx, userID, orderID, amount, domain.PaymentStatusPending, domain.BookingStatusPending, bc); err != nil {
		return "", err
	}
	return orderID, nil
}

func (s *paymentService) CreateRoomCashPayment(ctx context.Context, userID int32, rp *domain.RoomPayment) (string, error) {
	if rp.Amount <= 0 {
		return "", domain.NewValidationError("amount must be positive")
	}
	if rp.RoomID == 0 || rp.StartDate == "" || rp.EndDate == "" {
		return "", domain.NewValidationError("room and stay dates are required")
	}
	if rp.Currency == "" {
		rp.Currency = s.currency
	}

	orderID := newOrderID(orderPrefixRoomCash)
	rp.UserID = userID
	rp.PaymentIntentID = orderID
	rp.OrderID = orderID
	rp.Status = domain.PaymentStatusPending
	if err := s.roomRepo.Create(ctx, rp); err != nil {
		return "", fmt.Errorf("failed to record cash room payment %s: %w", orderID, err)
	}
	return orderID, nil
}

func (s *paymentService) CreateFreeBooking(ctx context.Context, userID int32, bc domain.BookingContext) (string, error) {
	if bc.FacilityID == 0 || bc.Date == "" {
		return "", domain.NewValidationError("facility and date are required")
	}

	orderID := newOrderID(orderPrefixFree)
	if err := s.createPaymentBookingPair(ctx, userID, orderID, 0, domain.PaymentStatusCompleted, domain.BookingStatusConfirmed, bc); err != nil {
		return "", err
	}
	return orderID, nil
}

// createPaymentBookingPair inserts the payment then the booking. The two
// inserts are not transactional; a booking failure triggers a best-effort
// delete of the payment so no orphan holds the slot.
func (s *paymentService) createPaymentBookingPair(ctx context.Context, userID int32, orderID string, amount float64, ps domain.PaymentStatus, bs domain.BookingStatus, bc domain.BookingContext) error {
	now := time.Now()
	payment := &domain.Payment{
		UserID:      userID,
		OrderID:     orderID,
		Status:      ps,
		Amount:      amount,
		PaymentDate: now,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return fmt.Errorf("failed to create payment %s: %w", orderID, err)
	}

	booking := &domain.Booking{
		UserID:      userID,
		OrderID:     orderID,
		BookingDate: now,
		Status:      bs,
		FacilityID:  bc.FacilityID,
		BookedDate:  bc.Date,
	}
	if bc.Slot != "" {
		booking.BookedSlot = &bc.Slot
	}
	if bc.BookingTimeJSON != "" {
		booking.BookingTimeJSON = &bc.BookingTimeJSON
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if delErr := s.paymentRepo.DeleteByOrderID(ctx, orderID); delErr != nil {
			logger.Error("failed to roll back payment after booking insert failure",
				"order_id", orderID, "error", delErr)
		}
		return fmt.Errorf("failed to create booking %s: %w", orderID, err)
	}
	return nil
}

func (s *paymentService) HandleWebhookEvent(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := s.gateway.VerifyWebhook(payload, sigHeader, s.webhookSecret)
	if err != nil {
		return err
	}

	status, ok := statusForEvent(event.Type)
	if !ok {
		logger.Debug("ignoring webhook event", "type", event.Type)
		return nil
	}

	// Processing errors past signature verification are logged and swallowed
	// so the gateway gets its acknowledgement and stops redelivering.
	if err := s.applyPaymentEvent(ctx, event, status); err != nil {
		logger.Error("webhook event not applied", "type", event.Type, "intent_id", event.IntentID, "error", err)
	}
	return nil
}

func (s *paymentService) HandleRoomWebhookEvent(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := s.gateway.VerifyWebhook(payload, sigHeader, s.roomWebhookSecret)
	if err != nil {
		return err
	}

	status, ok := statusForEvent(event.Type)
	if !ok {
		logger.Debug("ignoring room webhook event", "type", event.Type)
		return nil
	}

	if err := s.applyRoomPaymentEvent(ctx, event, status); err != nil {
		logger.Error("room webhook event not applied", "type", event.Type, "intent_id", event.IntentID, "error", err)
	}
	return nil
}

func statusForEvent(eventType string) (domain.PaymentStatus, bool) {
	switch eventType {
	case gateway.EventPaymentSucceeded:
		return domain.PaymentStatusCompleted, true
	case gateway.EventPaymentFailed:
		return domain.PaymentStatusFailed, true
	case gateway.EventPaymentCanceled:
		return domain.PaymentStatusCanceled, true
	case "payment_intent.processing":
		return domain.PaymentStatusProcessing, true
	}
	return "", false
}

func (s *paymentService) applyPaymentEvent(ctx context.Context, event *gateway.WebhookEvent, status domain.PaymentStatus) error {
	orderID := event.Metadata["order_id"]
	if orderID == "" {
		orderID = event.IntentID
	}
	userID, err := metadataUserID(event.Metadata)
	if err != nil {
		return err
	}

	existing, err := s.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("payment lookup for order %s: %w", orderID, err)
	}
	// Events can arrive out of order; once a payment is terminal nothing
	// moves it again.
	if existing.Status.IsTerminal() {
		logger.Info("skipping webhook for terminal payment",
			"order_id", orderID, "current_status", existing.Status, "event_status", status)
		return nil
	}

	amount := utils.FromMinorUnits(event.AmountMinor)
	affected, err := s.paymentRepo.ApplyGatewayUpdate(ctx, status, amount, time.Now(), event.IntentID, orderID, userID)
	if err != nil {
		return fmt.Errorf("payment update for order %s: %w", orderID, err)
	}
	if affected == 0 {
		return fmt.Errorf("payment update for order %s matched no rows", orderID)
	}

	if status == domain.PaymentStatusCompleted {
		return s.createBookingFromMetadata(ctx, userID, orderID, event.Metadata)
	}
	return nil
}

// createBookingFromMetadata is the only point where a card-path booking row
// comes into existence.
func (s *paymentService) createBookingFromMetadata(ctx context.Context, userID int32, orderID string, metadata map[string]string) error {
	facilityID, err := strconv.Atoi(metadata["facility_id"])
	if err != nil {
		return fmt.Errorf("invalid facility_id in intent metadata for order %s", orderID)
	}

	booking := &domain.Booking{
		UserID:      userID,
		OrderID:     orderID,
		BookingDate: time.Now(),
		Status:      domain.BookingStatusConfirmed,
		FacilityID:  int32(facilityID),
		BookedDate:  metadata["date"],
	}
	if slot := metadata["slot"]; slot != "" {
		booking.BookedSlot = &slot
	}
	if btj := metadata["booking_time_json"]; btj != "" {
		booking.BookingTimeJSON = &btj
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return fmt.Errorf("booking creation for order %s: %w", orderID, err)
	}
	logger.Info("booking confirmed from payment success", "order_id", orderID, "user_id", userID)
	return nil
}

func (s *paymentService) applyRoomPaymentEvent(ctx context.Context, event *gateway.WebhookEvent, status domain.PaymentStatus) error {
	userID, err := metadataUserID(event.Metadata)
	if err != nil {
		return err
	}

	existing, err := s.roomRepo.GetByIntentID(ctx, event.IntentID, userID)
	if err != nil {
		return fmt.Errorf("room payment lookup for intent %s: %w", event.IntentID, err)
	}
	if existing.Status.IsTerminal() {
		logger.Info("skipping webhook for terminal room payment",
			"intent_id", event.IntentID, "current_status", existing.Status, "event_status", status)
		return nil
	}

	amount := utils.FromMinorUnits(event.AmountMinor)
	affected, err := s.roomRepo.ApplyGatewayUpdate(ctx, status, amount, event.IntentID, userID)
	if err != nil {
		return fmt.Errorf("room payment update for intent %s: %w", event.IntentID, err)
	}
	if affected == 0 {
		return fmt.Errorf("room payment update for intent %s matched no rows", event.IntentID)
	}
	return nil
}

func metadataUserID(metadata map[string]string) (int32, error) {
	raw := metadata["user_id"]
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid user_id %q in intent metadata", raw)
	}
	return int32(id), nil
}

func (s *paymentService) GetPaymentStatus(ctx context.Context, userID int32, orderID string) (*domain.PaymentDetails, error) {
	payment, err := s.paymentRepo.GetByUserAndOrderID(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	details := &domain.PaymentDetails{Payment: *payment}
	if payment.Status == domain.PaymentStatusCompleted || payment.Status == domain.PaymentStatusSucceeded {
		booking, err := s.bookingRepo.GetDetailsByOrderID(ctx, orderID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		details.Booking = booking
	}
	return details, nil
}

func (s *paymentService) GetCheckoutSessionStatus(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", domain.NewValidationError("session id is required")
	}
	return s.gateway.RetrieveCheckoutSession(ctx, sessionID)
}

func (s *paymentService) GetRoomPaymentStatus(ctx context.Context, userID int32, intentID string) (*domain.RoomPayment, error) {
	return s.roomRepo.GetByIntentID(ctx, intentID, userID)
}

func (s *paymentService) GetCashPaymentExpiry(ctx context.Context, userID int32, orderID string) (*domain.CashPaymentExpiry, error) {
	if !strings.HasPrefix(orderID, orderPrefixCash) && !strings.HasPrefix(orderID, orderPrefixRoomCash) {
		return nil, domain.NewValidationError("order %s is not a cash payment", orderID)
	}

	payment, err := s.paymentRepo.GetByUserAndOrderID(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	expiry := payment.PaymentDate.Add(s.cashHold)
	remaining := time.Until(expiry)
	if remaining < 0 {
		remaining = 0
	}
	return &domain.CashPaymentExpiry{
		OrderID:          orderID,
		BookingTime:      payment.PaymentDate,
		ExpiryTime:       expiry,
		TimeRemaining:    remaining,
		IsExpired:        remaining == 0,
		HoursRemaining:   int(remaining / time.Hour),
		MinutesRemaining: int(remaining % time.Hour / time.Minute),
	}, nil
}

// ApproveCashPayment verifies both rows exist before touching either, so a
// half-created order never ends up half-approved.
func (s *paymentService) ApproveCashPayment(ctx context.Context, orderID string) error {
	if _, err := s.paymentRepo.GetByOrderID(ctx, orderID); err != nil {
		return err
	}
	if _, err := s.bookingRepo.GetDetailsByOrderID(ctx, orderID); err != nil {
		return err
	}

	if _, err := s.paymentRepo.UpdateStatusByOrderID(ctx, domain.PaymentStatusCompleted, orderID); err != nil {
		return fmt.Errorf("failed to complete payment %s: %w", orderID, err)
	}
	if _, err := s.bookingRepo.UpdateStatusByOrderID(ctx, domain.BookingStatusConfirmed, orderID); err != nil {
		return fmt.Errorf("failed to confirm booking %s: %w", orderID, err)
	}
	logger.Info("cash payment approved", "order_id", orderID)
	return nil
}

var (
	validBookingStatuses = map[string]bool{"pending": true, "confirmed": true, "cancelled": true}
	validPaymentStatuses = map[string]bool{"not completed": true, "completed": true, "failed": true}
)

// UpdateCashPaymentStatus updates booking and/or payment status for a cash
// order. Both values are validated before either write.
func (s *paymentService) UpdateCashPaymentStatus(ctx context.Context, orderID string, bookingStatus, paymentStatus *string) error {
	if bookingStatus == nil && paymentStatus == nil {
		return domain.NewValidationError("no status provided")
	}
	if bookingStatus != nil && !validBookingStatuses[*bookingStatus] {
		return domain.NewValidationError("invalid booking status %q", *bookingStatus)
	}
	if paymentStatus != nil && !validPaymentStatuses[*paymentStatus] {
		return domain.NewValidationError("invalid payment status %q", *paymentStatus)
	}

	if bookingStatus != nil {
		affected, err := s.bookingRepo.UpdateStatusByOrderID(ctx, domain.BookingStatus(*bookingStatus), orderID)
		if err != nil {
			return fmt.Errorf("failed to update booking status for %s: %w", orderID, err)
		}
		if affected == 0 {
			return domain.ErrNotFound
		}
	}
	if paymentStatus != nil {
		affected, err := s.paymentRepo.UpdateStatusByOrderID(ctx, domain.PaymentStatus(*paymentStatus), orderID)
		if err != nil {
			return fmt.Errorf("failed to update payment status for %s: %w", orderID, err)
		}
		if affected == 0 {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (s *paymentService) ListPendingCashPayments(ctx context.Context) ([]domain.PaymentDetails, error) {
	return s.paymentRepo.ListPendingCash(ctx)
}

func (s *paymentService) ListAllPayments(ctx context.Context) ([]domain.PaymentDetails, error) {
	return s.paymentRepo.ListWithBookings(ctx)
}
