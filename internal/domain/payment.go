package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusSucceeded  PaymentStatus = "succeeded"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCanceled   PaymentStatus = "canceled"
	// Cash-desk vocabulary used by the admin status-update surface.
	PaymentStatusNotCompleted PaymentStatus = "not completed"
)

// IsTerminal reports whether a payment status is final. Webhook events may
// arrive out of order; transitions out of a terminal status are not applied.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusSucceeded, PaymentStatusFailed, PaymentStatusCanceled:
		return true
	}
	return false
}

// Payment amounts are stored in major currency units; the gateway boundary
// converts to and from minor units.
type Payment struct {
	ID            int32         `json:"id"`
	UserID        int32         `json:"user_id"`
	OrderID       string        `json:"order_id"`
	Status        PaymentStatus `json:"status"`
	Amount        float64       `json:"amount"`
	PaymentDate   time.Time     `json:"payment_date"`
	TransactionID *string       `json:"transaction_id,omitempty"`
}

// RoomPayment merges payment and reservation into a single row keyed by the
// gateway payment-intent id (order_id equals the intent id for card payments
// and the generated order id for cash).
type RoomPayment struct {
	PaymentIntentID string        `json:"payment_intent_id"`
	OrderID         string        `json:"order_id"`
	UserID          int32         `json:"user_id"`
	RoomID          int32         `json:"room_id"`
	Amount          float64       `json:"amount"`
	Currency        string        `json:"currency"`
	RoomCount       int32         `json:"room_count"`
	AdultCount      int32         `json:"adult_count"`
	ChildrenCount   int32         `json:"children_count"`
	TotalNights     int32         `json:"total_nights"`
	Date            string        `json:"date"`
	StartDate       string        `json:"start_date"`
	EndDate         string        `json:"end_date"`
	Status          PaymentStatus `json:"status"`
	ClientSecret    *string       `json:"client_secret,omitempty"`
}

// CashPaymentExpiry is the remaining-hold-time view for a pending cash order.
type CashPaymentExpiry struct {
	OrderID          string        `json:"orderId"`
	BookingTime      time.Time     `json:"bookingTime"`
	ExpiryTime       time.Time     `json:"expiryTime"`
	TimeRemaining    time.Duration `json:"timeRemaining"`
	IsExpired        bool          `json:"isExpired"`
	HoursRemaining   int           `json:"hoursRemaining"`
	MinutesRemaining int           `json:"minutesRemaining"`
}

// PaymentDetails is a payment joined with its booking (admin listings and
// the status query once payment completed).
type PaymentDetails struct {
	Payment
	Booking *BookingSummary `json:"booking,omitempty"`
}
