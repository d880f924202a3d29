package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusFailed    BookingStatus = "failed"
)

type Booking struct {
	ID          int32         `json:"id"`
	UserID      int32         `json:"user_id"`
	OrderID     string        `json:"order_id"`
	BookingDate time.Time     `json:"booking_date"`
	Status      BookingStatus `json:"status"`
	FacilityID  int32         `json:"facility_id"`
	BookedDate  string        `json:"booked_date"`
	BookedSlot  *string       `json:"booked_slot,omitempty"`
	StartTime   *string       `json:"start_time,omitempty"`
	EndTime     *string       `json:"end_time,omitempty"`
	// Serialized time-slot blob for multi-slot bookings. The column name
	// keeps the original schema's spelling.
	BookingTimeJSON *string `json:"boking_time_json,omitempty"`
}

// BookingSummary is the booking shape embedded in availability responses and
// admin payment listings (booking joined with its payment by order_id).
type BookingSummary struct {
	BookingID          int32   `json:"booking_id"`
	UserID             int32   `json:"user_id"`
	OrderID            string  `json:"order_id,omitempty"`
	StartTime          *string `json:"start_time"`
	EndTime            *string `json:"end_time"`
	BookedSlot         *string `json:"booked_slot,omitempty"`
	BookedDate         string  `json:"booked_date"`
	BookingTimeJSON    *string `json:"booking_time_json,omitempty"`
	BookedDateDisplay  string  `json:"booked_date_formatted,omitempty"`
	BookingStatus      string  `json:"booking_status,omitempty"`
	PaymentStatus      *string `json:"payment_status,omitempty"`
	Amount             *string `json:"amount,omitempty"`
	UserPhone          *string `json:"user_phone,omitempty"`
	FacilityName       *string `json:"facility_name,omitempty"`
}

// BookingContext carries the metadata a payment attempt needs to materialize
// a booking row later (card path: on the success webhook; cash/free paths:
// immediately).
type BookingContext struct {
	FacilityID      int32
	Date            string
	Slot            string
	BookingTimeJSON string
}
