package domain

type AvailabilityStatus string

const (
	AvailabilityAvailable       AvailabilityStatus = "available"
	AvailabilityPartiallyBooked AvailabilityStatus = "partially_booked"
	AvailabilityFullyBooked     AvailabilityStatus = "fully_booked"
)

type Facility struct {
	ID                 int32   `json:"id"`
	Name               string  `json:"name"`
	SlotUnit           string  `json:"slot"` // "hour" or "day"
	ImgSrc             *string `json:"img_src,omitempty"`
	AvailabilityStatus *string `json:"availability_status,omitempty"`
}

type DayType struct {
	ID       int32    `json:"id"`
	Name     string   `json:"name"`
	Weekdays []string `json:"weekdays"`
}

type OperatingHours struct {
	DayTypeID   int32  `json:"day_type_id"`
	DayTypeName string `json:"day_type_name"`
	OpenTime    string `json:"open_time"`
	CloseTime   string `json:"close_time"`
}

type PricingRule struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Price     string `json:"price"`
	Unit      string `json:"unit"`
}

type EquipmentRental struct {
	ItemName string `json:"item_name"`
	Price    string `json:"price"`
}

// ScheduleRow is one row of the facility/day-type/pricing/rental join for a
// given weekday. Pricing and rental columns are nullable because the join is
// LEFT on both tables.
type ScheduleRow struct {
	FacilityID       int32
	FacilityName     string
	DayTypeID        int32
	DayTypeName      string
	Day              string
	OpenTime         string
	CloseTime        string
	PricingStartTime *string
	PricingEndTime   *string
	Price            *string
	Unit             *string
	RentalItem       *string
	RentalPrice      *string
}

// FacilitySchedule groups a facility's operating hours, pricing rules and
// rentals across all of its day types (catalogue view).
type FacilitySchedule struct {
	FacilityID       int32             `json:"facility_id"`
	FacilityName     string            `json:"facility_name"`
	OperatingHours   []OperatingHours  `json:"operating_hours"`
	PricingRules     []PricingRule     `json:"pricing_rules"`
	EquipmentRentals []EquipmentRental `json:"equipment_rentals"`
}

// FacilityAvailability is the derived per-date record returned by the
// availability calculator. When no schedule exists for the date's weekday the
// facility-shaped fields hold the "closed" defaults.
type FacilityAvailability struct {
	FacilityID       int32              `json:"facility_id"`
	FacilityName     *string            `json:"facility_name"`
	FacilitySlot     *string            `json:"facility_slot,omitempty"`
	DayTypeID        *int32             `json:"day_type_id"`
	DayTypeName      *string            `json:"day_type_name"`
	Day              string             `json:"day"`
	OpenTime         string             `json:"open_time"`
	CloseTime        string             `json:"close_time"`
	PricingRules     []PricingRule      `json:"pricing_rules"`
	EquipmentRentals []EquipmentRental  `json:"equipment_rentals"`
	BookingStatus    AvailabilityStatus `json:"booking_status"`
	ExistingBookings []BookingSummary   `json:"existing_bookings"`
}
