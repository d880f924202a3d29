package service

import (
	"context"
	"fmt"
	"time"

	"courtside-backend/internal/domain"
	"courtside-backend/internal/logger"
	"courtside-backend/internal/repository"
	"courtside-backend/internal/utils"
)

// AvailabilityCache is the read-through cache over derived availability
// records. A nil cache disables caching.
type AvailabilityCache interface {
	GetAvailability(ctx context.Context, facilityID int32, date string) (*domain.FacilityAvailability, error)
	SetAvailability(ctx context.Context, facilityID int32, date string, fa *domain.FacilityAvailability) error
}

type availabilityService struct {
	facilityRepo repository.FacilityRepository
	bookingRepo  repository.BookingRepository
	cache        AvailabilityCache
}

func NewAvailabilityService(
	facilityRepo repository.FacilityRepository,
	bookingRepo repository.BookingRepository,
	cache AvailabilityCache,
) AvailabilityService {
	return &availabilityService{
		facilityRepo: facilityRepo,
		bookingRepo:  bookingRepo,
		cache:        cache,
	}
}

const (
	dateLayout    = "2006-01-02"
	displayLayout = "2 January 2006"
	closedTime    = "00:00:00"
)

var displayLocation = mustLoadLocation("Asia/Singapore")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s *availabilityService) GetFacilityAvailability(ctx context.Context, facilityID int32, date string) (*domain.FacilityAvailability, error) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, domain.NewValidationError("invalid date %q, expected YYYY-MM-DD", date)
	}

	if s.cache != nil {
		if cached, err := s.cache.GetAvailability(ctx, facilityID, date); err != nil {
			logger.Warn("availability cache read failed", "facility_id", facilityID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	weekday := parsed.Weekday().String()

	rows, err := s.facilityRepo.ScheduleForWeekday(ctx, weekday, facilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule for facility %d: %w", facilityID, err)
	}

	bookings, err := s.bookingRepo.ListForFacilityDate(ctx, facilityID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for facility %d: %w", facilityID, err)
	}
	for i := range bookings {
		bookings[i].BookedDateDisplay = formatBookedDate(bookings[i].BookedDate)
	}

	fa := s.buildAvailability(facilityID, weekday, rows, bookings)

	if s.cache != nil {
		if err := s.cache.SetAvailability(ctx, facilityID, date, fa); err != nil {
			logger.Warn("availability cache write failed", "facility_id", facilityID, "error", err)
		}
	}
	return fa, nil
}

func (s *availabilityService) buildAvailability(facilityID int32, weekday string, rows []domain.ScheduleRow, bookings []domain.BookingSummary) *domain.FacilityAvailability {
	if len(bookings) == 0 {
		bookings = []domain.BookingSummary{}
	}

	// No schedule covers this weekday: the facility is closed that day. Keep
	// the booking list visible either way.
	if len(rows) == 0 {
		status := domain.AvailabilityAvailable
		if len(bookings) > 0 {
			status = domain.AvailabilityPartiallyBooked
		}
		return &domain.FacilityAvailability{
			FacilityID: facilityID,
			Day:        weekday,
			OpenTime:   closedTime,
			CloseTime:  closedTime,
			PricingRules: []domain.PricingRule{
				{StartTime: closedTime, EndTime: closedTime, Price: "0", Unit: "hour"},
			},
			EquipmentRentals: []domain.EquipmentRental{},
			BookingStatus:    status,
			ExistingBookings: bookings,
		}
	}

	first := rows[0]
	fa := &domain.FacilityAvailability{
		FacilityID:       first.FacilityID,
		FacilityName:     &first.FacilityName,
		DayTypeID:        &first.DayTypeID,
		DayTypeName:      &first.DayTypeName,
		Day:              weekday,
		OpenTime:         first.OpenTime,
		CloseTime:        first.CloseTime,
		PricingRules:     dedupePricing(rows),
		EquipmentRentals: dedupeRentals(rows),
		ExistingBookings: bookings,
	}
	fa.BookingStatus = occupancyStatus(first.OpenTime, first.CloseTime, bookings)
	return fa
}

// occupancyStatus sums booked durations against the open window. Overlapping
// bookings are counted individually.
func occupancyStatus(openTime, closeTime string, bookings []domain.BookingSummary) domain.AvailabilityStatus {
	if len(bookings) == 0 {
		return domain.AvailabilityAvailable
	}

	var bookedHours float64
	for _, b := range bookings {
		if b.StartTime != nil && b.EndTime != nil {
			bookedHours += utils.HoursBetween(*b.StartTime, *b.EndTime)
		}
	}

	openHours := utils.HoursBetween(openTime, closeTime)
	if openHours > 0 && bookedHours >= openHours {
		return domain.AvailabilityFullyBooked
	}
	return domain.AvailabilityPartiallyBooked
}

func dedupePricing(rows []domain.ScheduleRow) []domain.PricingRule {
	seen := make(map[string]bool)
	rules := []domain.PricingRule{}
	for _, r := range rows {
		if r.PricingStartTime == nil || r.PricingEndTime == nil || r.Price == nil {
			continue
		}
		key := *r.PricingStartTime + "|" + *r.PricingEndTime + "|" + *r.Price
		if seen[key] {
			continue
		}
		seen[key] = true
		unit := "hour"
		if r.Unit != nil {
			unit = *r.Unit
		}
		rules = append(rules, domain.PricingRule{
			StartTime: *r.PricingStartTime,
			EndTime:   *r.PricingEndTime,
			Price:     *r.Price,
			Unit:      unit,
		})
	}
	return rules
}

func dedupeRentals(rows []domain.ScheduleRow) []domain.EquipmentRental {
	seen := make(map[string]bool)
	rentals := []domain.EquipmentRental{}
	for _, r := range rows {
		if r.RentalItem == nil || r.RentalPrice == nil {
			continue
		}
		if seen[*r.RentalItem] {
			continue
		}
		seen[*r.RentalItem] = true
		rentals = append(rentals, domain.EquipmentRental{ItemName: *r.RentalItem, Price: *r.RentalPrice})
	}
	return rentals
}

// formatBookedDate renders a stored date as e.g. "17 March 2026" in the
// facility's local zone. Unparseable values pass through unchanged.
func formatBookedDate(raw string) string {
	value := raw
	if len(value) > len(dateLayout) {
		value = value[:len(dateLayout)]
	}
	parsed, err := time.ParseInLocation(dateLayout, value, displayLocation)
	if err != nil {
		return raw
	}
	return parsed.Format(displayLayout)
}

func (s *availabilityService) ListFacilities(ctx context.Context) ([]domain.Facility, error) {
	return s.facilityRepo.List(ctx)
}

// GetFacilitySchedules aggregates the schedule join into one record per
// facility (catalogue view, all day types).
func (s *availabilityService) GetFacilitySchedules(ctx context.Context) ([]domain.FacilitySchedule, error) {
	rows, err := s.facilityRepo.ListScheduleRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch facility schedules: %w", err)
	}

	index := make(map[int32]int)
	hoursSeen := make(map[int32]map[int32]bool)
	var schedules []domain.FacilitySchedule

	for _, r := range rows {
		i, ok := index[r.FacilityID]
		if !ok {
			i = len(schedules)
			index[r.FacilityID] = i
			hoursSeen[r.FacilityID] = make(map[int32]bool)
			schedules = append(schedules, domain.FacilitySchedule{
				FacilityID:       r.FacilityID,
				FacilityName:     r.FacilityName,
				OperatingHours:   []domain.OperatingHours{},
				PricingRules:     []domain.PricingRule{},
				EquipmentRentals: []domain.EquipmentRental{},
			})
		}
		if !hoursSeen[r.FacilityID][r.DayTypeID] {
			hoursSeen[r.FacilityID][r.DayTypeID] = true
			schedules[i].OperatingHours = append(schedules[i].OperatingHours, domain.OperatingHours{
				DayTypeID:   r.DayTypeID,
				DayTypeName: r.DayTypeName,
				OpenTime:    r.OpenTime,
				CloseTime:   r.CloseTime,
			})
		}
	}

	for i := range schedules {
		facilityRows := filterRows(rows, schedules[i].FacilityID)
		schedules[i].PricingRules = dedupePricing(facilityRows)
		schedules[i].EquipmentRentals = dedupeRentals(facilityRows)
	}
	return schedules, nil
}

func filterRows(rows []domain.ScheduleRow, facilityID int32) []domain.ScheduleRow {
	var out []domain.ScheduleRow
	for _, r := range rows {
		if r.FacilityID == facilityID {
			out = append(out, r)
		}
	}
	return out
}

func (s *availabilityService) CreateDayType(ctx context.Context, dt *domain.DayType) error {
	if dt.Name == "" {
		return domain.NewValidationError("day type name is required")
	}
	if len(dt.Weekdays) == 0 {
		return domain.NewValidationError("at least one weekday is required")
	}
	for _, w := range dt.Weekdays {
		if !validWeekday(w) {
			return domain.NewValidationError("invalid weekday %q", w)
		}
	}
	return s.facilityRepo.CreateDayType(ctx, dt)
}

func (s *availabilityService) DeleteDayType(ctx context.Context, id int32) error {
	return s.facilityRepo.DeleteDayType(ctx, id)
}

func validWeekday(w string) bool {
	switch w {
	case "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday":
		return true
	}
	return false
}
