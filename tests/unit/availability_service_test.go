package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"courtside-backend/internal/domain"
	"courtside-backend/internal/service"
)

func strPtr(s string) *string { return &s }

func scheduleRow(open, close string, priceStart, priceEnd, price string) domain.ScheduleRow {
	return domain.ScheduleRow{
		FacilityID:       3,
		FacilityName:     "Badminton Court 1",
		DayTypeID:        1,
		DayTypeName:      "Weekday",
		Day:              "Tuesday",
		OpenTime:         open,
		CloseTime:        close,
		PricingStartTime: strPtr(priceStart),
		PricingEndTime:   strPtr(priceEnd),
		Price:            strPtr(price),
		Unit:             strPtr("hour"),
	}
}

func booking(start, end string) domain.BookingSummary {
	return domain.BookingSummary{
		BookingID:  1,
		UserID:     7,
		StartTime:  strPtr(start),
		EndTime:    strPtr(end),
		BookedDate: "2026-09-01",
	}
}

func TestGetFacilityAvailability(t *testing.T) {
	ctx := context.Background()
	// 2026-09-01 is a Tuesday
	const date = "2026-09-01"

	t.Run("InvalidDateRejected", func(t *testing.T) {
		svc := service.NewAvailabilityService(new(MockFacilityRepo), new(MockBookingRepo), nil)

		_, err := svc.GetFacilityAvailability(ctx, 3, "01/09/2026")
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("NoBookingsMeansAvailable", func(t *testing.T) {
		facilityRepo := new(MockFacilityRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewAvailabilityService(facilityRepo, bookingRepo, nil)

		facilityRepo.On("ScheduleForWeekday", ctx, "Tuesday", int32(3)).
			Return([]domain.ScheduleRow{scheduleRow("08:00:00", "22:00:00", "08:00:00", "18:00:00", "15.00")}, nil)
		bookingRepo.On("ListForFacilityDate", ctx, int32(3), date).Return([]domain.BookingSummary{}, nil)

		fa, err := svc.GetFacilityAvailability(ctx, 3, date)
		assert.NoError(t, err)
		assert.Equal(t, domain.AvailabilityAvailable, fa.BookingStatus)
		assert.Equal(t, "08:00:00", fa.OpenTime)
		assert.Equal(t, "22:00:00", fa.CloseTime)
		assert.Equal(t, "Tuesday", fa.Day)
	})

	t.Run("SomeBookingsMeansPartiallyBooked", func(t *testing.T) {
		facilityRepo := new(MockFacilityRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewAvailabilityService(facilityRepo, bookingRepo, nil)

		facilityRepo.On("ScheduleForWeekday", ctx, "Tuesday", int32(3)).
			Return([]domain.ScheduleRow{scheduleRow("08:00:00", "22:00:00", "08:00:00", "18:00:00", "15.00")}, nil)
		bookingRepo.On("ListForFacilityDate", ctx, int32(3), date).
			Return([]domain.BookingSummary{booking("09:00:00", "11:00:00")}, nil)

		fa, err := svc.GetFacilityAvailability(ctx, 3, date)
		assert.NoError(t, err)
		assert.Equal(t, domain.AvailabilityPartiallyBooked, fa.BookingStatus)
		assert.Len(t, fa.ExistingBookings, 1)
		assert.Equal(t, "1 September 2026", fa.ExistingBookings[0].BookedDateDisplay)
	})

	t.Run("FullOccupancyMeansFullyBooked", func(t *testing.T) {
		facilityRepo := new(MockFacilityRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewAvailabilityService(facilityRepo, bookingRepo, nil)

		facilityRepo.On("ScheduleForWeekday", ctx, "Tuesday", int32(3)).
			Return([]domain.ScheduleRow{scheduleRow("08:00:00", "12:00:00", "08:00:00", "12:00:00", "15.00")}, nil)
		bookingRepo.On("ListForFacilityDate", ctx, int32(3), date).
			Return([]domain.BookingSummary{booking("08:00:00", "10:00:00"), booking("10:00:00", "12:00:00")}, nil)

		fa, err := svc.GetFacilityAvailability(ctx, 3, date)
		assert.NoError(t, err)
		assert.Equal(t, domain.AvailabilityFullyBooked, fa.BookingStatus)
	})

	t.Run("OverlappingBookingsCountIndividually", func(t *testing.T) {
		facilityRepo := new(MockFacilityRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewAvailabilityService(facilityRepo, bookingRepo, nil)

		// Two bookings over the same two hours saturate a four-hour window.
		facilityRepo.On("ScheduleForWeekday", ctx, "Tuesday", int32(3)).
			Return([]domain.ScheduleRow{scheduleRow("08:00:00", "12:00:00", "08:00:00", "12:00:00", "15.00")}, nil)
		bookingRepo.On("ListForFacilityDate", ctx, int32(3), date).
			Return([]domain.BookingSummary{booking("08:00:00", "10:00:00"), booking("08:00:00", "10:00:00")}, nil)

		fa, err := svc.GetFacilityAvailability(ctx, 3, date)
		assert.NoError(t, err)
		assert.Equal(t, domain.AvailabilityFullyBooked, fa.BookingStatus)
	})

	t.Run("NoScheduleMeansClosedDefaults", func(t *testing.T) {
		facilityRepo := new(MockFacilityRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewAvailabilityService(facilityRepo, bookingRepo, nil)

		facilityRepo.On("ScheduleForWeekday", ctx, "Tuesday", int32(3)).Return([]domain.ScheduleRow{}, nil)
		bookingRepo.On("ListForFacilityDate", ctx, int32(3), date).Return([]domain.BookingSummary{}, nil)

		fa, err := svc.GetFacilityAvailability(ctx, 3, date)
		assert.NoError(t, err)
		assert.Equal(t, "00:00:00", fa.OpenTime)
		assert.Equal(t, "00:00:00", fa.CloseTime)
		assert.Equal(t, domain.AvailabilityAvailable, fa.BookingStatus)
		assert.Len(t, fa.PricingRules, 1)
		assert.Equal(t, "0", fa.PricingRules[0].Price)
	})

	t.Run("ClosedDayWithBookingsIsPartiallyBooked", func(t *testing.T) {
		facilityRepo := new(MockFacilityRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewAvailabilityService(facilityRepo, bookingRepo, nil)

		facilityRepo.On("ScheduleForWeekday", ctx, "Tuesday", int32(3)).Return([]domain.ScheduleRow{}, nil)
		bookingRepo.On("ListForFacilityDate", ctx, int32(3), date).
			Return([]domain.BookingSummary{booking("09:00:00", "10:00:00")}, nil)

		fa, err := svc.GetFacilityAvailability(ctx, 3, date)
		assert.NoError(t, err)
		assert.Equal(t, domain.AvailabilityPartiallyBooked, fa.BookingStatus)
	})

	t.Run("DuplicateJoinRowsAreDeduped", func(t *testing.T) {
		facilityRepo := new(MockFacilityRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewAvailabilityService(facilityRepo, bookingRepo, nil)

		// Rental join fan-out repeats the pricing rule per rental item.
		row1 := scheduleRow("08:00:00", "22:00:00", "08:00:00", "18:00:00", "15.00")
		row1.RentalItem = strPtr("Racket")
		row1.RentalPrice = strPtr("5.00")
		row2 := scheduleRow("08:00:00", "22:00:00", "08:00:00", "18:00:00", "15.00")
		row2.RentalItem = strPtr("Shuttlecock")
		row2.RentalPrice = strPtr("3.00")
		row3 := scheduleRow("08:00:00", "22:00:00", "18:00:00", "22:00:00", "20.00")
		row3.RentalItem = strPtr("Racket")
		row3.RentalPrice = strPtr("5.00")

		facilityRepo.On("ScheduleForWeekday", ctx, "Tuesday", int32(3)).
			Return([]domain.ScheduleRow{row1, row2, row3}, nil)
		bookingRepo.On("ListForFacilityDate", ctx, int32(3), date).Return([]domain.BookingSummary{}, nil)

		fa, err := svc.GetFacilityAvailability(ctx, 3, date)
		assert.NoError(t, err)
		assert.Len(t, fa.PricingRules, 2)
		assert.Len(t, fa.EquipmentRentals, 2)
	})
}

func TestCreateDayType(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidatesWeekdays", func(t *testing.T) {
		facilityRepo := new(MockFacilityRepo)
		svc := service.NewAvailabilityService(facilityRepo, new(MockBookingRepo), nil)

		err := svc.CreateDayType(ctx, &domain.DayType{Name: "Weekend", Weekdays: []string{"Saturday", "Funday"}})
		assert.True(t, domain.IsValidation(err))
		facilityRepo.AssertNotCalled(t, "CreateDayType", mock.Anything, mock.Anything)
	})

	t.Run("DelegatesToRepository", func(t *testing.T) {
		facilityRepo := new(MockFacilityRepo)
		svc := service.NewAvailabilityService(facilityRepo, new(MockBookingRepo), nil)

		dt := &domain.DayType{Name: "Weekend", Weekdays: []string{"Saturday", "Sunday"}}
		facilityRepo.On("CreateDayType", ctx, dt).Return(nil)

		assert.NoError(t, svc.CreateDayType(ctx, dt))
		facilityRepo.AssertExpectations(t)
	})
}
