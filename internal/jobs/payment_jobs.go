package jobs

import (
	"context"
	"time"

	"courtside-backend/internal/domain"
	"courtside-backend/internal/logger"
)

// ExpireStaleCashPayments fails pending cash payments whose hold window has
// run out, releasing their bookings. One stuck pair never blocks the rest of
// the sweep.
func (jr *JobRunner) ExpireStaleCashPayments() {
	jr.runWithRecovery("ExpireStaleCashPayments", func() {
		ctx := context.Background()

		holdWindow := time.Duration(jr.config.Booking.CashHoldHours) * time.Hour
		cutoff := time.Now().Add(-holdWindow)

		stale, err := jr.store.PaymentRepository.ListExpiredCash(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list expired cash payments", "error", err)
			return
		}
		if len(stale) == 0 {
			logger.Info("No expired cash payments found")
			return
		}

		expired := 0
		for _, p := range stale {
			if _, err := jr.store.PaymentRepository.UpdateStatusByOrderID(ctx, domain.PaymentStatusFailed, p.OrderID); err != nil {
				logger.Error("Failed to expire payment",
					"order_id", p.OrderID,
					"error", err)
				continue
			}
			if _, err := jr.store.BookingRepository.UpdateStatusByOrderID(ctx, domain.BookingStatusFailed, p.OrderID); err != nil {
				logger.Error("Failed to expire booking",
					"order_id", p.OrderID,
					"error", err)
				continue
			}
			expired++
			logger.Debug("Expired cash payment",
				"order_id", p.OrderID,
				"payment_date", p.PaymentDate)
		}

		logger.Info("Expired stale cash payments",
			"candidates", len(stale),
			"expired", expired,
			"hold_hours", jr.config.Booking.CashHoldHours)
	})
}
