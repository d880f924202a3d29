package postgres

import (
	"database/sql"

	"courtside-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.FacilityRepository
	repository.BookingRepository
	repository.PaymentRepository
	repository.RoomPaymentRepository
	repository.UserRepository
	repository.OTPRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		FacilityRepository:    NewFacilityRepository(db),
		BookingRepository:     NewBookingRepository(db),
		PaymentRepository:     NewPaymentRepository(db),
		RoomPaymentRepository: NewRoomPaymentRepository(db),
		UserRepository:        NewUserRepository(db),
		OTPRepository:         NewOTPRepository(db),
	}
}
