package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"courtside-backend/internal/domain"
	"courtside-backend/internal/repository"
)

type otpRepository struct {
	db *sql.DB
}

func NewOTPRepository(db *sql.DB) repository.OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Insert(ctx context.Context, email, otp string, expiresAt time.Time) error {
	query := `INSERT INTO otp_logs (email, otp, expires_at, attempts, is_verified) VALUES ($1, $2, $3, 0, false)`
	_, err := r.db.ExecContext(ctx, query, email, otp, expiresAt)
	return err
}

func (r *otpRepository) Latest(ctx context.Context, email string) (*domain.OTPLog, error) {
	o := &domain.OTPLog{}
	query := `SELECT id, email, otp, expires_at, attempts, is_verified, created_at
	          FROM otp_logs
	          WHERE email = $1
	          ORDER BY created_at DESC
	          LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&o.ID, &o.Email, &o.OTP, &o.ExpiresAt, &o.Attempts, &o.IsVerified, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *otpRepository) IncrementAttempts(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE otp_logs SET attempts = attempts + 1 WHERE id = $1`, id)
	return err
}

func (r *otpRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM otp_logs WHERE id = $1`, id)
	return err
}
