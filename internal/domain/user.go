package domain

import "time"

type User struct {
	ID         int32   `json:"id"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	FullName   *string `json:"fullName,omitempty"`
	Password   *string `json:"-"`
	IsVerified bool    `json:"is_verified"`
	IsAdmin    bool    `json:"is_admin"`
}

// OTPLog is one issued one-time password. Only the latest record per email is
// consulted during verification.
type OTPLog struct {
	ID         int32     `json:"id"`
	Email      string    `json:"email"`
	OTP        string    `json:"otp"`
	ExpiresAt  time.Time `json:"expires_at"`
	Attempts   int32     `json:"attempts"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}
