package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"courtside-backend/internal/domain"
	"courtside-backend/internal/logger"
	"courtside-backend/internal/repository"
	"courtside-backend/internal/security"
)

const (
	otpExpiry      = 5 * time.Minute
	otpMaxAttempts = 3
)

type authService struct {
	userRepo repository.UserRepository
	otpRepo  repository.OTPRepository
	emailSvc EmailService
	tokens   security.TokenManager
}

func NewAuthService(
	userRepo repository.UserRepository,
	otpRepo repository.OTPRepository,
	emailSvc EmailService,
	tokens security.TokenManager,
) AuthService {
	return &authService{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		emailSvc: emailSvc,
		tokens:   tokens,
	}
}

func (s *authService) RequestOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.NewValidationError("a valid email is required")
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	if err := s.otpRepo.Insert(ctx, email, code, time.Now().Add(otpExpiry)); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	if err := s.emailSvc.SendOTP(ctx, email, code); err != nil {
		return fmt.Errorf("failed to deliver OTP: %w", err)
	}
	logger.Info("OTP issued", "email", email)
	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, email, code string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	record, err := s.otpRepo.Latest(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.NewValidationError("no verification code requested for this email")
		}
		return "", nil, err
	}

	if time.Now().After(record.ExpiresAt) {
		_ = s.otpRepo.Delete(ctx, record.ID)
		return "", nil, domain.NewValidationError("verification code has expired")
	}
	if record.Attempts >= otpMaxAttempts {
		_ = s.otpRepo.Delete(ctx, record.ID)
		return "", nil, domain.NewValidationError("too many attempts, request a new code")
	}
	if record.OTP != code {
		if err := s.otpRepo.IncrementAttempts(ctx, record.ID); err != nil {
			logger.Error("failed to increment OTP attempts", "email", email, "error", err)
		}
		return "", nil, domain.NewValidationError("incorrect verification code")
	}

	// Code accepted: it is single-use.
	if err := s.otpRepo.Delete(ctx, record.ID); err != nil {
		logger.Error("failed to delete consumed OTP", "email", email, "error", err)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		user = &domain.User{Email: &email, IsVerified: true}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return "", nil, fmt.Errorf("failed to create user for %s: %w", email, err)
		}
	} else if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, email, user.IsAdmin)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, user, nil
}

func (s *authService) AdminLogin(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.NewValidationError("invalid credentials")
		}
		return "", nil, err
	}
	if !user.IsAdmin || user.Password == nil {
		return "", nil, domain.NewValidationError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(password)); err != nil {
		return "", nil, domain.NewValidationError("invalid credentials")
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, email, true)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, user, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
