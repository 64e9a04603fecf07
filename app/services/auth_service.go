package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/app/repositories"
	"github.com/shashiranjanraj/kashvi-admin/config"
	"github.com/shashiranjanraj/kashvi-admin/pkg/auth"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
	"github.com/shashiranjanraj/kashvi-admin/pkg/mail"
)

// AuthService handles the signup wizard (OTP email verification followed by
// account creation) and credential login.
type AuthService struct {
	users *repositories.UserRepository
	otps  OTPStore
}

func NewAuthService(users *repositories.UserRepository, otps OTPStore) *AuthService {
	return &AuthService{users: users, otps: otps}
}

// SendOTP generates a 6-digit code, stores it against the email and mails
// it. Field errors are returned separately from transport errors so the
// controller can emit a 422 vs a 500.
func (s *AuthService) SendOTP(ctx context.Context, email string) (map[string]string, error) {
	if !validEmail(email) {
		return map[string]string{"email": msgInvalidEmail}, nil
	}

	code, err := generateOTP()
	if err != nil {
		return nil, fmt.Errorf("generate otp: %w", err)
	}

	if err := s.otps.Save(ctx, email, code, config.OTPTTL()); err != nil {
		return nil, fmt.Errorf("store otp: %w", err)
	}

	err = mail.New().
		To(email).
		Subject("Your Kashvi verification code").
		Body(fmt.Sprintf("Your verification code is %s. It expires in %d minutes.",
			code, int(config.OTPTTL().Minutes()))).
		Send()
	if err != nil {
		return nil, fmt.Errorf("send otp mail: %w", err)
	}

	logger.WithCtx(ctx).Info("otp sent", "email", email)
	return nil, nil
}

// VerifyOTP checks a code for the wizard's second step. The code is
// re-saved after a successful check so the final signup step can verify
// and consume it.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (map[string]string, error) {
	if !validEmail(email) {
		return map[string]string{"email": msgInvalidEmail}, nil
	}
	if !validOTP(code) {
		return map[string]string{"otp": msgInvalidOTP}, nil
	}

	ok, err := s.otps.Verify(ctx, email, code)
	if err != nil {
		return nil, fmt.Errorf("verify otp: %w", err)
	}
	if !ok {
		return map[string]string{"otp": msgOTPExpired}, nil
	}

	// Re-save so the final signup step can consume it.
	if err := s.otps.Save(ctx, email, code, config.OTPTTL()); err != nil {
		return nil, fmt.Errorf("store otp: %w", err)
	}

	return nil, nil
}

// SignupAdmin creates an admin account after full wizard validation and a
// final OTP check. The OTP is consumed here.
func (s *AuthService) SignupAdmin(ctx context.Context, in SignupInput) (*models.User, map[string]string, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}

	ok, err := s.otps.Verify(ctx, in.Email, in.OTP)
	if err != nil {
		return nil, nil, fmt.Errorf("verify otp: %w", err)
	}
	if !ok {
		return nil, map[string]string{"otp": msgOTPExpired}, nil
	}

	if _, err := s.users.FindByEmail(in.Email); err == nil {
		return nil, nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Password:  hash,
		Role:      models.RoleAdmin,
	}
	if err := s.users.Create(user); err != nil {
		return nil, nil, err
	}

	logger.WithCtx(ctx).Info("admin account created", "user_id", user.ID, "email", user.Email)
	return user, nil, nil
}

// Authenticate verifies admin credentials and issues a JWT.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, uint, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, ErrInvalidCredentials
		}
		return "", 0, err
	}

	if !user.IsAdmin() || !auth.CheckPassword(user.Password, password) {
		return "", 0, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", 0, fmt.Errorf("sign token: %w", err)
	}

	return token, user.ID, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
