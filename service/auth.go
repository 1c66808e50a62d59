package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sritampradhan92-jpg/learneEdge/domain"
	"github.com/sritampradhan92-jpg/learneEdge/utils"

	"golang.org/x/crypto/bcrypt"
)

// otpTTL is the verification window; the success response advertises it in
// seconds so the frontend can show a countdown.
const otpTTL = 10 * time.Minute

type authService struct {
	userRepo     domain.UserRepository
	otpRepo      domain.OTPRepository
	mailer       domain.Mailer
	accessToken  *utils.JWTManager
	refreshToken *utils.JWTManager
}

func NewAuthService(userRepo domain.UserRepository, otpRepo domain.OTPRepository, mailer domain.Mailer, secret string) domain.AuthUseCase {
	return &authService{
		userRepo:     userRepo,
		otpRepo:      otpRepo,
		mailer:       mailer,
		accessToken:  utils.NewJWTManager(secret, time.Hour),
		refreshToken: utils.NewJWTManager(secret, 7*24*time.Hour),
	}
}

// Register starts the OTP signup flow: it generates a fresh code, overwrites
// any pending registration for the email and mails the code. Two concurrent
// calls race last-write-wins: the second writer's code is the one that
// validates and the first email goes stale. Returns the expiry window in
// seconds; the code itself only ever travels by email.
func (s *authService) Register(ctx context.Context, email, fullName, mobile, password string) (int, error) {
	if _, err := s.userRepo.GetUserByEmail(ctx, email); err == nil {
		return 0, domain.ErrAccountExists
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return 0, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	pending := &domain.PendingRegistration{
		Email:     email,
		OTP:       otp,
		FullName:  fullName,
		Mobile:    mobile,
		Password:  string(hashed),
		CreatedAt: now,
		ExpiresAt: now.Add(otpTTL),
	}

	if err := s.otpRepo.SavePending(ctx, pending, otpTTL); err != nil {
		return 0, err
	}

	// If the send fails the pending record stays put: a resend is the only
	// recovery path, no cleanup is attempted.
	subject := "Your learneEdge verification code"
	text := fmt.Sprintf("Your verification code is: %s\nIt is valid for 10 minutes.", otp)
	html := fmt.Sprintf(`<div style="font-family:sans-serif"><h2>Verify your email</h2><p>Your verification code is:</p><p style="font-size:28px;letter-spacing:4px"><strong>%s</strong></p><p>This code is valid for 10 minutes.</p></div>`, otp)
	if err := s.mailer.Send(email, subject, html, text); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrOTPDelivery, err)
	}

	return int(otpTTL.Seconds()), nil
}

// VerifyOTP promotes a pending registration into a real account. The pending
// record is only deleted after the user row exists, so a retry after a
// mid-flight failure can still verify with the same code. A concurrent
// verifier losing the insert race gets ErrAccountExists, not a crash.
func (s *authService) VerifyOTP(ctx context.Context, email, otp string) (*domain.User, error) {
	pending, err := s.otpRepo.GetPending(ctx, email)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, domain.ErrOTPNotFound
	}

	if time.Now().After(pending.ExpiresAt) {
		_ = s.otpRepo.DeletePending(ctx, email)
		return nil, domain.ErrOTPExpired
	}

	if pending.OTP != otp {
		// Record stays so the user can retry within the window.
		return nil, domain.ErrOTPInvalid
	}

	user := &domain.User{
		FullName:      pending.FullName,
		Email:         email,
		Mobile:        pending.Mobile,
		Password:      pending.Password,
		EmailVerified: true,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, err
	}

	_ = s.otpRepo.DeletePending(ctx, email)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.AuthTokens, *domain.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.accessToken.GenerateToken(user.UUID, user.Email)
	if err != nil {
		return nil, nil, err
	}

	refreshToken, err := s.refreshToken.GenerateToken(user.UUID, user.Email)
	if err != nil {
		return nil, nil, err
	}

	return &domain.AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, user, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	if _, err := s.userRepo.GetUserByEmail(ctx, email); err != nil {
		return domain.ErrUserNotFound
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return err
	}

	now := time.Now()
	// Reset codes reuse the pending store with empty profile fields.
	pending := &domain.PendingRegistration{
		Email:     email,
		OTP:       otp,
		CreatedAt: now,
		ExpiresAt: now.Add(otpTTL),
	}
	if err := s.otpRepo.SavePending(ctx, pending, otpTTL); err != nil {
		return err
	}

	subject := "Your learneEdge password reset code"
	text := fmt.Sprintf("Your password reset code is: %s\nIt is valid for 10 minutes.", otp)
	html := fmt.Sprintf(`<div style="font-family:sans-serif"><h2>Reset your password</h2><p>Your password reset code is:</p><p style="font-size:28px;letter-spacing:4px"><strong>%s</strong></p><p>This code is valid for 10 minutes.</p></div>`, otp)
	if err := s.mailer.Send(email, subject, html, text); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrOTPDelivery, err)
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	pending, err := s.otpRepo.GetPending(ctx, email)
	if err != nil {
		return err
	}
	if pending == nil {
		return domain.ErrOTPNotFound
	}

	if time.Now().After(pending.ExpiresAt) {
		_ = s.otpRepo.DeletePending(ctx, email)
		return domain.ErrOTPExpired
	}

	if pending.OTP != code {
		return domain.ErrOTPInvalid
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return err
	}

	// Delete the code so it can't be replayed.
	_ = s.otpRepo.DeletePending(ctx, email)
	return nil
}

func (s *authService) Me(ctx context.Context, userUUID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByUUID(ctx, userUUID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *authService) GetAccessTokenManager() *utils.JWTManager {
	return s.accessToken
}

func (s *authService) GetRefreshTokenManager() *utils.JWTManager {
	return s.refreshToken
}
