// domain/auth.go
package domain

import (
	"context"

	"github.com/sritampradhan92-jpg/learneEdge/utils"
)

type AuthUseCase interface {
	GetAccessTokenManager() *utils.JWTManager
	GetRefreshTokenManager() *utils.JWTManager
	Register(ctx context.Context, email, fullName, mobile, password string) (int, error)
	VerifyOTP(ctx context.Context, email, otp string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthTokens, *User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	Me(ctx context.Context, userUUID string) (*User, error)
}

type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
