// domain/otp.go
package domain

import (
	"context"
	"time"
)

// PendingRegistration holds signup details until the emailed code is
// verified or expires. The record is saved wholesale under otp:<email>,
// so a resend replaces everything and only the newest code validates.
type PendingRegistration struct {
	Email     string
	OTP       string
	FullName  string
	Mobile    string
	Password  string // bcrypt hash, promoted as-is on verification
	CreatedAt time.Time
	ExpiresAt time.Time
}

type OTPRepository interface {
	SavePending(ctx context.Context, pending *PendingRegistration, ttl time.Duration) error
	GetPending(ctx context.Context, email string) (*PendingRegistration, error) // nil when absent
	DeletePending(ctx context.Context, email string) error
}
