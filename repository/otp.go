package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sritampradhan92-jpg/learneEdge/domain"

	"github.com/redis/go-redis/v9"
)

type otpRedisRepository struct {
	client *redis.Client
}

func NewOTPRedisRepository(client *redis.Client) domain.OTPRepository {
	return &otpRedisRepository{client: client}
}

// SavePending overwrites the whole hash: two concurrent signups for the same
// email race last-write-wins and only the newest code remains valid.
func (r *otpRedisRepository) SavePending(ctx context.Context, pending *domain.PendingRegistration, ttl time.Duration) error {
	key := "otp:" + pending.Email

	data := map[string]string{
		"otp":        strings.TrimSpace(pending.OTP),
		"name":       strings.TrimSpace(pending.FullName),
		"phone":      strings.TrimSpace(pending.Mobile),
		"password":   strings.TrimSpace(pending.Password),
		"created_at": strconv.FormatInt(pending.CreatedAt.Unix(), 10),
		"expires_at": strconv.FormatInt(pending.ExpiresAt.Unix(), 10),
	}

	// Del before HSet so stale fields from a previous record never survive.
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, data)
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *otpRedisRepository) GetPending(ctx context.Context, email string) (*domain.PendingRegistration, error) {
	key := "otp:" + email
	vals, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, nil // not found
	}

	createdAt, _ := strconv.ParseInt(vals["created_at"], 10, 64)
	expiresAt, _ := strconv.ParseInt(vals["expires_at"], 10, 64)

	return &domain.PendingRegistration{
		Email:     email,
		OTP:       vals["otp"],
		FullName:  vals["name"],
		Mobile:    vals["phone"],
		Password:  vals["password"],
		CreatedAt: time.Unix(createdAt, 0),
		ExpiresAt: time.Unix(expiresAt, 0),
	}, nil
}

func (r *otpRedisRepository) DeletePending(ctx context.Context, email string) error {
	return r.client.Del(ctx, "otp:"+email).Err()
}
