package repository

import (
	"context"
	"testing"
	"time"

	"github.com/sritampradhan92-jpg/learneEdge/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newOTPRepo(t *testing.T) (domain.OTPRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewOTPRedisRepository(client), mr
}

func TestOTPRepoRoundTrip(t *testing.T) {
	repo, mr := newOTPRepo(t)
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)
	pending := &domain.PendingRegistration{
		Email:     "a@x.com",
		OTP:       "123456",
		FullName:  "Alice",
		Mobile:    "+911234567890",
		Password:  "$2a$10$hash",
		CreatedAt: now,
		ExpiresAt: now.Add(10 * time.Minute),
	}
	if err := repo.SavePending(ctx, pending, 10*time.Minute); err != nil {
		t.Fatalf("SavePending: %v", err)
	}

	got, err := repo.GetPending(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetPending: %v", err)
	}
	if got == nil {
		t.Fatal("pending record missing")
	}
	if got.OTP != "123456" || got.FullName != "Alice" || got.Mobile != "+911234567890" || got.Password != "$2a$10$hash" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(now) || !got.ExpiresAt.Equal(now.Add(10*time.Minute)) {
		t.Fatalf("timestamps mismatch: created=%v expires=%v", got.CreatedAt, got.ExpiresAt)
	}

	if ttl := mr.TTL("otp:a@x.com"); ttl <= 0 || ttl > 10*time.Minute {
		t.Fatalf("key ttl = %v, want (0, 10m]", ttl)
	}
}

func TestOTPRepoGetPendingAbsent(t *testing.T) {
	repo, _ := newOTPRepo(t)

	got, err := repo.GetPending(context.Background(), "nobody@x.com")
	if err != nil {
		t.Fatalf("GetPending: %v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil for an absent key", got)
	}
}

func TestOTPRepoSaveReplacesWholesale(t *testing.T) {
	repo, _ := newOTPRepo(t)
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)

	first := &domain.PendingRegistration{
		Email: "a@x.com", OTP: "111111", FullName: "Alice", Mobile: "+911234567890",
		Password: "hash1", CreatedAt: now, ExpiresAt: now.Add(10 * time.Minute),
	}
	if err := repo.SavePending(ctx, first, 10*time.Minute); err != nil {
		t.Fatalf("SavePending: %v", err)
	}

	// A reset code carries no profile fields; none may leak through from the
	// earlier signup record.
	second := &domain.PendingRegistration{
		Email: "a@x.com", OTP: "222222",
		CreatedAt: now, ExpiresAt: now.Add(10 * time.Minute),
	}
	if err := repo.SavePending(ctx, second, 10*time.Minute); err != nil {
		t.Fatalf("SavePending: %v", err)
	}

	got, err := repo.GetPending(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetPending: %v", err)
	}
	if got.OTP != "222222" {
		t.Fatalf("otp = %q, want the newer code", got.OTP)
	}
	if got.FullName != "" || got.Mobile != "" || got.Password != "" {
		t.Fatalf("stale fields survived the overwrite: %+v", got)
	}
}

func TestOTPRepoDelete(t *testing.T) {
	repo, _ := newOTPRepo(t)
	ctx := context.Background()
	now := time.Now()

	pending := &domain.PendingRegistration{
		Email: "a@x.com", OTP: "123456",
		CreatedAt: now, ExpiresAt: now.Add(10 * time.Minute),
	}
	if err := repo.SavePending(ctx, pending, 10*time.Minute); err != nil {
		t.Fatalf("SavePending: %v", err)
	}
	if err := repo.DeletePending(ctx, "a@x.com"); err != nil {
		t.Fatalf("DeletePending: %v", err)
	}

	got, err := repo.GetPending(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetPending: %v", err)
	}
	if got != nil {
		t.Fatal("record should be gone after delete")
	}

	// Deleting an absent key is not an error.
	if err := repo.DeletePending(ctx, "a@x.com"); err != nil {
		t.Fatalf("DeletePending on absent key: %v", err)
	}
}

func TestOTPRepoKeyExpiry(t *testing.T) {
	repo, mr := newOTPRepo(t)
	ctx := context.Background()
	now := time.Now()

	pending := &domain.PendingRegistration{
		Email: "a@x.com", OTP: "123456",
		CreatedAt: now, ExpiresAt: now.Add(time.Minute),
	}
	if err := repo.SavePending(ctx, pending, time.Minute); err != nil {
		t.Fatalf("SavePending: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := repo.GetPending(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetPending: %v", err)
	}
	if got != nil {
		t.Fatal("redis should have evicted the key after the ttl")
	}
}
