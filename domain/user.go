package domain

import (
	"context"
	"time"
)

type User struct {
	UUID          string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"userId"`
	FullName      string    `gorm:"not null" json:"fullName"` // max 50
	Email         string    `gorm:"unique;not null" json:"email"`
	Mobile        string    `gorm:"not null" json:"mobile"` // max 15
	Password      string    `gorm:"not null" json:"-"`
	Avatar        *string   `json:"avatar"`
	Bio           string    `json:"bio"`
	EmailVerified bool      `gorm:"not null;default:false" json:"emailVerified"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByUUID(ctx context.Context, uuid string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
	SetAvatar(ctx context.Context, uuid, avatarURL string) (*User, error)
}
