package domain

import (
	"context"
	"time"
)

type ContactMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Message   string    `gorm:"not null" json:"message"`
	Status    string    `gorm:"not null" json:"status"` // new | read
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

type ContactRepository interface {
	CreateContact(ctx context.Context, contact *ContactMessage) error
}

type ContactUseCase interface {
	SubmitContact(ctx context.Context, name, email, message string) (*ContactMessage, error)
}
