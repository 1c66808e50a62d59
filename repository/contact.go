package repository

import (
	"context"

	"github.com/sritampradhan92-jpg/learneEdge/domain"

	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) domain.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) CreateContact(ctx context.Context, contact *domain.ContactMessage) error {
	return r.db.WithContext(ctx).Create(contact).Error
}
