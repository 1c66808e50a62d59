package service

import (
	"context"

	"github.com/sritampradhan92-jpg/learneEdge/domain"

	"github.com/google/uuid"
)

type contactUseCase struct {
	repo domain.ContactRepository
}

func NewContactUseCase(repo domain.ContactRepository) domain.ContactUseCase {
	return &contactUseCase{repo: repo}
}

func (s *contactUseCase) SubmitContact(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	contact := &domain.ContactMessage{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Message: message,
		Status:  "new",
	}

	if err := s.repo.CreateContact(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}
